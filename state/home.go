package state

import (
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/database"
	"github.com/ratel-online/diamonds/render"
)

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	err := render.HomeOptions(player)
	if err != nil {
		return 0, err
	}
	selected, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	switch selected {
	case "1":
		return consts.StateGame, nil
	case "2":
		return consts.StateStandings, nil
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}

func (*home) Exit(player *database.Player) consts.StateID {
	return 0
}
