package state

import (
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/database"
	"github.com/ratel-online/diamonds/render"
)

type standings struct{}

func (*standings) Next(player *database.Player) (consts.StateID, error) {
	err := render.Standings(player, database.GetStandings())
	if err != nil {
		return 0, err
	}
	return consts.StateHome, nil
}

func (*standings) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}
