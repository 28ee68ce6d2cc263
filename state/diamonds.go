package state

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/database"
	"github.com/ratel-online/diamonds/diamonds/event"
	"github.com/ratel-online/diamonds/diamonds/game"
	"github.com/ratel-online/diamonds/diamonds/msg"
	diamondsplayer "github.com/ratel-online/diamonds/diamonds/player"
	"github.com/ratel-online/diamonds/render"
)

// diamondsGame seats the connected player against the computer for one game.
type diamondsGame struct {
	opponent string
}

func (s *diamondsGame) Next(player *database.Player) (consts.StateID, error) {
	humanSuit, computerSuit := diamondsplayer.AssignSuits()
	human := database.NewDiamondsPlayer(player.Name, humanSuit, player)
	computer, err := diamondsplayer.NewComputer(s.opponent, diamondsplayer.ComputerName(player.Name))
	if err != nil {
		return 0, err
	}
	g, err := game.New(human, humanSuit, computer, computerSuit)
	if err != nil {
		return 0, err
	}
	g.Events().AddListener(render.NewGameListener(player))
	g.Events().AddListener(event.NewLogListener(player.String()))

	err = player.WriteString(msg.Message.SuitAssigned(human.Name(), humanSuit) +
		msg.Message.SuitAssigned(computer.Name(), computerSuit))
	if err != nil {
		return 0, err
	}
	g.DealStartingCards()
	outcome, err := g.Play()
	if err != nil {
		return 0, err
	}
	standing := database.RecordOutcome(player.ID, human.Name(), outcome)
	log.Infof("player %s finished a game, %d wins in %d games\n", player, standing.Wins, standing.Games)
	return consts.StateHome, nil
}

func (*diamondsGame) Exit(player *database.Player) consts.StateID {
	return consts.StateHome
}
