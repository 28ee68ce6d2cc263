package local

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/diamonds/diamonds/event"
	"github.com/ratel-online/diamonds/diamonds/game"
	"github.com/ratel-online/diamonds/diamonds/msg"
	"github.com/ratel-online/diamonds/diamonds/player"
	"github.com/ratel-online/diamonds/diamonds/ui"
)

// Run plays one game at the console: the human against the configured computer.
func Run(console *ui.Console, opponent string) (game.Outcome, error) {
	console.Print(msg.Message.Welcome())
	name, err := console.PromptString("Enter your name:")
	if err != nil {
		return game.Outcome{}, err
	}

	humanSuit, computerSuit := player.AssignSuits()
	human := player.NewHumanPlayer(name, humanSuit, console)
	computerName := player.ComputerName(name)
	computer, err := player.NewComputer(opponent, computerName)
	if err != nil {
		return game.Outcome{}, err
	}
	g, err := game.New(human, humanSuit, computer, computerSuit)
	if err != nil {
		return game.Outcome{}, err
	}
	g.Events().AddListener(human)
	g.Events().AddListener(event.NewLogListener("local game of " + name))

	console.Print(msg.Message.SuitAssigned(name, humanSuit))
	console.Print(msg.Message.SuitAssigned(computerName, computerSuit))
	g.DealStartingCards()

	outcome, err := g.Play()
	if err != nil {
		log.Error(err)
		return game.Outcome{}, err
	}
	console.Pause()
	return outcome, nil
}
