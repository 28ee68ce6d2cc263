package render

import (
	"bytes"
	"fmt"

	constx "github.com/ratel-online/core/consts"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/diamonds/database"
	"github.com/ratel-online/diamonds/diamonds/event"
	"github.com/ratel-online/diamonds/diamonds/msg"
	"github.com/ratel-online/diamonds/model"
)

type Writer interface {
	WriteObject(data interface{}) error
}

func Welcome(player *database.Player) error {
	return player.WriteObject(modelx.Data{
		Code: constx.CodeWelcome,
		Msg:  WelcomeMessage(player.ID, player.Name),
	})
}

// WelcomeMessage greets a player with the number of players online and, for a
// returning player, their record.
func WelcomeMessage(playerId int64, name string) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Hi %s, %s", name, msg.Message.Welcome()))
	buf.WriteString(fmt.Sprintf("%d player(s) online.\n", database.OnlinePlayers()))
	if standing, ok := database.GetStanding(playerId); ok {
		buf.WriteString(fmt.Sprintf("Welcome back, you won %d of %d games, best score %d.\n",
			standing.Wins, standing.Games, standing.BestScore))
	}
	return buf.String()
}

func HomeOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("1.Play\n")
	buf.WriteString("2.Standings\n")
	return player.WriteObject(modelx.Options{
		Data: modelx.Data{
			Code: constx.CodeHomeOptions,
			Msg:  buf.String(),
		},
		Options: []modelx.Option{
			{ID: 1, Name: "Play"},
			{ID: 2, Name: "Standings"},
		},
	})
}

func Standings(w Writer, standings []database.Standing) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-20s%-8s%-8s%-8s%-8s%-8s\n", "Name", "Games", "Wins", "Losses", "Draws", "Best"))
	list := make([]model.Standing, 0, len(standings))
	for _, standing := range standings {
		buf.WriteString(fmt.Sprintf("%-20s%-8d%-8d%-8d%-8d%-8d\n",
			standing.Name, standing.Games, standing.Wins, standing.Losses, standing.Draws, standing.BestScore))
		list = append(list, model.Standing{
			Name:      standing.Name,
			Games:     standing.Games,
			Wins:      standing.Wins,
			Losses:    standing.Losses,
			Draws:     standing.Draws,
			BestScore: standing.BestScore,
		})
	}
	if len(standings) == 0 {
		buf.WriteString("No games finished yet.\n")
	}
	return w.WriteObject(model.Standings{
		Data: modelx.Data{
			Code: model.CodeStandings,
			Msg:  buf.String(),
		},
		Standings: list,
	})
}

// GameListener forwards game events to a client as views.
type GameListener struct {
	w Writer
}

func NewGameListener(w Writer) GameListener {
	return GameListener{w: w}
}

func (l GameListener) OnDiamondRevealed(payload event.DiamondRevealedPayload) {
	l.write(model.NewDiamond(payload, msg.Message.DiamondRevealed(payload.Round, payload.Diamond)))
}

func (l GameListener) OnCardPlayed(payload event.CardPlayedPayload) {
}

func (l GameListener) OnRoundResolved(payload event.RoundResolvedPayload) {
	l.write(model.NewRound(payload, msg.Message.RoundResolved(payload)))
}

func (l GameListener) OnGameOver(payload event.GameOverPayload) {
	l.write(model.NewOutcome(payload, msg.Message.GameOver(payload)))
}

func (l GameListener) write(view interface{}) {
	if err := l.w.WriteObject(view); err != nil {
		log.Error(err)
	}
}
