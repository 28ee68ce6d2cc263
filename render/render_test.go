package render_test

import (
	"testing"

	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/database"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/ratel-online/diamonds/diamonds/event"
	"github.com/ratel-online/diamonds/diamonds/game"
	"github.com/ratel-online/diamonds/model"
	"github.com/ratel-online/diamonds/render"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	objects []interface{}
}

func (r *recorder) WriteObject(data interface{}) error {
	r.objects = append(r.objects, data)
	return nil
}

func TestStandings(t *testing.T) {
	t.Run("lists_every_player", func(t *testing.T) {
		w := &recorder{}
		err := render.Standings(w, []database.Standing{
			{ID: 1, Name: "Alice", Games: 3, Wins: 2, Losses: 1, BestScore: 71},
			{ID: 2, Name: "Bob", Games: 1, Draws: 1, BestScore: 49},
		})
		require.NoError(t, err)
		require.Len(t, w.objects, 1)

		view := w.objects[0].(model.Standings)
		require.Equal(t, model.CodeStandings, view.Code)
		require.Contains(t, view.Msg, "Alice")
		require.Contains(t, view.Msg, "71")
		require.Equal(t, []model.Standing{
			{Name: "Alice", Games: 3, Wins: 2, Losses: 1, BestScore: 71},
			{Name: "Bob", Games: 1, Draws: 1, BestScore: 49},
		}, view.Standings)
	})

	t.Run("says_when_nothing_was_played", func(t *testing.T) {
		w := &recorder{}
		require.NoError(t, render.Standings(w, nil))
		view := w.objects[0].(model.Standings)
		require.Contains(t, view.Msg, "No games finished yet.")
		require.Empty(t, view.Standings)
	})
}

func TestGameListener(t *testing.T) {
	w := &recorder{}
	var listener event.Listener = render.NewGameListener(w)

	diamond := card.New(suit.Diamonds, 9)
	listener.OnDiamondRevealed(event.DiamondRevealedPayload{Round: 1, Diamond: diamond})
	listener.OnCardPlayed(event.CardPlayedPayload{Round: 1, PlayerName: "Someone", Card: card.New(suit.Clubs, 5)})
	listener.OnRoundResolved(event.RoundResolvedPayload{
		Round:   1,
		Diamond: diamond,
		Plays: []event.Play{
			{PlayerName: "Someone", Card: card.New(suit.Clubs, 5)},
			{PlayerName: consts.ComputerName, Card: card.New(suit.Spades, 14)},
		},
		WinnerName: consts.ComputerName,
		Awarded:    map[string]int{"Someone": 0, consts.ComputerName: 14},
		Scores:     map[string]int{"Someone": 0, consts.ComputerName: 14},
	})
	listener.OnGameOver(event.GameOverPayload{
		Rounds:         13,
		WinnerName:     consts.ComputerName,
		PlayerSequence: []string{"Someone", consts.ComputerName},
		Scores:         map[string]int{"Someone": 10, consts.ComputerName: 90},
	})

	require.Len(t, w.objects, 3)

	revealed := w.objects[0].(model.Diamond)
	require.Equal(t, model.CodeDiamondRevealed, revealed.Code)
	require.Equal(t, "9D", revealed.Diamond.Text)

	round := w.objects[1].(model.Round)
	require.Equal(t, model.CodeRoundResolved, round.Code)
	require.Equal(t, consts.ComputerName, round.Winner)
	require.Contains(t, round.Msg, "Computer wins the trick!")

	outcome := w.objects[2].(model.Outcome)
	require.Equal(t, model.CodeGameOver, outcome.Code)
	require.Contains(t, outcome.Msg, "Computer wins the game with a score of 90!")
}

func TestWelcomeMessage(t *testing.T) {
	database.ResetStandings()

	t.Run("new_player", func(t *testing.T) {
		text := render.WelcomeMessage(50, "Someone")
		require.Contains(t, text, "Hi Someone")
		require.Contains(t, text, "0 player(s) online.")
		require.NotContains(t, text, "Welcome back")
	})

	t.Run("returning_player_sees_their_record", func(t *testing.T) {
		database.RecordOutcome(50, "Someone", game.Outcome{
			Rounds:     13,
			WinnerName: "Someone",
			Scores:     map[string]int{"Someone": 62, consts.ComputerName: 40},
		})
		text := render.WelcomeMessage(50, "Someone")
		require.Contains(t, text, "Welcome back, you won 1 of 1 games, best score 62.")
	})
}
