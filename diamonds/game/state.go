package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/diamonds/diamonds/card"
)

type State struct {
	Round             int
	Diamond           card.Card
	DiamondsLeft      int
	CurrentPlayerHand []card.Card
	OpponentName      string
	OpponentHandCount int
	PlayerSequence    []string
	Scores            map[string]int
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Round %d, diamond: %s (%d left)", s.Round, s.Diamond.Paint(), s.DiamondsLeft))

	var scores []string
	for _, playerName := range s.PlayerSequence {
		scores = append(scores, fmt.Sprintf("%s: %d", playerName, s.Scores[playerName]))
	}
	lines = append(lines, fmt.Sprintf("Scores: %s", strings.Join(scores, ", ")))
	lines = append(lines, fmt.Sprintf("%s holds %d card(s)", s.OpponentName, s.OpponentHandCount))

	hand := make([]string, 0, len(s.CurrentPlayerHand))
	for _, handCard := range s.CurrentPlayerHand {
		hand = append(hand, handCard.Paint())
	}
	lines = append(lines, fmt.Sprintf("Your hand: %s", strings.Join(hand, " ")))

	return strings.Join(lines, "\n")
}
