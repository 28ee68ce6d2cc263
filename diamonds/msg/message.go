package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/ratel-online/diamonds/diamonds/event"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s DIAMONDS %s",
		suit.Spades.Paint(suit.Spades.Symbol()),
		suit.Hearts.Paint(suit.Hearts.Symbol()),
		suit.Clubs.Paint(suit.Clubs.Symbol()),
		suit.Diamonds.Paint(suit.Diamonds.Symbol()),
	)
}

func (m MessageWriter) SuitAssigned(playerName string, playerSuit suit.Suit) string {
	return Sprintfln("%s plays %s", playerName, playerSuit)
}

func (m MessageWriter) DiamondRevealed(round int, diamond card.Card) string {
	return Sprintfln("Round %d: the diamond is %s", round, diamond.Paint())
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string, playerSuit suit.Suit) string {
	return Sprintfln("%s, choose a card (e.g., 7%s):", playerName, playerSuit.Letter())
}

func (m MessageWriter) CardRejected(playerName string, rejectedCard card.Card) string {
	return Sprintfln("Invalid card choice %s for %s.", rejectedCard, playerName)
}

func (m MessageWriter) InvalidCardChoice(input string) string {
	return Sprintfln("No card matches '%s'", input)
}

func (m MessageWriter) RoundResolved(result event.RoundResolvedPayload) string {
	var lines []string
	for _, play := range result.Plays {
		lines = append(lines, fmt.Sprintf("%s chose: %s", play.PlayerName, play.Card))
	}
	if result.Tie {
		lines = append(lines, "Both players played the same card.")
	} else {
		lines = append(lines, fmt.Sprintf("%s wins the trick!", result.WinnerName))
	}
	lines = append(lines, scoresLine("Scores: ", result.Plays, result.Scores))
	return Sprintlns(lines)
}

func (m MessageWriter) GameOver(outcome event.GameOverPayload) string {
	lines := []string{m.Winner(outcome), "Final Scores:"}
	for _, playerName := range outcome.PlayerSequence {
		lines = append(lines, fmt.Sprintf("%s: %d", playerName, outcome.Scores[playerName]))
	}
	return Sprintlns(lines)
}

func (m MessageWriter) Winner(outcome event.GameOverPayload) string {
	if outcome.Draw {
		for _, score := range outcome.Scores {
			return fmt.Sprintf("It's a draw with a score of %d each!", score)
		}
	}
	return fmt.Sprintf("%s wins the game with a score of %d!", outcome.WinnerName, outcome.Scores[outcome.WinnerName])
}

func (m MessageWriter) Goodbye(playerName string) string {
	return Sprintfln("Bye, %s!", playerName)
}

func scoresLine(prefix string, plays []event.Play, scores map[string]int) string {
	parts := make([]string, 0, len(plays))
	for _, play := range plays {
		parts = append(parts, fmt.Sprintf("%s: %d", play.PlayerName, scores[play.PlayerName]))
	}
	return prefix + strings.Join(parts, ", ")
}
