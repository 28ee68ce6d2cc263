package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/msg"
)

// PromptString reads one line. quit, exit and end of input end the session.
func (c *Console) PromptString(message string) (string, error) {
	for {
		c.Println(message)
		line, err := c.in.ReadString('\n')
		input := strings.TrimSpace(line)
		if err != nil && !(errors.Is(err, io.EOF) && input != "") {
			if errors.Is(err, io.EOF) {
				return "", consts.ErrorsExist
			}
			return "", err
		}
		if isExit(input) {
			return "", consts.ErrorsExist
		}
		if input == "" {
			c.Println("Invalid text input")
			continue
		}
		return input, nil
	}
}

// CardOptions labels every card A, B, C... in hand order.
func CardOptions(cards []card.Card) ([]string, map[string]card.Card) {
	sequence := runeSequence{}
	labels := make([]string, 0, len(cards))
	options := make(map[string]card.Card, len(cards))
	for _, option := range cards {
		label := string(sequence.next())
		labels = append(labels, label)
		options[label] = option
	}
	return labels, options
}

// SelectCard resolves an answer to a card of the list: either a label or the
// card text such as 7H or QH.
func SelectCard(cards []card.Card, input string) (card.Card, bool) {
	_, options := CardOptions(cards)
	if selected, found := options[strings.ToUpper(strings.TrimSpace(input))]; found {
		return selected, true
	}
	parsed, err := card.Parse(input)
	if err != nil {
		return card.Card{}, false
	}
	for _, candidate := range cards {
		if candidate.Equal(parsed) {
			return candidate, true
		}
	}
	return card.Card{}, false
}

func CardSelectionMessage(header string, cards []card.Card) string {
	labels, options := CardOptions(cards)
	lines := []string{strings.TrimRight(header, "\n")}
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%s %s (enter %s or %s)", label, options[label].Paint(), label, options[label]))
	}
	return strings.Join(lines, "\n")
}

// PromptCardSelection asks until the answer names a card of the list. Wrong
// answers change nothing.
func (c *Console) PromptCardSelection(header string, cards []card.Card) (card.Card, error) {
	message := CardSelectionMessage(header, cards)
	for {
		input, err := c.PromptString(message)
		if err != nil {
			return card.Card{}, err
		}
		selected, found := SelectCard(cards, input)
		if !found {
			c.Print(msg.Message.InvalidCardChoice(input))
			continue
		}
		return selected, nil
	}
}

func isExit(input string) bool {
	input = strings.ToLower(input)
	return input == "exit" || input == "quit"
}
