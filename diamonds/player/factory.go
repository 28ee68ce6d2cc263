package player

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/ratel-online/diamonds/diamonds/game"
)

// AssignSuits gives the human a random bidding suit and the computer the first
// of the two that remain.
func AssignSuits() (human suit.Suit, computer suit.Suit) {
	human = suit.Bidding[rand.Intn(len(suit.Bidding))]
	for _, candidate := range suit.Bidding {
		if candidate != human {
			return human, candidate
		}
	}
	return human, nil
}

// ComputerName keeps the computer's name distinct from the human's.
func ComputerName(humanName string) string {
	if humanName == consts.ComputerName {
		return consts.ComputerName + " (bot)"
	}
	return consts.ComputerName
}

func NewComputer(opponent string, name string) (game.Player, error) {
	switch opponent {
	case consts.OpponentHighest, "":
		return NewHighestCardPlayer(name), nil
	case consts.OpponentRandom:
		return NewRandomPlayer(name), nil
	default:
		return nil, consts.ErrorsOpponentInvalid
	}
}
