package player

import (
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/game"
)

type highestCardPlayer struct {
	basicPlayer
}

// NewHighestCardPlayer always bids the highest card it holds, whatever the diamond.
func NewHighestCardPlayer(name string) game.Player {
	return highestCardPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p highestCardPlayer) Bid(gameState game.State) (card.Card, error) {
	highest, ok := game.Highest(gameState.CurrentPlayerHand)
	if !ok {
		return card.Card{}, consts.ErrorsGameOver
	}
	return highest, nil
}
