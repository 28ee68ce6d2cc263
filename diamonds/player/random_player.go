package player

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/game"
)

type randomPlayer struct {
	basicPlayer
}

func NewRandomPlayer(name string) game.Player {
	return randomPlayer{basicPlayer: basicPlayer{name: name}}
}

func (p randomPlayer) Bid(gameState game.State) (card.Card, error) {
	hand := gameState.CurrentPlayerHand
	if len(hand) == 0 {
		return card.Card{}, consts.ErrorsGameOver
	}
	return hand[rand.Intn(len(hand))], nil
}
