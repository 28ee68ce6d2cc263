package player

import (
	"github.com/ratel-online/diamonds/diamonds/card"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func (p basicPlayer) NotifyCardsDealt(cards []card.Card) {
}

func (p basicPlayer) NotifyCardRejected(rejectedCard card.Card, hand []card.Card) {
}
