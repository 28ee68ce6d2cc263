package game

import (
	"github.com/ratel-online/diamonds/diamonds/card"
)

// Player is a bidding strategy. The controller owning the player keeps its hand
// and score; Bid only chooses.
type Player interface {
	Name() string
	Bid(gameState State) (card.Card, error)
	NotifyCardsDealt(cards []card.Card)
	NotifyCardRejected(rejectedCard card.Card, hand []card.Card)
}
