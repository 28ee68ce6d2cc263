package game

import (
	"github.com/ratel-online/diamonds/diamonds/card"
)

// Resolve returns the points each player earns for one round. Equal ranks split
// half the diamond rank to both players. Otherwise the owner of the higher card
// scores that card's own rank, not the diamond's.
func Resolve(diamond card.Card, first card.Card, second card.Card) (firstPoints int, secondPoints int) {
	switch {
	case first.Rank() == second.Rank():
		split := diamond.Rank() / 2
		return split, split
	case first.Rank() > second.Rank():
		return first.Rank(), 0
	default:
		return 0, second.Rank()
	}
}
