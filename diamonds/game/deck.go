package game

import (
	"math/rand"

	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
)

// Deck holds the thirteen cards of one suit. The revealed card is the last one.
type Deck struct {
	cards []card.Card
}

func NewDeck(deckSuit suit.Suit) *Deck {
	cards := make([]card.Card, 0, card.MaxRank-card.MinRank+1)
	for rank := card.MinRank; rank <= card.MaxRank; rank++ {
		cards = append(cards, card.New(deckSuit, rank))
	}
	return &Deck{cards: cards}
}

func (d *Deck) Shuffle() {
	shuffleCards(d.cards)
}

// Deal removes and returns the first amount cards, or all of them when fewer remain.
func (d *Deck) Deal(amount int) []card.Card {
	if amount > len(d.cards) {
		amount = len(d.cards)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards
}

func (d *Deck) Top() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

func (d *Deck) Discard() (card.Card, bool) {
	top, ok := d.Top()
	if ok {
		d.cards = d.cards[:len(d.cards)-1]
	}
	return top, ok
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
