package game

import (
	"github.com/ratel-online/diamonds/diamonds/card"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, 13)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searchedCard card.Card) bool {
	return h.indexOf(searchedCard) >= 0
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// RemoveCard takes the card out of the hand keeping the order of the others.
func (h *Hand) RemoveCard(searchedCard card.Card) (card.Card, bool) {
	index := h.indexOf(searchedCard)
	if index < 0 {
		return card.Card{}, false
	}
	return h.RemoveAt(index)
}

func (h *Hand) RemoveAt(index int) (card.Card, bool) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, false
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, true
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) indexOf(searchedCard card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(searchedCard) {
			return index
		}
	}
	return -1
}

// Highest returns the card with the greatest rank. Ranks are unique per suit so
// there are no ties inside one hand.
func Highest(cards []card.Card) (card.Card, bool) {
	if len(cards) == 0 {
		return card.Card{}, false
	}
	highest := cards[0]
	for _, candidate := range cards[1:] {
		if candidate.Rank() > highest.Rank() {
			highest = candidate
		}
	}
	return highest, true
}
