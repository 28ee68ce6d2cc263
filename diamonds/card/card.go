package card

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/diamonds/diamonds/card/suit"
)

const (
	MinRank = 2
	MaxRank = 14
)

var faceRanks = map[string]int{
	"J": 11,
	"Q": 12,
	"K": 13,
	"A": 14,
}

var faceLabels = map[int]string{
	11: "J",
	12: "Q",
	13: "K",
	14: "A",
}

type Card struct {
	suit suit.Suit
	rank int
}

func New(cardSuit suit.Suit, rank int) Card {
	return Card{
		suit: cardSuit,
		rank: rank,
	}
}

func (c Card) Suit() suit.Suit {
	return c.suit
}

func (c Card) Rank() int {
	return c.rank
}

func (c Card) Equal(other Card) bool {
	return c.suit == other.suit && c.rank == other.rank
}

// Label is the rank as printed on the card face.
func (c Card) Label() string {
	if label, ok := faceLabels[c.rank]; ok {
		return label
	}
	return strconv.Itoa(c.rank)
}

func (c Card) ImageName() string {
	return c.String() + ".png"
}

func (c Card) Paint() string {
	if c.suit == nil {
		return "[?]"
	}
	return c.suit.Paintf("[%s%s]", c.Label(), c.suit.Symbol())
}

func (c Card) String() string {
	if c.suit == nil {
		return strconv.Itoa(c.rank)
	}
	return fmt.Sprintf("%d%s", c.rank, c.suit.Letter())
}

// Parse reads a card written as rank followed by suit letter: 7H, 12S, QH.
func Parse(text string) (Card, error) {
	text = strings.ToUpper(strings.TrimSpace(text))
	if len(text) < 2 {
		return Card{}, fmt.Errorf("invalid card '%s'", text)
	}
	cardSuit, err := suit.ByLetter(text[len(text)-1:])
	if err != nil {
		return Card{}, err
	}
	rankText := text[:len(text)-1]
	rank, ok := faceRanks[rankText]
	if !ok {
		rank, err = strconv.Atoi(rankText)
		if err != nil || strconv.Itoa(rank) != rankText {
			return Card{}, fmt.Errorf("invalid rank '%s'", rankText)
		}
	}
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("rank %d out of range", rank)
	}
	return New(cardSuit, rank), nil
}
