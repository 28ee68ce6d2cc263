package suit

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Suit interface {
	Letter() string
	Name() string
	Symbol() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type suitStruct struct {
	letter    string
	name      string
	symbol    string
	attribute color.Attribute
}

func (s *suitStruct) Letter() string {
	return s.letter
}

func (s *suitStruct) Name() string {
	return s.name
}

func (s *suitStruct) Symbol() string {
	return s.symbol
}

func (s *suitStruct) Paint(text string) string {
	return color.New(s.attribute).Sprint(text)
}

func (s *suitStruct) Paintf(text string, args ...interface{}) string {
	return color.New(s.attribute).Sprintf(text, args...)
}

func (s *suitStruct) String() string {
	return s.Paint(s.symbol + " " + s.name)
}

var Spades = &suitStruct{
	letter:    "S",
	name:      "Spades",
	symbol:    "♠",
	attribute: color.FgHiWhite,
}

var Hearts = &suitStruct{
	letter:    "H",
	name:      "Hearts",
	symbol:    "♥",
	attribute: color.FgHiRed,
}

var Clubs = &suitStruct{
	letter:    "C",
	name:      "Clubs",
	symbol:    "♣",
	attribute: color.FgHiGreen,
}

var Diamonds = &suitStruct{
	letter:    "D",
	name:      "Diamonds",
	symbol:    "♦",
	attribute: color.FgHiYellow,
}

var Stdout io.Writer = color.Output

// Bidding lists the suits a player can be dealt; Diamonds is reserved for the
// revealed deck.
var Bidding = []Suit{Spades, Hearts, Clubs}

var suits = map[string]Suit{
	Spades.letter:   Spades,
	Hearts.letter:   Hearts,
	Clubs.letter:    Clubs,
	Diamonds.letter: Diamonds,
}

func ByLetter(letter string) (Suit, error) {
	suit := suits[strings.ToUpper(letter)]
	if suit == nil {
		return nil, fmt.Errorf("invalid suit '%s'", letter)
	}
	return suit, nil
}
