package card_test

import (
	"testing"

	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	require.Equal(t, "7H", card.New(suit.Hearts, 7).String())
	require.Equal(t, "14S", card.New(suit.Spades, 14).String())
	require.Equal(t, "10D.png", card.New(suit.Diamonds, 10).ImageName())
}

func TestLabel(t *testing.T) {
	require.Equal(t, "9", card.New(suit.Clubs, 9).Label())
	require.Equal(t, "J", card.New(suit.Clubs, 11).Label())
	require.Equal(t, "A", card.New(suit.Clubs, 14).Label())
}

func TestEqual(t *testing.T) {
	require.True(t, card.New(suit.Hearts, 7).Equal(card.New(suit.Hearts, 7)))
	require.False(t, card.New(suit.Hearts, 7).Equal(card.New(suit.Spades, 7)))
	require.False(t, card.New(suit.Hearts, 7).Equal(card.New(suit.Hearts, 8)))
}

func TestParse(t *testing.T) {
	scenarios := []struct {
		description  string
		input        string
		expectedCard card.Card
		expectError  bool
	}{
		{
			description:  "numeric_rank",
			input:        "7H",
			expectedCard: card.New(suit.Hearts, 7),
		},
		{
			description:  "two_digit_rank",
			input:        "12S",
			expectedCard: card.New(suit.Spades, 12),
		},
		{
			description:  "face_letter",
			input:        "qc",
			expectedCard: card.New(suit.Clubs, 12),
		},
		{
			description:  "ace_with_spaces",
			input:        "  AD ",
			expectedCard: card.New(suit.Diamonds, 14),
		},
		{
			description: "unknown_suit",
			input:       "99X",
			expectError: true,
		},
		{
			description: "rank_out_of_range",
			input:       "15H",
			expectError: true,
		},
		{
			description: "rank_too_low",
			input:       "1H",
			expectError: true,
		},
		{
			description: "too_short",
			input:       "H",
			expectError: true,
		},
		{
			description: "garbage_rank",
			input:       "xyH",
			expectError: true,
		},
		{
			description: "leading_zero",
			input:       "07H",
			expectError: true,
		},
		{
			description: "many_leading_zeros",
			input:       "007h",
			expectError: true,
		},
		{
			description: "signed_rank",
			input:       "+7H",
			expectError: true,
		},
		{
			description: "negative_rank",
			input:       "-7H",
			expectError: true,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			parsed, err := card.Parse(scenario.input)
			if scenario.expectError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expectedCard, parsed)
		})
	}
}
