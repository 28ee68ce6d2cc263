package game_test

import (
	"testing"

	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/ratel-online/diamonds/diamonds/game"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	scenarios := []struct {
		description          string
		diamondRank          int
		firstRank            int
		secondRank           int
		expectedFirstPoints  int
		expectedSecondPoints int
	}{
		{
			description:          "second_card_higher_scores_its_own_rank",
			diamondRank:          10,
			firstRank:            9,
			secondRank:           13,
			expectedFirstPoints:  0,
			expectedSecondPoints: 13,
		},
		{
			description:          "first_card_higher_scores_its_own_rank",
			diamondRank:          3,
			firstRank:            14,
			secondRank:           2,
			expectedFirstPoints:  14,
			expectedSecondPoints: 0,
		},
		{
			description:          "tie_splits_half_the_diamond",
			diamondRank:          10,
			firstRank:            7,
			secondRank:           7,
			expectedFirstPoints:  5,
			expectedSecondPoints: 5,
		},
		{
			description:          "tie_split_discards_the_remainder",
			diamondRank:          13,
			firstRank:            4,
			secondRank:           4,
			expectedFirstPoints:  6,
			expectedSecondPoints: 6,
		},
		{
			description:          "win_ignores_the_diamond_rank",
			diamondRank:          2,
			firstRank:            5,
			secondRank:           12,
			expectedFirstPoints:  0,
			expectedSecondPoints: 12,
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			firstPoints, secondPoints := game.Resolve(
				card.New(suit.Diamonds, scenario.diamondRank),
				card.New(suit.Hearts, scenario.firstRank),
				card.New(suit.Spades, scenario.secondRank),
			)
			require.Equal(t, scenario.expectedFirstPoints, firstPoints)
			require.Equal(t, scenario.expectedSecondPoints, secondPoints)
		})
	}
}

func TestResolveAllRankPairs(t *testing.T) {
	for diamond := card.MinRank; diamond <= card.MaxRank; diamond++ {
		for first := card.MinRank; first <= card.MaxRank; first++ {
			for second := card.MinRank; second <= card.MaxRank; second++ {
				firstPoints, secondPoints := game.Resolve(
					card.New(suit.Diamonds, diamond),
					card.New(suit.Hearts, first),
					card.New(suit.Clubs, second),
				)
				switch {
				case first == second:
					require.Equal(t, diamond/2, firstPoints)
					require.Equal(t, diamond/2, secondPoints)
				case first > second:
					require.Equal(t, first, firstPoints)
					require.Zero(t, secondPoints)
				default:
					require.Zero(t, firstPoints)
					require.Equal(t, second, secondPoints)
				}
			}
		}
	}
}
