package game

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
)

type playerController struct {
	player Player
	suit   suit.Suit
	hand   *Hand
	score  int
}

func newPlayerController(player Player, playerSuit suit.Suit) *playerController {
	return &playerController{
		player: player,
		suit:   playerSuit,
		hand:   NewHand(),
	}
}

func (c *playerController) AddCards(cards []card.Card) {
	c.hand.AddCards(cards)
	c.player.NotifyCardsDealt(cards)
}

func (c *playerController) Hand() []card.Card {
	return c.hand.Cards()
}

func (c *playerController) Name() string {
	return c.player.Name()
}

func (c *playerController) NoCards() bool {
	return c.hand.Empty()
}

func (c *playerController) Score() int {
	return c.score
}

func (c *playerController) Suit() suit.Suit {
	return c.suit
}

// Play asks the strategy for a card and takes it out of the hand. Cards the
// player does not hold are rejected without touching the hand.
func (c *playerController) Play(gameState State) (card.Card, error) {
	for attempt := 0; attempt < consts.MaxBidAttempts; attempt++ {
		selectedCard, err := c.player.Bid(gameState)
		if err != nil {
			return card.Card{}, err
		}
		playedCard, ok := c.hand.RemoveCard(selectedCard)
		if !ok {
			log.Infof("cheat detected! card %s is not in %s's hand\n", selectedCard, c.Name())
			c.player.NotifyCardRejected(selectedCard, c.hand.Cards())
			continue
		}
		return playedCard, nil
	}
	return card.Card{}, consts.ErrorsCardNotInHand
}

func (c *playerController) addScore(points int) {
	c.score += points
}
