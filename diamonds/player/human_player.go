package player

import (
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/ratel-online/diamonds/diamonds/event"
	"github.com/ratel-online/diamonds/diamonds/game"
	"github.com/ratel-online/diamonds/diamonds/msg"
	"github.com/ratel-online/diamonds/diamonds/ui"
)

type HumanPlayer struct {
	basicPlayer
	suit    suit.Suit
	console *ui.Console
}

// NewHumanPlayer reads bids from the console. It also listens to the game so
// the console shows every round.
func NewHumanPlayer(name string, playerSuit suit.Suit, console *ui.Console) *HumanPlayer {
	return &HumanPlayer{
		basicPlayer: basicPlayer{name: name},
		suit:        playerSuit,
		console:     console,
	}
}

func (p *HumanPlayer) Bid(gameState game.State) (card.Card, error) {
	p.console.Println(gameState)
	header := msg.Message.HumanPlayerTurnStarted(p.name, p.suit)
	return p.console.PromptCardSelection(header, gameState.CurrentPlayerHand)
}

func (p *HumanPlayer) NotifyCardsDealt(cards []card.Card) {
	p.console.Printfln("You were dealt %d %s.", len(cards), p.suit)
}

func (p *HumanPlayer) NotifyCardRejected(rejectedCard card.Card, hand []card.Card) {
	p.console.Print(msg.Message.CardRejected(p.name, rejectedCard))
}

func (p *HumanPlayer) OnDiamondRevealed(payload event.DiamondRevealedPayload) {
	p.console.Print(msg.Message.DiamondRevealed(payload.Round, payload.Diamond))
}

func (p *HumanPlayer) OnCardPlayed(payload event.CardPlayedPayload) {
}

func (p *HumanPlayer) OnRoundResolved(payload event.RoundResolvedPayload) {
	p.console.Print(msg.Message.RoundResolved(payload))
	p.console.Pause()
}

func (p *HumanPlayer) OnGameOver(payload event.GameOverPayload) {
	p.console.Print(msg.Message.GameOver(payload))
}
