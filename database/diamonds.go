package database

import (
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/ratel-online/diamonds/diamonds/game"
	"github.com/ratel-online/diamonds/diamonds/msg"
	"github.com/ratel-online/diamonds/diamonds/ui"
)

// Connection is the part of a connected player a remote seat talks through.
type Connection interface {
	WriteString(data string) error
	AskForString(timeout ...time.Duration) (string, error)
}

// DiamondsPlayer is a seat whose bids are read from a connection.
type DiamondsPlayer struct {
	name string
	suit suit.Suit
	conn Connection
}

func NewDiamondsPlayer(name string, playerSuit suit.Suit, conn Connection) *DiamondsPlayer {
	return &DiamondsPlayer{
		name: name,
		suit: playerSuit,
		conn: conn,
	}
}

func (p *DiamondsPlayer) Name() string {
	return p.name
}

func (p *DiamondsPlayer) Bid(gameState game.State) (card.Card, error) {
	header := msg.Message.HumanPlayerTurnStarted(p.name, p.suit)
	prompt := msg.Sprintln(gameState) + ui.CardSelectionMessage(header, gameState.CurrentPlayerHand) + "\n"
	for {
		if err := p.conn.WriteString(prompt); err != nil {
			return card.Card{}, err
		}
		input, err := p.conn.AskForString()
		if err != nil {
			return card.Card{}, err
		}
		selected, found := ui.SelectCard(gameState.CurrentPlayerHand, input)
		if !found {
			_ = p.conn.WriteString(msg.Message.InvalidCardChoice(input))
			continue
		}
		return selected, nil
	}
}

func (p *DiamondsPlayer) NotifyCardsDealt(cards []card.Card) {
	p.write(msg.Sprintfln("You were dealt %d %s.", len(cards), p.suit))
}

func (p *DiamondsPlayer) NotifyCardRejected(rejectedCard card.Card, hand []card.Card) {
	p.write(msg.Message.CardRejected(p.name, rejectedCard))
}

func (p *DiamondsPlayer) write(text string) {
	if err := p.conn.WriteString(text); err != nil {
		log.Error(err)
	}
}
