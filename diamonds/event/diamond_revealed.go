package event

import "github.com/ratel-online/diamonds/diamonds/card"

type DiamondRevealedPayload struct {
	Round   int
	Diamond card.Card
}

type DiamondRevealedListener interface {
	OnDiamondRevealed(DiamondRevealedPayload)
}

type DiamondRevealedEmitter struct {
	listeners []DiamondRevealedListener
}

func (e *DiamondRevealedEmitter) AddListener(listener DiamondRevealedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *DiamondRevealedEmitter) Emit(payload DiamondRevealedPayload) {
	for _, listener := range e.listeners {
		listener.OnDiamondRevealed(payload)
	}
}
