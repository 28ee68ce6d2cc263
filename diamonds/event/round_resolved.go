package event

import "github.com/ratel-online/diamonds/diamonds/card"

type Play struct {
	PlayerName string
	Card       card.Card
}

// RoundResolvedPayload describes one finished round. WinnerName is empty on a tie.
type RoundResolvedPayload struct {
	Round      int
	Diamond    card.Card
	Plays      []Play
	Tie        bool
	WinnerName string
	Awarded    map[string]int
	Scores     map[string]int
}

type RoundResolvedListener interface {
	OnRoundResolved(RoundResolvedPayload)
}

type RoundResolvedEmitter struct {
	listeners []RoundResolvedListener
}

func (e *RoundResolvedEmitter) AddListener(listener RoundResolvedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *RoundResolvedEmitter) Emit(payload RoundResolvedPayload) {
	for _, listener := range e.listeners {
		listener.OnRoundResolved(payload)
	}
}
