package event

// Emitters groups the emitters of a single game so concurrent games never share
// listeners.
type Emitters struct {
	DiamondRevealed *DiamondRevealedEmitter
	CardPlayed      *CardPlayedEmitter
	RoundResolved   *RoundResolvedEmitter
	GameOver        *GameOverEmitter
}

func NewEmitters() *Emitters {
	return &Emitters{
		DiamondRevealed: &DiamondRevealedEmitter{},
		CardPlayed:      &CardPlayedEmitter{},
		RoundResolved:   &RoundResolvedEmitter{},
		GameOver:        &GameOverEmitter{},
	}
}

// Listener receives every event of a game.
type Listener interface {
	DiamondRevealedListener
	CardPlayedListener
	RoundResolvedListener
	GameOverListener
}

func (e *Emitters) AddListener(listener Listener) {
	e.DiamondRevealed.AddListener(listener)
	e.CardPlayed.AddListener(listener)
	e.RoundResolved.AddListener(listener)
	e.GameOver.AddListener(listener)
}
