package event

type GameOverPayload struct {
	Rounds         int
	Draw           bool
	WinnerName     string
	PlayerSequence []string
	Scores         map[string]int
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}

type GameOverEmitter struct {
	listeners []GameOverListener
}

func (e *GameOverEmitter) AddListener(listener GameOverListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *GameOverEmitter) Emit(payload GameOverPayload) {
	for _, listener := range e.listeners {
		listener.OnGameOver(payload)
	}
}
