package event

import (
	"github.com/ratel-online/core/log"
)

// LogListener writes a game's rounds and outcome to the server log.
type LogListener struct {
	tag string
}

func NewLogListener(tag string) LogListener {
	return LogListener{tag: tag}
}

func (l LogListener) OnDiamondRevealed(payload DiamondRevealedPayload) {
	log.Infof("%s round %d diamond %s\n", l.tag, payload.Round, payload.Diamond)
}

func (l LogListener) OnCardPlayed(payload CardPlayedPayload) {
	log.Infof("%s round %d %s played %s\n", l.tag, payload.Round, payload.PlayerName, payload.Card)
}

func (l LogListener) OnRoundResolved(payload RoundResolvedPayload) {
	if payload.Tie {
		log.Infof("%s round %d tied, scores %v\n", l.tag, payload.Round, payload.Scores)
		return
	}
	log.Infof("%s round %d won by %s, scores %v\n", l.tag, payload.Round, payload.WinnerName, payload.Scores)
}

func (l LogListener) OnGameOver(payload GameOverPayload) {
	if payload.Draw {
		log.Infof("%s ended in a draw after %d rounds, scores %v\n", l.tag, payload.Rounds, payload.Scores)
		return
	}
	log.Infof("%s won by %s after %d rounds, scores %v\n", l.tag, payload.WinnerName, payload.Rounds, payload.Scores)
}
