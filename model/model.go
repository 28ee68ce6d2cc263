package model

import (
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/event"
)

const (
	CodeDiamondRevealed = 101
	CodeRoundResolved   = 102
	CodeGameOver        = 103
	CodeStandings       = 104
)

type Card struct {
	Suit  string `json:"suit"`
	Rank  int    `json:"rank"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

type Play struct {
	Player string `json:"player"`
	Card   Card   `json:"card"`
}

type Diamond struct {
	modelx.Data
	Round   int  `json:"round"`
	Diamond Card `json:"diamond"`
}

type Round struct {
	modelx.Data
	Round   int            `json:"round"`
	Diamond Card           `json:"diamond"`
	Plays   []Play         `json:"plays"`
	Tie     bool           `json:"tie"`
	Winner  string         `json:"winner"`
	Awarded map[string]int `json:"awarded"`
	Scores  map[string]int `json:"scores"`
}

type Outcome struct {
	modelx.Data
	Rounds int            `json:"rounds"`
	Draw   bool           `json:"draw"`
	Winner string         `json:"winner"`
	Scores map[string]int `json:"scores"`
}

type Standing struct {
	Name      string `json:"name"`
	Games     int    `json:"games"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Draws     int    `json:"draws"`
	BestScore int    `json:"bestScore"`
}

type Standings struct {
	modelx.Data
	Standings []Standing `json:"standings"`
}

func NewCard(c card.Card) Card {
	return Card{
		Suit:  c.Suit().Letter(),
		Rank:  c.Rank(),
		Text:  c.String(),
		Image: c.ImageName(),
	}
}

func NewDiamond(payload event.DiamondRevealedPayload, msg string) Diamond {
	return Diamond{
		Data:    modelx.Data{Code: CodeDiamondRevealed, Msg: msg},
		Round:   payload.Round,
		Diamond: NewCard(payload.Diamond),
	}
}

func NewRound(payload event.RoundResolvedPayload, msg string) Round {
	plays := make([]Play, 0, len(payload.Plays))
	for _, play := range payload.Plays {
		plays = append(plays, Play{Player: play.PlayerName, Card: NewCard(play.Card)})
	}
	return Round{
		Data:    modelx.Data{Code: CodeRoundResolved, Msg: msg},
		Round:   payload.Round,
		Diamond: NewCard(payload.Diamond),
		Plays:   plays,
		Tie:     payload.Tie,
		Winner:  payload.WinnerName,
		Awarded: payload.Awarded,
		Scores:  payload.Scores,
	}
}

func NewOutcome(payload event.GameOverPayload, msg string) Outcome {
	return Outcome{
		Data:   modelx.Data{Code: CodeGameOver, Msg: msg},
		Rounds: payload.Rounds,
		Draw:   payload.Draw,
		Winner: payload.WinnerName,
		Scores: payload.Scores,
	}
}
