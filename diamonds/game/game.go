package game

import (
	"fmt"

	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/diamonds/card"
	"github.com/ratel-online/diamonds/diamonds/card/suit"
	"github.com/ratel-online/diamonds/diamonds/event"
)

// RoundResult is what PlayRound reports; it is also the RoundResolved payload.
type RoundResult event.RoundResolvedPayload

// Outcome is the final standing of a game; it is also the GameOver payload.
type Outcome event.GameOverPayload

type Game struct {
	players  []*playerController
	decks    []*Deck
	diamonds *Deck
	round    int
	events   *event.Emitters
}

// New seats two players. Suits must be two different non-diamond suits and the
// names must differ because scores are keyed by name.
func New(first Player, firstSuit suit.Suit, second Player, secondSuit suit.Suit) (*Game, error) {
	if firstSuit == nil || secondSuit == nil || firstSuit == secondSuit ||
		firstSuit == suit.Diamonds || secondSuit == suit.Diamonds {
		return nil, consts.ErrorsSuitsInvalid
	}
	if first.Name() == second.Name() {
		return nil, fmt.Errorf("%w: both players are named %s", consts.ErrorsInputInvalid, first.Name())
	}
	return &Game{
		players: []*playerController{
			newPlayerController(first, firstSuit),
			newPlayerController(second, secondSuit),
		},
		decks:    []*Deck{NewDeck(firstSuit), NewDeck(secondSuit)},
		diamonds: NewDeck(suit.Diamonds),
		events:   event.NewEmitters(),
	}, nil
}

func (g *Game) Events() *event.Emitters {
	return g.events
}

// DealStartingCards shuffles every deck and hands each player its whole suit.
func (g *Game) DealStartingCards() {
	for index, player := range g.players {
		deck := g.decks[index]
		deck.Shuffle()
		player.AddCards(deck.Deal(consts.HandSize))
	}
	g.diamonds.Shuffle()
}

func (g *Game) Round() int {
	return g.round
}

func (g *Game) Diamonds() *Deck {
	return g.diamonds
}

func (g *Game) Diamond() (card.Card, bool) {
	return g.diamonds.Top()
}

func (g *Game) Over() bool {
	if g.diamonds.Empty() {
		return true
	}
	for _, player := range g.players {
		if player.NoCards() {
			return true
		}
	}
	return false
}

func (g *Game) PlayerSequence() []string {
	names := make([]string, 0, len(g.players))
	for _, player := range g.players {
		names = append(names, player.Name())
	}
	return names
}

func (g *Game) GetPlayerCards(name string) []card.Card {
	if player := g.getPlayer(name); player != nil {
		return player.Hand()
	}
	return nil
}

func (g *Game) GetPlayerSuit(name string) suit.Suit {
	if player := g.getPlayer(name); player != nil {
		return player.Suit()
	}
	return nil
}

func (g *Game) Scores() map[string]int {
	scores := make(map[string]int, len(g.players))
	for _, player := range g.players {
		scores[player.Name()] = player.Score()
	}
	return scores
}

func (g *Game) ExtractState(player *playerController) State {
	opponent := g.opponentOf(player)
	diamond, _ := g.diamonds.Top()
	return State{
		Round:             g.round + 1,
		Diamond:           diamond,
		DiamondsLeft:      g.diamonds.Size(),
		CurrentPlayerHand: player.Hand(),
		OpponentName:      opponent.Name(),
		OpponentHandCount: len(opponent.Hand()),
		PlayerSequence:    g.PlayerSequence(),
		Scores:            g.Scores(),
	}
}

// PlayRound reveals the next diamond, collects one card from each player in seat
// order, scores the round and discards the diamond.
func (g *Game) PlayRound() (RoundResult, error) {
	if g.Over() {
		return RoundResult{}, consts.ErrorsGameOver
	}
	diamond, _ := g.diamonds.Top()
	round := g.round + 1
	g.events.DiamondRevealed.Emit(event.DiamondRevealedPayload{
		Round:   round,
		Diamond: diamond,
	})

	plays := make([]event.Play, 0, len(g.players))
	for _, player := range g.players {
		playedCard, err := player.Play(g.ExtractState(player))
		if err != nil {
			g.returnPlays(plays)
			return RoundResult{}, fmt.Errorf("round %d, %s: %w", round, player.Name(), err)
		}
		plays = append(plays, event.Play{PlayerName: player.Name(), Card: playedCard})
	}

	first, second := g.players[0], g.players[1]
	firstPoints, secondPoints := Resolve(diamond, plays[0].Card, plays[1].Card)
	first.addScore(firstPoints)
	second.addScore(secondPoints)
	g.diamonds.Discard()
	g.round = round

	for _, play := range plays {
		g.events.CardPlayed.Emit(event.CardPlayedPayload{
			Round:      round,
			PlayerName: play.PlayerName,
			Card:       play.Card,
		})
	}

	result := RoundResult{
		Round:   round,
		Diamond: diamond,
		Plays:   plays,
		Tie:     firstPoints == secondPoints,
		Awarded: map[string]int{
			first.Name():  firstPoints,
			second.Name(): secondPoints,
		},
		Scores: g.Scores(),
	}
	if firstPoints > secondPoints {
		result.WinnerName = first.Name()
	} else if secondPoints > firstPoints {
		result.WinnerName = second.Name()
	}
	g.events.RoundResolved.Emit(event.RoundResolvedPayload(result))
	return result, nil
}

// Outcome compares the final scores. A strictly greater score wins; equal
// scores are a draw.
func (g *Game) Outcome() Outcome {
	first, second := g.players[0], g.players[1]
	outcome := Outcome{
		Rounds:         g.round,
		PlayerSequence: g.PlayerSequence(),
		Scores:         g.Scores(),
	}
	switch {
	case first.Score() > second.Score():
		outcome.WinnerName = first.Name()
	case second.Score() > first.Score():
		outcome.WinnerName = second.Name()
	default:
		outcome.Draw = true
	}
	return outcome
}

// Play runs rounds until the game is over and announces the outcome.
func (g *Game) Play() (Outcome, error) {
	for !g.Over() {
		if _, err := g.PlayRound(); err != nil {
			return Outcome{}, err
		}
	}
	outcome := g.Outcome()
	g.events.GameOver.Emit(event.GameOverPayload(outcome))
	return outcome, nil
}

func (g *Game) getPlayer(name string) *playerController {
	for _, player := range g.players {
		if player.Name() == name {
			return player
		}
	}
	return nil
}

func (g *Game) opponentOf(player *playerController) *playerController {
	if g.players[0] == player {
		return g.players[1]
	}
	return g.players[0]
}

// returnPlays puts back cards already taken in an aborted round.
func (g *Game) returnPlays(plays []event.Play) {
	for _, play := range plays {
		g.getPlayer(play.PlayerName).hand.AddCards([]card.Card{play.Card})
	}
}
