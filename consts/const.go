package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateGame
	StateStandings
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	HandSize = 13

	// MaxBidAttempts bounds how often a strategy may offer a card it does not hold.
	MaxBidAttempts = 3

	ComputerName = "Computer"

	OpponentHighest = "highest"
	OpponentRandom  = "random"

	ModeLocal = "local"
	ModeServe = "serve"

	AuthTimeout = 3 * time.Second
	RoundDelay  = 2 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist           = NewErr(1, true, "Exist. ")
	ErrorsChanClosed      = NewErr(1, true, "Chan closed. ")
	ErrorsAuthFail        = NewErr(1, true, "Auth fail. ")
	ErrorsTimeout         = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid    = NewErr(1, false, "Input invalid. ")
	ErrorsCardNotInHand   = NewErr(2, false, "Card is not in hand. ")
	ErrorsGameOver        = NewErr(2, false, "Game is over. ")
	ErrorsSuitsInvalid    = NewErr(2, false, "Players need two different non-diamond suits. ")
	ErrorsOpponentInvalid = NewErr(3, true, "Opponent invalid. ")
	ErrorsModeInvalid     = NewErr(3, true, "Mode invalid. ")

	Opponents = []string{OpponentHighest, OpponentRandom}
)
