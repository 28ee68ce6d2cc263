package state

import (
	"errors"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/database"
	"github.com/ratel-online/diamonds/diamonds/msg"
)

type State interface {
	Next(player *database.Player) (consts.StateID, error)
	Exit(player *database.Player) consts.StateID
}

// Machine walks a connected player through the server screens.
type Machine struct {
	states map[consts.StateID]State
}

func NewMachine(opponent string) *Machine {
	m := &Machine{states: map[consts.StateID]State{}}
	m.register(consts.StateWelcome, &welcome{})
	m.register(consts.StateHome, &home{})
	m.register(consts.StateGame, &diamondsGame{opponent: opponent})
	m.register(consts.StateStandings, &standings{})
	return m
}

func (m *Machine) register(id consts.StateID, state State) {
	m.states[id] = state
}

func (m *Machine) Run(player *database.Player) {
	player.State(consts.StateWelcome)
	defer func() {
		if err := recover(); err != nil {
			async.PrintStackTrace(err)
		}
		log.Infof("player %s left the state machine\n", player)
		_ = player.Close()
	}()
	for {
		state := m.states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			if errors.Is(err, consts.ErrorsChanClosed) {
				return
			}
			var e consts.Error
			if !errors.As(err, &e) {
				log.Error(err)
				return
			}
			stateId = state.Exit(player)
			if !e.Exit {
				_ = player.WriteError(err)
			} else if stateId == 0 {
				_ = player.WriteString(msg.Message.Goodbye(player.Name))
				return
			}
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}
