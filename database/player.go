package database

import (
	"fmt"
	stringx "strings"
	"sync/atomic"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/diamonds/consts"
)

// Player is a connected client. Input is only forwarded to the state machine
// while a transaction is open.
type Player struct {
	ID    int64  `json:"id"`
	IP    string `json:"ip"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	conn   *network.Conn
	data   chan *protocol.Packet
	read   int32
	state consts.StateID
}

func (p *Player) Offline() {
	_ = p.conn.Close()
	close(p.data)
	disconnected(p)
	log.Infof("player %s offline\n", p)
}

// Close drops the connection; Listening returns and the player goes offline.
func (p *Player) Close() error {
	return p.conn.Close()
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		if atomic.LoadInt32(&p.read) == 1 {
			p.data <- pack
		}
	}
}

func (p *Player) WriteString(data string) error {
	return p.conn.Write(protocol.Packet{
		Body: []byte(data),
	})
}

func (p *Player) WriteObject(data interface{}) error {
	return p.conn.Write(protocol.Packet{
		Body: json.Marshal(data),
	})
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist || err == consts.ErrorsChanClosed {
		return err
	}
	return p.conn.Write(protocol.Packet{
		Body: []byte(err.Error() + "\n"),
	})
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == "exit" || single == "quit" {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

func (p *Player) StartTransaction() {
	atomic.StoreInt32(&p.read, 1)
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	atomic.StoreInt32(&p.read, 0)
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
}

func (p Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
