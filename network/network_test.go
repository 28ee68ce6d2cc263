package network

import (
	"errors"
	"net"
	"testing"
	"time"

	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/diamonds/consts"
	"github.com/ratel-online/diamonds/database"
	"github.com/ratel-online/diamonds/state"
	"github.com/stretchr/testify/require"
)

func authPacket(id int64, name string) protocol.Packet {
	return protocol.Packet{Body: json.Marshal(modelx.AuthInfo{ID: id, Name: name})}
}

func TestLoginAuth(t *testing.T) {
	t.Run("reads_the_auth_packet", func(t *testing.T) {
		serverSide, clientSide := net.Pipe()
		defer serverSide.Close()
		defer clientSide.Close()
		client := network.Wrapper(protocol.NewTcpReadWriteCloser(clientSide))
		go func() {
			_ = client.Write(authPacket(7, "Someone"))
		}()

		authInfo, err := loginAuth(network.Wrapper(protocol.NewTcpReadWriteCloser(serverSide)))
		require.NoError(t, err)
		require.Equal(t, int64(7), authInfo.ID)
		require.Equal(t, "Someone", authInfo.Name)
	})

	t.Run("fails_when_nothing_arrives_in_time", func(t *testing.T) {
		serverSide, clientSide := net.Pipe()
		defer serverSide.Close()
		defer clientSide.Close()

		start := time.Now()
		_, err := loginAuth(network.Wrapper(protocol.NewTcpReadWriteCloser(serverSide)))
		require.True(t, errors.Is(err, consts.ErrorsAuthFail))
		require.True(t, time.Since(start) >= consts.AuthTimeout)
	})
}

func TestHandle(t *testing.T) {
	machine := state.NewMachine(consts.OpponentHighest)

	t.Run("rejects_a_player_without_id", func(t *testing.T) {
		serverSide, clientSide := net.Pipe()
		defer clientSide.Close()
		client := network.Wrapper(protocol.NewTcpReadWriteCloser(clientSide))
		result := make(chan error, 1)
		go func() {
			result <- handle(protocol.NewTcpReadWriteCloser(serverSide), "pipe", machine)
		}()

		require.NoError(t, client.Write(authPacket(0, "Nobody")))
		_, err := client.Read()
		require.NoError(t, err)
		select {
		case err = <-result:
			require.True(t, errors.Is(err, consts.ErrorsAuthFail))
		case <-time.After(2 * consts.AuthTimeout):
			t.Fatal("handle did not return")
		}
	})

	t.Run("serves_until_the_player_leaves", func(t *testing.T) {
		serverSide, clientSide := net.Pipe()
		defer clientSide.Close()
		client := network.Wrapper(protocol.NewTcpReadWriteCloser(clientSide))
		result := make(chan error, 1)
		go func() {
			result <- handle(protocol.NewTcpReadWriteCloser(serverSide), "pipe", machine)
		}()
		require.NoError(t, client.Write(authPacket(21, "Someone")))

		packets := make(chan string, 64)
		go func() {
			defer close(packets)
			for {
				packet, err := client.Read()
				if err != nil {
					return
				}
				packets <- packet.String()
			}
		}()
		for body := range packets {
			if body == consts.IsStart {
				break
			}
		}
		require.NotNil(t, database.GetPlayer(21))
		require.NoError(t, client.Write(protocol.Packet{Body: []byte("exit")}))

		select {
		case <-result:
		case <-time.After(2 * consts.AuthTimeout):
			t.Fatal("handle did not return")
		}
		require.Nil(t, database.GetPlayer(21))
	})
}
