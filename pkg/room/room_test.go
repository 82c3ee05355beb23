package room

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/playable"
)

func testRoom(t *testing.T, names ...string) (*Room, []*Client) {
	t.Helper()

	r := New(logrus.StandardLogger(), blackjack.DefaultOptions())

	clients := make([]*Client, len(names))
	for i, name := range names {
		clients[i] = NewClient(nil, int64(i+1), name)
		r.AddClient(clients[i])
	}

	return r, clients
}

// drain empties a client's outgoing buffer and returns what was queued
func drain(c *Client) []interface{} {
	messages := make([]interface{}, 0)
	for {
		select {
		case msg := <-c.SendChan():
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}

func TestRoom_AddRemoveClient(t *testing.T) {
	a := assert.New(t)
	r, clients := testRoom(t, "alice", "bob")

	a.Len(r.Clients(), 2)
	a.Equal("1:alice", clients[0].String())

	r.RemoveClient(clients[0])
	a.Len(r.Clients(), 1)
	a.Equal(clients[1], r.Clients()[0])
}

func TestRoom_MessageBeforeSetup(t *testing.T) {
	r, clients := testRoom(t, "alice")

	r.handleMessage(clients[0], &playable.PayloadIn{Action: "hit", Context: "ctx"})

	messages := drain(clients[0])
	require.Len(t, messages, 1)

	res := messages[0].(*playable.Response)
	assert.Equal(t, "error", res.Key)
	assert.Equal(t, "no game has been set up yet", res.Value)
	assert.Equal(t, "ctx", res.Context)
}

func TestRoom_StartSetsUpGameAndOpensBetting(t *testing.T) {
	a := assert.New(t)
	r, clients := testRoom(t, "alice", "bob")

	r.handleMessage(clients[0], &playable.PayloadIn{Action: "start"})
	require.NotNil(t, r.game)

	// the starter gets an OK plus the broadcast state; bob gets the state
	aliceMessages := drain(clients[0])
	a.NotEmpty(aliceMessages)
	bobMessages := drain(clients[1])
	require.NotEmpty(t, bobMessages)

	var state *blackjack.Response
	for _, msg := range bobMessages {
		res, ok := msg.(*playable.Response)
		if ok && res.Key == "game" {
			state = res.Data.(*blackjack.Response)
		}
	}

	require.NotNil(t, state)
	a.Equal("betting", state.GameState.Phase.String())
	a.Len(state.GameState.Seats, 3)
}

func TestRoom_RejectedBetIsReportedToSender(t *testing.T) {
	a := assert.New(t)
	r, clients := testRoom(t, "alice")

	r.handleMessage(clients[0], &playable.PayloadIn{Action: "start"})
	drain(clients[0])

	r.handleMessage(clients[0], &playable.PayloadIn{Action: "bet", Amount: 5000})

	messages := drain(clients[0])
	require.Len(t, messages, 1)

	res := messages[0].(*playable.Response)
	a.Equal("error", res.Key)
	a.Equal(blackjack.ErrInsufficientBalance.Error(), res.Value)
}

func TestRoom_ViewerBeyondMaxPlayers(t *testing.T) {
	a := assert.New(t)
	r, clients := testRoom(t, "a", "b", "c", "d", "e")

	r.handleMessage(clients[0], &playable.PayloadIn{Action: "start"})
	require.NotNil(t, r.game)

	// the fifth client watches; only four seats plus the dealer exist
	drain(clients[4])
	r.sendGameState(clients[4])

	messages := drain(clients[4])
	require.Len(t, messages, 1)

	state := messages[0].(*playable.Response).Data.(*blackjack.Response)
	a.Len(state.GameState.Seats, 5)
	a.Nil(state.Actions)
}

func TestRoom_TickWithoutGame(t *testing.T) {
	r, _ := testRoom(t, "alice")
	// nothing to do, nothing to panic over
	r.tick()
}
