package room

import (
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/playable"
)

// Room hosts a single blackjack table.
//
// All game access happens on the run loop goroutine: client messages and the
// periodic tick are funneled through channels, so the game itself never sees
// concurrent calls.
type Room struct {
	logger  logrus.FieldLogger
	clock   quartz.Clock
	options blackjack.Options

	game *blackjack.Game

	lock sync.RWMutex
	// clients in join order; the first MaxPlayers get seats when the game starts
	clients []*Client

	execInRunLoop chan func()
	close         chan bool
}

// New returns a new room
func New(logger logrus.FieldLogger, opts blackjack.Options) *Room {
	return &Room{
		logger:        logger,
		clock:         quartz.NewReal(),
		options:       opts,
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// StartShift starts the run loop
func (r *Room) StartShift() {
	go r.runLoop()
}

// EndShift terminates the run loop
func (r *Room) EndShift() {
	close(r.close)
}

func (r *Room) runLoop() {
	r.logger.Debug("creating room run loop")

	ticker := r.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case fn := <-r.execInRunLoop:
			fn()
		case <-ticker.C:
			r.tick()
		case <-r.close:
			r.logger.Debug("terminating room run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (r *Room) AddClient(client *Client) {
	r.lock.Lock()
	client.room = r
	r.clients = append(r.clients, client)
	r.lock.Unlock()

	r.logger.WithField("player", client.String()).Debug("client connected")

	r.execInRunLoop <- func() {
		if r.game != nil {
			r.sendGameState(client)
		}
	}
}

// RemoveClient removes a client.
// Seats persist in the game even after a client disconnects; the player may
// rejoin with the same identity.
func (r *Room) RemoveClient(client *Client) {
	r.lock.Lock()
	for i, c := range r.clients {
		if c == client {
			r.clients = append(r.clients[:i], r.clients[i+1:]...)
			break
		}
	}
	r.lock.Unlock()

	r.logger.WithField("player", client.String()).Debug("client disconnected")
}

// Clients will return a slice of connected (at the time) clients
func (r *Room) Clients() []*Client {
	r.lock.RLock()
	defer r.lock.RUnlock()

	clients := make([]*Client, len(r.clients))
	copy(clients, r.clients)

	return clients
}

// ReceivedMessage queues a client message for the run loop
// This method must return quickly
func (r *Room) ReceivedMessage(client *Client, msg *playable.PayloadIn) {
	r.execInRunLoop <- func() {
		r.handleMessage(client, msg)
	}
}

// NOTE: must only be called from the run loop
func (r *Room) handleMessage(client *Client, msg *playable.PayloadIn) {
	if r.game == nil {
		if msg.Action != "start" {
			client.Send(newErrorResponse(msg.Context, "no game has been set up yet"))
			return
		}

		r.setupGame()
		if r.game == nil {
			client.Send(newErrorResponse(msg.Context, "could not set up the game"))
			return
		}
	}

	res, updateState, err := r.game.Action(client.PlayerID, msg)
	if err != nil {
		// rejected input is the player's problem, not the table's
		client.Send(newErrorResponse(msg.Context, err.Error()))
		return
	}

	if res != nil {
		client.Send(res)
	}

	if updateState {
		r.broadcastGameState()
	}

	r.drainGameLogs()
}

// setupGame seats the connected clients, in join order, at a new table
// NOTE: must only be called from the run loop
func (r *Room) setupGame() {
	entries := make([]blackjack.SeatEntry, 0, r.options.MaxPlayers)
	for _, client := range r.Clients() {
		if len(entries) == r.options.MaxPlayers {
			break
		}

		entries = append(entries, blackjack.SeatEntry{
			PlayerID: client.PlayerID,
			Name:     client.Name,
		})
	}

	game, err := blackjack.NewGame(r.logger, entries, r.options)
	if err != nil {
		r.logger.WithError(err).Warn("could not set up the game")
		return
	}

	r.logger.WithField("players", len(entries)).Info("game created")
	r.game = game
}

// NOTE: must only be called from the run loop
func (r *Room) tick() {
	if r.game == nil {
		return
	}

	updated, err := r.game.Tick()
	if err != nil {
		r.logger.WithError(err).Error("tick failed")
		return
	}

	if updated {
		r.broadcastGameState()
	}

	r.drainGameLogs()
}

// NOTE: must only be called from the run loop
func (r *Room) broadcastGameState() {
	for _, client := range r.Clients() {
		r.sendGameState(client)
	}
}

func (r *Room) sendGameState(client *Client) {
	state, err := r.game.GetPlayerState(client.PlayerID)
	if err != nil {
		r.logger.WithError(err).Error("could not get player state")
		return
	}

	client.Send(state)
}

// drainGameLogs fans accumulated game log messages out to every client
// NOTE: must only be called from the run loop
func (r *Room) drainGameLogs() {
	for {
		select {
		case messages := <-r.game.LogChan():
			res := &playable.Response{
				Key:  "logs",
				Data: messages,
			}

			for _, client := range r.Clients() {
				client.Send(res)
			}
		default:
			return
		}
	}
}

func newErrorResponse(context, message string) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   message,
		Context: context,
	}
}
