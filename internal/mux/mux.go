package mux

import (
	"net/http"
	"sync"

	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"blackjack-server/internal/config"
	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/room"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	room    *room.Room

	// players maps a display name to its assigned ID so a player who
	// reconnects keeps the same seat
	mu           sync.Mutex
	players      map[string]int64
	lastPlayerID int64
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	cfg := config.Instance()
	opts := blackjack.Options{
		BetWindow:       cfg.BetWindow(),
		TurnTimeout:     cfg.TurnTimeout(),
		StartingBalance: cfg.Game.StartingBalance,
		MaxPlayers:      cfg.Game.MaxPlayers,
	}

	tableRoom := room.New(logrus.WithField("component", "room"), opts)
	tableRoom.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		room:    tableRoom,
		players: make(map[string]int64),
	}

	this.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	this.Methods(http.MethodGet).Path("/table/ws").Handler(this.getTableWS())

	return this
}

// playerID returns the ID for the named player, assigning a new one on the
// first connection
func (m *Mux) playerID(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.players[name]; ok {
		return id
	}

	m.lastPlayerID++
	m.players[name] = m.lastPlayerID
	return m.lastPlayerID
}
