package room

import (
	"fmt"

	"github.com/gorilla/websocket"

	"blackjack-server/pkg/playable"
)

// Client is a player or viewer connected to the table
type Client struct {
	// Conn is the underlying websocket connection; nil for in-process clients
	Conn *websocket.Conn

	// PlayerID uniquely identifies the player across the process lifetime
	PlayerID int64

	// Name is the player's display name
	Name string

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError records the error that terminated the connection, if any
	CloseError error

	room *Room
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, playerID int64, name string) *Client {
	return &Client{
		Conn:     conn,
		PlayerID: playerID,
		Name:     name,
		send:     make(chan interface{}, 256),
		Close:    make(chan string),
	}
}

// Send sends a message to the client without blocking.
// Returns false if the client's buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outgoing messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the player
func (c *Client) String() string {
	return fmt.Sprintf("%d:%s", c.PlayerID, c.Name)
}

// ReceivedMessage is called when the server receives a message from a connected client
func (c *Client) ReceivedMessage(msg *playable.PayloadIn) {
	if c.room == nil {
		return
	}

	c.room.ReceivedMessage(c, msg)
}
