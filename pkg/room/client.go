package room

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is a display surface connected to a table via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	id        string
	tableUUID string
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, tableUUID string) *Client {
	return &Client{
		send:      make(chan interface{}, 256),
		Close:     make(chan string, 1),
		Conn:      conn,
		id:        uuid.New().String(),
		tableUUID: tableUUID,
	}
}

// Send send a message to the web client
// A client that cannot keep up loses the message rather than blocking the table.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// Shutdown asks the client's write loop to close the connection
func (c *Client) Shutdown(reason string) {
	select {
	case c.Close <- reason:
	default:
	}
}

// TableUUID returns the table the client is watching
func (c *Client) TableUUID() string {
	return c.tableUUID
}

// String returns a traceable identifier for the client and table
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.id, c.tableUUID)
}
