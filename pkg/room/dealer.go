package room

import (
	"blackjackdealer-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Dealer fans a single table's events out to its display clients
// A dealer is owned by the PitBoss run loop and is never used concurrently.
type Dealer struct {
	tableUUID   string
	clients     map[*Client]bool
	logMessages []*playable.LogMessage
	logger      logrus.FieldLogger
}

// NewDealer creates a new dealer object
func NewDealer(tableUUID string, logger logrus.FieldLogger) *Dealer {
	return &Dealer{
		tableUUID:   tableUUID,
		clients:     make(map[*Client]bool),
		logMessages: make([]*playable.LogMessage, 0, logMessageLimit),
		logger:      logger.WithField("uuid", tableUUID),
	}
}

// AddClient adds a client and catches it up on recent log messages
func (d *Dealer) AddClient(client *Client) {
	d.clients[client] = true

	client.Send(&playable.Response{
		Key:   "log",
		Value: d.tableUUID,
		Data:  d.LogMessages(),
	})
}

// RemoveClient removes a client and returns true if it was the last one
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	delete(d.clients, client)
	return len(d.clients) == 0
}

// ClientCount returns the number of connected clients
func (d *Dealer) ClientCount() int {
	return len(d.clients)
}

// Broadcast sends the message to every client and remembers the log message for clients that join later
func (d *Dealer) Broadcast(msg *playable.Response, logMessage *playable.LogMessage) {
	if logMessage != nil {
		d.addLogMessages(logMessage)
	}

	for client := range d.clients {
		if !client.Send(msg) {
			d.logger.WithField("client", client.String()).Warn("client is not keeping up, dropped message")
		}
	}
}

// EndShift closes every client connection
func (d *Dealer) EndShift(reason string) {
	for client := range d.clients {
		client.Shutdown(reason)
	}
}
