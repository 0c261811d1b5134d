package room

import (
	"blackjackdealer-server/pkg/playable"

	"github.com/sirupsen/logrus"
)

type broadcast struct {
	tableUUID  string
	msg        *playable.Response
	logMessage *playable.LogMessage
}

type clientCount struct {
	tableUUID string
	reply     chan int
}

// PitBoss is responsible for dispatching display clients to their table's dealer
type PitBoss struct {
	dealers    map[string]*Dealer
	connect    chan *Client
	disconnect chan *Client
	broadcast  chan *broadcast
	count      chan *clientCount
	done       chan struct{}
	logger     logrus.FieldLogger
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(logger logrus.FieldLogger) *PitBoss {
	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		connect:    make(chan *Client),
		disconnect: make(chan *Client, 256),
		broadcast:  make(chan *broadcast, 256),
		count:      make(chan *clientCount),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

// EndShift stops the run loop and closes every client connection
func (p *PitBoss) EndShift() {
	close(p.done)
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			p.logger.WithField("client", client.String()).Debug("client connected")
			dealer, found := p.dealers[client.tableUUID]
			if !found {
				dealer = NewDealer(client.tableUUID, p.logger)
				p.dealers[client.tableUUID] = dealer
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			p.logger.WithField("client", client.String()).Debug("client disconnected")
			dealer, found := p.dealers[client.tableUUID]
			if !found {
				p.logger.WithField("uuid", client.tableUUID).WithField("type", "exception").Error("table not found")
				continue
			}

			if dealer.RemoveClient(client) {
				delete(p.dealers, client.tableUUID)
			}
		case b := <-p.broadcast:
			dealer, found := p.dealers[b.tableUUID]
			if !found {
				// nobody is watching
				continue
			}

			dealer.Broadcast(b.msg, b.logMessage)
		case c := <-p.count:
			if dealer, found := p.dealers[c.tableUUID]; found {
				c.reply <- dealer.ClientCount()
			} else {
				c.reply <- 0
			}
		case <-p.done:
			for _, dealer := range p.dealers {
				dealer.EndShift("server shutting down")
			}

			p.logger.Debug("terminating pit boss run loop")
			return
		}
	}
}

// ClientConnected is called when a client connects to the server
// The client is registered by the time this returns.
func (p *PitBoss) ClientConnected(client *Client) bool {
	select {
	case p.connect <- client:
		return true
	case <-p.done:
		return false
	}
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	select {
	case p.disconnect <- client:
	case <-p.done:
	}
}

// Broadcast sends the message to every client watching the table
func (p *PitBoss) Broadcast(tableUUID string, msg *playable.Response, logMessage *playable.LogMessage) {
	select {
	case p.broadcast <- &broadcast{tableUUID: tableUUID, msg: msg, logMessage: logMessage}:
	case <-p.done:
	}
}

// ClientCount returns the number of clients watching the table
func (p *PitBoss) ClientCount(tableUUID string) int {
	c := &clientCount{tableUUID: tableUUID, reply: make(chan int, 1)}
	select {
	case p.count <- c:
		return <-c.reply
	case <-p.done:
		return 0
	}
}
