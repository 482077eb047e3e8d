// Package status pushes the latest frame snapshot to websocket clients.
package status

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 32
)

type client struct {
	b    *Broadcaster
	conn *websocket.Conn
	send chan []byte
}

// writePump owns all writes to the connection.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.b.unregister(c)
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Printf("[status] ws write msg error: %v", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("[status] ws write ping error: %v", err)
				return
			}
		}
	}
}

// readPump drains control frames and notices when the peer goes away.
func (c *client) readPump() {
	defer c.b.drop(c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// Broadcaster sends every published value to all connected clients as json.
// Clients that can not keep up lose messages instead of stalling Publish.
type Broadcaster struct {
	lock        sync.Mutex
	clients     map[*client]bool
	lastMessage []byte
	closed      bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{clients: make(map[*client]bool)}
}

// Attach starts serving conn. A new client receives the last published message first.
func (b *Broadcaster) Attach(conn *websocket.Conn) {
	c := &client{b: b, conn: conn, send: make(chan []byte, sendBuffer)}

	b.lock.Lock()
	if b.closed {
		b.lock.Unlock()
		conn.Close()
		return
	}
	b.clients[c] = true
	if b.lastMessage != nil {
		c.send <- b.lastMessage
	}
	b.lock.Unlock()

	go c.writePump()
	go c.readPump()
}

func (b *Broadcaster) Publish(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "Failed to marshal status")
	}

	b.lock.Lock()
	defer b.lock.Unlock()
	b.lastMessage = data
	for c := range b.clients {
		select {
		case c.send <- data:
		default:
		}
	}
	return nil
}

// LastMessage returns the json of the latest Publish call.
func (b *Broadcaster) LastMessage() []byte {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.lastMessage
}

func (b *Broadcaster) Clients() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.clients)
}

// Close disconnects every client and rejects new ones.
func (b *Broadcaster) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.closed = true
	for c := range b.clients {
		delete(b.clients, c)
		close(c.send)
	}
}

func (b *Broadcaster) unregister(c *client) {
	b.lock.Lock()
	defer b.lock.Unlock()
	delete(b.clients, c)
}

// drop stops the write pump of a client whose peer disconnected.
func (b *Broadcaster) drop(c *client) {
	b.lock.Lock()
	defer b.lock.Unlock()
	if b.clients[c] {
		delete(b.clients, c)
		close(c.send)
	}
}
