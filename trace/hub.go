/*
	Copyright 2015 Franc[e]sco (lolisamurai@tfwno.gf)
	This file is part of go-hachi.
	go-hachi is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.
	go-hachi is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.
	You should have received a copy of the GNU General Public License
	along with go-hachi. If not, see <http://www.gnu.org/licenses/>.
*/

package trace

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/glassyeyedfish/chip-8/chip8"
	"github.com/gorilla/websocket"
	"github.com/retroenv/retrogolib/log"
)

const (
	// per client, a slow client loses traces beyond this
	sendBuffer      = 256
	broadcastBuffer = 1024
	writeWait       = time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// A Hub broadcasts traces as JSON text messages to every connected websocket
// client. Trace never blocks: when a buffer is full the trace is dropped.
//
// Serve clients through ServeHTTP and call Run to start broadcasting.
type Hub struct {
	logger *log.Logger

	broadcast            chan []byte
	register, unregister chan *client
	done                 chan struct{}

	clients map[*client]bool
	count   int32
	dropped uint64
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub returns a hub that is not running yet.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		logger:     logger,
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		clients:    map[*client]bool{},
	}
}

func (h *Hub) Trace(tr chip8.Trace) {
	msg, err := json.Marshal(tr)
	if err != nil {
		h.logger.Error("Encoding trace failed", nil, log.Err(err))
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		atomic.AddUint64(&h.dropped, 1)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int { return int(atomic.LoadInt32(&h.count)) }

// Dropped returns the number of traces that were not delivered to a client
// because a buffer was full.
func (h *Hub) Dropped() uint64 { return atomic.LoadUint64(&h.dropped) }

// Run dispatches traces to the clients until ctx is done, then disconnects
// every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			h.remove(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			h.clients[c] = true
			atomic.AddInt32(&h.count, 1)
			h.logger.Debug("Trace client connected",
				log.String("remote", c.conn.RemoteAddr().String()))

		case c := <-h.unregister:
			if h.clients[c] {
				h.remove(c)
				h.logger.Debug("Trace client disconnected",
					log.String("remote", c.conn.RemoteAddr().String()))
			}

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					atomic.AddUint64(&h.dropped, 1)
				}
			}
		}
	}
}

func (h *Hub) remove(c *client) {
	delete(h.clients, c)
	atomic.AddInt32(&h.count, -1)
	close(c.send)
}

// ServeHTTP upgrades the request to a websocket connection and subscribes it
// to the traces.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Upgrading trace connection failed", log.Err(err))
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// ListenAndServe serves the hub on addr at "/" and runs it until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("Serving traces", log.String("addr", addr))
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// readPump discards incoming messages and unregisters the client once the
// connection is gone.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		_ = c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}

	// hub closed the channel
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
