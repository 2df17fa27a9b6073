package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	ws "github.com/coder/websocket"
	"github.com/google/uuid"
)

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
)

// Client is one websocket connection of a user.
type Client struct {
	hub  *Hub
	uid  uuid.UUID
	conn *ws.Conn
	send chan []byte
}

func NewClient(hub *Hub, uid uuid.UUID, conn *ws.Conn) *Client {
	return &Client{
		hub:  hub,
		uid:  uid,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
}

// Run blocks until the connection closes.
func (c *Client) Run(ctx context.Context) {
	c.hub.Register(c)
	defer c.hub.Unregister(c)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.writePump(ctx)
	c.readPump(ctx)
}

// Events only flow to the client, anything it sends is discarded.
func (c *Client) readPump(ctx context.Context) {
	for {
		if _, _, err := c.conn.Read(ctx); err != nil {
			return
		}
	}
}

func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.Write(ctx, ws.MessageText, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// Serve upgrades the request and streams uid's events until the peer leaves.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, uid uuid.UUID) {
	conn, err := ws.Accept(w, r, &ws.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Warn("websocket accept", slog.String("error", err.Error()))
		return
	}
	defer conn.CloseNow()

	NewClient(h, uid, conn).Run(r.Context())
	conn.Close(ws.StatusNormalClosure, "")
}
