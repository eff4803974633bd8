// Package live streams frames over a websocket. The browser sends its view
// state whenever it pans, zooms or changes floor and gets the matching frame
// back on the same connection.
package live

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"mudatlas.dev/internal/config"
	"mudatlas.dev/internal/logger"
	"mudatlas.dev/internal/models"
	"mudatlas.dev/internal/services"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 16 * 1024
	sendBuffer     = 16
)

// Message types sent to the browser
const (
	TypeFrame = "frame"
	TypeError = "error"
)

// Message is one server to client message
type Message struct {
	Type    string          `json:"type"`
	Session string          `json:"session"`
	Seq     int             `json:"seq"`
	Frame   *services.Frame `json:"frame,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Handler upgrades requests and runs one Client per connection
type Handler struct {
	maps     *services.MapService
	viewer   *config.ViewerConfig
	origins  mapset.Set[string]
	upgrader websocket.Upgrader
}

// NewHandler creates a new Handler. Browsers may connect from the server's
// own host or from an origin listed in viewer.json; "*" allows any.
func NewHandler(ms *services.MapService, viewer *config.ViewerConfig) *Handler {
	if viewer == nil {
		viewer = config.DefaultViewer()
	}
	h := &Handler{maps: ms, viewer: viewer, origins: mapset.New[string]()}
	for _, o := range viewer.AllowedOrigins {
		h.origins.Put(strings.ToLower(strings.TrimRight(o, "/")))
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// checkOrigin lets through clients without an Origin header (not a
// browser), same-host pages and the configured origins.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if h.origins.Has("*") || h.origins.Has(strings.ToLower(origin)) {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &Client{
		ID:     uuid.NewString(),
		Conn:   conn,
		Send:   make(chan Message, sendBuffer),
		maps:   h.maps,
		viewer: h.viewer,
	}
	logger.Log.WithFields(logrus.Fields{
		"session": c.ID,
		"remote":  r.RemoteAddr,
	}).Info("live session opened")

	go c.writePump()
	c.readPump()
}

// Client is one browser connection
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan Message

	maps   *services.MapService
	viewer *config.ViewerConfig
	seq    int
}

// readPump turns every view state read from the socket into a frame
func (c *Client) readPump() {
	defer func() {
		close(c.Send)
		logger.Log.WithField("session", c.ID).Info("live session closed")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var vs models.ViewState
		if err := c.Conn.ReadJSON(&vs); err != nil {
			if isDecodeError(err) {
				c.push(Message{Type: TypeError, Error: "invalid view state"})
				continue
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.WithError(err).WithField("session", c.ID).Warn("live read failed")
			}
			return
		}

		c.viewer.Apply(&vs)
		frame, err := c.maps.View(vs)
		if err != nil {
			c.push(Message{Type: TypeError, Error: err.Error()})
			continue
		}
		c.push(Message{Type: TypeFrame, Frame: frame})
	}
}

func isDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

// push queues a message, dropping it when the writer has fallen behind.
// A later view state supersedes it anyway.
func (c *Client) push(msg Message) {
	c.seq++
	msg.Session = c.ID
	msg.Seq = c.seq
	select {
	case c.Send <- msg:
	default:
		logger.Log.WithFields(logrus.Fields{
			"session": c.ID,
			"seq":     msg.Seq,
		}).Debug("live writer busy, frame dropped")
	}
}

// writePump sends queued messages and keeps the connection alive with pings
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("failed to close websocket connection")
		}
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(msg); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
