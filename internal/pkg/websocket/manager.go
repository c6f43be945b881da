package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/piresc/ridebook/internal/pkg/constants"
	"github.com/piresc/ridebook/internal/pkg/logger"
	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/session"
)

var (
	// ErrNotConnected is returned when sending without a live socket
	ErrNotConnected = errors.New("trip updates socket is not connected")
	// ErrNoToken is returned when connecting without a session
	ErrNoToken = errors.New("no access token to open the trip updates socket")
)

// Handler receives the data payload of one inbound event
type Handler func(data json.RawMessage)

// TokenProvider resolves the token the socket authenticates with
type TokenProvider interface {
	BearerToken(ctx context.Context) (string, session.Identity, error)
}

// Manager owns the single trip updates socket shared by every mounted view
type Manager struct {
	baseURL string
	tokens  TokenProvider
	dialer  *websocket.Dialer

	mu      sync.Mutex
	conn    *Conn
	holders int

	subsMu sync.RWMutex
	subs   map[string]map[uint64]Handler
	nextID uint64
}

// NewManager creates a connection manager for <baseURL>/ws/trip_updates/
func NewManager(baseURL string, handshakeTimeout time.Duration, tokens TokenProvider) *Manager {
	return &Manager{
		baseURL: baseURL,
		tokens:  tokens,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		subs: make(map[string]map[uint64]Handler),
	}
}

// Connect returns the live socket, dialing a new one only when none exists or the last one is closed.
// There is no reconnect policy: a closed socket stays closed until the next Connect.
func (m *Manager) Connect(ctx context.Context) (*Conn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.conn != nil && m.conn.IsOpen() {
		return m.conn, nil
	}

	token, _, err := m.tokens.BearerToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if token == "" {
		return nil, ErrNoToken
	}

	target := m.baseURL + constants.TripUpdatesPath + "?token=" + url.QueryEscape(token)
	ws, resp, err := m.dialer.DialContext(ctx, target, nil)
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		logger.Error("Failed to open trip updates socket",
			logger.Int("status_code", status),
			logger.Err(err))
		return nil, fmt.Errorf("failed to dial trip updates socket: %w", err)
	}

	conn := newConn(ws)
	m.conn = conn
	go m.readLoop(conn)

	logger.Info("Trip updates socket connected")
	return conn, nil
}

// Current returns the live socket or nil
func (m *Manager) Current() *Conn {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conn != nil && m.conn.IsOpen() {
		return m.conn
	}
	return nil
}

// Send writes a frame on the live socket, fire-and-forget
func (m *Manager) Send(v interface{}) error {
	conn := m.Current()
	if conn == nil {
		return ErrNotConnected
	}
	return conn.Send(v)
}

// Acquire registers one more view holding the socket open
func (m *Manager) Acquire() {
	m.mu.Lock()
	m.holders++
	m.mu.Unlock()
}

// Release drops one holder; the socket is closed when the last holder lets go
func (m *Manager) Release() error {
	m.mu.Lock()
	if m.holders > 0 {
		m.holders--
	}
	if m.holders > 0 {
		m.mu.Unlock()
		return nil
	}
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Close closes the live socket, if any, whoever still holds it
func (m *Manager) Close() error {
	m.mu.Lock()
	conn := m.conn
	m.conn = nil
	m.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.Close()
}

// Subscribe registers h for event and returns the function that removes it
func (m *Manager) Subscribe(event string, h Handler) func() {
	m.subsMu.Lock()
	m.nextID++
	id := m.nextID
	if m.subs[event] == nil {
		m.subs[event] = make(map[uint64]Handler)
	}
	m.subs[event][id] = h
	m.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.subsMu.Lock()
			defer m.subsMu.Unlock()
			delete(m.subs[event], id)
			if len(m.subs[event]) == 0 {
				delete(m.subs, event)
			}
		})
	}
}

// readLoop is the only reader; frames are dispatched in arrival order
func (m *Manager) readLoop(conn *Conn) {
	defer conn.markClosed()

	for {
		_, msg, err := conn.ws.ReadMessage()
		if err != nil {
			if !conn.IsOpen() {
				return
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Trip updates socket closed unexpectedly", logger.Err(err))
			} else {
				logger.Info("Trip updates socket closed", logger.Err(err))
			}
			return
		}

		m.dispatch(msg)
	}
}

func (m *Manager) dispatch(msg []byte) {
	var wsMsg models.WSMessage
	if err := json.Unmarshal(msg, &wsMsg); err != nil {
		logger.Warn("Dropping malformed trip update frame", logger.Err(err))
		return
	}

	handlers := m.handlersFor(wsMsg.Event)
	if len(handlers) == 0 {
		logger.Debug("No subscriber for event", logger.String("event", wsMsg.Event))
		return
	}
	for _, h := range handlers {
		h(wsMsg.Data)
	}
}

// handlersFor snapshots the subscribers of event in subscription order
func (m *Manager) handlersFor(event string) []Handler {
	m.subsMu.RLock()
	defer m.subsMu.RUnlock()

	subs := m.subs[event]
	ids := make([]uint64, 0, len(subs))
	for id := range subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	handlers := make([]Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, subs[id])
	}
	return handlers
}
