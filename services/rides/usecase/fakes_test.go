package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"

	"github.com/piresc/ridebook/internal/pkg/models"
	"github.com/piresc/ridebook/internal/pkg/websocket"
	"github.com/stretchr/testify/require"
)

// fakeChannel stands in for the shared socket: events are injected with emit
// and outbound frames are recorded
type fakeChannel struct {
	mu         sync.Mutex
	handlers   map[string]map[int]websocket.Handler
	nextID     int
	sent       []interface{}
	connects   int
	holders    int
	closes     int
	connectErr error
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{handlers: make(map[string]map[int]websocket.Handler)}
}

func (c *fakeChannel) Connect(ctx context.Context) (*websocket.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connects++
	return nil, c.connectErr
}

func (c *fakeChannel) Subscribe(event string, h websocket.Handler) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextID++
	id := c.nextID
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[int]websocket.Handler)
	}
	c.handlers[event][id] = h
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers[event], id)
	}
}

func (c *fakeChannel) Send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, v)
	return nil
}

func (c *fakeChannel) Acquire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.holders++
}

// Release counts a close when the last holder lets go, like the real manager
func (c *fakeChannel) Release() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.holders > 0 {
		c.holders--
	}
	if c.holders == 0 {
		c.closes++
	}
	return nil
}

func (c *fakeChannel) subscribers(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.handlers[event])
}

// emit delivers one inbound event synchronously, like the socket's read loop
func (c *fakeChannel) emit(t *testing.T, event string, payload interface{}) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	c.mu.Lock()
	ids := make([]int, 0, len(c.handlers[event]))
	for id := range c.handlers[event] {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	handlers := make([]websocket.Handler, 0, len(ids))
	for _, id := range ids {
		handlers = append(handlers, c.handlers[event][id])
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(data)
	}
}

// pings returns the location frames sent with tag
func (c *fakeChannel) pings(tag string) []models.LocationPing {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []models.LocationPing
	for _, v := range c.sent {
		if ping, ok := v.(models.LocationPing); ok && ping.Location == tag {
			out = append(out, ping)
		}
	}
	return out
}
