package feed

import (
	"sync"
	"time"

	"github.com/piresc/ridebook/internal/pkg/logger"
)

// DefaultToastLimit bounds the toasts kept per role
const DefaultToastLimit = 20

// Route is the screen a role was last sent to
type Route struct {
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

// Toast is one transient notice shown to a role
type Toast struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Snapshot is what a screen polls for
type Snapshot struct {
	Route  *Route  `json:"route,omitempty"`
	Toasts []Toast `json:"toasts"`
}

// Feed collects navigation requests and toasts for the screens, per role
type Feed struct {
	mu     sync.Mutex
	limit  int
	routes map[string]Route
	toasts map[string][]Toast
	now    func() time.Time
}

// New creates a feed keeping at most limit toasts per role
func New(limit int) *Feed {
	if limit <= 0 {
		limit = DefaultToastLimit
	}
	return &Feed{
		limit:  limit,
		routes: make(map[string]Route),
		toasts: make(map[string][]Toast),
		now:    time.Now,
	}
}

// Navigate records the route the role's screen must show next
func (f *Feed) Navigate(role, path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[role] = Route{Path: path, At: f.now().UTC()}
	logger.Debug("Navigation requested", logger.String("role", role), logger.String("path", path))
}

// Notify queues a toast, dropping the oldest once the limit is reached
func (f *Feed) Notify(role, level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	list := append(f.toasts[role], Toast{Level: level, Message: message, At: f.now().UTC()})
	if len(list) > f.limit {
		list = list[len(list)-f.limit:]
	}
	f.toasts[role] = list
}

// Drain returns the pending route and toasts of role and clears them
func (f *Feed) Drain(role string) Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	snap := Snapshot{Toasts: f.toasts[role]}
	if snap.Toasts == nil {
		snap.Toasts = []Toast{}
	}
	if route, ok := f.routes[role]; ok {
		snap.Route = &route
	}
	delete(f.routes, role)
	delete(f.toasts, role)
	return snap
}
