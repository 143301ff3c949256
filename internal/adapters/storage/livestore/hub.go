package livestore

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// watchBuffer is the per-watcher channel capacity. A watcher that falls this
// far behind starts losing intermediate changes; consumers resynchronize from
// a full snapshot, so only the lag is lost, not correctness.
const watchBuffer = 64

type watcher struct {
	id     string
	prefix string
	ch     chan Change
}

// hub fans committed changes out to prefix-scoped watchers.
type hub struct {
	mu       sync.RWMutex
	watchers map[string]*watcher
}

func newHub() *hub {
	return &hub{watchers: make(map[string]*watcher)}
}

// Watch registers a subscriber for changes under prefix.
// POST: Returned cancel func is idempotent and closes the channel
func (h *hub) Watch(prefix string) (<-chan Change, func()) {
	w := &watcher{
		id:     uuid.New().String(),
		prefix: prefix,
		ch:     make(chan Change, watchBuffer),
	}
	h.mu.Lock()
	h.watchers[w.id] = w
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.watchers, w.id)
			h.mu.Unlock()
			close(w.ch)
		})
	}
	return w.ch, cancel
}

// Publish delivers a committed change to every matching watcher. Sends never
// block: a full watcher drops the change and logs.
// PRE: c.Path is non-empty and the change has been committed
func (h *hub) Publish(c Change) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, w := range h.watchers {
		if !strings.HasPrefix(c.Path, w.prefix) {
			continue
		}
		select {
		case w.ch <- c:
		default:
			slog.Warn("watcher_lagging", "prefix", w.prefix, "path", c.Path)
		}
	}
}
