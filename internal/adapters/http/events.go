package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shiftreg/internal/application/projections"
	"shiftreg/internal/domain/week"
)

// keepAliveInterval paces SSE comment pings so proxies keep the stream open.
const keepAliveInterval = 25 * time.Second

// snapshot is one SSE payload: everything the page renders live.
type snapshot struct {
	Schedule  *projections.ScheduleView `json:"schedule,omitempty"`
	Window    projections.WindowView    `json:"window"`
	Employees []string                  `json:"employees"`
}

// handleEvents handles GET /api/events?week=: a server-sent event stream of
// live snapshots. The stream re-sends a full snapshot whenever any watched
// document changes; clients re-subscribe when their selected week changes.
func handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	weekID := r.URL.Query().Get("week")
	if weekID != "" {
		if _, found := week.Find(week.Window(nowFunc()), weekID); !found {
			respondError(w, projections.ErrWeekNotVisible)
			return
		}
	}

	prefixes := []string{"systemStatus/", "employees"}
	if weekID != "" {
		prefixes = append(prefixes, "shifts/"+weekID+"/", "dailyRoles/"+weekID+"/")
	}

	// Fan the per-prefix watch channels into one wake-up signal. The signal
	// channel is buffered so a burst of changes collapses into one refresh.
	wake := make(chan struct{}, 1)
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	for _, prefix := range prefixes {
		ch, stop := stores.DocStore.Watch(prefix)
		defer stop()
		go func() {
			for {
				select {
				case _, ok := <-ch:
					if !ok {
						return
					}
					select {
					case wake <- struct{}{}:
					default:
					}
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	if err := sendSnapshot(ctx, w, weekID); err != nil {
		return
	}
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-wake:
			if err := sendSnapshot(ctx, w, weekID); err != nil {
				return
			}
			flusher.Flush()
		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func sendSnapshot(ctx context.Context, w http.ResponseWriter, weekID string) error {
	windowView, err := projections.QueryGetWeekWindow(ctx, nowFunc, scheduleDeps())
	if err != nil {
		return err
	}
	employees, err := stores.EmployeeStore.List(ctx)
	if err != nil {
		return err
	}
	if employees == nil {
		employees = []string{}
	}

	snap := snapshot{Window: windowView, Employees: employees}
	if weekID != "" {
		view, err := projections.QueryGetSchedule(ctx, weekID, nowFunc, scheduleDeps())
		if err != nil {
			return err
		}
		snap.Schedule = &view
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "data: %s\n\n", payload)
	return err
}
