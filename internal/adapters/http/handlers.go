package web

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gorilla/csrf"

	"shiftreg/internal/adapters/http/middleware"
	"shiftreg/internal/adapters/storage/livestore"
	"shiftreg/internal/application/orchestrators"
	"shiftreg/internal/application/projections"
	"shiftreg/internal/domain/credential"
	"shiftreg/internal/domain/employee"
	"shiftreg/internal/domain/roles"
	"shiftreg/internal/domain/roster"
	"shiftreg/internal/domain/week"
)

func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func strictDecode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// errorJSON writes the generic error envelope.
func errorJSON(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// validationErrors maps domain sentinels to their HTTP status. Everything
// else is an internal error.
var validationErrors = map[error]int{
	roster.ErrEmptyName:            http.StatusBadRequest,
	orchestrators.ErrInvalidSlot:   http.StatusBadRequest,
	orchestrators.ErrSystemClosed:  http.StatusConflict,
	orchestrators.ErrUnknownWeek:   http.StatusBadRequest,
	projections.ErrWeekNotVisible:  http.StatusBadRequest,
	credential.ErrWrongPassword:    http.StatusUnauthorized,
	credential.ErrConfirmMismatch:  http.StatusBadRequest,
	credential.ErrPasswordTooShort: http.StatusBadRequest,
	credential.ErrEmptyPassword:    http.StatusBadRequest,
	employee.ErrEmptyName:          http.StatusBadRequest,
	employee.ErrDuplicateName:      http.StatusBadRequest,
	employee.ErrNotFound:           http.StatusNotFound,
	roles.ErrKeyRoleShift:          http.StatusBadRequest,
	roles.ErrUnknownRole:           http.StatusBadRequest,
	roles.ErrInvalidSlot:           http.StatusBadRequest,
	roles.ErrEmptyName:             http.StatusBadRequest,
	livestore.ErrConflict:          http.StatusServiceUnavailable,
}

// respondError maps err to a JSON error response.
func respondError(w http.ResponseWriter, err error) {
	for sentinel, status := range validationErrors {
		if errors.Is(err, sentinel) {
			errorJSON(w, status, sentinel)
			return
		}
	}
	internalError(w, err)
}

const templatesDir = "internal/adapters/http/templates"

// renderTemplate renders a page template inside the layout.
func renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data any) {
	funcMap := template.FuncMap{
		"csrfToken": func() string { return csrf.Token(r) },
		"add":       func(a, b int) int { return a + b },
	}

	layoutPath := filepath.Join(templatesDir, "layout.html")
	pagePath := filepath.Join(templatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		http.Error(w, "Render error: "+err.Error(), http.StatusInternalServerError)
	}
}

// handleIndex renders the schedule page, or the closed page when no week is
// open for viewing.
func handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	st, err := stores.StatusStore.Get(ctx)
	if err != nil {
		internalError(w, err)
		return
	}
	windowView, err := projections.QueryGetWeekWindow(ctx, nowFunc, scheduleDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	if !st.IsOpen {
		renderTemplate(w, r, "closed.html", map[string]any{
			"Weeks": windowView.Weeks,
		})
		return
	}

	view, err := projections.QueryGetSchedule(ctx, st.SelectedWeek, nowFunc, scheduleDeps())
	if err != nil {
		// A stale selected week that fell out of the window renders closed.
		if errors.Is(err, projections.ErrWeekNotVisible) {
			renderTemplate(w, r, "closed.html", map[string]any{
				"Weeks": windowView.Weeks,
			})
			return
		}
		internalError(w, err)
		return
	}
	employees, err := stores.EmployeeStore.List(ctx)
	if err != nil {
		internalError(w, err)
		return
	}

	renderTemplate(w, r, "index.html", map[string]any{
		"Schedule":  view,
		"Weeks":     windowView.Weeks,
		"Employees": employees,
		"Unlocked":  middleware.IsUnlocked(ctx),
	})
}

func scheduleDeps() projections.GetScheduleDeps {
	return projections.GetScheduleDeps{
		RosterStore: stores.RosterStore,
		RolesStore:  stores.RolesStore,
		StatusStore: stores.StatusStore,
	}
}

// handleRegister handles POST /api/register.
func handleRegister(w http.ResponseWriter, r *http.Request) {
	mutateShift(w, r, orchestrators.ExecuteRegister)
}

// handleCancel handles POST /api/cancel.
func handleCancel(w http.ResponseWriter, r *http.Request) {
	mutateShift(w, r, orchestrators.ExecuteCancel)
}

type shiftRequest struct {
	Name  string `json:"name"`
	Day   int    `json:"day"`
	Shift int    `json:"shift"`
}

type shiftResponse struct {
	Status string   `json:"status"`
	WeekID string   `json:"weekId"`
	Slot   string   `json:"slot"`
	Names  []string `json:"names"`
}

func mutateShift(w http.ResponseWriter, r *http.Request,
	execute func(context.Context, orchestrators.RegisterShiftInput, orchestrators.RegisterShiftDeps) (orchestrators.RegisterShiftResult, error)) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req shiftRequest
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	result, err := execute(r.Context(), orchestrators.RegisterShiftInput{
		Name:  req.Name,
		Day:   req.Day,
		Shift: req.Shift,
	}, orchestrators.RegisterShiftDeps{
		RosterStore: stores.RosterStore,
		StatusStore: stores.StatusStore,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, shiftResponse{
		Status: string(result.Outcome),
		WeekID: result.WeekID,
		Slot:   result.Slot,
		Names:  result.Names,
	})
}

// handleSchedule handles GET /api/schedule?week=.
func handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	weekID := r.URL.Query().Get("week")
	if weekID == "" {
		st, err := stores.StatusStore.Get(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		weekID = st.SelectedWeek
		if weekID == "" {
			weekID = week.Current(week.Window(nowFunc())).ID
		}
	}

	view, err := projections.QueryGetSchedule(ctx, weekID, nowFunc, scheduleDeps())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, view)
}

// handleWeeks handles GET /api/weeks.
func handleWeeks(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	view, err := projections.QueryGetWeekWindow(r.Context(), nowFunc, scheduleDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, view)
}
