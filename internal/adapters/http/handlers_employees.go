package web

import (
	"net/http"

	"shiftreg/internal/adapters/http/middleware"
	"shiftreg/internal/application/orchestrators"
)

// handleEmployees handles /api/employees. GET lists the roster for the name
// picker and is public; mutations require an admin unlock session.
func handleEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method == "GET" {
		names, err := stores.EmployeeStore.List(ctx)
		if err != nil {
			internalError(w, err)
			return
		}
		if names == nil {
			names = []string{}
		}
		writeJSON(w, map[string]any{"employees": names})
		return
	}

	if !middleware.IsUnlocked(ctx) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req struct {
		Name    string `json:"name"`
		OldName string `json:"oldName,omitempty"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	input := orchestrators.ManageEmployeesInput{Name: req.Name, OldName: req.OldName}
	deps := orchestrators.ManageEmployeesDeps{
		EmployeeStore: stores.EmployeeStore,
		RosterStore:   stores.RosterStore,
		StatusStore:   stores.StatusStore,
	}

	var (
		names []string
		err   error
	)
	switch r.Method {
	case "POST":
		names, err = orchestrators.ExecuteAddEmployee(ctx, input, deps)
	case "PUT":
		names, err = orchestrators.ExecuteRenameEmployee(ctx, input, deps)
	case "DELETE":
		names, err = orchestrators.ExecuteDeleteEmployee(ctx, input, deps)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, map[string]any{"employees": names})
}
