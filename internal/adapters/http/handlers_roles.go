package web

import (
	"net/http"

	"shiftreg/internal/application/orchestrators"
)

// handleRolesAssign handles POST /api/roles/assign: dropping a role token
// onto a shift cell.
func handleRolesAssign(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		WeekID string `json:"weekId"`
		Day    int    `json:"day"`
		Shift  int    `json:"shift"`
		Name   string `json:"name"`
		Role   string `json:"role"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	dr, err := orchestrators.ExecuteAssignRole(r.Context(), orchestrators.AssignRoleInput{
		WeekID: req.WeekID,
		Day:    req.Day,
		Shift:  req.Shift,
		Name:   req.Name,
		Role:   req.Role,
	}, orchestrators.AssignRoleDeps{RolesStore: stores.RolesStore})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, dr)
}
