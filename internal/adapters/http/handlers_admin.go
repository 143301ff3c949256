package web

import (
	"net/http"

	"shiftreg/internal/adapters/http/middleware"
	"shiftreg/internal/application/orchestrators"
)

// handleAdminOpen handles POST /api/admin/open.
func handleAdminOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Password string `json:"password"`
		WeekID   string `json:"weekId"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	err := orchestrators.ExecuteOpenSystem(r.Context(), orchestrators.OpenSystemInput{
		Password: req.Password,
		WeekID:   req.WeekID,
		Now:      nowFunc(),
	}, openCloseDeps())
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, map[string]any{"isOpen": true, "selectedWeek": req.WeekID})
}

// handleAdminClose handles POST /api/admin/close.
func handleAdminClose(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := orchestrators.ExecuteCloseSystem(r.Context(), req.Password, openCloseDeps()); err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, map[string]any{"isOpen": false})
}

// handleAdminReset handles POST /api/admin/reset.
func handleAdminReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Password string `json:"password"`
		WeekID   string `json:"weekId"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	err := orchestrators.ExecuteResetWeek(r.Context(), orchestrators.ResetWeekInput{
		Password: req.Password,
		WeekID:   req.WeekID,
		Now:      nowFunc(),
	}, orchestrators.ResetWeekDeps{
		RosterStore:     stores.RosterStore,
		RolesStore:      stores.RolesStore,
		CredentialStore: stores.CredentialStore,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, map[string]any{"reset": req.WeekID})
}

// handleAdminPassword handles POST /api/admin/password.
func handleAdminPassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	err := orchestrators.ExecuteChangeAdminPassword(r.Context(), orchestrators.ChangeAdminPasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}, orchestrators.ChangeAdminPasswordDeps{CredentialStore: stores.CredentialStore})
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, map[string]any{"changed": true})
}

// handleAdminUnlock handles POST /api/admin/unlock: the manage-employees
// password gate. A correct password issues a short-lived unlock session
// cookie; nothing else is mutated.
func handleAdminUnlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Password string `json:"password"`
	}
	if err := strictDecode(r, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	err := orchestrators.ExecuteVerifyAdmin(r.Context(), req.Password,
		orchestrators.VerifyAdminDeps{CredentialStore: stores.CredentialStore})
	if err != nil {
		respondError(w, err)
		return
	}
	token, err := unlocks.Create()
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetUnlockCookie(w, token)
	writeJSON(w, map[string]any{"unlocked": true})
}

func openCloseDeps() orchestrators.OpenCloseSystemDeps {
	return orchestrators.OpenCloseSystemDeps{
		StatusStore:     stores.StatusStore,
		CredentialStore: stores.CredentialStore,
	}
}
