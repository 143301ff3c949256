package web

import "net/http"

// registerRoutes wires every handler onto the mux. Method dispatch happens
// inside the handlers.
func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleIndex)

	mux.HandleFunc("/api/register", handleRegister)
	mux.HandleFunc("/api/cancel", handleCancel)
	mux.HandleFunc("/api/schedule", handleSchedule)
	mux.HandleFunc("/api/weeks", handleWeeks)
	mux.HandleFunc("/api/events", handleEvents)

	mux.HandleFunc("/api/admin/open", handleAdminOpen)
	mux.HandleFunc("/api/admin/close", handleAdminClose)
	mux.HandleFunc("/api/admin/reset", handleAdminReset)
	mux.HandleFunc("/api/admin/password", handleAdminPassword)
	mux.HandleFunc("/api/admin/unlock", handleAdminUnlock)

	mux.HandleFunc("/api/employees", handleEmployees)
	mux.HandleFunc("/api/roles/assign", handleRolesAssign)
}
