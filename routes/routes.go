package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"p9e.in/prepsafe/handlers"
	"p9e.in/prepsafe/middleware"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes() http.Handler {
	r := mux.NewRouter()

	// =====================================================
	// Public Routes (no authentication)
	// =====================================================
	r.HandleFunc("/register", handlers.Register).Methods("POST")
	r.HandleFunc("/login", handlers.Login).Methods("POST")
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir("./uploads"))),
	)

	// =====================================================
	// Protected API Routes (require JWT authentication)
	// =====================================================
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.SecurityMiddleware)
	api.Use(middleware.JWTMiddleware)

	// Current user
	api.HandleFunc("/me", handlers.GetCurrentUser).Methods("GET")
	api.HandleFunc("/me/password", handlers.ChangePassword).Methods("PUT")
	api.HandleFunc("/profile", handleProfile).Methods("GET")

	registerComplianceRoutes(api)
	registerSetupRoutes(api)
	registerPreferenceRoutes(api)
	registerFileRoutes(api)

	return r
}

// handleProfile returns user profile information
func handleProfile(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r)
	user := middleware.GetUser(r)
	orgContext := middleware.GetOrgContext(r)

	var globalRoleName string
	if user.RoleModel != nil {
		globalRoleName = user.RoleModel.Name
	}

	response := map[string]interface{}{
		"userID":      claims.UserID,
		"name":        user.Name,
		"phone":       user.Phone,
		"role_id":     user.RoleID,
		"global_role": globalRoleName,
		"role_level":  user.GetHighestRoleLevel(),
		"org":         orgContext,
	}
	json.NewEncoder(w).Encode(response)
}

// registerComplianceRoutes wires the daily-log surface: today's logs, the
// two-phase submit, history, counts, reports and exports.
func registerComplianceRoutes(api *mux.Router) {
	read := middleware.RequirePermission("compliance:read")
	create := middleware.RequirePermission("compliance:create")
	export := middleware.RequirePermission("compliance:export")

	api.Handle("/compliance/logs", read(http.HandlerFunc(handlers.GetTodayLogs))).Methods("GET")
	api.Handle("/compliance/logs", create(http.HandlerFunc(handlers.CreateLog))).Methods("POST")
	api.Handle("/compliance/logs/history", read(http.HandlerFunc(handlers.GetLogHistory))).Methods("GET")
	api.Handle("/compliance/logs/counts", read(http.HandlerFunc(handlers.GetLogCounts))).Methods("GET")
	api.Handle("/compliance/logs/report", read(http.HandlerFunc(handlers.GetLogReport))).Methods("GET")
	api.Handle("/compliance/logs/export/excel", export(http.HandlerFunc(handlers.ExportLogsToExcel))).Methods("GET")
	api.Handle("/compliance/logs/export/csv", export(http.HandlerFunc(handlers.ExportLogsToCSV))).Methods("GET")

	api.Handle("/compliance/tabs", read(http.HandlerFunc(handlers.GetTabs))).Methods("GET")
	api.Handle("/compliance/stage", read(http.HandlerFunc(handlers.GetStage))).Methods("GET")
	// the framework definition backs both the log forms and the setup
	// wizard, so either read permission grants it
	frameworkRead := middleware.RequireAnyPermission([]string{"compliance:read", "setup:read"})
	api.Handle("/compliance/framework", frameworkRead(http.HandlerFunc(handlers.GetFrameworkConfig))).Methods("GET")
}

// registerSetupRoutes wires profile, supervisors, sections and
// self-assessments.
func registerSetupRoutes(api *mux.Router) {
	setupRead := middleware.RequirePermission("setup:read")
	setupManage := middleware.RequirePermission("setup:manage")
	profileRead := middleware.RequirePermission("profile:read")
	profileUpdate := middleware.RequirePermission("profile:update")

	api.Handle("/compliance/sections", setupRead(http.HandlerFunc(handlers.GetSections))).Methods("GET")
	api.Handle("/compliance/sections", setupManage(http.HandlerFunc(handlers.UpdateSections))).Methods("PUT")

	api.Handle("/compliance/profile", profileRead(http.HandlerFunc(handlers.GetProfile))).Methods("GET")
	api.Handle("/compliance/profile", profileUpdate(http.HandlerFunc(handlers.UpsertProfile))).Methods("PUT")

	api.Handle("/compliance/supervisors",
		middleware.RequirePermission("supervisor:read")(http.HandlerFunc(handlers.GetSupervisors))).Methods("GET")
	api.Handle("/compliance/supervisors",
		middleware.RequirePermission("supervisor:create")(http.HandlerFunc(handlers.CreateSupervisor))).Methods("POST")
	api.Handle("/compliance/supervisors/{id}",
		middleware.RequirePermission("supervisor:update")(http.HandlerFunc(handlers.UpdateSupervisor))).Methods("PUT")
	api.Handle("/compliance/supervisors/{id}",
		middleware.RequirePermission("supervisor:delete")(http.HandlerFunc(handlers.DeleteSupervisor))).Methods("DELETE")

	api.Handle("/compliance/assessments",
		middleware.RequirePermission("assessment:create")(http.HandlerFunc(handlers.CreateAssessment))).Methods("POST")
	api.Handle("/compliance/assessments/latest",
		middleware.RequirePermission("assessment:read")(http.HandlerFunc(handlers.GetLatestAssessment))).Methods("GET")
}

// registerPreferenceRoutes wires the per-user preference store.
func registerPreferenceRoutes(api *mux.Router) {
	api.HandleFunc("/preferences/tab-order", handlers.GetTabOrder).Methods("GET")
	api.HandleFunc("/preferences/tab-order", handlers.SaveTabOrder).Methods("PUT")
}

// registerFileRoutes wires photo and document uploads.
func registerFileRoutes(api *mux.Router) {
	upload := middleware.RequirePermission("file:upload")
	api.Handle("/files/upload", upload(http.HandlerFunc(handlers.UploadFileHandler))).Methods("POST")
}
