package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"nutriplan/internal/service"
	"nutriplan/internal/transport/rest/handler"
	"nutriplan/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	SessionService *service.SessionService
	CatalogService *service.CatalogService
	WSHub          *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(c.SessionService)
	catalogHandler := handler.NewCatalogHandler(c.CatalogService)
	wsHandler := ws.NewHandler(c.WSHub, c.SessionService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/catalog", catalogHandler.Get).Methods("GET", "OPTIONS")

	v1.HandleFunc("/sessions", sessionHandler.Create).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}", sessionHandler.Get).Methods("GET", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/answers/{key}", sessionHandler.SetAnswer).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/answers/{key}/toggle", sessionHandler.ToggleOption).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/followups/{subKey}", sessionHandler.SetFollowUp).Methods("PUT", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/followups/{subKey}/toggle", sessionHandler.ToggleFollowUp).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/next", sessionHandler.Next).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/back", sessionHandler.Back).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/skip", sessionHandler.Skip).Methods("POST", "OPTIONS")
	v1.HandleFunc("/sessions/{sessionId}/completion", sessionHandler.Completion).Methods("GET", "OPTIONS")

	v1.HandleFunc("/intakes", sessionHandler.Intakes).Methods("GET", "OPTIONS")

	// WebSocket route: live state updates for the renderer
	v1.HandleFunc("/ws/sessions/{sessionId}", wsHandler.SessionWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
