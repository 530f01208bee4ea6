package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/GDOmega/pointercrate/internal/handler"
	"github.com/GDOmega/pointercrate/internal/middleware"
	"github.com/GDOmega/pointercrate/internal/utils"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.OptionalAuth)
	r.Use(middleware.LoggerMiddleware)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)

	// Root - documentation de l'API
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)

	// Nations
	r.HandleFunc("/nations", handler.GetNations).Methods(http.MethodGet)
	r.HandleFunc("/nations/{countryCode}", handler.GetNationStats).Methods(http.MethodGet)
	r.HandleFunc("/nations/{countryCode}/rank", handler.GetNationRank).Methods(http.MethodGet)

	// Demons
	r.HandleFunc("/demons", handler.GetDemons).Methods(http.MethodGet)
	r.HandleFunc("/demons/{position}", handler.GetDemonByPosition).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/demons/{position}", handler.UpdateDemon).Methods(http.MethodPut, http.MethodPatch)

	// Records
	r.HandleFunc("/records", handler.SubmitRecord).Methods(http.MethodPost)
	r.HandleFunc("/records/{id}", handler.GetRecordById).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/records/{id}", handler.DeleteRecord).Methods(http.MethodDelete)

	// Players
	r.HandleFunc("/players", handler.GetPlayers).Methods(http.MethodGet)
	r.HandleFunc("/players/{name}", handler.GetPlayerByName).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
