package server

import (
	"log"
	"net/http"
	"runtime/debug"
	"sync"

	"github.com/gorilla/mux"

	"github.com/NiceTry3675/news-summarizer/internal/application"
	"github.com/NiceTry3675/news-summarizer/internal/metrics"
	"github.com/NiceTry3675/news-summarizer/internal/transport/handler"
	"github.com/NiceTry3675/news-summarizer/internal/transport/middleware"
)

// NewRouter configures HTTP routes for the application
func NewRouter(app *application.Application) *mux.Router {
	r := mux.NewRouter()
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.CORS)
	api.Use(middleware.Logging)
	api.Use(middleware.Metrics)
	api.Use(middleware.Auth(app.Config.APIAuthToken))

	api.HandleFunc("/health", handler.Health).Methods("GET")
	api.Handle("/search", app.SearchHandler).Methods("POST", "OPTIONS")

	sessions := app.SessionHandler
	api.HandleFunc("/sessions", sessions.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}", sessions.End).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/sessions/{id}/bookmarks", sessions.ListBookmarks).Methods("GET")
	api.HandleFunc("/sessions/{id}/bookmarks", sessions.AddBookmark).Methods("POST", "OPTIONS")
	api.HandleFunc("/sessions/{id}/bookmarks/{index}", sessions.RemoveBookmark).Methods("DELETE", "OPTIONS")

	return r
}

// CreateHandler creates the main HTTP handler for the application
func CreateHandler() (http.Handler, func(), error) {
	app, err := application.New()
	if err != nil {
		log.Printf("Error creating application: %v\nStack:\n%s", err, debug.Stack())
		return nil, nil, err
	}

	return NewRouter(app), app.Close, nil
}

var (
	once      sync.Once
	shared    http.Handler
	sharedErr error
)

// HandleRequest handles a single HTTP request (for Cloud Functions).
// The handler is built once per instance so sessions survive between requests.
func HandleRequest(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		shared, _, sharedErr = CreateHandler()
	})
	if sharedErr != nil {
		log.Printf("Failed to create handler: %v", sharedErr)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	shared.ServeHTTP(w, r)
}
