package handler

import (
	"net/http"
	"time"

	"github.com/NiceTry3675/news-summarizer/internal/transport/response"
)

// Version is reported by the health endpoint
const Version = "v1.0.0"

// Health provides the health check endpoint
func Health(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, "ok", map[string]interface{}{
		"timestamp": time.Now().Unix(),
		"version":   Version,
	})
}
