package cloudfunctions

import (
	"log"
	"net/http"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/NiceTry3675/news-summarizer/internal/transport/server"
)

func init() {
	functionTarget := os.Getenv("FUNCTION_TARGET")
	if functionTarget == "" {
		functionTarget = "NewsSummarizer"
	}

	log.Printf("✅ Registering function: %s", functionTarget)
	functions.HTTP(functionTarget, NewsSummarizer)
}

// NewsSummarizer is the HTTP entry point for Cloud Functions
func NewsSummarizer(w http.ResponseWriter, r *http.Request) {
	server.HandleRequest(w, r)
}
