// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/jason-s-yu/scrawl/internal/classifier"
	"github.com/jason-s-yu/scrawl/internal/game"
	"github.com/jason-s-yu/scrawl/internal/handlers"
	"github.com/jason-s-yu/scrawl/internal/middleware"
)

func main() {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	// External classifiers are optional; without a URL the detector never
	// flags and chat passes through unfiltered.
	var detector game.TextDetector = classifier.NopDetector{}
	if url := os.Getenv("TEXT_DETECTOR_URL"); url != "" {
		detector = classifier.NewTextDetectorClient(url, logger)
	}
	var filter game.ProfanityFilter = classifier.PassthroughFilter{}
	if url := os.Getenv("PROFANITY_FILTER_URL"); url != "" {
		filter = classifier.NewProfanityClient(url, logger)
	}

	rs := handlers.NewRoomServer(detector, filter, logger)

	mux := http.NewServeMux()
	mux.Handle("/ws", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.RoomWSHandler(logger, rs),
	)))
	mux.HandleFunc("/healthz", handlers.HealthHandler(rs))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
