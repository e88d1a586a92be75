package server

import (
	"context"
	"net/http"

	"materio/internal/handlers"
	applog "materio/internal/log"
)

func newRouter(uploadDir string) http.Handler {
	mux := http.NewServeMux()
	applog.Debug(context.Background(), "registering http routes")

	mux.HandleFunc("/healthz", handlers.Health)
	mux.HandleFunc("/api/upload", handlers.Upload)
	mux.HandleFunc("/api/materials", handlers.MaterialResource)
	mux.HandleFunc("/api/materials/", handlers.MaterialResource)
	mux.HandleFunc("/api/alternatives", handlers.Alternatives)
	mux.HandleFunc("/api/compatibility", handlers.Compatibility)
	mux.HandleFunc("/api/recalculate", handlers.Recalculate)
	mux.HandleFunc("/api/savings", handlers.Savings)
	mux.HandleFunc("/api/projects", handlers.ProjectResource)
	mux.HandleFunc("/api/projects/", handlers.ProjectResource)
	mux.HandleFunc("/api/session/recent", handlers.RecentAnalyses)
	mux.Handle("/uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))
	mux.Handle("/", http.FileServer(http.Dir("web/static")))

	return mux
}
