// Package handlers implements the JSON HTTP surface of the service. Handler
// dependencies are package-level and wired once at startup via Configure.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"materio/internal/catalog"
	"materio/internal/estimate"
	applog "materio/internal/log"
	"materio/internal/project"
	"materio/internal/substitution"
)

var (
	sessionManager *scs.SessionManager
	database       *gorm.DB
	materials      *catalog.Repository
	finder         *substitution.Finder
	estimator      *estimate.Calculator
	projects       *project.Store
	uploadDir      string
	maxUploadBytes int64
)

// Dependencies bundles everything the handlers need.
type Dependencies struct {
	Sessions       *scs.SessionManager
	Database       *gorm.DB
	Catalog        *catalog.Repository
	Finder         *substitution.Finder
	Estimator      *estimate.Calculator
	Projects       *project.Store
	UploadDir      string
	MaxUploadBytes int64
}

// Configure installs the shared handler dependencies.
func Configure(deps Dependencies) {
	sessionManager = deps.Sessions
	database = deps.Database
	materials = deps.Catalog
	finder = deps.Finder
	estimator = deps.Estimator
	projects = deps.Projects
	uploadDir = deps.UploadDir
	maxUploadBytes = deps.MaxUploadBytes
	if maxUploadBytes <= 0 {
		maxUploadBytes = 16 << 20
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
