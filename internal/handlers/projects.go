package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	applog "materio/internal/log"
	"materio/internal/project"
)

// maxProjectBytes caps a saved project payload.
const maxProjectBytes = 1 << 20

// ProjectResource saves and loads analysis snapshots as opaque JSON blobs.
func ProjectResource(w http.ResponseWriter, r *http.Request) {
	if projects == nil {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/projects"), "/")

	if path == "" {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		saveProject(w, r)
		return
	}

	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	loadProject(w, r, path)
}

func saveProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxProjectBytes))
	if err != nil {
		applog.Debug(ctx, "failed to read project payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	id, err := projects.Save(json.RawMessage(data))
	if err != nil {
		applog.Error(ctx, "failed to save project", "error", err)
		writeJSONError(w, http.StatusBadRequest, "project payload must be valid JSON")
		return
	}

	applog.Info(ctx, "project saved", "project_id", id)
	writeJSON(w, http.StatusCreated, map[string]string{"project_id": id})
}

func loadProject(w http.ResponseWriter, r *http.Request, id string) {
	ctx := r.Context()
	data, err := projects.Load(id)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			writeJSONError(w, http.StatusNotFound, "project not found")
			return
		}
		applog.Error(ctx, "failed to load project", "error", err, "project_id", id)
		writeJSONError(w, http.StatusInternalServerError, "unable to load project")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		applog.Error(ctx, "failed to write project response", "error", err, "project_id", id)
	}
}
