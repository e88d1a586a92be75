package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/alexedwards/scs/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"materio/internal/catalog"
	"materio/internal/estimate"
	"materio/internal/project"
	"materio/internal/substitution"
	"materio/models"
)

// setupHandlers wires the package-level handler dependencies against a
// private in-memory database seeded with the reference catalog, restoring the
// previous wiring on cleanup.
func setupHandlers(t *testing.T) *catalog.Repository {
	t.Helper()

	previous := Dependencies{
		Sessions:       sessionManager,
		Database:       database,
		Catalog:        materials,
		Finder:         finder,
		Estimator:      estimator,
		Projects:       projects,
		UploadDir:      uploadDir,
		MaxUploadBytes: maxUploadBytes,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := db.AutoMigrate(&models.Material{}, &models.MaterialProperty{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	repo := catalog.NewRepository(db)
	if err := repo.Seed(context.Background()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}

	store, err := project.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create project store: %v", err)
	}

	Configure(Dependencies{
		Database:       db,
		Catalog:        repo,
		Finder:         substitution.NewFinder(repo),
		Estimator:      estimate.NewCalculator(repo),
		Projects:       store,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 16 << 20,
	})

	t.Cleanup(func() {
		Configure(previous)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return repo
}

// withTestSessionManager installs a fresh session manager and returns it so
// tests can load a session context onto their requests.
func withTestSessionManager(t *testing.T) *scs.SessionManager {
	t.Helper()

	previous := sessionManager
	sm := scs.New()
	sessionManager = sm
	t.Cleanup(func() {
		sessionManager = previous
	})
	return sm
}

func sessionRequest(t *testing.T, sm *scs.SessionManager, req *http.Request) *http.Request {
	t.Helper()
	ctx, err := sm.Load(req.Context(), "")
	if err != nil {
		t.Fatalf("failed to load session context: %v", err)
	}
	return req.WithContext(ctx)
}
