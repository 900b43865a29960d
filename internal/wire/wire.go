// Package wire provides dependency injection for the escriba application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/escriba/internal/adapters/cli"
	"github.com/example/escriba/internal/adapters/filesystem"
	"github.com/example/escriba/internal/adapters/sqlite"
	"github.com/example/escriba/internal/app"
	"github.com/example/escriba/internal/config"
	"github.com/example/escriba/internal/db"
	"github.com/example/escriba/internal/ports/primary"
)

var (
	deedService primary.DeedService
	once        sync.Once
)

// DeedService returns the singleton DeedService instance.
func DeedService() primary.DeedService {
	once.Do(initServices)
	return deedService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	// Config file is optional; env vars and defaults cover the rest
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}
	cfg, _ := config.LoadConfig(cwd)

	paths, err := config.ResolvePaths(cfg)
	if err != nil {
		log.Fatalf("failed to resolve paths: %v", err)
	}

	database, err := db.Open(paths.DB)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	templates, err := config.LoadTemplates(paths.Templates)
	if err != nil {
		log.Fatalf("failed to load checklist templates: %v", err)
	}

	archive, err := filesystem.NewArchiveAdapter(paths.Archive)
	if err != nil {
		log.Fatalf("failed to initialize archive: %v", err)
	}

	deedRepo := sqlite.NewDeedRepository(database)
	checklistRepo := sqlite.NewChecklistRepository(database)

	deedService = app.NewDeedService(deedRepo, checklistRepo, archive, templates)
}

// DeedAdapter returns a new DeedAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func DeedAdapter() *cliadapter.DeedAdapter {
	return DeedAdapterWithOutput(os.Stdout)
}

// DeedAdapterWithOutput returns a new DeedAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func DeedAdapterWithOutput(out io.Writer) *cliadapter.DeedAdapter {
	once.Do(initServices)
	return cliadapter.NewDeedAdapter(deedService, out)
}

// ChecklistAdapter returns a new ChecklistAdapter writing to stdout.
func ChecklistAdapter() *cliadapter.ChecklistAdapter {
	return ChecklistAdapterWithOutput(os.Stdout)
}

// ChecklistAdapterWithOutput returns a new ChecklistAdapter writing to the given output.
func ChecklistAdapterWithOutput(out io.Writer) *cliadapter.ChecklistAdapter {
	once.Do(initServices)
	return cliadapter.NewChecklistAdapter(deedService, out)
}
