package main

import (
	"fmt"

	"recetario/internal/assets"
	"recetario/internal/catalog"
	"recetario/internal/config"
	"recetario/internal/manifest"
	"recetario/internal/overrides"
	"recetario/internal/storage"
)

type runInputs struct {
	Records    []manifest.Record
	Candidates []string
	Overrides  map[string]string
}

func loadInputs(cfg *config.Config) (runInputs, error) {
	records, err := manifest.Load(cfg.Paths.Manifest)
	if err != nil {
		return runInputs{}, fmt.Errorf("load manifest: %w", err)
	}
	candidates, err := assets.List(cfg.Paths.ImagesDir)
	if err != nil {
		return runInputs{}, fmt.Errorf("list images: %w", err)
	}
	ovr, err := overrides.Load(cfg.Paths.OverridesFile)
	if err != nil {
		return runInputs{}, fmt.Errorf("load overrides: %w", err)
	}
	return runInputs{Records: records, Candidates: candidates, Overrides: ovr}, nil
}

func buildObjectStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendFilesystem:
		return storage.NewFilesystemStore(cfg.Storage.LocalDir)
	case config.BackendBucket:
		return storage.NewBucketStore(cfg.Storage.BaseURL, cfg.Storage.Bucket, cfg.Storage.ServiceKey, nil), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func buildCatalogStore(cfg *config.Config) (catalog.Store, error) {
	switch cfg.Catalog.Backend {
	case config.BackendSQLite:
		return catalog.OpenSQLite(cfg.Catalog.DBPath)
	case config.BackendREST:
		return catalog.NewRESTStore(cfg.Catalog.BaseURL, cfg.Catalog.Table, cfg.Storage.ServiceKey, nil), nil
	default:
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.Catalog.Backend)
	}
}
