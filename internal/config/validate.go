package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateImporter(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendBucket:
		if c.Storage.BaseURL == "" {
			return errors.New("storage.base_url must be set when storage.backend is \"bucket\"")
		}
		if c.Storage.ServiceKey == "" {
			defaultPath, err := DefaultConfigPath()
			if err != nil {
				defaultPath = "~/.config/recetario/config.toml"
			}
			return fmt.Errorf("storage.service_key is required. Set %s env var or edit %s (create with 'recetario config init')",
				serviceKeyEnvVariable, defaultPath)
		}
	case BackendFilesystem:
		if c.Storage.LocalDir == "" {
			return errors.New("storage.local_dir must be set when storage.backend is \"filesystem\"")
		}
	default:
		return fmt.Errorf("storage.backend: unsupported value %q (expected %q or %q)",
			c.Storage.Backend, BackendBucket, BackendFilesystem)
	}
	if c.Storage.MaxWidth < 0 {
		return errors.New("storage.max_width must be zero or positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch c.Catalog.Backend {
	case BackendSQLite:
		if c.Catalog.DBPath == "" {
			return errors.New("catalog.db_path must be set when catalog.backend is \"sqlite\"")
		}
	case BackendREST:
		if c.Catalog.BaseURL == "" {
			return errors.New("catalog.base_url must be set when catalog.backend is \"rest\"")
		}
		if c.Storage.ServiceKey == "" {
			return fmt.Errorf("storage.service_key (or %s) is required for the rest catalog backend", serviceKeyEnvVariable)
		}
	default:
		return fmt.Errorf("catalog.backend: unsupported value %q (expected %q or %q)",
			c.Catalog.Backend, BackendSQLite, BackendREST)
	}
	return nil
}

func (c *Config) validateImporter() error {
	if c.Importer.ThrottleMS < 0 {
		return errors.New("importer.throttle_ms must be zero or positive")
	}
	if c.Importer.RetryAttempts < 1 {
		return errors.New("importer.retry_attempts must be at least 1")
	}
	if c.Importer.RetryBaseMS < 0 {
		return errors.New("importer.retry_base_ms must be zero or positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
