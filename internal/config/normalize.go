package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeStorage(); err != nil {
		return err
	}
	if err := c.normalizeCatalog(); err != nil {
		return err
	}
	c.normalizeNotifications()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.Manifest, err = expandPath(c.Paths.Manifest); err != nil {
		return fmt.Errorf("paths.manifest: %w", err)
	}
	if c.Paths.ImagesDir, err = expandPath(c.Paths.ImagesDir); err != nil {
		return fmt.Errorf("paths.images_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.OverridesFile) == "" {
		c.Paths.OverridesFile = defaultOverridesFile
	}
	if c.Paths.OverridesFile, err = expandPath(c.Paths.OverridesFile); err != nil {
		return fmt.Errorf("paths.overrides_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeStorage() error {
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultStorageBackend
	}
	c.Storage.BaseURL = strings.TrimRight(strings.TrimSpace(c.Storage.BaseURL), "/")
	c.Storage.Bucket = strings.TrimSpace(c.Storage.Bucket)
	if c.Storage.Bucket == "" {
		c.Storage.Bucket = defaultBucketName
	}
	c.Storage.ServiceKey = strings.TrimSpace(c.Storage.ServiceKey)
	if c.Storage.ServiceKey == "" {
		if value, ok := os.LookupEnv(serviceKeyEnvVariable); ok {
			c.Storage.ServiceKey = strings.TrimSpace(value)
		}
	}
	if strings.TrimSpace(c.Storage.LocalDir) == "" {
		c.Storage.LocalDir = defaultLocalStoreDir
	}
	var err error
	if c.Storage.LocalDir, err = expandPath(c.Storage.LocalDir); err != nil {
		return fmt.Errorf("storage.local_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCatalog() error {
	c.Catalog.Backend = strings.ToLower(strings.TrimSpace(c.Catalog.Backend))
	if c.Catalog.Backend == "" {
		c.Catalog.Backend = defaultCatalogBackend
	}
	if strings.TrimSpace(c.Catalog.DBPath) == "" {
		c.Catalog.DBPath = defaultCatalogDBPath
	}
	var err error
	if c.Catalog.DBPath, err = expandPath(c.Catalog.DBPath); err != nil {
		return fmt.Errorf("catalog.db_path: %w", err)
	}
	c.Catalog.BaseURL = strings.TrimRight(strings.TrimSpace(c.Catalog.BaseURL), "/")
	// The hosted record service and the bucket usually share a project URL.
	if c.Catalog.BaseURL == "" {
		c.Catalog.BaseURL = c.Storage.BaseURL
	}
	c.Catalog.Table = strings.TrimSpace(c.Catalog.Table)
	if c.Catalog.Table == "" {
		c.Catalog.Table = defaultCatalogTable
	}
	return nil
}

func (c *Config) normalizeNotifications() {
	topic := strings.TrimSpace(c.Notifications.NtfyTopic)
	if topic != "" && !strings.Contains(topic, "://") {
		topic = fmt.Sprintf(defaultNtfyEndpointFmt, topic)
	}
	c.Notifications.NtfyTopic = topic
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNotifyTimeout
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
