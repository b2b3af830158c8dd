package config

// Backend names accepted by the storage and catalog sections.
const (
	BackendBucket     = "bucket"
	BackendFilesystem = "filesystem"
	BackendSQLite     = "sqlite"
	BackendREST       = "rest"
)

const (
	defaultManifestPath    = "~/recetario/recipes.json"
	defaultImagesDir       = "~/recetario/images"
	defaultLogDir          = "~/.local/share/recetario/logs"
	defaultOverridesFile   = "~/.config/recetario/overrides.toml"
	defaultStorageBackend  = BackendBucket
	defaultBucketName      = "recipe-images"
	defaultLocalStoreDir   = "~/.local/share/recetario/bucket"
	defaultCatalogBackend  = BackendSQLite
	defaultCatalogDBPath   = "~/.local/share/recetario/catalog.db"
	defaultCatalogTable    = "recipes"
	defaultThrottleMS      = 150
	defaultRetryAttempts   = 3
	defaultRetryBaseMS     = 500
	defaultNotifyTimeout   = 10
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	serviceKeyEnvVariable  = "RECETARIO_SERVICE_KEY"
	defaultNtfyEndpointFmt = "https://ntfy.sh/%s"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Manifest:      defaultManifestPath,
			ImagesDir:     defaultImagesDir,
			LogDir:        defaultLogDir,
			OverridesFile: defaultOverridesFile,
		},
		Storage: Storage{
			Backend:  defaultStorageBackend,
			Bucket:   defaultBucketName,
			LocalDir: defaultLocalStoreDir,
		},
		Catalog: Catalog{
			Backend: defaultCatalogBackend,
			DBPath:  defaultCatalogDBPath,
			Table:   defaultCatalogTable,
		},
		Importer: Importer{
			ThrottleMS:    defaultThrottleMS,
			RetryAttempts: defaultRetryAttempts,
			RetryBaseMS:   defaultRetryBaseMS,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNotifyTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
