package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/atomicstack/barstock/internal/app"
	"github.com/atomicstack/barstock/internal/store"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envStore          = "BARSTOCK_STORE"
	envDBPath         = "BARSTOCK_DB"
	envCatalog        = "BARSTOCK_CATALOG"
	envCatalogTimeout = "BARSTOCK_CATALOG_TIMEOUT"
	envS3Region       = "BARSTOCK_S3_REGION"
	envS3Endpoint     = "BARSTOCK_S3_ENDPOINT"
	envS3PathStyle    = "BARSTOCK_S3_PATH_STYLE"
	envS3AccessKeyID  = "BARSTOCK_S3_ACCESS_KEY_ID"
	envS3SecretKey    = "BARSTOCK_S3_SECRET_ACCESS_KEY"
	envWidth          = "BARSTOCK_WIDTH"
	envHeight         = "BARSTOCK_HEIGHT"
	envShowFooter     = "BARSTOCK_FOOTER"
	envVerbose        = "BARSTOCK_VERBOSE"
	envTrace          = "BARSTOCK_TRACE"
	envLogFile        = "BARSTOCK_LOG_FILE"
)

const defaultCatalogTimeout = 5 * time.Second

// Flags holds the values bound to a flag set by Register.
type Flags struct {
	store          *string
	db             *string
	catalog        *string
	catalogTimeout *time.Duration
	s3Region       *string
	s3Endpoint     *string
	s3PathStyle    *bool
	s3AccessKeyID  *string
	s3SecretKey    *string
	width          *int
	height         *int
	footer         *bool
	trace          *bool
	verbose        *bool
	logFile        *string
}

// Register defines every flag on fs, defaulting each to its environment
// variable when set.
func Register(fs *pflag.FlagSet, environ []string) *Flags {
	env := parseEnv(environ)
	return &Flags{
		store:          fs.String("store", envOrDefault(env, envStore, string(store.DriverSQLite)), "storage driver: sqlite, file or memory"),
		db:             fs.String("db", envOrDefault(env, envDBPath, ""), "database file (sqlite) or directory (file)"),
		catalog:        fs.String("catalog", envOrDefault(env, envCatalog, "builtin"), "catalog location: path, http(s) URL, s3://bucket/key, builtin or none"),
		catalogTimeout: fs.Duration("catalog-timeout", envOrDuration(env, envCatalogTimeout, defaultCatalogTimeout), "time allowed for fetching the catalog"),
		s3Region:       fs.String("s3-region", envOrDefault(env, envS3Region, ""), "region for s3:// catalogs"),
		s3Endpoint:     fs.String("s3-endpoint", envOrDefault(env, envS3Endpoint, ""), "custom endpoint for s3:// catalogs (e.g. MinIO)"),
		s3PathStyle:    fs.Bool("s3-path-style", envOrBool(env, envS3PathStyle, false), "use path-style addressing for s3:// catalogs"),
		s3AccessKeyID:  fs.String("s3-access-key-id", envOrDefault(env, envS3AccessKeyID, ""), "static access key for s3:// catalogs (default AWS chain when empty)"),
		s3SecretKey:    fs.String("s3-secret-access-key", envOrDefault(env, envS3SecretKey, ""), "static secret key for s3:// catalogs"),
		width:          fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)"),
		height:         fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)"),
		footer:         fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key help footer"),
		trace:          fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		verbose:        fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions"),
		logFile:        fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config assembles the parsed flag values. args is recorded verbatim.
func (f *Flags) Config(args []string) (Config, error) {
	if *f.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *f.width)
	}
	if *f.height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *f.height)
	}
	cfg := Config{
		App: app.Config{
			Store:          *f.store,
			DBPath:         *f.db,
			Catalog:        *f.catalog,
			CatalogTimeout: *f.catalogTimeout,
			S3Region:       *f.s3Region,
			S3Endpoint:     *f.s3Endpoint,
			S3PathStyle:    *f.s3PathStyle,
			Width:          *f.width,
			Height:         *f.height,
			ShowFooter:     *f.footer,
			Verbose:        *f.verbose,

			S3AccessKeyID:     *f.s3AccessKeyID,
			S3SecretAccessKey: *f.s3SecretKey,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Trace:    *f.trace,
		},
		Flags: map[string]string{
			"store":          *f.store,
			"db":             *f.db,
			"catalog":        *f.catalog,
			"catalogTimeout": f.catalogTimeout.String(),
			"s3Region":       *f.s3Region,
			"s3Endpoint":     *f.s3Endpoint,
			"s3PathStyle":    strconv.FormatBool(*f.s3PathStyle),
			"s3AccessKeyID":  *f.s3AccessKeyID,
			"s3SecretKey":    redact(*f.s3SecretKey),
			"width":          strconv.Itoa(*f.width),
			"height":         strconv.Itoa(*f.height),
			"footer":         strconv.FormatBool(*f.footer),
			"trace":          strconv.FormatBool(*f.trace),
			"verbose":        strconv.FormatBool(*f.verbose),
			"logFile":        *f.logFile,
		},
		Args: append([]string(nil), args...),
	}
	return cfg, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("barstock", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	flags := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return flags.Config(args)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "<redacted>"
}

// Redacted returns cfg with secrets masked, for trace output.
func (c Config) Redacted() Config {
	c.App.S3SecretAccessKey = redact(c.App.S3SecretAccessKey)
	return c
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects settings the application cannot start with.
func Validate(cfg Config) error {
	if !store.ValidDriver(cfg.App.Store) {
		return fmt.Errorf("unknown store driver %q (want sqlite, file or memory)", cfg.App.Store)
	}
	if cfg.App.CatalogTimeout <= 0 {
		return fmt.Errorf("catalog timeout must be positive (got %s)", cfg.App.CatalogTimeout)
	}
	return nil
}
