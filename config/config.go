package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultMatchRadiusMiles = 25.0
	defaultMaxRadiusMiles   = 250.0
	defaultSearchWorkers    = 10
	defaultLockTimeout      = 5 * time.Second
	defaultLockTTL          = 15 * time.Second
	defaultBcryptCost       = 12
	defaultAccessTokenTTL   = 24 * time.Hour
	defaultGeocodeTimeout   = 5 * time.Second
	defaultGeocodeCacheSize = 1000
	defaultGeocodeCacheTTL  = 24 * time.Hour

	LockProviderMemory = "memory"
	LockProviderRedis  = "redis"

	GeocodingProviderGoogle = "google"
	GeocodingProviderNone   = "none"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Search configures the availability query engine
	Search *SearchConfig `json:"search" yaml:"search"`

	// Booking configures the booking ledger's write serialization
	Booking *BookingConfig `json:"booking" yaml:"booking"`

	// Redis is only required when booking.lock.provider is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Geocoding configures place-id to coordinate resolution
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// PubSub configuration for booking event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SearchConfig defines availability search behavior
type SearchConfig struct {
	// Radius applied when a search point is given without an explicit radius
	MatchRadiusMiles float64 `json:"matchRadiusMiles" yaml:"matchRadiusMiles"`

	// Upper bound for a caller-supplied radius
	MaxRadiusMiles float64 `json:"maxRadiusMiles" yaml:"maxRadiusMiles"`

	// Number of concurrent occupancy lookups per search
	Workers int `json:"workers" yaml:"workers"`
}

// BookingConfig defines booking ledger configuration
type BookingConfig struct {
	// Maximum time a create/update waits for the property lock
	LockTimeout time.Duration `json:"lockTimeout" yaml:"lockTimeout"`

	Lock struct {
		// Provider type: "memory" for a single instance or "redis" for a shared lock
		Provider string `json:"provider" yaml:"provider"`

		// Expiry of a redis lock key, bounds how long a crashed holder blocks others
		TTL time.Duration `json:"ttl" yaml:"ttl"`
	} `json:"lock" yaml:"lock"`
}

// RedisConfig defines the redis connection used for distributed locks
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// GeocodingConfig defines the geocoding adapter configuration
type GeocodingConfig struct {
	// Provider type: "google" for Google Place Details or "none" to disable
	Provider string `json:"provider" yaml:"provider"`

	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// In-process cache size and TTL for resolved places
	CacheSize int64         `json:"cacheSize" yaml:"cacheSize"`
	CacheTTL  time.Duration `json:"cacheTtl" yaml:"cacheTtl"`

	// Optional memcached servers used as a shared second cache level
	MemcachedServers []string `json:"memcachedServers" yaml:"memcachedServers"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "gocloud" or "rabbitmq"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Service account file; application default credentials are used when empty
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Topic URL understood by gocloud.dev/pubsub, e.g. mem://bookings (for gocloud provider)
	URL string `json:"url" yaml:"url"`

	// AMQP connection string and exchange (for rabbitmq provider)
	RabbitURL string `json:"rabbitUrl" yaml:"rabbitUrl"`
	Exchange  string `json:"exchange" yaml:"exchange"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so consumers never see nil pointers.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL <= 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.MatchRadiusMiles <= 0 {
		cfg.Search.MatchRadiusMiles = defaultMatchRadiusMiles
	}
	if cfg.Search.MaxRadiusMiles < cfg.Search.MatchRadiusMiles {
		cfg.Search.MaxRadiusMiles = max(defaultMaxRadiusMiles, cfg.Search.MatchRadiusMiles)
	}
	if cfg.Search.Workers <= 0 {
		cfg.Search.Workers = defaultSearchWorkers
	}

	if cfg.Booking == nil {
		cfg.Booking = &BookingConfig{}
	}
	if cfg.Booking.LockTimeout <= 0 {
		cfg.Booking.LockTimeout = defaultLockTimeout
	}
	if cfg.Booking.Lock.Provider == "" {
		cfg.Booking.Lock.Provider = LockProviderMemory
	}
	if cfg.Booking.Lock.TTL <= 0 {
		cfg.Booking.Lock.TTL = defaultLockTTL
	}

	if cfg.Geocoding == nil {
		cfg.Geocoding = &GeocodingConfig{Provider: GeocodingProviderNone}
	}
	if cfg.Geocoding.Provider == "" {
		cfg.Geocoding.Provider = GeocodingProviderNone
	}
	if cfg.Geocoding.Timeout <= 0 {
		cfg.Geocoding.Timeout = defaultGeocodeTimeout
	}
	if cfg.Geocoding.CacheSize <= 0 {
		cfg.Geocoding.CacheSize = defaultGeocodeCacheSize
	}
	if cfg.Geocoding.CacheTTL <= 0 {
		cfg.Geocoding.CacheTTL = defaultGeocodeCacheTTL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
