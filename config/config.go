package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"lostfound/internal/domain/constants"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
	"github.com/wb-go/wbf/retry"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "8MB"
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

	// Storage selects the item store backend
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// SQLite configuration for local development
	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	// Matching tunes the similarity matcher
	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	// Dispatch configures how notification jobs reach delivery
	Dispatch *DispatchConfig `json:"dispatch" yaml:"dispatch"`

	// Notification selects the email and push transports
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// SMTP configuration for the email transport
	SMTP *SMTPConfig `json:"smtp" yaml:"smtp"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Redis configuration for the delivery guard
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// ImageStorage configuration for uploaded photos
	ImageStorage *ImageStorageConfig `json:"imageStorage" yaml:"imageStorage"`

	// Auth configuration for request credentials
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// QRCode configuration for claim QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Worker configures the notifier process
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// StorageConfig defines which database driver backs the repositories
type StorageConfig struct {
	// Driver: "postgres" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`
}

// SQLiteConfig defines the SQLite database location
type SQLiteConfig struct {
	// Path to the database file, ":memory:" for an ephemeral store
	Path string `json:"path" yaml:"path"`
}

// MatchingConfig defines the similarity matcher weights and limits
type MatchingConfig struct {
	TextWeight     float64       `json:"textWeight" yaml:"textWeight"`
	LocationWeight float64       `json:"locationWeight" yaml:"locationWeight"`
	TimeWeight     float64       `json:"timeWeight" yaml:"timeWeight"`
	Threshold      float64       `json:"threshold" yaml:"threshold"`
	MaxMatches     int           `json:"maxMatches" yaml:"maxMatches"`
	RecencyWindow  time.Duration `json:"recencyWindow" yaml:"recencyWindow"`
	FalloffMeters  float64       `json:"falloffMeters" yaml:"falloffMeters"`

	// CategoryFilter restricts the pool to the same category; when false a mismatch halves the score
	CategoryFilter bool `json:"categoryFilter" yaml:"categoryFilter"`
}

// DispatchConfig defines notification job dispatch
type DispatchConfig struct {
	// Mode: "inprocess" worker pool or "queue" through the event publisher
	Mode string `json:"mode" yaml:"mode"`

	// Number of worker goroutines for the in-process pool
	Workers int `json:"workers" yaml:"workers"`

	// Buffered job slots for the in-process pool
	QueueSize int `json:"queueSize" yaml:"queueSize"`

	// Delivery rounds before a job is marked failed
	MaxAttempts int `json:"maxAttempts" yaml:"maxAttempts"`

	// Per-channel retry within one delivery round
	Retry RetryConfig `json:"retry" yaml:"retry"`

	// Guard provider: "memory" or "redis"
	Guard string `json:"guard" yaml:"guard"`

	// How long a delivery guard is held
	GuardTTL time.Duration `json:"guardTtl" yaml:"guardTtl"`

	// Pending jobs re-dispatched at startup
	RequeueLimit int `json:"requeueLimit" yaml:"requeueLimit"`
}

// RetryConfig defines a bounded exponential retry policy
type RetryConfig struct {
	Attempts int           `json:"attempts" yaml:"attempts"`
	Delay    time.Duration `json:"delay" yaml:"delay"`
	Backoff  float64       `json:"backoff" yaml:"backoff"`
}

// Strategy converts the policy to the retry package's representation
func (r RetryConfig) Strategy() retry.Strategy {
	return retry.Strategy{Attempts: r.Attempts, Delay: r.Delay, Backoff: r.Backoff}
}

// NotificationConfig selects transports per channel
type NotificationConfig struct {
	// Email provider: "smtp" or "log"
	Email string `json:"email" yaml:"email"`

	// Push provider: "firebase" or "log"
	Push string `json:"push" yaml:"push"`
}

// SMTPConfig defines the outgoing mail server
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	FromName string `json:"fromName" yaml:"fromName"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "kafka" for Kafka
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google and kafka providers)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Kafka bootstrap brokers (for kafka provider)
	Brokers []string `json:"brokers" yaml:"brokers"`

	// Kafka consumer group of the notifier worker
	ConsumerGroup string `json:"consumerGroup" yaml:"consumerGroup"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// ImageStorageConfig defines where uploaded photos are stored
type ImageStorageConfig struct {
	// Provider: "s3" or "blob"
	Provider string `json:"provider" yaml:"provider"`

	// Bucket name (s3) or bucket URL such as file:///var/lib/lostfound or mem:// (blob)
	Bucket string `json:"bucket" yaml:"bucket"`

	Region       string `json:"region" yaml:"region"`
	Profile      string `json:"profile" yaml:"profile"`
	Endpoint     string `json:"endpoint" yaml:"endpoint"`
	UsePathStyle bool   `json:"usePathStyle" yaml:"usePathStyle"`

	// Prefix prepended to object keys to build public URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	// Longest edge after downscaling
	MaxDimension int `json:"maxDimension" yaml:"maxDimension"`

	// JPEG encoding quality
	Quality int `json:"quality" yaml:"quality"`
}

// AuthConfig defines request credential verification
type AuthConfig struct {
	// Enabled requires a bearer token on write routes
	Enabled bool `json:"enabled" yaml:"enabled"`

	// HS256 secret shared with the identity provider
	Secret string `json:"secret" yaml:"secret"`

	// Expected token issuer, empty to skip the check
	Issuer string `json:"issuer" yaml:"issuer"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// WorkerConfig defines the notifier worker endpoints
type WorkerConfig struct {
	// Port of the push endpoint
	Port int `json:"port" yaml:"port"`

	// Consume job events from Kafka when pubsub.provider is "kafka"
	ConsumeKafka bool `json:"consumeKafka" yaml:"consumeKafka"`
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
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills sections left out of the YAML file.
func applyDefaults(cfg *Config) {
	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{Driver: constants.StorageDriverSQLite}
	}
	if cfg.SQLite == nil {
		cfg.SQLite = &SQLiteConfig{Path: "lostfound.db"}
	}
	if cfg.Matching == nil {
		cfg.Matching = DefaultMatching()
	}
	if cfg.Dispatch == nil {
		cfg.Dispatch = &DispatchConfig{}
	}
	applyDispatchDefaults(cfg.Dispatch)
	if cfg.Notification == nil {
		cfg.Notification = &NotificationConfig{}
	}
	if cfg.Notification.Email == "" {
		cfg.Notification.Email = constants.TransportProviderLog
	}
	if cfg.Notification.Push == "" {
		cfg.Notification.Push = constants.TransportProviderLog
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.ImageStorage == nil {
		cfg.ImageStorage = &ImageStorageConfig{Provider: constants.ImageStorageBlob, Bucket: "mem://"}
	}
	if cfg.ImageStorage.MaxDimension <= 0 {
		cfg.ImageStorage.MaxDimension = 1024
	}
	if cfg.ImageStorage.Quality <= 0 {
		cfg.ImageStorage.Quality = 85
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
	if cfg.Worker == nil {
		cfg.Worker = &WorkerConfig{}
	}
	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = 8081
	}
}

// DefaultMatching returns the matcher tuning used when none is configured.
func DefaultMatching() *MatchingConfig {
	return &MatchingConfig{
		TextWeight:     0.6,
		LocationWeight: 0.25,
		TimeWeight:     0.15,
		Threshold:      0.6,
		MaxMatches:     5,
		RecencyWindow:  30 * 24 * time.Hour,
		FalloffMeters:  250,
		CategoryFilter: true,
	}
}

func applyDispatchDefaults(d *DispatchConfig) {
	if d.Mode == "" {
		d.Mode = constants.DispatchModeInProcess
	}
	if d.Workers <= 0 {
		d.Workers = 4
	}
	if d.QueueSize <= 0 {
		d.QueueSize = 256
	}
	if d.MaxAttempts <= 0 {
		d.MaxAttempts = 5
	}
	if d.Retry.Attempts <= 0 {
		d.Retry = RetryConfig{Attempts: 3, Delay: 500 * time.Millisecond, Backoff: 2}
	}
	if d.Guard == "" {
		d.Guard = constants.GuardProviderMemory
	}
	if d.GuardTTL <= 0 {
		d.GuardTTL = 2 * time.Minute
	}
	if d.RequeueLimit <= 0 {
		d.RequeueLimit = 500
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
