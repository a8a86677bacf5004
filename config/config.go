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
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// OpenAI configuration for the advisory engine
	OpenAI *OpenAIConfig `json:"openai" yaml:"openai"`

	// Advisory configuration for the generation pipeline
	Advisory *AdvisoryConfig `json:"advisory" yaml:"advisory"`

	// PubSub configuration for the realtime change feed
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for device provisioning codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Export configuration for readings archival
	Export *ExportConfig `json:"export" yaml:"export"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// OpenAIConfig defines the external text-generation collaborator settings
type OpenAIConfig struct {
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// BaseURL overrides the API endpoint (tests, proxies). Defaults to the
	// public OpenAI endpoint when empty.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	Model string `json:"model" yaml:"model"`

	// Timeout bounds one completion call end to end
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// AdvisoryConfig defines the advisory generation pipeline settings
type AdvisoryConfig struct {
	// ReadingWindow is the trailing window of readings fed to the aggregator
	ReadingWindow time.Duration `json:"readingWindow" yaml:"readingWindow"`

	// ReadingLimit caps the number of rows fetched from the window, newest first
	ReadingLimit int `json:"readingLimit" yaml:"readingLimit"`

	// SuppressionWindow is the idempotency gate: no non-forced generation
	// while an advisory for the device is younger than this
	SuppressionWindow time.Duration `json:"suppressionWindow" yaml:"suppressionWindow"`
}

// PubSubConfig defines the change feed publisher settings
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// ExportConfig defines readings archival configuration
type ExportConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. "file:///var/agrisense/exports"
	// or "gs://agrisense-exports"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// Defaults applied when the corresponding config sections are absent.
const (
	DefaultReadingWindow     = 24 * time.Hour
	DefaultReadingLimit      = 50
	DefaultSuppressionWindow = 6 * time.Hour
	DefaultOpenAITimeout     = 30 * time.Second
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultOpenAIBaseURL     = "https://api.openai.com"
)

// WithDefaults returns a copy of the settings with defaults filled in.
func (c *OpenAIConfig) WithDefaults() OpenAIConfig {
	settings := OpenAIConfig{
		BaseURL: DefaultOpenAIBaseURL,
		Model:   DefaultOpenAIModel,
		Timeout: DefaultOpenAITimeout,
	}
	if c == nil {
		return settings
	}

	settings.APIKey = c.APIKey
	if c.BaseURL != "" {
		settings.BaseURL = c.BaseURL
	}
	if c.Model != "" {
		settings.Model = c.Model
	}
	if c.Timeout > 0 {
		settings.Timeout = c.Timeout
	}

	return settings
}

// AdvisorySettings returns the advisory pipeline settings with defaults filled in.
func (c *Config) AdvisorySettings() AdvisoryConfig {
	settings := AdvisoryConfig{
		ReadingWindow:     DefaultReadingWindow,
		ReadingLimit:      DefaultReadingLimit,
		SuppressionWindow: DefaultSuppressionWindow,
	}
	if c.Advisory == nil {
		return settings
	}

	if c.Advisory.ReadingWindow > 0 {
		settings.ReadingWindow = c.Advisory.ReadingWindow
	}
	if c.Advisory.ReadingLimit > 0 {
		settings.ReadingLimit = c.Advisory.ReadingLimit
	}
	if c.Advisory.SuppressionWindow > 0 {
		settings.SuppressionWindow = c.Advisory.SuppressionWindow
	}

	return settings
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
			// Example: OPENAI_APIKEY -> openai.apiKey (not openai.apikey)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
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
