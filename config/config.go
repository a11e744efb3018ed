// Package config loads the service configuration from <env>.yaml files with
// environment-variable overrides, through koanf.
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
	defaultPath           = "."
	defaultRoutePrefix    = "/v1"
	defaultTemplatePath   = "./templates"
	defaultSigningTimeout = 30 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int    `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Wallet configures the web-service protocol surface.
	Wallet *WalletConfig `json:"wallet" yaml:"wallet"`

	// APNs configures the push transport.
	APNs *APNsConfig `json:"apns" yaml:"apns"`

	// Signing configures manifest signature generation per subject kind.
	Signing *SigningConfig `json:"signing" yaml:"signing"`
}

// WalletConfig defines protocol-surface configuration.
type WalletConfig struct {
	// RoutePrefix is the deployment-configurable path prefix the fixed
	// route shapes hang off, "/v1" by default.
	RoutePrefix string `json:"routePrefix" yaml:"routePrefix"`

	// OperatorSecret authorizes the push-trigger routes. Distinct from any
	// subject's authentication token.
	OperatorSecret string `json:"operatorSecret" yaml:"operatorSecret"`

	// TemplatePath is the root directory holding one template directory
	// per type identifier.
	TemplatePath string `json:"templatePath" yaml:"templatePath"`
}

// APNsConfig defines the push transport configuration. The transport always
// targets the production APNs gateway; Wallet pushes are rejected by the
// sandbox gateway, so no environment switch exists here.
type APNsConfig struct {
	CertificatePath string `json:"certificatePath" yaml:"certificatePath"` // PKCS#12 client certificate.
	CertificateKey  string `json:"certificateKey" yaml:"certificateKey"`   // PKCS#12 password, empty when unprotected.
}

// SigningConfig defines certificate material for bundle signing.
type SigningConfig struct {
	CertificatePath string        `json:"certificatePath" yaml:"certificatePath"` // Signer certificate, PEM.
	PrivateKeyPath  string        `json:"privateKeyPath" yaml:"privateKeyPath"`   // Signer private key, PEM.
	KeyPassword     string        `json:"keyPassword" yaml:"keyPassword"`         // Non-empty selects the external openssl path.
	WWDRPath        string        `json:"wwdrPath" yaml:"wwdrPath"`               // Apple WWDR intermediate certificate, PEM.
	OpenSSLPath     string        `json:"opensslPath" yaml:"opensslPath"`         // openssl binary, defaults to PATH lookup.
	Timeout         time.Duration `json:"timeout" yaml:"timeout"`                 // Bound on the external signing subprocess.
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
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
			// Example: SIGNING_WWDRPATH -> signing.wwdrPath (not signing.wwdrpath)
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

	if cfg.Wallet == nil {
		cfg.Wallet = &WalletConfig{}
	}
	if strings.TrimSpace(cfg.Wallet.RoutePrefix) == "" {
		cfg.Wallet.RoutePrefix = defaultRoutePrefix
	}
	if strings.TrimSpace(cfg.Wallet.TemplatePath) == "" {
		cfg.Wallet.TemplatePath = defaultTemplatePath
	}
	if cfg.Signing != nil && cfg.Signing.Timeout <= 0 {
		cfg.Signing.Timeout = defaultSigningTimeout
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

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
