package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// WhitelistFile is the flat file backing the curated whitelist.
	WhitelistFile string `koanf:"whitelist_file" validate:"required"`

	// BlacklistFile is the flat file backing the curated blacklist.
	BlacklistFile string `koanf:"blacklist_file" validate:"required"`

	// DynamicBlacklistFile is the flat file the pipeline appends flagged
	// domains to as a side effect of suspicious verdicts.
	DynamicBlacklistFile string `koanf:"dynamic_blacklist_file" validate:"required"`

	// WhoisTimeout is the per-server WHOIS query timeout in seconds.
	WhoisTimeout uint `koanf:"whois_timeout" validate:"required,gte=1,lte=60"`

	// WhoisServers are the generic fallback WHOIS servers probed after the
	// TLD-specific server, in order.
	WhoisServers []string `koanf:"whois_servers" validate:"required,dive,hostname"`

	// DNSCacheSize bounds the per-session memo of DNS existence answers.
	// Zero disables the memo entirely.
	DNSCacheSize uint `koanf:"dns_cache_size"`
}

// DEFAULT_APP_CONFIG defines the default application configuration settings.
// List files default to the working directory so the tool runs without any
// environment at all.
var DEFAULT_APP_CONFIG = AppConfig{
	Env:                  "prod",
	LogLevel:             "info",
	WhitelistFile:        "whitelist_urls.txt",
	BlacklistFile:        "blacklist_urls.txt",
	DynamicBlacklistFile: "dynamic_blacklist.txt",
	WhoisTimeout:         6,
	WhoisServers:         []string{"whois.iana.org", "whois.crsnic.net", "whois.verisign-grs.com"},
	DNSCacheSize:         128,
}

// envLoader loads environment variables with the prefix "URLVET_".
// Keys are lowercased with the prefix removed; values containing spaces or
// commas are split into lists. It can be swapped out in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "URLVET_",
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, "URLVET_"))
			value = strings.TrimSpace(value)

			if value == "" {
				return key, value
			}

			if strings.Contains(value, " ") || strings.Contains(value, ",") {
				parts := strings.FieldsFunc(value, func(r rune) bool {
					return r == ' ' || r == ','
				})
				return key, parts
			}

			return key, value
		},
	}), nil)
}

// defaultLoader loads default configuration values into the provided Koanf
// instance using the structs provider.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	err := defaultLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	err = envLoader(k)
	if err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig

	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	err = validate.Struct(&cfg)
	if err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
