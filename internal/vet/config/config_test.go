package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	// No env overrides
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.WhitelistFile != "whitelist_urls.txt" {
		t.Errorf("expected WhitelistFile=whitelist_urls.txt, got %q", cfg.WhitelistFile)
	}
	if cfg.BlacklistFile != "blacklist_urls.txt" {
		t.Errorf("expected BlacklistFile=blacklist_urls.txt, got %q", cfg.BlacklistFile)
	}
	if cfg.DynamicBlacklistFile != "dynamic_blacklist.txt" {
		t.Errorf("expected DynamicBlacklistFile=dynamic_blacklist.txt, got %q", cfg.DynamicBlacklistFile)
	}
	if cfg.WhoisTimeout != 6 {
		t.Errorf("expected WhoisTimeout=6, got %d", cfg.WhoisTimeout)
	}
	if cfg.DNSCacheSize != 128 {
		t.Errorf("expected DNSCacheSize=128, got %d", cfg.DNSCacheSize)
	}
	wantServers := []string{"whois.iana.org", "whois.crsnic.net", "whois.verisign-grs.com"}
	if len(cfg.WhoisServers) != len(wantServers) {
		t.Fatalf("expected %d whois servers, got %d", len(wantServers), len(cfg.WhoisServers))
	}
	for i, v := range wantServers {
		if cfg.WhoisServers[i] != v {
			t.Errorf("expected WhoisServers[%d]=%q, got %q", i, v, cfg.WhoisServers[i])
		}
	}
}

func TestLoad_ValidOverrides(t *testing.T) {
	t.Setenv("URLVET_ENV", "dev")
	t.Setenv("URLVET_LOG_LEVEL", "debug")
	t.Setenv("URLVET_WHITELIST_FILE", "/tmp/wl.txt")
	t.Setenv("URLVET_BLACKLIST_FILE", "/tmp/bl.txt")
	t.Setenv("URLVET_DYNAMIC_BLACKLIST_FILE", "/tmp/dyn.txt")
	t.Setenv("URLVET_WHOIS_TIMEOUT", "10")
	t.Setenv("URLVET_WHOIS_SERVERS", "whois.iana.org whois.nic.io")
	t.Setenv("URLVET_DNS_CACHE_SIZE", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Env != "dev" {
		t.Errorf("expected Env=dev, got %q", cfg.Env)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel=debug, got %q", cfg.LogLevel)
	}
	if cfg.WhitelistFile != "/tmp/wl.txt" {
		t.Errorf("expected WhitelistFile=/tmp/wl.txt, got %q", cfg.WhitelistFile)
	}
	if cfg.WhoisTimeout != 10 {
		t.Errorf("expected WhoisTimeout=10, got %d", cfg.WhoisTimeout)
	}
	if cfg.DNSCacheSize != 0 {
		t.Errorf("expected DNSCacheSize=0, got %d", cfg.DNSCacheSize)
	}
	wantServers := []string{"whois.iana.org", "whois.nic.io"}
	if len(cfg.WhoisServers) != len(wantServers) {
		t.Fatalf("expected %d whois servers, got %d", len(wantServers), len(cfg.WhoisServers))
	}
	for i, v := range wantServers {
		if cfg.WhoisServers[i] != v {
			t.Errorf("expected WhoisServers[%d]=%q, got %q", i, v, cfg.WhoisServers[i])
		}
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad env", "URLVET_ENV", "staging"},
		{"bad log level", "URLVET_LOG_LEVEL", "verbose"},
		{"timeout too small", "URLVET_WHOIS_TIMEOUT", "0"},
		{"timeout too large", "URLVET_WHOIS_TIMEOUT", "120"},
		{"empty whitelist file", "URLVET_WHITELIST_FILE", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := Load()
			if err == nil {
				t.Fatalf("expected validation error for %s=%q, got nil", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), "validation failed") {
				t.Errorf("expected validation error, got: %v", err)
			}
		})
	}
}

func TestLoad_EnvLoaderError(t *testing.T) {
	orig := envLoader
	defer func() { envLoader = orig }()
	envLoader = func(k *koanf.Koanf) error {
		return errors.New("boom")
	}

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "error loading env") {
		t.Fatalf("expected env loader error, got: %v", err)
	}
}

func TestLoad_DefaultLoaderError(t *testing.T) {
	orig := defaultLoader
	defer func() { defaultLoader = orig }()
	defaultLoader = func(k *koanf.Koanf) error {
		return errors.New("boom")
	}

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "error loading default config") {
		t.Fatalf("expected default loader error, got: %v", err)
	}
}
