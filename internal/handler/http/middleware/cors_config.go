package middleware

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// corsPolicyFile is the on-disk YAML shape of the CORS policy.
type corsPolicyFile struct {
	AllowedOrigins        []string `yaml:"allowed_origins"`
	AllowExtensionOrigins bool     `yaml:"allow_extension_origins"`
	AllowedMethods        []string `yaml:"allowed_methods"`
	AllowedHeaders        []string `yaml:"allowed_headers"`
	MaxAge                int      `yaml:"max_age"`
}

// DefaultCORSConfig returns the policy used when no policy file is configured:
// any extension origin is accepted and the popup's methods and headers are allowed.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowExtensionOrigins: true,
		AllowedMethods:        []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:        []string{"Content-Type", "X-Request-ID"},
		MaxAge:                86400,
	}
}

// LoadCORSConfig reads a CORS policy from the YAML file at path.
// Missing fields fall back to the defaults from DefaultCORSConfig.
//
// Example policy file:
//
//	allowed_origins:
//	  - chrome-extension://abcdefghijklmnopabcdefghijklmnop
//	allow_extension_origins: false
//	max_age: 3600
func LoadCORSConfig(path string) (CORSConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CORSConfig{}, fmt.Errorf("failed to read CORS policy file: %w", err)
	}

	var file corsPolicyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return CORSConfig{}, fmt.Errorf("failed to parse CORS policy file: %w", err)
	}

	cfg := DefaultCORSConfig()
	cfg.AllowExtensionOrigins = file.AllowExtensionOrigins

	if len(file.AllowedOrigins) > 0 {
		origins := make([]string, 0, len(file.AllowedOrigins))
		for _, origin := range file.AllowedOrigins {
			origin = strings.TrimSpace(origin)
			if origin == "" {
				continue
			}
			if err := validateOrigin(origin); err != nil {
				return CORSConfig{}, err
			}
			origins = append(origins, origin)
		}
		cfg.AllowedOrigins = origins
	}
	if len(file.AllowedMethods) > 0 {
		cfg.AllowedMethods = file.AllowedMethods
	}
	if len(file.AllowedHeaders) > 0 {
		cfg.AllowedHeaders = file.AllowedHeaders
	}
	if file.MaxAge > 0 {
		cfg.MaxAge = file.MaxAge
	}

	return cfg, nil
}

// validateOrigin ensures an origin entry is a bare scheme://host origin.
func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
	}

	switch u.Scheme {
	case "http", "https", "chrome-extension", "moz-extension":
	default:
		return fmt.Errorf("origin has unsupported scheme: %s", origin)
	}

	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("origin must not include path: %s", origin)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include query or fragment: %s", origin)
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("origin must not have trailing slash: %s", origin)
	}

	return nil
}
