package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds signing parameters shared by the packager runs.
type Config struct {
	// CertificatePath is the PEM file with the issuer certificate.
	CertificatePath string `yaml:"certificate"`
	// KeyPath is the PEM file with the issuer private key.
	KeyPath string `yaml:"key"`
	// ChainCertificatePath is the PEM file with the intermediate certificate.
	ChainCertificatePath string `yaml:"chain_certificate"`
	// PassphraseEnv names the environment variable holding the key
	// passphrase. Empty means the key is not encrypted.
	PassphraseEnv string `yaml:"passphrase_env"`
	// AssetsDir is an optional directory whose files are attached to the
	// archive as asset members.
	AssetsDir string `yaml:"assets_dir"`
}

const (
	// DefaultConfigFilename is the default filename for signing settings.
	DefaultConfigFilename = "pkpass-packager-settings.yaml"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errCertificateRequired is returned when the issuer certificate path is missing.
	errCertificateRequired = errors.New("issuer certificate path must be provided")
	// errKeyRequired is returned when the private key path is missing.
	errKeyRequired = errors.New("private key path must be provided")
	// errChainRequired is returned when the intermediate certificate path is missing.
	errChainRequired = errors.New("chain certificate path must be provided")
)

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions: the file points at key material.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.CertificatePath == "" {
		return errCertificateRequired
	}

	if cfg.KeyPath == "" {
		return errKeyRequired
	}

	if cfg.ChainCertificatePath == "" {
		return errChainRequired
	}

	return nil
}
