package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields for signing settings.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing everything.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Missing key.
	cfg = &Config{
		CertificatePath: "certificate.pem",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Missing chain.
	cfg = &Config{
		CertificatePath: "certificate.pem",
		KeyPath:         "key.pem",
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Complete; assets dir stays optional.
	cfg = &Config{
		CertificatePath:      "certificate.pem",
		KeyPath:              "key.pem",
		ChainCertificatePath: "chain.pem",
	}

	err = Validate(cfg)
	require.NoError(t, err)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	cfg := &Config{
		CertificatePath:      "certs/issuer.pem",
		KeyPath:              "certs/issuer-key.pem",
		ChainCertificatePath: "certs/chain.pem",
		PassphraseEnv:        "PKPASS_KEY_PASSPHRASE",
		AssetsDir:            "assets",
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)

	// File exists with restricted permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestLoadMissingFile ensures a helpful error surfaces for an absent settings file.
func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
