package credentials

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/walletforge/pkpass/internal/config"
)

// Material holds PEM-encoded signing credentials and the key passphrase.
type Material struct {
	// Certificate is the issuer certificate PEM text.
	Certificate []byte
	// Key is the issuer private key PEM text.
	Key []byte
	// ChainCertificate is the intermediate certificate PEM text.
	ChainCertificate []byte
	// Passphrase decrypts the key when it is protected. Empty otherwise.
	Passphrase string
}

// Repository defines acquisition of signing material.
type Repository interface {
	Load(ctx context.Context) (*Material, error)
}

// FileRepository reads signing material from PEM files on disk and the
// passphrase from an environment variable.
type FileRepository struct {
	certificatePath string
	keyPath         string
	chainPath       string
	passphraseEnv   string
}

// ErrNotFound is returned when a credential file does not exist.
var ErrNotFound = errors.New("credential file not found")

// NewFileRepository creates a repository reading the paths named in the
// provided settings.
func NewFileRepository(cfg *config.Config) *FileRepository {
	return &FileRepository{
		certificatePath: filepath.Clean(cfg.CertificatePath),
		keyPath:         filepath.Clean(cfg.KeyPath),
		chainPath:       filepath.Clean(cfg.ChainCertificatePath),
		passphraseEnv:   cfg.PassphraseEnv,
	}
}

// Load reads all three PEM files and the passphrase.
func (r *FileRepository) Load(_ context.Context) (*Material, error) {
	certificate, err := readPEM(r.certificatePath)
	if err != nil {
		return nil, err
	}

	key, err := readPEM(r.keyPath)
	if err != nil {
		return nil, err
	}

	chain, err := readPEM(r.chainPath)
	if err != nil {
		return nil, err
	}

	var passphrase string
	if r.passphraseEnv != "" {
		passphrase = os.Getenv(r.passphraseEnv)
	}

	return &Material{
		Certificate:      certificate,
		Key:              key,
		ChainCertificate: chain,
		Passphrase:       passphrase,
	}, nil
}

// readPEM reads one credential file.
func readPEM(path string) ([]byte, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}

		return nil, fmt.Errorf("read credential file %s: %w", path, err)
	}

	return contents, nil
}
