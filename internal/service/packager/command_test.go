package packager

import (
	"archive/zip"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/walletforge/pkpass/internal/config"
)

// TestRun_BuildsSignedArchive drives the full workflow: settings file,
// definition document, assets directory and generated PEM credentials in,
// signed archive out.
func TestRun_BuildsSignedArchive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	// Credentials on disk.
	certificatePath := filepath.Join(dir, "issuer.pem")
	keyPath := filepath.Join(dir, "key.pem")
	chainPath := filepath.Join(dir, "chain.pem")
	writeTestCredentials(t, certificatePath, keyPath, chainPath)

	// One asset to attach.
	assetsDir := filepath.Join(dir, "assets")
	require.NoError(t, os.Mkdir(assetsDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "icon.png"), []byte{0x89, 0x50}, 0o600))

	// Signing settings.
	configPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, config.Save(configPath, &config.Config{
		CertificatePath:      certificatePath,
		KeyPath:              keyPath,
		ChainCertificatePath: chainPath,
		AssetsDir:            assetsDir,
	}))

	// Definition without a serial number, so one is generated.
	definitionPath := filepath.Join(dir, "card.yaml")
	definition := `
style: generic
pass_type_identifier: pass.test.walletforge
team_identifier: TEAM123456
organization_name: Walletforge
description: Test card
fields:
  primary:
    - key: bal
      value: "10"
      label: Balance
`
	require.NoError(t, os.WriteFile(definitionPath, []byte(definition), 0o600))

	outputPath := filepath.Join(dir, "card.pkpass")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, &Options{
		ConfigPath:     configPath,
		DefinitionPath: definitionPath,
		OutputPath:     outputPath,
	})
	require.NoError(t, err)

	// The archive holds the three fixed members plus the asset.
	reader, err := zip.OpenReader(outputPath)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, reader.Close())
	}()

	names := make(map[string]bool, len(reader.File))
	for _, file := range reader.File {
		names[file.Name] = true
	}

	require.Len(t, names, 4)
	require.True(t, names["pass.json"])
	require.True(t, names["manifest.json"])
	require.True(t, names["signature"])
	require.True(t, names["icon.png"])
}

// TestRun_MissingCredentials fails before producing any archive.
func TestRun_MissingCredentials(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	configPath := filepath.Join(dir, "settings.yaml")
	require.NoError(t, config.Save(configPath, &config.Config{
		CertificatePath:      filepath.Join(dir, "missing.pem"),
		KeyPath:              filepath.Join(dir, "missing-key.pem"),
		ChainCertificatePath: filepath.Join(dir, "missing-chain.pem"),
	}))

	definitionPath := filepath.Join(dir, "card.yaml")
	require.NoError(t, os.WriteFile(definitionPath, []byte("style: generic\n"), 0o600))

	outputPath := filepath.Join(dir, "card.pkpass")

	err := Run(context.Background(), &Options{
		ConfigPath:     configPath,
		DefinitionPath: definitionPath,
		OutputPath:     outputPath,
	})
	require.Error(t, err)

	_, err = os.Stat(outputPath)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// writeTestCredentials issues an intermediate CA plus a chained leaf
// signing certificate and writes all three PEM files.
func writeTestCredentials(t *testing.T, certificatePath, keyPath, chainPath string) {
	t.Helper()

	caKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	caTemplate := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "Test Intermediate CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
		BasicConstraintsValid: true,
	}

	caDER, err := x509.CreateCertificate(rand.Reader, caTemplate, caTemplate, &caKey.PublicKey, caKey)
	require.NoError(t, err)

	caCertificate, err := x509.ParseCertificate(caDER)
	require.NoError(t, err)

	leafKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	leafTemplate := &x509.Certificate{
		SerialNumber: big.NewInt(2),
		Subject:      pkix.Name{CommonName: "Pass Type ID: pass.test.walletforge"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}

	leafDER, err := x509.CreateCertificate(rand.Reader, leafTemplate, caCertificate, &leafKey.PublicKey, caKey)
	require.NoError(t, err)

	write := func(path, blockType string, contents []byte) {
		t.Helper()

		encoded := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: contents})
		require.NoError(t, os.WriteFile(path, encoded, 0o600))
	}

	write(certificatePath, "CERTIFICATE", leafDER)
	write(keyPath, "RSA PRIVATE KEY", x509.MarshalPKCS1PrivateKey(leafKey))
	write(chainPath, "CERTIFICATE", caDER)
}
