package packager

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/walletforge/pkpass/internal/config"
	"github.com/walletforge/pkpass/internal/logger"
	"github.com/walletforge/pkpass/internal/repository/credentials"
	"github.com/walletforge/pkpass/pkg/pkpass"
)

// Options contains inputs for the packager entry point.
type Options struct {
	// ConfigPath is an optional path to the signing settings YAML.
	ConfigPath string
	// DefinitionPath is the pass definition document to build.
	DefinitionPath string
	// OutputPath is where the signed archive is written.
	OutputPath string
}

// packager builds one signed archive from a definition document.
// It is unexported; callers use Run, which encapsulates setup and validation.
type packager struct {
	// cfg holds signing settings.
	cfg *config.Config
	// credentials supplies the PEM material for the signature step.
	credentials credentials.Repository
	// definitionPath and outputPath come from the command line.
	definitionPath string
	outputPath     string
}

// Run executes the packaging workflow.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "pkpass-packager")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	pkg := &packager{
		cfg:            cfg,
		credentials:    credentials.NewFileRepository(cfg),
		definitionPath: opts.DefinitionPath,
		outputPath:     opts.OutputPath,
	}

	if err = pkg.Run(ctx); err != nil {
		return fmt.Errorf("packager failed: %w", err)
	}

	logger.Info(ctx, "Packager completed successfully")

	return nil
}

// Run loads the definition, builds the archive and writes it out.
func (p *packager) Run(ctx context.Context) error {
	logger.InfoKV(ctx, "Loading pass definition", "path", p.definitionPath)

	definition, err := LoadDefinition(p.definitionPath)
	if err != nil {
		return err
	}

	if definition.SerialNumber == "" {
		definition.SerialNumber = uuid.NewString()

		logger.InfoKV(ctx, "Generated serial number", "serial_number", definition.SerialNumber)
	}

	pass, err := definition.ToPass()
	if err != nil {
		return err
	}

	if err = p.attachAssets(ctx, pass); err != nil {
		return err
	}

	material, err := p.credentials.Load(ctx)
	if err != nil {
		return err
	}

	logger.Info(ctx, "Building signed archive")

	if _, err = pass.Build(
		material.Certificate,
		material.Key,
		material.ChainCertificate,
		material.Passphrase,
	); err != nil {
		return err
	}

	if err = pass.WriteToFile(p.outputPath); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Saved signed archive", "path", p.outputPath)

	p.printSummary(ctx, pass)

	return nil
}

// attachAssets adds every regular file from the assets directory.
func (p *packager) attachAssets(ctx context.Context, pass *pkpass.Pass) error {
	if p.cfg.AssetsDir == "" {
		return nil
	}

	entries, err := os.ReadDir(p.cfg.AssetsDir)
	if err != nil {
		return fmt.Errorf("read assets directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		contents, err := os.ReadFile(filepath.Join(p.cfg.AssetsDir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read asset %s: %w", entry.Name(), err)
		}

		pass.AddFile(entry.Name(), contents)

		logger.DebugKV(ctx, "Attached asset", "name", entry.Name(), "size", len(contents))
	}

	return nil
}

// printSummary logs the archive members with their digests.
func (p *packager) printSummary(ctx context.Context, pass *pkpass.Pass) {
	digests := pass.Digests()

	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}

	sort.Strings(names)

	var builder strings.Builder

	builder.WriteString("Archive ")
	builder.WriteString(color.GreenString(p.outputPath))
	builder.WriteString(" contains:\n")

	for _, name := range names {
		builder.WriteString(color.CyanString(name))
		builder.WriteString("  ")
		builder.WriteString(digests[name])
		builder.WriteString("\n")
	}

	builder.WriteString(color.CyanString(pkpass.ManifestName))
	builder.WriteString(", ")
	builder.WriteString(color.CyanString(pkpass.SignatureName))
	builder.WriteString("\nDistribute the archive as is; its members are sealed by the signature.")

	logger.Info(ctx, builder.String())
}
