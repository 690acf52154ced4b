package pkpass

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FormatVersion is the archive format revision. The value is always 1.
const FormatVersion = 1

// DefaultFileMode is used when persisting a built archive to disk.
const DefaultFileMode os.FileMode = 0o644

// Pass is a complete description of one digital pass plus its attached
// asset files. Assemble it, then call Build once to obtain the signed
// archive. A Pass is not safe for concurrent use; build one pass per
// instance.
type Pass struct {
	// TeamIdentifier is the issuer team identifier, as issued by the vendor.
	TeamIdentifier string
	// PassTypeIdentifier must correspond with the signing certificate.
	PassTypeIdentifier string
	// OrganizationName is the display name of the issuing organization.
	OrganizationName string
	// SerialNumber uniquely identifies the pass per issuer (caller contract).
	SerialNumber string
	// Description is a brief accessibility description of the pass.
	Description string

	// SharingProhibited hides the share button on the back of the pass.
	SharingProhibited bool
	// SuppressStripShine disables the shine effect over the strip image.
	SuppressStripShine bool

	// BackgroundColor, ForegroundColor and LabelColor are optional CSS-style
	// color values.
	BackgroundColor string
	ForegroundColor string
	LabelColor      string
	// LogoText is the optional text displayed next to the logo.
	LogoText string

	// Barcodes are the codes rendered on the pass. Use SetBarcode for the
	// common single-barcode case.
	Barcodes []*Barcode

	// WebServiceURL enables pass updates; AuthenticationToken must be
	// supplied alongside it. Both are emitted together.
	WebServiceURL       string
	AuthenticationToken string

	// Locations and Beacons control where the pass surfaces.
	Locations []*Location
	Beacons   []*IBeacon
	// RelevantDate is the optional W3C timestamp when the pass is relevant.
	RelevantDate string
	// ExpirationDate is the optional W3C timestamp when the pass expires.
	ExpirationDate string
	// Voided marks the pass as invalidated. Emitted only when true.
	Voided bool

	// AssociatedStoreIdentifiers lists store items of associated apps.
	AssociatedStoreIdentifiers []int64
	// AppLaunchURL is passed to the associated app on launch.
	AppLaunchURL string
	// UserInfo is an opaque blob of issuer data carried inside the document.
	UserInfo map[string]any

	information ContentVariant
	files       map[string][]byte
	digests     map[string]string
	archive     []byte
}

// New returns a pass around the provided content variant and identity
// fields. Assets are attached with AddFile before calling Build.
func New(information ContentVariant, passTypeIdentifier, organizationName, teamIdentifier, serialNumber, description string) *Pass {
	return &Pass{
		TeamIdentifier:     teamIdentifier,
		PassTypeIdentifier: passTypeIdentifier,
		OrganizationName:   organizationName,
		SerialNumber:       serialNumber,
		Description:        description,
		information:        information,
		files:              make(map[string][]byte),
	}
}

// Information returns the content variant the pass was created with.
func (p *Pass) Information() ContentVariant {
	return p.information
}

// AddFile attaches an asset under the provided archive member name.
// The contents are copied; later mutation of the slice does not affect
// the pass.
func (p *Pass) AddFile(name string, contents []byte) {
	owned := make([]byte, len(contents))
	copy(owned, contents)

	p.files[name] = owned
}

// SetBarcode replaces all barcodes with the single provided code.
// The document still carries it as a one-element list, as the archive
// format requires.
func (p *Pass) SetBarcode(barcode *Barcode) {
	p.Barcodes = []*Barcode{barcode}
}

// Build runs the pipeline: serialize the document, compute the digest
// manifest, sign the manifest with the provided PEM credentials and
// package everything into a ZIP archive. The archive bytes are returned
// and retained for ReadBytes/WriteToFile. Key material is discarded as
// soon as the signature step completes.
func (p *Pass) Build(certificatePEM, keyPEM, chainCertificatePEM []byte, passphrase string) ([]byte, error) {
	document, err := p.serializeDocument()
	if err != nil {
		return nil, err
	}

	manifest, digests, err := buildManifest(document, p.files)
	if err != nil {
		return nil, err
	}

	signature, err := signManifest(manifest, certificatePEM, keyPEM, chainCertificatePEM, passphrase)
	if err != nil {
		return nil, err
	}

	archive, err := packArchive(document, manifest, signature, p.files)
	if err != nil {
		return nil, err
	}

	p.digests = digests
	p.archive = archive

	return archive, nil
}

// ReadBytes returns the archive produced by the last successful Build.
func (p *Pass) ReadBytes() ([]byte, error) {
	if p.archive == nil {
		return nil, ErrNotBuilt
	}

	return p.archive, nil
}

// WriteToFile persists the built archive to the provided path.
func (p *Pass) WriteToFile(path string) error {
	contents, err := p.ReadBytes()
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), contents, DefaultFileMode); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	return nil
}

// Digests returns a copy of the member digests computed by the last
// successful Build, keyed by archive member name.
func (p *Pass) Digests() map[string]string {
	digests := make(map[string]string, len(p.digests))
	for name, digest := range p.digests {
		digests[name] = digest
	}

	return digests
}

// serializeDocument produces the canonical JSON pass document.
func (p *Pass) serializeDocument() ([]byte, error) {
	d, err := p.jsonDict()
	if err != nil {
		return nil, err
	}

	document, err := json.Marshal(d)
	if err != nil {
		return nil, &SerializationError{Key: p.information.variantTag(), Value: err}
	}

	return document, nil
}

// jsonDict assembles the document, emitting optional keys only when set.
func (p *Pass) jsonDict() (map[string]any, error) {
	information, err := p.information.jsonDict()
	if err != nil {
		return nil, err
	}

	d := map[string]any{
		"formatVersion":            FormatVersion,
		"passTypeIdentifier":       p.PassTypeIdentifier,
		"serialNumber":             p.SerialNumber,
		"teamIdentifier":           p.TeamIdentifier,
		"organizationName":         p.OrganizationName,
		"description":              p.Description,
		"sharingProhibited":        p.SharingProhibited,
		"suppressStripShine":       p.SuppressStripShine,
		p.information.variantTag(): information,
	}

	if len(p.Barcodes) > 0 {
		barcodes := make([]map[string]any, 0, len(p.Barcodes))
		for _, barcode := range p.Barcodes {
			barcodes = append(barcodes, barcode.jsonDict())
		}

		d["barcodes"] = barcodes
	}

	if p.BackgroundColor != "" {
		d["backgroundColor"] = p.BackgroundColor
	}

	if p.ForegroundColor != "" {
		d["foregroundColor"] = p.ForegroundColor
	}

	if p.LabelColor != "" {
		d["labelColor"] = p.LabelColor
	}

	if p.LogoText != "" {
		d["logoText"] = p.LogoText
	}

	if len(p.Locations) > 0 {
		locations := make([]map[string]any, 0, len(p.Locations))
		for _, location := range p.Locations {
			locations = append(locations, location.jsonDict())
		}

		d["locations"] = locations
	}

	if len(p.Beacons) > 0 {
		beacons := make([]map[string]any, 0, len(p.Beacons))
		for _, beacon := range p.Beacons {
			beacons = append(beacons, beacon.jsonDict())
		}

		d["beacons"] = beacons
	}

	if p.RelevantDate != "" {
		d["relevantDate"] = p.RelevantDate
	}

	if p.ExpirationDate != "" {
		d["expirationDate"] = p.ExpirationDate
	}

	if p.Voided {
		d["voided"] = true
	}

	if len(p.UserInfo) > 0 {
		d["userInfo"] = p.UserInfo
	}

	if len(p.AssociatedStoreIdentifiers) > 0 {
		d["associatedStoreIdentifiers"] = p.AssociatedStoreIdentifiers
	}

	if p.AppLaunchURL != "" {
		d["appLaunchURL"] = p.AppLaunchURL
	}

	if p.WebServiceURL != "" {
		d["webServiceURL"] = p.WebServiceURL
		d["authenticationToken"] = p.AuthenticationToken
	}

	return d, nil
}
