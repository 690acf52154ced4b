package pkpass

import (
	"crypto/sha1" //nolint:gosec // The archive format mandates SHA-1 member digests.
	"encoding/hex"
	"encoding/json"
)

// Fixed archive member names required by pass-validating clients.
const (
	// DocumentName is the member holding the serialized pass document.
	DocumentName = "pass.json"
	// ManifestName is the member mapping each other member to its digest.
	ManifestName = "manifest.json"
	// SignatureName is the member holding the detached signature.
	SignatureName = "signature"
)

// buildManifest computes the member-name to digest mapping over the pass
// document and every attached asset, and returns its JSON serialization
// alongside the mapping itself. Map keys are sorted during marshaling,
// so identical content always yields identical manifest bytes.
func buildManifest(document []byte, files map[string][]byte) ([]byte, map[string]string, error) {
	digests := make(map[string]string, len(files)+1)

	digest, err := memberDigest(document)
	if err != nil {
		return nil, nil, &ManifestError{Name: DocumentName, Err: err}
	}

	digests[DocumentName] = digest

	for name, contents := range files {
		if digest, err = memberDigest(contents); err != nil {
			return nil, nil, &ManifestError{Name: name, Err: err}
		}

		digests[name] = digest
	}

	manifest, err := json.Marshal(digests)
	if err != nil {
		return nil, nil, &ManifestError{Name: ManifestName, Err: err}
	}

	return manifest, digests, nil
}

// memberDigest returns the lowercase-hex SHA-1 digest of the contents.
func memberDigest(contents []byte) (string, error) {
	hasher := sha1.New() //nolint:gosec // Mandated by the archive format.
	if _, err := hasher.Write(contents); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
