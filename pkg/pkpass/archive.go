package pkpass

import (
	"archive/zip"
	"bytes"
	"fmt"
	"slices"
)

// packArchive writes the three pipeline blobs and every asset into an
// in-memory ZIP. All members sit at the archive root; asset members are
// written in sorted name order so identical inputs produce identical
// archive layouts.
func packArchive(document, manifest, signature []byte, files map[string][]byte) ([]byte, error) {
	var buffer bytes.Buffer

	archive := zip.NewWriter(&buffer)

	members := []struct {
		name     string
		contents []byte
	}{
		{SignatureName, signature},
		{ManifestName, manifest},
		{DocumentName, document},
	}

	for _, member := range members {
		if err := addMember(archive, member.name, member.contents); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if err := addMember(archive, name, files[name]); err != nil {
			return nil, err
		}
	}

	if err := archive.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	return buffer.Bytes(), nil
}

// addMember writes one named member into the archive.
func addMember(archive *zip.Writer, name string, contents []byte) error {
	member, err := archive.Create(name)
	if err != nil {
		return fmt.Errorf("add archive member %s: %w", name, err)
	}

	if _, err = member.Write(contents); err != nil {
		return fmt.Errorf("write archive member %s: %w", name, err)
	}

	return nil
}
