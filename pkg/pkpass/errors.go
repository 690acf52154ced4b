package pkpass

import (
	"errors"
	"fmt"
)

// ErrNotBuilt is returned when archive bytes are requested before a
// successful Build.
var ErrNotBuilt = errors.New("pass archive is not built yet")

// SerializationError reports a field value that has no JSON projection.
// The build aborts before any hashing or signing takes place.
type SerializationError struct {
	// Key is the field key whose value could not be serialized.
	Key string
	// Value is the offending value.
	Value any
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("field %q: value of type %T cannot be serialized", e.Key, e.Value)
}

// CredentialError reports unusable signing material: unparsable PEM,
// a key that does not match the certificate, or a wrong or missing
// passphrase.
type CredentialError struct {
	// Reason describes what was wrong with the material.
	Reason string
	// Err is the underlying parse or decryption error, if any.
	Err error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signing credentials: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("signing credentials: %s", e.Reason)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// ManifestError reports a failure while computing content digests.
// Not expected under normal operation.
type ManifestError struct {
	// Name is the archive member being hashed when the failure occurred.
	Name string
	// Err is the underlying error.
	Err error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest digest for %q: %v", e.Name, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}
