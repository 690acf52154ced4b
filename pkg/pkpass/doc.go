// Package pkpass builds signed, installable pass archives from a typed
// pass description.
//
// A Pass holds the identity fields, one content variant (boarding pass,
// coupon, event ticket, generic, store card) with its field groups, and
// any attached asset files. Build runs a four-stage pipeline:
//
//  1. serialize the description into the canonical pass.json document,
//  2. compute the SHA-1 digest manifest over the document and assets,
//  3. sign the manifest bytes with a detached DER-encoded PKCS#7
//     signature (SHA-256, issuer certificate and key, intermediate
//     certificate embedded),
//  4. package everything into an in-memory ZIP archive.
//
// Every stage either completes fully or the whole build fails; a failed
// build never leaves a partial archive behind. Failure kinds are
// SerializationError, CredentialError, ManifestError and ErrNotBuilt.
package pkpass
