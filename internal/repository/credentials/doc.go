// Package credentials loads PEM-encoded signing material from disk.
//
// The core pipeline only consumes in-memory PEM text; reading the issuer
// certificate, private key and intermediate certificate off the
// filesystem (and the passphrase out of the environment) is the CLI's
// concern and lives here.
package credentials
