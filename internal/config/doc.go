// Package config defines signing settings used by the packager binary and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the filesystem locations of the issuer
// certificate, private key and intermediate certificate, the name of the
// environment variable carrying the key passphrase, and the directory of
// asset files attached to every built pass.
package config
