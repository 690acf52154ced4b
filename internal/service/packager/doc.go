// Package packager turns a YAML pass definition into a signed .pkpass
// archive.
//
// It loads signing settings, parses the definition document into a pass
// description, attaches every file from the assets directory, loads PEM
// credentials through the repository layer, runs the build pipeline and
// writes the archive to the requested path.
package packager
