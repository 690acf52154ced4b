// Command pkpass-packager builds a signed .pkpass archive from a YAML
// pass definition and PEM signing credentials.
package main

import "github.com/walletforge/pkpass/cmd/pkpass-packager/cmd"

func main() {
	cmd.Execute()
}
