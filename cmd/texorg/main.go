// Command texorg organizes the texture images exported by FFXIV TexTools
// into per-part folders with readable names.
package main

import (
	"os"

	"github.com/backmassage/texorg/internal/cli"
)

// version and commit are injected at build time via -ldflags (see magefiles).
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{Version: version, Commit: commit}))
}
