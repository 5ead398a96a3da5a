package display

import (
	"fmt"
	"io"

	"github.com/backmassage/texorg/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner(w io.Writer, version string) {
	if term.Magenta != "" {
		fmt.Fprint(w, term.Magenta)
	}
	fmt.Fprint(w, ` _
| |_ _____  _____  _ __ __ _
| __/ _ \ \/ / _ \| '__/ _`+"`"+` |
| ||  __/>  < (_) | | | (_| |
 \__\___/_/\_\___/|_|  \__, |
                       |___/ `)
	if term.Magenta != "" {
		fmt.Fprint(w, term.NC)
	}
	fmt.Fprintf(w, "v%s\n", version)
}
