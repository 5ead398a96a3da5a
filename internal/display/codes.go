package display

import (
	"fmt"
	"io"

	"github.com/backmassage/texorg/internal/texname"
)

// PrintCodes lists the filename codes the decoder understands.
func PrintCodes(w io.Writer) {
	fmt.Fprintln(w, "Image types (last letter before the extension):")
	printCodeTable(w, texname.ImageCodes())
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Part types (3-letter code, or the group letter of a character id):")
	printCodeTable(w, texname.PartCodes())
}

func printCodeTable(w io.Writer, codes []texname.Code) {
	width := 0
	for _, c := range codes {
		if len(c.Code) > width {
			width = len(c.Code)
		}
	}
	for _, c := range codes {
		fmt.Fprintf(w, "  %-*s  %s\n", width, c.Code, c.Name)
	}
}
