package texname

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Result holds the decoded components of a texture filename. The zero
// value means the name was not recognized.
type Result struct {
	PartType  PartType
	Subtype   string
	ImageType ImageType
}

// Decode parses a texture filename (with extension) into its components.
// The name is lower-cased first. Grammars in [Rules] are tried in order and
// must match the entire name; when none does, or a matched token has no
// table entry, Decode returns the zero Result.
func Decode(filename string) Result {
	r, _ := DecodeRule(filename)
	return r
}

// DecodeRule is [Decode] that also returns the name of the grammar that
// matched, or "" when none did.
func DecodeRule(filename string) (Result, string) {
	name := strings.ToLower(filename)
	for _, rule := range Rules {
		m := rule.Pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		return rule.Extract(m), rule.Name
	}
	return Result{}, ""
}

// OK reports whether all three components were decoded.
func (r Result) OK() bool {
	return r.PartType != "" && r.Subtype != "" && r.ImageType != ""
}

// Label is the part name qualified by its subtype, e.g. "chest_b" or
// "hair_2". The first character variant ("1") is left unqualified.
func (r Result) Label() string {
	if r.Subtype == "1" {
		return string(r.PartType)
	}
	return string(r.PartType) + "_" + r.Subtype
}

var titleCaser = cases.Title(language.Und)

// Title renders the result for log output, e.g. "Chest B, Albedo".
func (r Result) Title() string {
	label := strings.ReplaceAll(r.Label(), "_", " ")
	return titleCaser.String(label) + ", " + titleCaser.String(string(r.ImageType))
}
