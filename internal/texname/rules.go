package texname

import (
	"regexp"
	"strconv"
)

// GrammarRule pairs an anchored pattern with an extract function. Rules are
// evaluated in order by [Decode]; the first pattern that matches the whole
// name wins, and its extract result is final even when a lookup fails.
type GrammarRule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(matches []string) Result
}

var (
	// mt_c0101e0175_met_a_d.png
	reClothing = regexp.MustCompile(
		`^mt_[[:alnum:]]{5}e[0-9]{4}_([[:alpha:]]{3})_([[:alpha:]])_([denos])[[:alpha:].]+$`)

	// mt_c0201b0001_a_d.png, mt_c1301f0001_etc_b_d.png
	reCharacter = regexp.MustCompile(
		`^mt_[[:alnum:]]{5}([[:alpha:]])[0-9]{4}_(?:([[:alpha:]]{3})_)?([[:alpha:]])_([denos])[[:alpha:].]+$`)
)

// Rules is the ordered grammar table. Clothing ids always carry a literal
// "e" where character ids carry a group letter, so clothing is tried first.
var Rules = []GrammarRule{
	{Name: "clothing", Pattern: reClothing, Extract: extractClothing},
	{Name: "character", Pattern: reCharacter, Extract: extractCharacter},
}

func extractClothing(m []string) Result {
	part, ok := LookupPart(m[1])
	if !ok {
		return Result{}
	}
	img, ok := LookupImage(m[3])
	if !ok {
		return Result{}
	}
	return Result{PartType: part, Subtype: m[2], ImageType: img}
}

func extractCharacter(m []string) Result {
	code := m[2]
	if code == "" {
		code = m[1]
	}
	part, ok := LookupPart(code)
	if !ok {
		return Result{}
	}
	img, ok := LookupImage(m[4])
	if !ok {
		return Result{}
	}
	return Result{PartType: part, Subtype: SubtypeOrdinal(m[3][0]), ImageType: img}
}

// SubtypeOrdinal converts a character variant letter to its 1-based
// position in the alphabet as a decimal string: 'a' is "1", 'b' is "2",
// 'z' is "26". TexTools letters the meshes of one part in order, so the
// ordinal only tells same-part variants apart. Anything other than a
// lowercase ASCII letter yields "".
func SubtypeOrdinal(letter byte) string {
	if letter < 'a' || letter > 'z' {
		return ""
	}
	return strconv.Itoa(int(letter-'a') + 1)
}
