package texname

import "sort"

// ImageType is the semantic name of an image channel.
type ImageType string

const (
	ImageAlbedo    ImageType = "albedo"
	ImageColor     ImageType = "color"
	ImageNormal    ImageType = "normal"
	ImageOcclusion ImageType = "occlusion"
	ImageSpecular  ImageType = "specular"
)

// PartType is the semantic name of a garment or body part. It doubles as
// the name of the output folder the part's images are placed in.
type PartType string

const (
	PartFeet    PartType = "feet"
	PartLegs    PartType = "legs"
	PartGloves  PartType = "gloves"
	PartChest   PartType = "chest"
	PartHead    PartType = "head"
	PartBody    PartType = "body"
	PartTail    PartType = "tail"
	PartEars    PartType = "ears"
	PartFace    PartType = "face"
	PartFaceAcc PartType = "faceacc"
	PartIris    PartType = "iris"
	PartHair    PartType = "hair"
	PartHairAcc PartType = "hairacc"
)

// imageTypes maps the trailing channel letter of a filename to its image type.
var imageTypes = map[string]ImageType{
	"d": ImageAlbedo,
	"e": ImageColor,
	"n": ImageNormal,
	"o": ImageOcclusion,
	"s": ImageSpecular,
}

// partTypes maps part codes to part types. Single-letter codes are the
// group letters of character ids that carry no explicit part segment.
var partTypes = map[string]PartType{
	"sho": PartFeet,
	"dwn": PartLegs,
	"glv": PartGloves,
	"top": PartChest,
	"met": PartHead,
	"b":   PartBody,
	"t":   PartTail,
	"z":   PartEars,
	"fac": PartFace,
	"etc": PartFaceAcc,
	"iri": PartIris,
	"hir": PartHair,
	"acc": PartHairAcc,
}

// LookupImage returns the image type for a channel letter.
func LookupImage(code string) (ImageType, bool) {
	t, ok := imageTypes[code]
	return t, ok
}

// LookupPart returns the part type for a part code or group letter.
func LookupPart(code string) (PartType, bool) {
	t, ok := partTypes[code]
	return t, ok
}

// Code is one row of a lookup table, as listed by --codes.
type Code struct {
	Code string
	Name string
}

// ImageCodes returns the image table sorted by code.
func ImageCodes() []Code {
	out := make([]Code, 0, len(imageTypes))
	for k, v := range imageTypes {
		out = append(out, Code{Code: k, Name: string(v)})
	}
	sortCodes(out)
	return out
}

// PartCodes returns the part table sorted by code.
func PartCodes() []Code {
	out := make([]Code, 0, len(partTypes))
	for k, v := range partTypes {
		out = append(out, Code{Code: k, Name: string(v)})
	}
	sortCodes(out)
	return out
}

func sortCodes(c []Code) {
	sort.Slice(c, func(i, j int) bool { return c[i].Code < c[j].Code })
}
