package texname

import (
	"path/filepath"
)

// OutputName returns the file name an image is stored under. With keep set
// the original name is returned unchanged; otherwise the name is
// <label>_<image type> followed by the original extension.
//
//	mt_c0101e0745_top_b_d.png -> chest_b_albedo.png
//	mt_c0201h0157_hir_a_n.PNG -> hair_normal.PNG
func (r Result) OutputName(original string, keep bool) string {
	if keep {
		return original
	}
	return r.Label() + "_" + string(r.ImageType) + filepath.Ext(original)
}

// PartDir returns the folder under outputRoot that holds the images of r's
// part type.
func PartDir(outputRoot string, r Result) string {
	return filepath.Join(outputRoot, string(r.PartType))
}

// OutputPath builds the full destination path for an image.
//
//	<outputRoot>/<part type>/<output name>
func OutputPath(outputRoot string, r Result, original string, keep bool) string {
	return filepath.Join(PartDir(outputRoot, r), r.OutputName(original, keep))
}
