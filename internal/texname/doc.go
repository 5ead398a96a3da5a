// Package texname decodes TexTools texture filenames into a part type, a
// part subtype, and an image type, and builds the output names used when
// the images are reorganized.
//
// Two grammars are understood, tried in order:
//
//	clothing:  mt_<5 alnum>e<4 digits>_<part>_<subtype>_<image><ext>
//	character: mt_<5 alnum><group><4 digits>_[<part>_]<subtype>_<image><ext>
//
// Clothing subtypes are passed through as letters ("a", "b"). Character
// subtypes are re-encoded as 1-based ordinals ("1", "2"). When the
// character grammar has no explicit part segment, the group letter inside
// the id selects the part (body, tail, ears).
//
// Decoding is pure: no I/O, no errors. A name that cannot be decoded
// yields the zero [Result].
package texname
