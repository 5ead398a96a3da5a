package texname

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		want     Result
	}{
		// Clothing grammar
		{"clothing head", "mt_c0101e0175_met_a_d.png", Result{PartHead, "a", ImageAlbedo}},
		{"clothing chest variant b", "mt_c0101e0745_top_b_d.png", Result{PartChest, "b", ImageAlbedo}},
		{"clothing gloves specular jpg", "mt_c0101e0461_glv_a_s.jpg", Result{PartGloves, "a", ImageSpecular}},
		{"clothing legs color", "mt_c0201e0748_dwn_a_e.png", Result{PartLegs, "a", ImageColor}},
		{"clothing feet upper case", "MT_C0101E0375_SHO_A_O.PNG", Result{PartFeet, "a", ImageOcclusion}},

		// Character grammar, group letter from id
		{"character body", "mt_c0201b0001_a_d.png", Result{PartBody, "1", ImageAlbedo}},
		{"character tail", "mt_c1401t0001_a_d.png", Result{PartTail, "1", ImageAlbedo}},
		{"character inner ears", "mt_c1801z0001_a_n.png", Result{PartEars, "1", ImageNormal}},

		// Character grammar, explicit part segment
		{"character face", "mt_c1301f0001_fac_a_d.png", Result{PartFace, "1", ImageAlbedo}},
		{"character faceacc variant b", "mt_c1301f0001_etc_b_d.png", Result{PartFaceAcc, "2", ImageAlbedo}},
		{"character iris", "mt_c0501f0001_iri_a_s.png", Result{PartIris, "1", ImageSpecular}},
		{"character hair", "mt_c0201h0157_hir_a_n.png", Result{PartHair, "1", ImageNormal}},
		{"character hairacc", "mt_c0201h0157_acc_b_o.png", Result{PartHairAcc, "2", ImageOcclusion}},
		{"character outer ears as face", "mt_c1801z0001_fac_a_d.png", Result{PartFace, "1", ImageAlbedo}},

		// Rejected names
		{"unrelated file", "random_file.txt", Result{}},
		{"empty", "", Result{}},
		{"unknown image letter", "mt_c0101e0175_met_a_x.png", Result{}},
		{"missing extension", "mt_c0101e0175_met_a_d", Result{}},
		{"leading garbage", "xmt_c0101e0175_met_a_d.png", Result{}},
		{"trailing garbage", "mt_c0101e0175_met_a_d.png_", Result{}},
		{"short id", "mt_c0101e017_met_a_d.png", Result{}},
		{"two letter subtype", "mt_c0101e0175_met_ab_d.png", Result{}},
		{"numeric subtype", "mt_c0101e0175_met_1_d.png", Result{}},
		{"unknown part code", "mt_c0101e0175_xyz_a_d.png", Result{}},
		{"unknown group letter", "mt_c0101q0001_a_d.png", Result{}},
		{"clothing id without part", "mt_c0101e0001_a_d.png", Result{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(tc.filename)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want != Result{}, got.OK())
		})
	}
}

func TestDecode_ClothingTakesPriority(t *testing.T) {
	// Both grammars accept this name; the clothing reading keeps the letter.
	name := "mt_c0101e0175_met_b_d.png"
	require.NotNil(t, reClothing.FindStringSubmatch(name))
	require.NotNil(t, reCharacter.FindStringSubmatch(name))

	got := Decode(name)
	assert.Equal(t, "b", got.Subtype)
	assert.Equal(t, PartHead, got.PartType)
}

func TestDecode_ClothingPassesSubtypeThrough(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		name := fmt.Sprintf("mt_c0101e0745_top_%c_d.png", c)
		got := Decode(name)
		require.True(t, got.OK(), name)
		assert.Equal(t, string(c), got.Subtype, name)
	}
}

func TestDecode_CharacterSubtypeIsOrdinal(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		explicit := Decode(fmt.Sprintf("mt_c0201h0157_hir_%c_d.png", c))
		grouped := Decode(fmt.Sprintf("mt_c1401t0001_%c_d.png", c))
		want := strconv.Itoa(int(c-'a') + 1)

		assert.Equal(t, want, explicit.Subtype)
		assert.Equal(t, PartHair, explicit.PartType)
		assert.Equal(t, want, grouped.Subtype)
		assert.Equal(t, PartTail, grouped.PartType)
	}
}

func TestDecode_AllImageLetters(t *testing.T) {
	want := map[byte]ImageType{
		'd': ImageAlbedo, 'e': ImageColor, 'n': ImageNormal, 'o': ImageOcclusion, 's': ImageSpecular,
	}
	for letter, img := range want {
		got := Decode(fmt.Sprintf("mt_c0101e0175_met_a_%c.png", letter))
		assert.Equal(t, img, got.ImageType, string(letter))
	}
}

func TestDecode_Pure(t *testing.T) {
	names := []string{"mt_c0201b0001_a_d.png", "random_file.txt", "mt_c0101e0745_top_b_d.png"}
	for _, n := range names {
		assert.Equal(t, Decode(n), Decode(n), n)
	}
}

func TestSubtypeOrdinal(t *testing.T) {
	cases := []struct {
		letter byte
		want   string
	}{
		{'a', "1"},
		{'b', "2"},
		{'c', "3"},
		{'i', "9"},
		{'j', "10"},
		{'z', "26"},
		{'A', ""},
		{'1', ""},
		{'{', ""},
		{'`', ""},
	}
	for _, tc := range cases {
		t.Run(string(tc.letter), func(t *testing.T) {
			assert.Equal(t, tc.want, SubtypeOrdinal(tc.letter))
		})
	}
}

func TestResult_Label(t *testing.T) {
	assert.Equal(t, "body", Result{PartBody, "1", ImageAlbedo}.Label())
	assert.Equal(t, "hair_2", Result{PartHair, "2", ImageAlbedo}.Label())
	assert.Equal(t, "chest_a", Result{PartChest, "a", ImageAlbedo}.Label())
}

func TestResult_Title(t *testing.T) {
	assert.Equal(t, "Chest B, Albedo", Result{PartChest, "b", ImageAlbedo}.Title())
	assert.Equal(t, "Body, Normal", Result{PartBody, "1", ImageNormal}.Title())
	assert.Equal(t, "Faceacc 2, Specular", Result{PartFaceAcc, "2", ImageSpecular}.Title())
}

func TestDecodeRule(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantRule string
		wantOK   bool
	}{
		{"clothing", "mt_c0101e0175_met_a_d.png", "clothing", true},
		{"character", "mt_c0201b0001_a_d.png", "character", true},
		{"character with part", "mt_c1301f0001_etc_b_d.png", "character", true},
		{"matched but unknown part", "mt_c0101e0175_xyz_a_d.png", "clothing", false},
		{"no grammar", "random_file.png", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, rule := DecodeRule(tt.filename)
			assert.Equal(t, tt.wantRule, rule)
			assert.Equal(t, tt.wantOK, r.OK())
			assert.Equal(t, Decode(tt.filename), r)
		})
	}
}
