package texname

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputName(t *testing.T) {
	cases := []struct {
		name     string
		original string
		keep     bool
		want     string
	}{
		{"clothing renamed", "mt_c0101e0745_top_b_d.png", false, "chest_b_albedo.png"},
		{"clothing kept", "mt_c0101e0745_top_b_d.png", true, "mt_c0101e0745_top_b_d.png"},
		{"first variant unqualified", "mt_c0201b0001_a_d.png", false, "body_albedo.png"},
		{"second variant qualified", "mt_c0201h0157_hir_b_n.png", false, "hair_2_normal.png"},
		{"extension case preserved", "MT_C1401T0001_A_D.JPG", false, "tail_albedo.JPG"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Decode(tc.original)
			assert.True(t, r.OK())
			assert.Equal(t, tc.want, r.OutputName(tc.original, tc.keep))
		})
	}
}

func TestOutputPath(t *testing.T) {
	r := Decode("mt_c0101e0175_met_a_d.png")
	root := filepath.Join("src", "output")

	assert.Equal(t, filepath.Join(root, "head"), PartDir(root, r))
	assert.Equal(t,
		filepath.Join(root, "head", "head_a_albedo.png"),
		OutputPath(root, r, "mt_c0101e0175_met_a_d.png", false))
}

func TestCollisionTracker(t *testing.T) {
	ct := NewCollisionTracker()

	prev, replaced := ct.Claim("a.png", "out/body/body_albedo.png")
	assert.False(t, replaced)
	assert.Empty(t, prev)

	// Same input claiming again is not a collision.
	_, replaced = ct.Claim("a.png", "out/body/body_albedo.png")
	assert.False(t, replaced)

	prev, replaced = ct.Claim("b.png", "out/body/body_albedo.png")
	assert.True(t, replaced)
	assert.Equal(t, "a.png", prev)

	// The later writer now owns the path.
	prev, replaced = ct.Claim("c.png", "out/body/body_albedo.png")
	assert.True(t, replaced)
	assert.Equal(t, "b.png", prev)

	assert.Equal(t, 1, ct.Len())
}
