package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothstep(t *testing.T) {
	// Exact endpoints so eased transitions land precisely.
	assert.Equal(t, float32(0), Smoothstep(0))
	assert.Equal(t, float32(1), Smoothstep(1))
	assert.Equal(t, float32(0.5), Smoothstep(0.5))

	// Clamped outside [0, 1].
	assert.Equal(t, float32(0), Smoothstep(-2))
	assert.Equal(t, float32(1), Smoothstep(3))

	// Monotonic on the interior.
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := Smoothstep(float32(i) / 100)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestMod(t *testing.T) {
	assert.InDelta(t, 1.0, Mod(5, 4), 1e-6)
	assert.InDelta(t, 0.0, Mod(8, 4), 1e-6)

	// Always non-negative, unlike the builtin remainder.
	assert.InDelta(t, 3.0, Mod(-1, 4), 1e-6)
	assert.GreaterOrEqual(t, Mod(-0.5, 4.1667), float32(0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(0.3), Clamp(-1, 0.3, 1.0))
	assert.Equal(t, float32(1.0), Clamp(5, 0.3, 1.0))
	assert.Equal(t, float32(0.7), Clamp(0.7, 0.3, 1.0))
}

func TestLerpQuatHemisphereFlip(t *testing.T) {
	// q and -q are the same rotation; interpolation must take the short way.
	a := [4]float32{0, 0, 0, 1}
	b := [4]float32{0, 0, 0, -1}

	got := LerpQuat(a, b, 0.5)
	assert.InDelta(t, 1, math32.Abs(got[3]), 1e-5)

	// Result stays unit length.
	l := math32.Sqrt(got[0]*got[0] + got[1]*got[1] + got[2]*got[2] + got[3]*got[3])
	assert.InDelta(t, 1, l, 1e-5)
}

func TestComposeTRSTranslationScale(t *testing.T) {
	var m [16]float32
	ComposeTRS(m[:], [3]float32{1, 2, 3}, [4]float32{0, 0, 0, 1}, [3]float32{2, 2, 2})

	p, ok := TransformPoint(m[:], [3]float32{1, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 3, p[0], 1e-5)
	assert.InDelta(t, 2, p[1], 1e-5)
	assert.InDelta(t, 3, p[2], 1e-5)
}

func TestComposeTRSRotation(t *testing.T) {
	// 90° about Y maps +X to -Z.
	s := math32.Sin(math32.Pi / 4)
	c := math32.Cos(math32.Pi / 4)
	var m [16]float32
	ComposeTRS(m[:], [3]float32{0, 0, 0}, [4]float32{0, s, 0, c}, [3]float32{1, 1, 1})

	p, ok := TransformPoint(m[:], [3]float32{1, 0, 0})
	require.True(t, ok)
	assert.InDelta(t, 0, p[0], 1e-5)
	assert.InDelta(t, -1, p[2], 1e-5)
}

func TestInvert4RoundTrip(t *testing.T) {
	var view, proj, vp, inv [16]float32
	LookAt(view[:], 1, 2, 5, 0, 0.5, 0, 0, 1, 0)
	Perspective(proj[:], math32.Pi/4, 16.0/9.0, 0.1, 100)
	Mul4(vp[:], proj[:], view[:])

	require.True(t, Invert4(inv[:], vp[:]))

	// vp * inv ≈ identity.
	var id [16]float32
	Mul4(id[:], vp[:], inv[:])
	for i := 0; i < 16; i++ {
		want := float32(0)
		if i%5 == 0 {
			want = 1
		}
		assert.InDelta(t, want, id[i], 1e-3)
	}
}

func TestInvert4Singular(t *testing.T) {
	var zero, out [16]float32
	assert.False(t, Invert4(out[:], zero[:]))
}

func TestMul4AliasedOutput(t *testing.T) {
	var a, b [16]float32
	Identity(a[:])
	a[12] = 1 // translate x
	Identity(b[:])
	b[13] = 2 // translate y

	// out aliases a; the product must still be correct.
	Mul4(a[:], a[:], b[:])
	assert.Equal(t, float32(1), a[12])
	assert.Equal(t, float32(2), a[13])
}

func TestNormalize3ZeroVector(t *testing.T) {
	assert.Equal(t, [3]float32{0, 0, 0}, Normalize3([3]float32{0, 0, 0}))
	n := Normalize3([3]float32{3, 0, 4})
	assert.InDelta(t, 0.6, n[0], 1e-5)
	assert.InDelta(t, 0.8, n[2], 1e-5)
}
