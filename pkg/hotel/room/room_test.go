package room

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsNegativePrice(t *testing.T) {
	r, err := New(101, -1, true)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Nil(t, r)
}

func TestSetPrice_NegativeKeepsPrevious(t *testing.T) {
	for _, p := range []float64{-5, -0.01, math.Inf(-1)} {
		r, err := New(101, 100, true)
		require.NoError(t, err)

		err = r.SetPrice(p)
		assert.ErrorIs(t, err, ErrInvalidValue, "SetPrice(%v)", p)
		assert.Equal(t, 100.0, r.Price(), "SetPrice(%v) changed price", p)
	}
}

func TestSetPrice_NonFiniteRejected(t *testing.T) {
	r, err := New(201, 200, true)
	require.NoError(t, err)

	assert.ErrorIs(t, r.SetPrice(math.NaN()), ErrInvalidValue)
	assert.ErrorIs(t, r.SetPrice(math.Inf(1)), ErrInvalidValue)
	assert.Equal(t, 200.0, r.Price())
}

func TestSetPrice_CommitsExactValue(t *testing.T) {
	r, err := New(102, 120, false)
	require.NoError(t, err)

	for _, p := range []float64{0, 150, 99.99} {
		require.NoError(t, r.SetPrice(p))
		assert.Equal(t, p, r.Price())
	}
}

func TestSetAvailable(t *testing.T) {
	r, err := New(102, 120, false)
	require.NoError(t, err)

	r.SetAvailable(true)
	assert.True(t, r.Available())
	r.SetAvailable(false)
	assert.False(t, r.Available())
	assert.Equal(t, 102, r.Number())
}

func TestParseAvailability(t *testing.T) {
	cases := map[string]bool{
		"true":    true,
		"True":    true,
		" FALSE ": false,
		"false":   false,
	}
	for in, want := range cases {
		got, err := ParseAvailability(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseAvailability_RejectsStandIns(t *testing.T) {
	for _, in := range []string{"1", "0", "yes", "no", "on", "", "t"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAvailability(in)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestParsePrice(t *testing.T) {
	p, err := ParsePrice(" 150.5 ")
	require.NoError(t, err)
	assert.Equal(t, 150.5, p)

	for _, in := range []string{"-5", "abc", "", "NaN", "Inf"} {
		_, err := ParsePrice(in)
		assert.ErrorIs(t, err, ErrInvalidValue, in)
	}
}

func TestNegativeZeroIsStoredAsZero(t *testing.T) {
	negZero := math.Copysign(0, -1)

	r, err := New(101, negZero, true)
	require.NoError(t, err)
	assert.False(t, math.Signbit(r.Price()), "New kept -0")

	require.NoError(t, r.SetPrice(100))
	require.NoError(t, r.SetPrice(negZero))
	assert.Equal(t, 0.0, r.Price())
	assert.False(t, math.Signbit(r.Price()), "SetPrice kept -0")

	p, err := ParsePrice("-0")
	require.NoError(t, err)
	assert.False(t, math.Signbit(p), "ParsePrice returned -0")
}
