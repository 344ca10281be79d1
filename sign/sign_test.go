package sign

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSign_Values(t *testing.T) {
	require.Equal(t, Sign(1), Positive)
	require.Equal(t, Sign(-1), Negative)
	require.Equal(t, 1, int(Positive))
	require.Equal(t, -1, int(Negative))
}

func TestSign_Valid(t *testing.T) {
	require.True(t, Positive.Valid())
	require.True(t, Negative.Valid())
	require.False(t, Sign(0).Valid())
	require.False(t, Sign(2).Valid())
}

func TestSign_Neg(t *testing.T) {
	require.Equal(t, Negative, Positive.Neg())
	require.Equal(t, Positive, Negative.Neg())
	require.Equal(t, Positive, Positive.Neg().Neg())
	require.Equal(t, Negative, Negative.Neg().Neg())
}

func TestSign_MulTable(t *testing.T) {
	tests := []struct {
		name string
		a, b Sign
		want Sign
	}{
		{"plus plus", Positive, Positive, Positive},
		{"plus minus", Positive, Negative, Negative},
		{"minus plus", Negative, Positive, Negative},
		{"minus minus", Negative, Negative, Positive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Mul(tt.b))
			require.Equal(t, tt.want, Mul(tt.a, tt.b))
			require.Equal(t, tt.want, Apply(tt.a, tt.b))
		})
	}
}

func TestMul_Numbers(t *testing.T) {
	require.Equal(t, 123, Mul(Positive, 123))
	require.Equal(t, -123, Mul(Negative, 123))
	require.Equal(t, 3.14, Mul(Positive, 3.14))
	require.Equal(t, -3.14, Mul(Negative, 3.14))
	require.Equal(t, int8(5), Mul(Negative, int8(-5)))
	require.Equal(t, int16(-7), Mul(Negative, int16(7)))
	require.Equal(t, int32(7), Mul(Positive, int32(7)))
	require.Equal(t, int64(-9), Mul(Negative, int64(9)))
	require.Equal(t, float32(-1.5), Mul(Negative, float32(1.5)))
}

func TestMul_NegativeZero(t *testing.T) {
	got := Mul(Negative, 0.0)
	require.True(t, math.Signbit(got), "Negative * +0.0 should be -0.0")
}

type vec struct{ x, y int }

func (v vec) Neg() vec { return vec{-v.x, -v.y} }

func TestApply_Negater(t *testing.T) {
	v := vec{1, -2}
	require.Equal(t, v, Apply(Positive, v))
	require.Equal(t, vec{-1, 2}, Apply(Negative, v))
}

func TestSign_Compare(t *testing.T) {
	require.True(t, Negative < Positive)
	require.Equal(t, 1, Positive.Compare(Negative))
	require.Equal(t, -1, Negative.Compare(Positive))
	require.Equal(t, 0, Positive.Compare(Positive))
	require.Equal(t, 0, Negative.Compare(Negative))
}

func TestSign_Sort(t *testing.T) {
	signs := []Sign{Positive, Negative, Positive, Negative, Negative}
	slices.SortFunc(signs, Compare)
	require.Equal(t, []Sign{Negative, Negative, Negative, Positive, Positive}, signs)
}

func TestSign_IntegerConversions(t *testing.T) {
	require.Equal(t, 1, Positive.ToInt())
	require.Equal(t, -1, Negative.ToInt())
	require.Equal(t, int64(1), Positive.ToInt64())
	require.Equal(t, int64(-1), Negative.ToInt64())
	require.Equal(t, int32(1), Positive.ToInt32())
	require.Equal(t, int32(-1), Negative.ToInt32())
	require.Equal(t, int16(1), Positive.ToInt16())
	require.Equal(t, int16(-1), Negative.ToInt16())
	require.Equal(t, int8(1), As[int8](Positive))
	require.Equal(t, int8(-1), As[int8](Negative))
}

func TestSign_ToInt8ReturnsInt16(t *testing.T) {
	var got int16 = Negative.ToInt8()
	require.Equal(t, int16(-1), got)
	require.Equal(t, int16(1), Positive.ToInt8())
}

func TestSign_FloatConversions(t *testing.T) {
	require.Equal(t, float32(1.0), Positive.ToFloat32())
	require.Equal(t, float32(-1.0), Negative.ToFloat32())
	require.Equal(t, 1.0, Positive.ToFloat64())
	require.Equal(t, -1.0, Negative.ToFloat64())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Sign
		wantErr bool
	}{
		{"plus", "+", Positive, false},
		{"minus", "-", Negative, false},
		{"empty", "", 0, true},
		{"old plus one", "+1", 0, true},
		{"old minus one", "-1", 0, true},
		{"padded", " +", 0, true},
		{"word", "positive", 0, true},
		{"double", "++", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrInvalid))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMustParse(t *testing.T) {
	require.Equal(t, Positive, MustParse("+"))
	require.Equal(t, Negative, MustParse("-"))
	require.Panics(t, func() { MustParse("x") })
}

func TestSign_String(t *testing.T) {
	require.Equal(t, "+", Positive.String())
	require.Equal(t, "-", Negative.String())
	require.Equal(t, "Sign(0)", Sign(0).String())
}

func TestSign_StringParseRoundTrip(t *testing.T) {
	for _, s := range []Sign{Positive, Negative} {
		got, err := Parse(s.String())
		require.NoError(t, err)
		require.Equal(t, s, got)
	}
	for _, tok := range []string{"+", "-"} {
		require.Equal(t, tok, MustParse(tok).String())
	}
}
