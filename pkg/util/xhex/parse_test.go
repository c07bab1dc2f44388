package xhex

import (
	"errors"
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestParse8(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint8
		wantErr error
	}{
		{"zero", "0", 0, nil},
		{"single_digit", "a", 0x0a, nil},
		{"max", "ff", 0xff, nil},
		{"leading_zeros", "000ff", 0xff, nil},
		{"leading_zero_small", "01", 1, nil},

		{"empty", "", 0, ErrEmpty},
		{"invalid", "zz", 0, ErrInvalidDigit},
		{"upper", "FF", 0, ErrInvalidDigit},
		{"mixed_case", "fF", 0, ErrInvalidDigit},
		{"prefix", "0xff", 0, ErrInvalidDigit},
		{"plus", "+1", 0, ErrInvalidDigit},
		{"underscore", "f_f", 0, ErrInvalidDigit},
		{"leading_space", " ff", 0, ErrInvalidDigit},
		{"trailing_space", "ff ", 0, ErrInvalidDigit},
		{"unicode", "ｆ", 0, ErrInvalidDigit},
		{"overflow", "100", 0, ErrOverflow},
		{"overflow_long", "fffffffffffffffffffffffffffffffffffff", 0, ErrOverflow},
		// 逐字符判断：溢出先于后续非法字符被发现
		{"overflow_before_invalid", "1ffz", 0, ErrOverflow},
		{"invalid_before_overflow", "z1ff", 0, ErrInvalidDigit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse[uint8](tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Hex8{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Get())
		})
	}
}

func TestParseWidths(t *testing.T) {
	t.Run("hex16", func(t *testing.T) {
		h, err := Parse[uint16]("ffff")
		require.NoError(t, err)
		assert.Equal(t, uint16(0xffff), h.Get())

		_, err = Parse[uint16]("10000")
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("hex32", func(t *testing.T) {
		h, err := Parse[uint32]("ae01f7d")
		require.NoError(t, err)
		assert.Equal(t, uint32(182460285), h.Get())
		assert.Equal(t, "ae01f7d", h.String())

		_, err = Parse[uint32]("100000000")
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("hex64", func(t *testing.T) {
		h, err := Parse[uint64]("ffffffffffffffff")
		require.NoError(t, err)
		assert.Equal(t, ^uint64(0), h.Get())

		_, err = Parse[uint64]("10000000000000000")
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("hex128", func(t *testing.T) {
		h, err := Parse[uint128.Uint128](strings.Repeat("f", 32))
		require.NoError(t, err)
		assert.Equal(t, uint128.Max, h.Get())

		h, err = Parse[uint128.Uint128]("1" + strings.Repeat("0", 16))
		require.NoError(t, err)
		assert.Equal(t, uint128.New(0, 1), h.Get())

		h, err = Parse[uint128.Uint128]("0123456789abcdef0123456789abcdef")
		require.NoError(t, err)
		assert.Equal(t, uint128.New(0x0123456789abcdef, 0x0123456789abcdef), h.Get())

		_, err = Parse[uint128.Uint128]("1" + strings.Repeat("0", 32))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("uint", func(t *testing.T) {
		digits := bits.UintSize / 4
		h, err := Parse[uint](strings.Repeat("f", digits))
		require.NoError(t, err)
		assert.Equal(t, ^uint(0), h.Get())

		_, err = Parse[uint]("1" + strings.Repeat("0", digits))
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestParseNonZero(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    uint32
		wantErr error
	}{
		{"one", "1", 1, nil},
		{"value", "ae01f7d", 0xae01f7d, nil},
		{"max", "ffffffff", 0xffffffff, nil},
		{"leading_zeros", "0001", 1, nil},

		{"zero", "0", 0, ErrZero},
		{"zeros", "0000", 0, ErrZero},
		{"empty", "", 0, ErrEmpty},
		{"invalid", "zz", 0, ErrInvalidDigit},
		{"overflow", "100000000", 0, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseNonZero[uint32](tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.True(t, got.IsValid())
			assert.Equal(t, tt.want, got.Get())
		})
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse[uint8]("100")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "Parse", pe.Func)
	assert.Equal(t, "100", pe.Input)
	assert.Equal(t, 8, pe.Bits)
	assert.Equal(t, `xhex.Parse: parsing "100" as 8-bit hex: xhex: value out of range`, err.Error())

	_, err = ParseNonZero[uint32]("0")
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "ParseNonZero", pe.Func)
	assert.Equal(t, 32, pe.Bits)
	assert.ErrorIs(t, err, ErrZero)
}

func TestMustParse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.Equal(t, uint16(0xa3), MustParse[uint16]("a3").Get())
			assert.Equal(t, uint16(0xa3), MustParseNonZero[uint16]("a3").Get())
		})
	})

	t.Run("invalid_panics", func(t *testing.T) {
		assert.Panics(t, func() { MustParse[uint16]("xyz") })
		assert.Panics(t, func() { MustParseNonZero[uint16]("0") })
	})
}
