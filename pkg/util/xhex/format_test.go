package xhex

import (
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestHex_String(t *testing.T) {
	tests := []struct {
		name string
		h    fmt.Stringer
		want string
	}{
		{"zero8", Hex8{}, "0"},
		{"zero128", Hex128{}, "0"},
		{"small", New[uint8](0x0a), "a"},
		{"no_padding", New[uint32](0x00ab), "ab"},
		{"ae01f7d", New[uint32](0xae01f7d), "ae01f7d"},
		{"max64", New(^uint64(0)), "ffffffffffffffff"},
		{"hi_only", New(uint128.New(0, 1)), "10000000000000000"},
		{"hi_and_lo", New(uint128.New(0xa, 0xb)), "b000000000000000a"},
		{"nonzero", MustParseNonZero[uint16]("00a3"), "a3"},
		{"uint", New[uint](255), "ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.h.String()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, strings.ToLower(got), got)
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 0xf, 0x10, 0xff, 0x100, 0xdeadbeef, 1 << 63, ^uint64(0)} {
		h := New(v)
		got, err := Parse[uint64](h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}

	for v := range 256 {
		h := New(uint8(v))
		got, err := Parse[uint8](h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
		if v != 0 {
			assert.NotEqual(t, byte('0'), h.String()[0], "no leading zero for %d", v)
		}
	}

	for _, v := range []uint128.Uint128{uint128.Zero, uint128.Max, uint128.New(0, 1), uint128.New(1, 0), uint128.New(0x10, 0x1)} {
		h := New(v)
		got, err := Parse[uint128.Uint128](h.String())
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
}

func TestHex_AppendText(t *testing.T) {
	b, err := New[uint32](0xae01f7d).AppendText([]byte("id="))
	require.NoError(t, err)
	assert.Equal(t, "id=ae01f7d", string(b))
}

func TestHex_Format(t *testing.T) {
	h := New[uint32](0xae01f7d)
	tests := []struct {
		format string
		want   string
	}{
		{"%v", "ae01f7d"},
		{"%s", "ae01f7d"},
		{"%x", "ae01f7d"},
		{"%X", "AE01F7D"},
		{"%#x", "0xae01f7d"},
		{"%#X", "0XAE01F7D"},
		{"%d", "182460285"},
		{"%q", `"ae01f7d"`},
		{"%10x", "   ae01f7d"},
		{"%-10x|", "ae01f7d   |"},
		{"%010x", "000ae01f7d"},
		{"%#010x", "0x0ae01f7d"},
		{"%010s", "   ae01f7d"},
		{"%t", "%!t(xhex=ae01f7d)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			assert.Equal(t, tt.want, fmt.Sprintf(tt.format, h))
		})
	}
}

func TestHex_Format128Decimal(t *testing.T) {
	assert.Equal(t, "340282366920938463463374607431768211455", fmt.Sprintf("%d", Max[uint128.Uint128]()))
	assert.Equal(t, "18446744073709551616", fmt.Sprintf("%d", New(uint128.New(0, 1))))
}

func TestNonZero_Format(t *testing.T) {
	n := MustParseNonZero[uint8]("ff")
	assert.Equal(t, "ff", fmt.Sprint(n))
	assert.Equal(t, "255", fmt.Sprintf("%d", n))
	assert.Equal(t, "", fmt.Sprint(NonZeroHex8{}))
	assert.Equal(t, "   ", fmt.Sprintf("%3v", NonZeroHex8{}))
}

func TestHex_LogValue(t *testing.T) {
	var buf strings.Builder
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))

	logger.Info("lookup", slog.Any("id", New[uint32](0xae01f7d)), slog.Any("key", MustParseNonZero[uint64]("a3")))
	assert.Equal(t, "level=INFO msg=lookup id=ae01f7d key=a3\n", buf.String())
}
