package xhex

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"lukechampine.com/uint128"
)

// seqSource 依次返回预设值，耗尽后返回最后一个值。
type seqSource struct {
	vals []uint64
	i    int
}

func (s *seqSource) Uint64() uint64 {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v
}

func TestRandFrom_Deterministic(t *testing.T) {
	a := RandFrom[uint64](rand.NewPCG(1, 2))
	b := RandFrom[uint64](rand.NewPCG(1, 2))
	assert.Equal(t, a, b)

	want := rand.NewPCG(1, 2).Uint64()
	assert.Equal(t, want, a.Get())
}

func TestRandFrom_Truncates(t *testing.T) {
	src := &seqSource{vals: []uint64{0x1234567890abcdef}}
	assert.Equal(t, "ef", RandFrom[uint8](src).String())
	assert.Equal(t, "cdef", RandFrom[uint16](src).String())
	assert.Equal(t, "90abcdef", RandFrom[uint32](src).String())
}

func TestRandFrom_128(t *testing.T) {
	src := &seqSource{vals: []uint64{0x2, 0x1}}
	h := RandFrom[uint128.Uint128](src)
	assert.Equal(t, uint128.New(0x2, 0x1), h.Get())
	assert.Equal(t, 2, src.i)
}

func TestRandFrom_AllowsZero(t *testing.T) {
	src := &seqSource{vals: []uint64{0}}
	assert.True(t, RandFrom[uint32](src).IsZero())
}

func TestRandNonZeroFrom_Resamples(t *testing.T) {
	// 低 8 位为 0 的值对 8 位宽度同样是 0，必须被丢弃
	src := &seqSource{vals: []uint64{0, 0x100, 0x200, 0x2a}}
	n := RandNonZeroFrom[uint8](src)
	assert.True(t, n.IsValid())
	assert.Equal(t, uint8(0x2a), n.Get())
	assert.Equal(t, 4, src.i)

	src128 := &seqSource{vals: []uint64{0, 0, 0, 1}}
	n128 := RandNonZeroFrom[uint128.Uint128](src128)
	assert.Equal(t, uint128.New(0, 1), n128.Get())
}

func TestRandNonZero_NeverZero(t *testing.T) {
	for range 10000 {
		assert.True(t, RandNonZero[uint8]().IsValid())
	}
	src := rand.NewPCG(42, 42)
	for range 10000 {
		assert.NotZero(t, RandNonZeroFrom[uint8](src).Get())
	}
}

func TestRand_Default(t *testing.T) {
	// 64 位全局随机源连续两次相同的概率可忽略
	assert.NotEqual(t, Rand[uint64](), Rand[uint64]())
	assert.True(t, RandNonZero[uint128.Uint128]().IsValid())
	_ = Rand[uint]()
}
