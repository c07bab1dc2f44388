package xhex

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// Word 是可被 [Hex] 与 [NonZero] 包装的无符号整数类型集合。
//
// 使用精确类型而非 ~T 近似约束：内部通过类型分支拆分/拼装位模式，
// 具名派生类型无法命中分支。
type Word interface {
	uint8 | uint16 | uint32 | uint64 | uint | uint128.Uint128
}

// bitsOf 返回 W 的位宽。uint 返回 [bits.UintSize]。
func bitsOf[W Word]() int {
	var w W
	switch any(w).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	case uint:
		return bits.UintSize
	default:
		return 128
	}
}

// split 将 w 拆分为高低两个 64 位分量。64 位及以下宽度 hi 恒为 0。
func split[W Word](w W) (hi, lo uint64) {
	switch v := any(w).(type) {
	case uint8:
		return 0, uint64(v)
	case uint16:
		return 0, uint64(v)
	case uint32:
		return 0, uint64(v)
	case uint64:
		return 0, v
	case uint:
		return 0, uint64(v)
	default:
		u := any(w).(uint128.Uint128)
		return u.Hi, u.Lo
	}
}

// join 由高低分量拼装 W，超出位宽的部分被截断。
func join[W Word](hi, lo uint64) W {
	var w W
	switch p := any(&w).(type) {
	case *uint8:
		*p = uint8(lo)
	case *uint16:
		*p = uint16(lo)
	case *uint32:
		*p = uint32(lo)
	case *uint64:
		*p = lo
	case *uint:
		*p = uint(lo)
	case *uint128.Uint128:
		*p = uint128.New(lo, hi)
	}
	return w
}

// fits 报告 (hi, lo) 表示的数值能否放入 n 位。
func fits(hi, lo uint64, n int) bool {
	switch {
	case n >= 128:
		return true
	case hi != 0:
		return false
	case n >= 64:
		return true
	default:
		return lo>>uint(n) == 0
	}
}

func isZero[W Word](w W) bool {
	hi, lo := split(w)
	return hi|lo == 0
}

func compareWords[W Word](a, b W) int {
	ahi, alo := split(a)
	bhi, blo := split(b)
	switch {
	case ahi < bhi:
		return -1
	case ahi > bhi:
		return 1
	case alo < blo:
		return -1
	case alo > blo:
		return 1
	default:
		return 0
	}
}
