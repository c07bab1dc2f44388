package xhex

import "lukechampine.com/uint128"

// 各位宽的实例化别名。
type (
	Hex8    = Hex[uint8]
	Hex16   = Hex[uint16]
	Hex32   = Hex[uint32]
	Hex64   = Hex[uint64]
	Hex128  = Hex[uint128.Uint128]
	HexUint = Hex[uint] // 指针宽度

	NonZeroHex8    = NonZero[uint8]
	NonZeroHex16   = NonZero[uint16]
	NonZeroHex32   = NonZero[uint32]
	NonZeroHex64   = NonZero[uint64]
	NonZeroHex128  = NonZero[uint128.Uint128]
	NonZeroHexUint = NonZero[uint]
)
