package xhex

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"math/big"
)

// 持久化路径存取原生整数，与文本/JSON/BSON 的十六进制字符串路径相互独立：
//
//   - 位宽 <= 32：int64
//   - 位宽 64（含 64 位平台的 uint）：int64，按补码重新解释同一组 64 位，
//     使 BIGINT 列覆盖完整取值范围，Scan 时还原
//   - 位宽 128：16 字节大端 []byte，对应 BINARY(16)/BYTEA 列

// Value 实现 [driver.Valuer]。
func (h Hex[W]) Value() (driver.Value, error) {
	return wordValue(h.w), nil
}

// Scan 实现 [database/sql.Scanner]。
//
// 支持 Go 整数类型、*big.Int 与十进制 string。[]byte 在 128 位下只接受 16 字节大端形式，
// 其他位宽下按十进制文本解析。
// nil 置为 0。负数（64 位补码重解释除外）与超出位宽的值返回 [ErrOverflow]。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (h *Hex[W]) Scan(src any) error {
	if h == nil {
		return ErrNilReceiver
	}
	if src == nil {
		h.w = join[W](0, 0)
		return nil
	}
	w, err := scanWord[W](src)
	if err != nil {
		return err
	}
	h.w = w
	return nil
}

// Value 实现 [driver.Valuer]。无效值返回 [ErrZero]。
func (n NonZero[W]) Value() (driver.Value, error) {
	if !n.IsValid() {
		return nil, &RangeError{Func: "NonZero.Value", Bits: bitsOf[W](), Err: ErrZero}
	}
	return wordValue(n.w), nil
}

// Scan 实现 [database/sql.Scanner]。nil 或 0 返回 [ErrZero]，失败时不修改 n。
// 可空列请使用 *NonZero 或 sql.Null[NonZero[W]]。
func (n *NonZero[W]) Scan(src any) error {
	if n == nil {
		return ErrNilReceiver
	}
	if src == nil {
		return &RangeError{Func: "NonZero.Scan", Bits: bitsOf[W](), Err: ErrZero}
	}
	w, err := scanWord[W](src)
	if err != nil {
		return err
	}
	if isZero(w) {
		return &RangeError{Func: "NonZero.Scan", Bits: bitsOf[W](), Err: ErrZero}
	}
	n.w = w
	return nil
}

func wordValue[W Word](w W) driver.Value {
	hi, lo := split(w)
	if bitsOf[W]() == 128 {
		b := make([]byte, 16)
		binary.BigEndian.PutUint64(b[:8], hi)
		binary.BigEndian.PutUint64(b[8:], lo)
		return b
	}
	return int64(lo)
}

func scanWord[W Word](src any) (W, error) {
	var zero W
	n := bitsOf[W]()

	var hi, lo uint64
	switch v := src.(type) {
	case int64:
		// 仅 64 位宽度接受负数：它是 Value 写入的补码重解释
		if v < 0 && n != 64 {
			return zero, fmt.Errorf("%w: negative value %d for %d-bit hex", ErrOverflow, v, n)
		}
		lo = uint64(v)
	case int:
		return scanWord[W](int64(v))
	case int32:
		return scanWord[W](int64(v))
	case int16:
		return scanWord[W](int64(v))
	case int8:
		return scanWord[W](int64(v))
	case uint64:
		lo = v
	case uint:
		lo = uint64(v)
	case uint32:
		lo = uint64(v)
	case uint16:
		lo = uint64(v)
	case uint8:
		lo = uint64(v)
	case *big.Int:
		return bigWord[W](v)
	case []byte:
		// 128 位的 []byte 只能是 Value 写入的 16 字节大端形式，
		// 十进制文本须以 string 传入，否则 16 字符的十进制会与二进制形式混淆
		if n == 128 {
			if len(v) != 16 {
				return zero, fmt.Errorf("%w: %d-byte []byte for 128-bit hex, want 16", ErrUnsupportedType, len(v))
			}
			hi = binary.BigEndian.Uint64(v[:8])
			lo = binary.BigEndian.Uint64(v[8:])
			break
		}
		return decimalWord[W](string(v))
	case string:
		return decimalWord[W](v)
	default:
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}

	if !fits(hi, lo, n) {
		return zero, fmt.Errorf("%w: %s exceeds %d bits", ErrOverflow, decimal(hi, lo), n)
	}
	return join[W](hi, lo), nil
}

func decimalWord[W Word](s string) (W, error) {
	var zero W
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return zero, fmt.Errorf("%w: invalid decimal %q", ErrUnsupportedType, s)
	}
	return bigWord[W](b)
}

func bigWord[W Word](b *big.Int) (W, error) {
	var zero W
	n := bitsOf[W]()
	if b == nil {
		return zero, fmt.Errorf("%w: nil *big.Int", ErrUnsupportedType)
	}
	if b.Sign() < 0 || b.BitLen() > n {
		return zero, fmt.Errorf("%w: %s exceeds %d bits", ErrOverflow, b, n)
	}
	var buf [16]byte
	b.FillBytes(buf[:])
	return join[W](binary.BigEndian.Uint64(buf[:8]), binary.BigEndian.Uint64(buf[8:])), nil
}
