package xhex

import (
	"fmt"
	"log/slog"
)

// NonZero 包装一个取值范围为 [1, max(W)] 的 W 位无符号整数。
//
// 所有受检构造路径（[NewNonZero]、[ParseNonZero]、[Hex.NonZero]、反序列化、Scan、
// 随机生成）都保证内部值非零。Go 无法禁止结构体零值，因此未初始化的 NonZero[W]{}
// 被视为无效值：[NonZero.IsValid] 返回 false，String 返回 ""，序列化返回 [ErrZero]。
//
// 各位宽的实例化别名见 [NonZeroHex8] 等。
type NonZero[W Word] struct {
	w W
}

// NewNonZero 包装 w。w 为 0 时返回 *[RangeError]（包装 [ErrZero]）。
func NewNonZero[W Word](w W) (NonZero[W], error) {
	if isZero(w) {
		return NonZero[W]{}, &RangeError{Func: "NewNonZero", Bits: bitsOf[W](), Err: ErrZero}
	}
	return NonZero[W]{w: w}, nil
}

// NewNonZeroUnchecked 包装 w，不做任何校验。
//
// 调用方必须保证 w != 0。传入 0 会得到一个违反非零不变量的值，
// 其后续行为未定义（等同于未初始化的 NonZero[W]{}）。
// 仅用于已证明非零的可信输入热路径，禁止用于解析或外部数据。
func NewNonZeroUnchecked[W Word](w W) NonZero[W] {
	return NonZero[W]{w: w}
}

// Get 返回内部整数。
func (n NonZero[W]) Get() W {
	return n.w
}

// Set 原地替换内部整数。w 为 0 时返回错误且不修改 n。
func (n *NonZero[W]) Set(w W) error {
	if isZero(w) {
		return &RangeError{Func: "NonZero.Set", Bits: bitsOf[W](), Err: ErrZero}
	}
	n.w = w
	return nil
}

// IsValid 报告 n 是否满足非零不变量。零值 NonZero[W]{} 返回 false。
func (n NonZero[W]) IsValid() bool {
	return !isZero(n.w)
}

// Hex 返回同位宽的 [Hex]，总是成功。
func (n NonZero[W]) Hex() Hex[W] {
	return Hex[W]{w: n.w}
}

// Bits 返回位宽。
func (n NonZero[W]) Bits() int {
	return bitsOf[W]()
}

// Compare 按数值比较 n 与 o。
func (n NonZero[W]) Compare(o NonZero[W]) int {
	return compareWords(n.w, o.w)
}

// Less 报告 n 是否小于 o。
func (n NonZero[W]) Less(o NonZero[W]) bool {
	return n.Compare(o) < 0
}

// String 返回规范形式。无效值返回 ""。
func (n NonZero[W]) String() string {
	if !n.IsValid() {
		return ""
	}
	return canonical(split(n.w))
}

// AppendText 实现 [encoding.TextAppender]。无效值返回 [ErrZero]。
func (n NonZero[W]) AppendText(b []byte) ([]byte, error) {
	if !n.IsValid() {
		return b, &RangeError{Func: "NonZero.AppendText", Bits: bitsOf[W](), Err: ErrZero}
	}
	hi, lo := split(n.w)
	return appendCanonical(b, hi, lo), nil
}

// Format 实现 [fmt.Formatter]。无效值按空字符串输出。
func (n NonZero[W]) Format(f fmt.State, verb rune) {
	if !n.IsValid() {
		pad(f, "", "", false)
		return
	}
	hi, lo := split(n.w)
	formatWord(f, verb, hi, lo)
}

// LogValue 实现 [slog.LogValuer]。
func (n NonZero[W]) LogValue() slog.Value {
	return slog.StringValue(n.String())
}
