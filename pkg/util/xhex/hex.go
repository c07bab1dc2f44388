package xhex

import (
	"fmt"
	"log/slog"
)

// Hex 包装一个 W 位无符号整数，规范文本形式为小写、无前缀、最少位数的十六进制。
//
// Hex 是不可变值类型：
//   - 零值 Hex[W]{} 即整数 0
//   - 可直接比较（==）和用作 map key
//   - 顺序由 [Hex.Compare] 按数值定义，与字符串字典序无关
//
// 各位宽的实例化别名见 [Hex8]、[Hex16]、[Hex32]、[Hex64]、[Hex128]、[HexUint]。
type Hex[W Word] struct {
	w W
}

// New 包装 w，总是成功。
func New[W Word](w W) Hex[W] {
	return Hex[W]{w: w}
}

// Max 返回 W 位可表示的最大值。
func Max[W Word]() Hex[W] {
	return Hex[W]{w: join[W](^uint64(0), ^uint64(0))}
}

// Get 返回内部整数。
func (h Hex[W]) Get() W {
	return h.w
}

// Ptr 返回指向内部整数的指针，用于原地修改。
// 等价于独占引用，并发访问需由调用方加锁。
func (h *Hex[W]) Ptr() *W {
	return &h.w
}

// Set 原地替换内部整数。
func (h *Hex[W]) Set(w W) {
	h.w = w
}

// IsZero 报告内部整数是否为 0。
func (h Hex[W]) IsZero() bool {
	return isZero(h.w)
}

// Bits 返回位宽。
func (h Hex[W]) Bits() int {
	return bitsOf[W]()
}

// Compare 按数值比较 h 与 o。
// 返回值：-1 (h < o), 0 (h == o), 1 (h > o)。
func (h Hex[W]) Compare(o Hex[W]) int {
	return compareWords(h.w, o.w)
}

// Less 报告 h 是否小于 o。
func (h Hex[W]) Less(o Hex[W]) bool {
	return h.Compare(o) < 0
}

// NonZero 将 h 收窄为 [NonZero]。h 为 0 时返回 *[RangeError]（包装 [ErrZero]）。
func (h Hex[W]) NonZero() (NonZero[W], error) {
	if h.IsZero() {
		return NonZero[W]{}, &RangeError{Func: "Hex.NonZero", Bits: bitsOf[W](), Err: ErrZero}
	}
	return NonZero[W]{w: h.w}, nil
}

// String 返回规范形式，0 返回 "0"。
func (h Hex[W]) String() string {
	return canonical(split(h.w))
}

// AppendText 实现 [encoding.TextAppender]，将规范形式追加到 b。
func (h Hex[W]) AppendText(b []byte) ([]byte, error) {
	hi, lo := split(h.w)
	return appendCanonical(b, hi, lo), nil
}

// Format 实现 [fmt.Formatter]，支持的动词见包文档。
func (h Hex[W]) Format(f fmt.State, verb rune) {
	hi, lo := split(h.w)
	formatWord(f, verb, hi, lo)
}

// LogValue 实现 [slog.LogValuer]，日志中以规范形式输出。
func (h Hex[W]) LogValue() slog.Value {
	return slog.StringValue(h.String())
}
