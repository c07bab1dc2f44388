package xhex

import (
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

const hexLower = "0123456789abcdef"

// appendCanonical 追加规范形式：小写、无前缀、最少位数，0 输出 "0"。
func appendCanonical(dst []byte, hi, lo uint64) []byte {
	if hi == 0 {
		return strconv.AppendUint(dst, lo, 16)
	}
	dst = strconv.AppendUint(dst, hi, 16)
	// 存在高位时低 64 位固定输出 16 个字符
	for shift := 60; shift >= 0; shift -= 4 {
		dst = append(dst, hexLower[lo>>uint(shift)&0x0f])
	}
	return dst
}

func canonical(hi, lo uint64) string {
	var buf [32]byte
	return string(appendCanonical(buf[:0], hi, lo))
}

func decimal(hi, lo uint64) string {
	if hi == 0 {
		return strconv.FormatUint(lo, 10)
	}
	return uint128.New(lo, hi).String()
}

// formatWord 实现 [fmt.Formatter] 的公共部分。
//
// 支持的动词：
//   - %v %s %x：规范形式
//   - %X：大写
//   - %d：十进制
//   - %q：带引号的规范形式
//
// '#' 标志为 %x/%X 添加 0x/0X 前缀；宽度按 '-' 与 '0' 标志填充。
func formatWord(f fmt.State, verb rune, hi, lo uint64) {
	var prefix, digits string
	switch verb {
	case 'v', 's', 'x':
		digits = canonical(hi, lo)
		if verb == 'x' && f.Flag('#') {
			prefix = "0x"
		}
	case 'X':
		digits = strings.ToUpper(canonical(hi, lo))
		if f.Flag('#') {
			prefix = "0X"
		}
	case 'd':
		digits = decimal(hi, lo)
	case 'q':
		digits = strconv.Quote(canonical(hi, lo))
	default:
		fmt.Fprintf(f, "%%!%c(xhex=%s)", verb, canonical(hi, lo))
		return
	}
	pad(f, prefix, digits, verb != 'q' && verb != 's')
}

// pad 按宽度输出 prefix+digits。numeric 为 true 时允许 '0' 填充（填在前缀之后）。
func pad(f fmt.State, prefix, digits string, numeric bool) {
	width, ok := f.Width()
	fill := width - len(prefix) - len(digits)
	if !ok || fill <= 0 {
		_, _ = f.Write([]byte(prefix + digits))
		return
	}
	switch {
	case f.Flag('-'):
		_, _ = f.Write([]byte(prefix + digits + strings.Repeat(" ", fill)))
	case f.Flag('0') && numeric:
		_, _ = f.Write([]byte(prefix + strings.Repeat("0", fill) + digits))
	default:
		_, _ = f.Write([]byte(strings.Repeat(" ", fill) + prefix + digits))
	}
}
