package xhex

import "fmt"

// Parse 将十六进制字符串解析为 [Hex]。
//
// 仅接受 [0-9a-f]：大写字母、"0x" 前缀、符号、下划线与空白均返回 [ErrInvalidDigit]。
// 前导零允许，且不计入溢出判断（"000ff" 可解析为 8 位值 255）。
//
// 错误为 *[ParseError]，可用 errors.Is 匹配 [ErrEmpty]、[ErrInvalidDigit]、[ErrOverflow]。
func Parse[W Word](s string) (Hex[W], error) {
	w, err := parseWord[W]("Parse", s)
	if err != nil {
		return Hex[W]{}, err
	}
	return Hex[W]{w: w}, nil
}

// ParseNonZero 类似 [Parse]，但解析结果为 0 时返回 [ErrZero]。
func ParseNonZero[W Word](s string) (NonZero[W], error) {
	w, err := parseWord[W]("ParseNonZero", s)
	if err != nil {
		return NonZero[W]{}, err
	}
	if isZero(w) {
		return NonZero[W]{}, &ParseError{Func: "ParseNonZero", Input: s, Bits: bitsOf[W](), Err: ErrZero}
	}
	return NonZero[W]{w: w}, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse[W Word](s string) Hex[W] {
	h, err := Parse[W](s)
	if err != nil {
		panic(fmt.Sprintf("xhex.MustParse(%q): %v", s, err))
	}
	return h
}

// MustParseNonZero 类似 [ParseNonZero]，但解析失败时 panic。
func MustParseNonZero[W Word](s string) NonZero[W] {
	h, err := ParseNonZero[W](s)
	if err != nil {
		panic(fmt.Sprintf("xhex.MustParseNonZero(%q): %v", s, err))
	}
	return h
}

// parseWord 逐字符累加，遇到非法字符或溢出立即返回，
// 因此 "1ffz" 在 8 位下报告溢出而非非法字符。
func parseWord[W Word](fn, s string) (W, error) {
	var zero W
	n := bitsOf[W]()
	if s == "" {
		return zero, &ParseError{Func: fn, Input: s, Bits: n, Err: ErrEmpty}
	}

	var hi, lo uint64
	for i := 0; i < len(s); i++ {
		d := lowerHexValue(s[i])
		if d < 0 {
			return zero, &ParseError{Func: fn, Input: s, Bits: n, Err: ErrInvalidDigit}
		}
		// 左移 4 位前高 4 位必须为空，否则超出 128 位
		if hi>>60 != 0 {
			return zero, &ParseError{Func: fn, Input: s, Bits: n, Err: ErrOverflow}
		}
		hi = hi<<4 | lo>>60
		lo = lo<<4 | uint64(d)
		if !fits(hi, lo, n) {
			return zero, &ParseError{Func: fn, Input: s, Bits: n, Err: ErrOverflow}
		}
	}
	return join[W](hi, lo), nil
}

// lowerHexValue 返回小写十六进制字符的数值，其他字符返回 -1。
func lowerHexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	default:
		return -1
	}
}
