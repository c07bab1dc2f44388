package xhex

import (
	"errors"
	"strconv"
)

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xhex: empty input")

	// ErrInvalidDigit 表示输入包含 [0-9a-f] 以外的字符。
	// 大写字母与 "0x" 前缀同样视为非法字符。
	ErrInvalidDigit = errors.New("xhex: invalid hex digit")

	// ErrOverflow 表示数值超出目标位宽可表示的最大值。
	ErrOverflow = errors.New("xhex: value out of range")

	// ErrZero 表示向 [NonZero] 提供了零值。
	ErrZero = errors.New("xhex: zero is not a valid nonzero hex")

	// ErrNilReceiver 表示在 nil 指针上调用了反序列化或 Scan 方法。
	ErrNilReceiver = errors.New("xhex: nil receiver")

	// ErrInvalidJSON 表示 JSON 值不是字符串。
	ErrInvalidJSON = errors.New("xhex: invalid JSON value")

	// ErrInvalidBSON 表示 BSON 值不是字符串。
	ErrInvalidBSON = errors.New("xhex: invalid BSON value")

	// ErrUnsupportedType 表示 Scan 收到无法转换为整数的源类型。
	ErrUnsupportedType = errors.New("xhex: unsupported scan type")
)

// ParseError 记录一次失败的十六进制解析。
// Err 为 [ErrEmpty]、[ErrInvalidDigit]、[ErrOverflow] 或 [ErrZero] 之一。
type ParseError struct {
	Func  string // 出错的函数名，如 "Parse"
	Input string // 原始输入
	Bits  int    // 目标位宽
	Err   error
}

func (e *ParseError) Error() string {
	return "xhex." + e.Func + ": parsing " + strconv.Quote(e.Input) +
		" as " + strconv.Itoa(e.Bits) + "-bit hex: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// RangeError 记录非解析路径上的取值失败，例如以 0 构造 [NonZero]。
type RangeError struct {
	Func string
	Bits int
	Err  error
}

func (e *RangeError) Error() string {
	return "xhex." + e.Func + ": " + strconv.Itoa(e.Bits) + "-bit: " + e.Err.Error()
}

func (e *RangeError) Unwrap() error { return e.Err }
