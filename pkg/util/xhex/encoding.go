package xhex

import (
	"encoding/json"
	"fmt"
)

// MarshalText 实现 [encoding.TextMarshaler]，输出规范形式。
func (h Hex[W]) MarshalText() ([]byte, error) {
	return h.AppendText(nil)
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，规则同 [Parse]。
// 空输入返回 [ErrEmpty]，不会静默置零。
func (h *Hex[W]) UnmarshalText(text []byte) error {
	if h == nil {
		return ErrNilReceiver
	}
	w, err := parseWord[W]("Hex.UnmarshalText", string(text))
	if err != nil {
		return err
	}
	h.w = w
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范形式（如 "ae01f7d"）。
//
// 规范形式仅包含 [0-9a-f]，无需 JSON 转义，直接构造字节切片。
func (h Hex[W]) MarshalJSON() ([]byte, error) {
	hi, lo := split(h.w)
	return appendQuoted(hi, lo), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 仅接受 JSON 字符串；null 不修改接收者（与 encoding/json 约定一致）。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (h *Hex[W]) UnmarshalJSON(data []byte) error {
	if h == nil {
		return ErrNilReceiver
	}
	s, ok, err := jsonString(data)
	if err != nil || !ok {
		return err
	}
	w, err := parseWord[W]("Hex.UnmarshalJSON", s)
	if err != nil {
		return err
	}
	h.w = w
	return nil
}

// MarshalText 实现 [encoding.TextMarshaler]。无效值返回 [ErrZero]。
func (n NonZero[W]) MarshalText() ([]byte, error) {
	return n.AppendText(nil)
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]，规则同 [ParseNonZero]。
func (n *NonZero[W]) UnmarshalText(text []byte) error {
	if n == nil {
		return ErrNilReceiver
	}
	v, err := ParseNonZero[W](string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。无效值返回 [ErrZero]。
func (n NonZero[W]) MarshalJSON() ([]byte, error) {
	if !n.IsValid() {
		return nil, &RangeError{Func: "NonZero.MarshalJSON", Bits: bitsOf[W](), Err: ErrZero}
	}
	hi, lo := split(n.w)
	return appendQuoted(hi, lo), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]，规则同 [Hex.UnmarshalJSON]，另拒绝 "0"。
func (n *NonZero[W]) UnmarshalJSON(data []byte) error {
	if n == nil {
		return ErrNilReceiver
	}
	s, ok, err := jsonString(data)
	if err != nil || !ok {
		return err
	}
	v, err := ParseNonZero[W](s)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func appendQuoted(hi, lo uint64) []byte {
	// 引号 2 字节 + 最多 32 个十六进制字符
	buf := make([]byte, 0, 34)
	buf = append(buf, '"')
	buf = appendCanonical(buf, hi, lo)
	return append(buf, '"')
}

// jsonString 解码 JSON 字符串。null 返回 ok=false 且无错误。
func jsonString(data []byte) (s string, ok bool, err error) {
	if string(data) == "null" {
		return "", false, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return s, true, nil
}
