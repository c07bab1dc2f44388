package xhex

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MarshalBSONValue 实现 [bson.ValueMarshaler]，编码为 BSON 字符串（规范形式）。
func (h Hex[W]) MarshalBSONValue() (byte, []byte, error) {
	typ, data, err := bson.MarshalValue(h.String())
	return byte(typ), data, err
}

// UnmarshalBSONValue 实现 [bson.ValueUnmarshaler]。
// 仅接受 BSON 字符串，null 不修改接收者。
func (h *Hex[W]) UnmarshalBSONValue(typ byte, data []byte) error {
	if h == nil {
		return ErrNilReceiver
	}
	s, ok, err := bsonString(typ, data)
	if err != nil || !ok {
		return err
	}
	w, err := parseWord[W]("Hex.UnmarshalBSONValue", s)
	if err != nil {
		return err
	}
	h.w = w
	return nil
}

// MarshalBSONValue 实现 [bson.ValueMarshaler]。无效值返回 [ErrZero]。
func (n NonZero[W]) MarshalBSONValue() (byte, []byte, error) {
	if !n.IsValid() {
		return 0, nil, &RangeError{Func: "NonZero.MarshalBSONValue", Bits: bitsOf[W](), Err: ErrZero}
	}
	typ, data, err := bson.MarshalValue(n.String())
	return byte(typ), data, err
}

// UnmarshalBSONValue 实现 [bson.ValueUnmarshaler]，另拒绝 "0"。
func (n *NonZero[W]) UnmarshalBSONValue(typ byte, data []byte) error {
	if n == nil {
		return ErrNilReceiver
	}
	s, ok, err := bsonString(typ, data)
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

// bsonString 解码 BSON 字符串。null 返回 ok=false 且无错误。
func bsonString(typ byte, data []byte) (s string, ok bool, err error) {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}
	if raw.Type == bson.TypeNull {
		return "", false, nil
	}
	s, ok = raw.StringValueOK()
	if !ok {
		return "", false, fmt.Errorf("%w: expected string, got %s", ErrInvalidBSON, raw.Type)
	}
	return s, true, nil
}
