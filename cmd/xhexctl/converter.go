package main

import (
	"fmt"
	"math/big"
	"math/rand/v2"

	"lukechampine.com/uint128"

	"github.com/omeyang/xhex/pkg/util/xhex"
)

// converter 把某一位宽、某一族的泛型操作抹平为运行时可选的实现。
// 返回值为 xhex.Hex[W] 或 xhex.NonZero[W]。
type converter interface {
	parse(s string) (any, error)
	fromDecimal(s string) (any, error)
	random(src rand.Source) any
}

type hexConverter[W xhex.Word] struct{}

func (hexConverter[W]) parse(s string) (any, error) {
	h, err := xhex.Parse[W](s)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (hexConverter[W]) fromDecimal(s string) (any, error) {
	b, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	var h xhex.Hex[W]
	if err := h.Scan(b); err != nil {
		return nil, err
	}
	return h, nil
}

func (hexConverter[W]) random(src rand.Source) any {
	return xhex.RandFrom[W](src)
}

type nonZeroConverter[W xhex.Word] struct{}

func (nonZeroConverter[W]) parse(s string) (any, error) {
	n, err := xhex.ParseNonZero[W](s)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (nonZeroConverter[W]) fromDecimal(s string) (any, error) {
	b, err := parseDecimal(s)
	if err != nil {
		return nil, err
	}
	var n xhex.NonZero[W]
	if err := n.Scan(b); err != nil {
		return nil, err
	}
	return n, nil
}

func (nonZeroConverter[W]) random(src rand.Source) any {
	return xhex.RandNonZeroFrom[W](src)
}

func pick[W xhex.Word](nonzero bool) converter {
	if nonzero {
		return nonZeroConverter[W]{}
	}
	return hexConverter[W]{}
}

// converterFor 按位宽名称选择实现。
func converterFor(width string, nonzero bool) (converter, error) {
	switch width {
	case "8":
		return pick[uint8](nonzero), nil
	case "16":
		return pick[uint16](nonzero), nil
	case "32":
		return pick[uint32](nonzero), nil
	case "64":
		return pick[uint64](nonzero), nil
	case "128":
		return pick[uint128.Uint128](nonzero), nil
	case "uint":
		return pick[uint](nonzero), nil
	default:
		return nil, &usageError{msg: fmt.Sprintf("unsupported width %q (want 8/16/32/64/128/uint)", width)}
	}
}

func parseDecimal(s string) (*big.Int, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal %q", s)
	}
	return b, nil
}
