package main

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// result 是单条转换结果。Hex 持有 xhex 值本身，
// JSON/YAML 输出经由其 MarshalJSON/MarshalText 得到规范形式。
type result struct {
	Input   string `json:"input,omitempty" yaml:"input,omitempty"`
	Hex     any    `json:"hex,omitempty" yaml:"hex,omitempty"`
	Decimal string `json:"decimal,omitempty" yaml:"decimal,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newResult(input string, v any, err error) result {
	if err != nil {
		return result{Input: input, Error: err.Error()}
	}
	return result{Input: input, Hex: v, Decimal: fmt.Sprintf("%d", v)}
}

// writeResults 按 format 输出结果。text 格式每行 "hex<TAB>decimal"，失败行 "input<TAB>error: ..."。
func writeResults(w io.Writer, format string, rs []result) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rs)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rs); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, r := range rs {
			var err error
			if r.Error != "" {
				_, err = fmt.Fprintf(w, "%s\terror: %s\n", r.Input, r.Error)
			} else {
				_, err = fmt.Fprintf(w, "%v\t%s\n", r.Hex, r.Decimal)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}
