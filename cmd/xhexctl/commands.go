package main

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xhex/pkg/util/xhex"
)

// usageError 表示参数错误，退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// exitError 表示已完成输出、仅需设置非零退出码的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createFormatCommand(),
		createRandCommand(),
	}
}

// createParseCommand 创建 parse 子命令（十六进制 → 规范形式 + 十进制）。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析十六进制字符串（仅接受小写 [0-9a-f]，无 0x 前缀）",
		ArgsUsage: "<hex>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return convertArgs(cmd, "parse", func(c converter, s string) (any, error) {
				return c.parse(s)
			})
		},
	}
}

// createFormatCommand 创建 format 子命令（十进制 → 规范十六进制）。
func createFormatCommand() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Aliases:   []string{"f"},
		Usage:     "将十进制整数格式化为规范十六进制",
		ArgsUsage: "<decimal>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return convertArgs(cmd, "format", func(c converter, s string) (any, error) {
				return c.fromDecimal(s)
			})
		},
	}
}

// createRandCommand 创建 rand 子命令。
func createRandCommand() *cli.Command {
	return &cli.Command{
		Name:    "rand",
		Aliases: []string{"r"},
		Usage:   "生成随机值",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "生成数量",
				Value:   1,
			},
			&cli.StringFlag{
				Name:  "seed",
				Usage: "随机种子（非零十六进制），指定后结果可复现",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			count := cmd.Int("count")
			if count < 1 {
				return &usageError{msg: "count must be positive"}
			}
			conv, err := converterFor(s.width, s.nonzero)
			if err != nil {
				return err
			}

			seed := s.seed
			if raw := cmd.String("seed"); raw != "" {
				seed, err = xhex.ParseNonZero[uint64](raw)
				if err != nil {
					return &usageError{msg: err.Error()}
				}
			}

			var src rand.Source
			if seed.IsValid() {
				src = rand.NewPCG(seed.Get(), seed.Get())
			}
			s.logger.Debug("generating", slog.String("width", s.width), slog.Bool("nonzero", s.nonzero),
				slog.Int("count", count), slog.Any("seed", seed))

			rs := make([]result, 0, count)
			for range count {
				rs = append(rs, newResult("", conv.random(src), nil))
			}
			return writeResults(cmd.Root().Writer, s.output, rs)
		},
	}
}

// convertArgs 对每个位置参数执行 fn，全部输出后若有失败返回退出码 1。
func convertArgs(cmd *cli.Command, name string, fn func(converter, string) (any, error)) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Args().Len() == 0 {
		return &usageError{msg: name + ": missing arguments"}
	}
	conv, err := converterFor(s.width, s.nonzero)
	if err != nil {
		return err
	}

	failed := 0
	rs := make([]result, 0, cmd.Args().Len())
	for _, arg := range cmd.Args().Slice() {
		v, err := fn(conv, arg)
		if err != nil {
			failed++
			s.logger.Debug("conversion failed", slog.String("input", arg), slog.Any("error", err))
		}
		rs = append(rs, newResult(arg, v, err))
	}
	if err := writeResults(cmd.Root().Writer, s.output, rs); err != nil {
		return err
	}
	if failed > 0 {
		return &exitError{code: 1}
	}
	return nil
}
