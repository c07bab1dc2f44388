// xhexctl 是 xhex 定宽十六进制整数的命令行工具。
//
// 用法:
//
//	xhexctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config   配置文件（.yaml/.yml/.json），键: width, nonzero, output, seed
//	               seed 为十六进制字符串，须加引号（seed: "2a"）
//	-w, --width    位宽: 8/16/32/64/128/uint (默认: 64)
//	-z, --nonzero  使用 NonZero 族，拒绝 0
//	-o, --output   输出格式: text/json/yaml (默认: text)
//	--verbose      向 stderr 输出调试日志
//
// 命令行参数优先于配置文件，配置文件优先于默认值。
//
// 命令:
//
//	parse <hex>...        解析十六进制字符串，输出规范形式与十进制值
//	format <decimal>...   将十进制整数格式化为规范十六进制
//	rand [-n N] [--seed]  生成随机值；--seed（十六进制，非零）使结果可复现
//
// 退出码:
//
//	0: 全部成功
//	1: 存在转换失败的输入
//	2: 参数错误（未知位宽、缺少参数、配置文件无效等）
//
// 示例:
//
//	xhexctl parse -w 32 ae01f7d           # ae01f7d	182460285
//	xhexctl format -w 8 255 256           # 256 超出 8 位，退出码 1
//	xhexctl rand -w 128 -z -n 3 -o json
//	xhexctl -c shard.yaml rand
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

// createApp 创建 CLI 应用。
func createApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "xhexctl",
		Usage:     "定宽十六进制整数解析/格式化/随机生成工具",
		Version:   fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json），seed 须写成带引号的十六进制字符串",
			},
			&cli.StringFlag{
				Name:    "width",
				Aliases: []string{"w"},
				Usage:   "位宽: 8/16/32/64/128/uint",
				Value:   defaultWidth,
			},
			&cli.BoolFlag{
				Name:    "nonzero",
				Aliases: []string{"z"},
				Usage:   "使用 NonZero 族（拒绝 0）",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出格式: text/json/yaml",
				Value:   outputText,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "向 stderr 输出调试日志",
			},
		},
		Commands: createCommands(),
		Authors: []any{
			"XKit Team",
		},
		// 由 run() 统一映射退出码，禁止 urfave/cli 直接调用 os.Exit。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(stderr, err)
			}
		},
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := createApp(stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(stderr, "错误: %v\n", err)
		return 1
	}
	return 0
}

// isCLIUsageError 识别 urfave/cli 自身产生的参数错误（未知 flag、flag 值无效等）。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"flag provided but not defined",
		"invalid value",
		"flag needs an argument",
	} {
		if strings.Contains(msg, prefix) {
			return true
		}
	}
	return false
}
