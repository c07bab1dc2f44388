package main

import (
	"encoding"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xhex/pkg/util/xhex"
)

const (
	defaultWidth = "64"

	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// fileConfig 是配置文件结构。
//
// seed 必须写成带引号的字符串，由 TextUnmarshaler 解码；未加引号的数字由
// [quotedTextHook] 拒绝。缺省时保持无效零值，表示不固定种子。
type fileConfig struct {
	Width   string            `koanf:"width"`
	NonZero bool              `koanf:"nonzero"`
	Output  string            `koanf:"output"`
	Seed    xhex.NonZeroHex64 `koanf:"seed"`
}

// settings 是合并命令行与配置文件后的最终设置。
type settings struct {
	width   string
	nonzero bool
	output  string
	seed    xhex.NonZeroHex64
	logger  *slog.Logger
}

// resolveSettings 合并设置：显式命令行参数 > 配置文件 > 默认值。
func resolveSettings(cmd *cli.Command) (*settings, error) {
	logger := newLogger(cmd.Root().ErrWriter, cmd.Bool("verbose"))

	cfg, err := loadConfig(cmd.String("config"))
	if err != nil {
		return nil, &usageError{msg: err.Error()}
	}
	if path := cmd.String("config"); path != "" {
		logger.Debug("config loaded", slog.String("path", path), slog.Any("seed", cfg.Seed))
	}

	s := &settings{
		width:   pickString(cmd, "width", cfg.Width),
		nonzero: cmd.Bool("nonzero") || (!cmd.IsSet("nonzero") && cfg.NonZero),
		output:  strings.ToLower(pickString(cmd, "output", cfg.Output)),
		seed:    cfg.Seed,
		logger:  logger,
	}
	switch s.output {
	case outputText, outputJSON, outputYAML:
	default:
		return nil, &usageError{msg: fmt.Sprintf("unsupported output %q", s.output)}
	}
	return s, nil
}

// pickString 返回显式设置的 flag 值，其次是配置值，最后是 flag 默认值。
func pickString(cmd *cli.Command, name, fromConfig string) string {
	if cmd.IsSet(name) || fromConfig == "" {
		return cmd.String(name)
	}
	return fromConfig
}

// loadConfig 按扩展名选择解析器加载配置文件。path 为空返回零值配置。
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	k := koanf.New(".")
	if len(data) > 0 {
		if err := k.Load(rawbytes.Provider(data), parser); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				quotedTextHook(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// quotedTextHook 拒绝写给 [encoding.TextUnmarshaler] 字段的数字字面量。
//
// YAML/JSON 解析器会把 12、0x2a 等未加引号的值读成数字，原始写法已丢失，
// 无法可靠还原为十六进制文本，因此直接报错并提示加引号。
func quotedTextHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if !reflect.PointerTo(to).Implements(textUnmarshalerType) {
			return data, nil
		}
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			return nil, fmt.Errorf("got number %v, hex values must be quoted strings (e.g. seed: \"2a\")", data)
		default:
			return data, nil
		}
	}
}

// newLogger 创建写往 w 的文本 logger。verbose 为 false 时仅输出 Warn 及以上。
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
