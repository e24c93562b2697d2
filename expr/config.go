// File: config.go
// Title: Engine Configuration
// Description: Maps configuration keys onto engine options and builds the
//              configured logger.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package expr

import (
	"io"

	mdwconfig "github.com/msto63/mdwexpr/core/config"
	mdwerror "github.com/msto63/mdwexpr/core/error"
	mdwlog "github.com/msto63/mdwexpr/core/log"
	mdwparser "github.com/msto63/mdwexpr/expr/parser"
)

// Configuration keys read by OptionsFromConfig
const (
	KeyMaxDepth         = "parser.max_depth"
	KeyMaxInputLength   = "parser.max_input_length"
	KeyRequireFullInput = "parser.require_full_input"
	KeyLogLevel         = "log.level"
	KeyLogFormat        = "log.format"
)

// OptionsFromConfig builds engine options from cfg. The logger writes to
// output using log.level and log.format.
func OptionsFromConfig(cfg *mdwconfig.Config, output io.Writer) (Options, error) {
	if cfg == nil {
		cfg = mdwconfig.Empty()
	}

	level, err := mdwlog.ParseLevel(cfg.GetString(KeyLogLevel, "info"))
	if err != nil {
		return Options{}, mdwerror.Wrap(err, "invalid log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("expr.OptionsFromConfig").
			WithDetail("key", KeyLogLevel)
	}

	format, err := mdwlog.ParseFormat(cfg.GetString(KeyLogFormat, "text"))
	if err != nil {
		return Options{}, mdwerror.Wrap(err, "invalid log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("expr.OptionsFromConfig").
			WithDetail("key", KeyLogFormat)
	}

	opts := Options{
		Logger: mdwlog.NewWithConfig(mdwlog.Config{
			Level:  level,
			Format: format,
			Output: output,
			Name:   "mdwexpr",
		}),
		MaxInputLength:   cfg.GetInt(KeyMaxInputLength, DefaultMaxInputLength),
		MaxDepth:         cfg.GetInt(KeyMaxDepth, mdwparser.DefaultMaxDepth),
		RequireFullInput: cfg.GetBool(KeyRequireFullInput, true),
	}

	if opts.MaxInputLength <= 0 || opts.MaxDepth <= 0 {
		return Options{}, mdwerror.New("parser limits must be positive").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("expr.OptionsFromConfig").
			WithDetail(KeyMaxInputLength, opts.MaxInputLength).
			WithDetail(KeyMaxDepth, opts.MaxDepth)
	}

	return opts, nil
}
