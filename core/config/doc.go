// File: doc.go
// Title: Configuration Package Documentation
// Description: Documents configuration loading for the expression engine
//              and the mdwexpr command line tool.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial configuration package

/*
Package config loads TOML or YAML configuration files and exposes their
values through dot-notation getters.

	cfg, err := mdwconfig.LoadWithOptions("mdwexpr.toml", mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: "MDWEXPR",
	})
	depth := cfg.GetInt("parser.max_depth", 256)

When an environment prefix is set, MDWEXPR_PARSER_MAX_DEPTH overrides
parser.max_depth. Missing keys yield the supplied default.
*/
package config
