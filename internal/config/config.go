// Package config holds the core engine's globally available configuration:
// cookie-stack capacity, move-buffer sizing, the magic-bitboards/ray-walk
// fallback selector, the Zobrist seed, and log level. Search/eval tuning
// is out of this module's scope (no search or evaluator is implemented
// here), so those sub-structs are dropped; see DESIGN.md.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/tbreese3/helios/internal/types"
	"github.com/tbreese3/helios/internal/util"
)

// ConfFile is the path to the TOML config file, relative to the working
// directory unless absolute.
var ConfFile = "./config.toml"

// LogLevel is the active log level, resolved from Settings.Log.Level once
// Setup has run.
var LogLevel = "info"

// Settings is the global configuration, populated by Setup from ConfFile
// or left at its compiled-in defaults if the file is absent or malformed.
var Settings conf

var initialized = false

type conf struct {
	Core CoreSettings
	Log  LogSettings
}

// CoreSettings are the move-generation core's tunables (resource
// limits and the magic-bitboard/ray-walk slider-attack selector).
type CoreSettings struct {
	MaxPly            int
	MoveBufferCap     int
	UseMagicBitboards bool
	ZobristSeed       int64
}

// LogSettings controls the logging package's verbosity. SearchLevel is
// carried for forward compatibility with a future search module even
// though search itself is out of this module's scope.
type LogSettings struct {
	Level       string
	SearchLevel string
}

func defaults() conf {
	return conf{
		Core: CoreSettings{
			MaxPly:            256,
			MoveBufferCap:     256,
			UseMagicBitboards: true,
			ZobristSeed:       1070372,
		},
		Log: LogSettings{
			Level:       "info",
			SearchLevel: "info",
		},
	}
}

// Setup reads ConfFile and populates Settings, falling back to compiled-in
// defaults when the file cannot be found (silently) or cannot be decoded
// (after logging the decode error). Idempotent: a second call is a no-op.
func Setup() {
	if initialized {
		return
	}
	Settings = defaults()

	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		applySettings()
		initialized = true
		return
	}
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file found but could not be decoded, using defaults:", err)
		Settings = defaults()
	}

	applySettings()
	initialized = true
}

// applySettings pushes the decoded Core/Log settings out to the packages
// that actually consult them: the slider-attack strategy switch in
// internal/types and the active log level.
func applySettings() {
	if Settings.Log.Level != "" {
		LogLevel = Settings.Log.Level
	}
	types.UseMagicBitboards = Settings.Core.UseMagicBitboards
}
