package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tbreese3/helios/internal/types"
)

func resetForTest() {
	initialized = false
	Settings = conf{}
	LogLevel = "info"
	types.UseMagicBitboards = true
}

func TestSetupFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	resetForTest()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")

	Setup()
	assert.Equal(t, 256, Settings.Core.MaxPly)
	assert.True(t, Settings.Core.UseMagicBitboards)
	assert.Equal(t, "info", LogLevel)
}

func TestSetupWiresUseMagicBitboardsIntoTypes(t *testing.T) {
	resetForTest()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("[Core]\nUseMagicBitboards = false\n"), 0o644))
	ConfFile = path

	Setup()
	assert.False(t, types.UseMagicBitboards)
}

func TestSetupIsIdempotent(t *testing.T) {
	resetForTest()
	ConfFile = filepath.Join(t.TempDir(), "does-not-exist.toml")

	Setup()
	Settings.Core.MaxPly = 1
	Setup()
	assert.Equal(t, 1, Settings.Core.MaxPly, "second Setup call must be a no-op")
}

func TestSetupReadsFileOverDefaults(t *testing.T) {
	resetForTest()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "[Core]\nMaxPly = 128\n\n[Log]\nLevel = \"debug\"\n"
	assert.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	ConfFile = path

	Setup()
	assert.Equal(t, 128, Settings.Core.MaxPly)
	assert.Equal(t, "debug", LogLevel)
	// fields absent from the file keep their compiled-in defaults
	assert.Equal(t, 256, Settings.Core.MoveBufferCap)
}
