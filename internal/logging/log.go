// Package logging wraps "github.com/op/go-logging" so each package can get
// a preconfigured *logging.Logger in one call instead of repeating backend
// and formatter setup.
package logging

import (
	"log"
	"os"
	"sync"

	"github.com/op/go-logging"

	"github.com/tbreese3/helios/internal/config"
)

var (
	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}: %{message}`,
	)

	mu      sync.Mutex
	loggers = map[string]*logging.Logger{}
)

// GetLog returns the named *logging.Logger, creating it on first use with
// a stdout backend at the level config.LogLevel holds at that moment.
// Repeated calls with the same name return the same instance. The level is
// resolved only when a logger is created; a later change to
// config.LogLevel (for example by config.Setup) does not affect loggers
// that already exist.
func GetLog(name string) *logging.Logger {
	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}

	l := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(resolveLevel(), "")
	l.SetBackend(leveled)
	loggers[name] = l
	return l
}

func resolveLevel() logging.Level {
	switch config.LogLevel {
	case "off":
		return logging.Level(-1)
	case "critical":
		return logging.CRITICAL
	case "error":
		return logging.ERROR
	case "warning":
		return logging.WARNING
	case "notice":
		return logging.NOTICE
	case "debug":
		return logging.DEBUG
	default:
		return logging.INFO
	}
}
