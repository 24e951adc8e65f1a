// Package observability wires logging, metrics, and request middleware
// for the hosting layer. The engine itself stays silent; everything here
// is injected into it or mounted around it.
package observability

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger builds the process logger. Console mode renders for humans
// on a terminal; otherwise lines are structured JSON.
func InitLogger(app string, console bool) zerolog.Logger {
	var out io.Writer = os.Stderr
	if console {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	logger := zerolog.New(out).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// ZerologAdapter exposes a zerolog logger through the engine's key/value
// logging interface.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps a zerolog logger for injection into the engine
// service.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

func (a *ZerologAdapter) emit(event *zerolog.Event, msg string, args []any) {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, args[i+1])
	}
	event.Msg(msg)
}

func (a *ZerologAdapter) Debug(msg string, args ...any) { a.emit(a.logger.Debug(), msg, args) }
func (a *ZerologAdapter) Info(msg string, args ...any)  { a.emit(a.logger.Info(), msg, args) }
func (a *ZerologAdapter) Warn(msg string, args ...any)  { a.emit(a.logger.Warn(), msg, args) }
func (a *ZerologAdapter) Error(msg string, args ...any) { a.emit(a.logger.Error(), msg, args) }
