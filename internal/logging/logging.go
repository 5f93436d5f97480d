// Package logging constructs the extension's zerolog loggers.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New creates the root logger writing to w at the given level. Unknown
// level strings fall back to info.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Component returns log tagged with a component name, so hub, tracker
// and detector lines are distinguishable in one stream.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
