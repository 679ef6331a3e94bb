package wmf2svg

import (
	"os"

	"github.com/rs/zerolog"
)

// recordOutcome classifies how a handler finished processing a record,
// mirroring the original library's WMF_FLAG_SUPPORTED/PARTIAL/IGNORED
// bookkeeping, now expressed as structured log fields instead of a global
// counter.
type recordOutcome string

const (
	outcomeSupported recordOutcome = "supported"
	outcomePartial   recordOutcome = "partial"
	outcomeIgnored   recordOutcome = "ignored"
	outcomeDropped   recordOutcome = "dropped"
)

// newLogger builds the zerolog.Logger used for one Convert call. Verbose
// conversions log at debug level to stderr with console formatting;
// non-verbose conversions discard everything, so call sites never need to
// branch on Options.Verbose themselves.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

func (s *convState) logRecord(name string, outcome recordOutcome, fields map[string]any) {
	evt := s.log.Debug().
		Int("record", s.recordNum).
		Str("type", name).
		Str("outcome", string(outcome))
	for k, v := range fields {
		evt = evt.Interface(k, v)
	}
	evt.Msg("wmf record")
}
