package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

// NewZerologWarner returns a warning sink that writes one zerolog JSON line
// per warning. Warnings implementing zerolog.LogObjectMarshaler contribute
// their structured fields.
func NewZerologWarner(w io.Writer) func(error) {
	zl := zerolog.New(w).With().Timestamp().Str(ComponentKey, "warnings").Logger()
	return func(warning error) {
		ev := zl.Warn()
		if m, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(m)
		}
		ev.Msg(warning.Error())
	}
}

// RouteWarningsTo sends every errors.Warn call to w through zerolog.
func RouteWarningsTo(w io.Writer) {
	errors.SetZerologWarnFunc(NewZerologWarner(w))
}
