package eval

import (
	"io"

	"github.com/fatih/color"
)

// Reporter prints user-facing diagnostics: syntax, semantic and runtime
// errors. With color on they are shown in red.
type Reporter struct {
	w     io.Writer
	paint *color.Color
}

// NewReporter creates a Reporter writing to w
func NewReporter(w io.Writer, useColor bool) *Reporter {
	paint := color.New(color.FgRed)
	if useColor {
		paint.EnableColor()
	} else {
		paint.DisableColor()
	}
	return &Reporter{w: w, paint: paint}
}

// Report prints one diagnostic line
func (r *Reporter) Report(msg string) {
	r.paint.Fprintln(r.w, msg)
}

