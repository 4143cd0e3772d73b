package observability

import (
	"errors"
	"strings"

	"github.com/jonathan/cv-bank/internal/rendering"
)

var _ rendering.Reporter = (*Printer)(nil)

// RenderStarted implements rendering.Reporter
func (p *Printer) RenderStarted(file string) {
	p.Printf("Rendering %s...\n", file)
}

// RenderSucceeded implements rendering.Reporter
func (p *Printer) RenderSucceeded(file string) {
	p.Printf("✅ Successfully rendered %s\n", file)
}

// RenderFailed implements rendering.Reporter. The renderer's own output is
// echoed so the user sees why it failed.
func (p *Printer) RenderFailed(file string, err error) {
	p.Printf("Error rendering %s:\n", file)

	var renderErr *rendering.RenderError
	if !errors.As(err, &renderErr) {
		p.Printf("%v\n", err)
		return
	}
	if renderErr.Cause != nil {
		p.Printf("%v\n", renderErr.Cause)
	}
	for _, stream := range []string{renderErr.Stdout, renderErr.Stderr} {
		if s := strings.TrimRight(stream, "\n"); s != "" {
			p.Printf("%s\n", s)
		}
	}
}

// BatchStarted implements rendering.Reporter
func (p *Printer) BatchStarted(total int) {
	p.Printf("Found %d CV files to render\n", total)
}

// BatchFinished implements rendering.Reporter
func (p *Printer) BatchFinished(result *rendering.BatchResult) {
	p.Printf("\nRendered %d/%d CVs successfully\n", len(result.Succeeded), result.Total)
	if len(result.Failed) == 0 {
		return
	}
	p.Printf("Failed: %d\n", len(result.Failed))
	for _, file := range result.Failed {
		p.Printf("   ❌ %s\n", file)
	}
}
