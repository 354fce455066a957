package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvpatterns/internal/console"
)

// Option configures a Runner.
type Option func(*Runner)

// WithOutput sets the writer demos print to. Default stdout.
func WithOutput(w io.Writer) Option {
	return func(r *Runner) { r.out = w }
}

// WithBanner sets a function producing the line printed before each demo.
// Nil disables banners.
func WithBanner(fn func(title string) string) Option {
	return func(r *Runner) { r.banner = fn }
}

// WithLogger sets the logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// Runner executes demos sequentially.
type Runner struct {
	reg    *Registry
	out    io.Writer
	banner func(string) string
	log    *slog.Logger
}

// New returns a Runner over reg.
func New(reg *Registry, opts ...Option) *Runner {
	r := &Runner{
		reg: reg,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.out = console.Out(r.out)

	return r
}

// Run executes the named demos in the given order, or every demo when names
// is empty. Names are resolved before anything runs, so an unknown name
// produces no output. ctx is checked between demos.
func (r *Runner) Run(ctx context.Context, names ...string) error {
	// 1) Resolve every name up front; fail before printing anything.
	selected, err := r.resolve(names)
	if err != nil {
		return err
	}

	// 2) Run in order, honoring cancellation between demos only.
	for i, d := range selected {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("runner: stopped before %q: %w", d.Name, err)
		}
		if r.banner != nil {
			if i > 0 {
				console.Println(r.out)
			}
			console.Println(r.out, r.banner(d.Title))
		}

		// 3) The demo itself writes straight to r.out.
		start := time.Now()
		r.log.Debug("demo started", slog.String("demo", d.Name))
		d.Run(r.out)
		r.log.Info("demo finished",
			slog.String("demo", d.Name),
			slog.Duration("elapsed", time.Since(start)))
	}

	return nil
}

func (r *Runner) resolve(names []string) ([]Demo, error) {
	if len(names) == 0 {
		return r.reg.Demos(), nil
	}

	out := make([]Demo, 0, len(names))
	for _, n := range names {
		d, ok := r.reg.Lookup(n)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDemo, n)
		}
		out = append(out, d)
	}

	return out, nil
}
