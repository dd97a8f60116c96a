package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/leengari/tableclean/internal/domain/run"
	"github.com/leengari/tableclean/internal/domain/schema"
	"github.com/leengari/tableclean/internal/render"
)

// Runner applies steps in order to one live table and prints each result
type Runner struct {
	render    render.Options
	observers []Observer
}

// NewRunner creates a new Runner
func NewRunner(opts render.Options) *Runner {
	return &Runner{
		render:    opts,
		observers: make([]Observer, 0),
	}
}

// Run executes steps against table, writing `label:` and the rendering of each output to w
// It stops at the first failing step. The returned run lists the in-place mutations applied.
func (rn *Runner) Run(ctx context.Context, table *schema.Table, steps []Step, w io.Writer) (*run.Run, error) {
	r := run.New()
	defer r.Close()

	rn.notify(Event{Type: EventRunStart, RunID: r.ID, Step: -1, Data: table.Name})

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return r, fmt.Errorf("run %s cancelled before step %d: %w", r.ID, step.Number, err)
		}

		rn.notify(Event{Type: EventStepStart, RunID: r.ID, Step: step.Number, Data: step.Label})

		out, err := step.Apply(table, r)
		if err != nil {
			rn.notify(Event{Type: EventStepEnd, RunID: r.ID, Step: step.Number, Data: err.Error()})
			return r, fmt.Errorf("step %d (%s): %w", step.Number, step.Label, err)
		}

		if err := rn.print(w, step.Label, out); err != nil {
			return r, fmt.Errorf("step %d (%s): write output: %w", step.Number, step.Label, err)
		}

		rn.notify(Event{Type: EventStepEnd, RunID: r.ID, Step: step.Number, Data: outputSize(out)})
	}

	slog.Info("run complete", "run_id", r.ID, "seq", r.Seq, "steps", len(steps), "mutations", len(r.Mutations),
		"elapsed", time.Since(r.StartTime))
	rn.notify(Event{Type: EventRunEnd, RunID: r.ID, Step: -1, Data: len(r.Mutations)})
	return r, nil
}

func (rn *Runner) print(w io.Writer, label string, out Output) error {
	if _, err := fmt.Fprintf(w, "%s:\n", label); err != nil {
		return err
	}

	var err error
	switch {
	case out.Mask != nil:
		err = render.Mask(w, *out.Mask)
	case out.Table != nil:
		opts := rn.render
		opts.Labels = out.Labels
		err = render.Table(w, out.Table, opts)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w)
	return err
}

func outputSize(out Output) map[string]interface{} {
	if out.Mask != nil {
		return map[string]interface{}{"mask_len": out.Mask.Len(), "mask_true": out.Mask.Count()}
	}
	if out.Table != nil {
		return map[string]interface{}{"rows": out.Table.Len()}
	}
	return nil
}

// AddObserver registers an observer to receive lifecycle events
func (rn *Runner) AddObserver(observer Observer) {
	rn.observers = append(rn.observers, observer)
}

// RemoveObserver unregisters an observer
func (rn *Runner) RemoveObserver(observer Observer) {
	for i, o := range rn.observers {
		if o == observer {
			rn.observers = append(rn.observers[:i], rn.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (rn *Runner) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range rn.observers {
		observer.OnEvent(event)
	}
}
