// Package lookup runs company registry lookups behind a debounce timer.
package lookup

import (
	"context"
	"sync"
	"time"

	"peorisk/internal/domain"
	"peorisk/internal/ports"
	"peorisk/internal/services/companies"
)

// Result is delivered once per lookup that actually ran.
type Result struct {
	Name   string
	State  string
	Record domain.LookupRecord
	Err    error
}

type key struct{ name, state string }

// Debouncer schedules a lookup wait after the latest Trigger for a
// name/state pair. A newer pair replaces the pending one. Lookups already
// running are not cancelled, so a stale Result may still arrive; callers
// compare Name and State against their current input.
type Debouncer struct {
	lookup  ports.Companies
	wait    time.Duration
	deliver func(Result)

	mu    sync.Mutex
	last  key
	timer *time.Timer
}

func New(lookup ports.Companies, wait time.Duration, deliver func(Result)) *Debouncer {
	return &Debouncer{lookup: lookup, wait: wait, deliver: deliver}
}

// Trigger records the latest input. Repeating the current pair is a no-op.
func (d *Debouncer) Trigger(ctx context.Context, name, state string) {
	k := key{name, state}

	d.mu.Lock()
	defer d.mu.Unlock()
	if k == d.last {
		return
	}
	d.last = k
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if !companies.Eligible(name, state) {
		return
	}
	d.timer = time.AfterFunc(d.wait, func() { d.run(ctx, k) })
}

// Stop drops any pending lookup.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) run(ctx context.Context, k key) {
	if ctx.Err() != nil {
		return
	}
	rec, err := d.lookup.Lookup(ctx, k.name, k.state)
	d.deliver(Result{Name: k.name, State: k.state, Record: rec, Err: err})
}
