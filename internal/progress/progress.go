// Package progress renders a live status line while a sweep runs.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Tracker accumulates sweep progress counters. All methods are nil-safe so
// callers can simply not wire one up.
type Tracker struct {
	total   atomic.Int64
	done    atomic.Int64
	trials  atomic.Int64
	mu      sync.Mutex
	current string
}

// SetTotal records the size of the configuration matrix.
func (t *Tracker) SetTotal(n int) {
	if t == nil {
		return
	}
	t.total.Store(int64(n))
}

// SetCurrent records the configuration now being measured.
func (t *Tracker) SetCurrent(label string, threads int) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.current = fmt.Sprintf("%s @ %d", label, threads)
	t.mu.Unlock()
}

// TrialDone counts one kernel invocation, successful or not.
func (t *Tracker) TrialDone() {
	if t == nil {
		return
	}
	t.trials.Add(1)
}

// ConfigDone marks one configuration finished.
func (t *Tracker) ConfigDone() {
	if t == nil {
		return
	}
	t.done.Add(1)
}

// Snapshot returns (done, total, trials, current label).
func (t *Tracker) Snapshot() (int, int, int, string) {
	if t == nil {
		return 0, 0, 0, ""
	}
	t.mu.Lock()
	current := t.current
	t.mu.Unlock()
	return int(t.done.Load()), int(t.total.Load()), int(t.trials.Load()), current
}

// Progress prints a ticker-driven status line to stderr, coexisting with
// per-configuration result lines via Printf.
type Progress struct {
	startTime time.Time
	tracker   *Tracker
	ticker    *time.Ticker
	stopCh    chan struct{}
	stopped   atomic.Bool
	quiet     bool
	output    io.Writer
	mu        sync.Mutex
}

func NewProgress(t *Tracker, quiet bool) *Progress {
	return &Progress{
		tracker: t,
		quiet:   quiet,
		output:  os.Stderr,
	}
}

func (p *Progress) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.output = w
}

func (p *Progress) Start() {
	if p.quiet {
		return
	}
	p.startTime = time.Now()
	p.stopCh = make(chan struct{})
	p.ticker = time.NewTicker(1 * time.Second)
	go p.run()
}

func (p *Progress) run() {
	for {
		select {
		case <-p.stopCh:
			return
		case <-p.ticker.C:
			p.printProgress()
		}
	}
}

func (p *Progress) printProgress() {
	done, total, trials, current := p.tracker.Snapshot()
	elapsed := time.Since(p.startTime).Round(time.Second)
	mins := int(elapsed.Minutes())
	secs := int(elapsed.Seconds()) % 60
	p.mu.Lock()
	fmt.Fprintf(p.output, "\033[K[%02d:%02d] Configs: %d/%d | Trials: %d | Running: %s\r",
		mins, secs, done, total, trials, current)
	p.mu.Unlock()
}

func (p *Progress) Stop() {
	if p.quiet || p.stopped.Swap(true) {
		return
	}
	if p.ticker != nil {
		p.ticker.Stop()
	}
	if p.stopCh != nil {
		close(p.stopCh)
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, "\033[K")
	p.mu.Unlock()
}

func (p *Progress) Print(message string) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, "\033[K%s\n", message)
	p.mu.Unlock()
}

func (p *Progress) Printf(format string, args ...any) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	fmt.Fprintf(p.output, "\033[K"+format+"\n", args...)
	p.mu.Unlock()
}
