package trials

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// Monitor receives progress events from a trial run.
type Monitor interface {
	// OnStart is called once before the first hand is minted.
	OnStart(total int)
	// OnHand is called after each hand is collected.
	OnHand()
	// OnComplete is called once after the last hand, with the number of
	// hands actually collected.
	OnComplete(hands int)
}

// NopMonitor discards all progress events.
type NopMonitor struct{}

func (NopMonitor) OnStart(int)    {}
func (NopMonitor) OnHand()        {}
func (NopMonitor) OnComplete(int) {}

// DotsMonitor prints a dot per progress step, wrapping lines. One dot
// stands for a fixed share of the total run so output stays bounded.
type DotsMonitor struct {
	writer    io.Writer
	perDot    int
	lineWidth int
	hands     int
	dots      int
}

// NewDotsMonitor creates a dots monitor writing to writer (stdout when nil).
func NewDotsMonitor(writer io.Writer) *DotsMonitor {
	if writer == nil {
		writer = os.Stdout
	}
	return &DotsMonitor{
		writer:    writer,
		lineWidth: 80,
	}
}

// OnStart implements Monitor.
func (d *DotsMonitor) OnStart(total int) {
	d.perDot = total / d.lineWidth
	if d.perDot < 1 {
		d.perDot = 1
	}
}

// OnHand implements Monitor.
func (d *DotsMonitor) OnHand() {
	d.hands++
	if d.hands%d.perDot != 0 {
		return
	}
	fmt.Fprint(d.writer, "·")
	d.dots++
	if d.dots%d.lineWidth == 0 {
		fmt.Fprintln(d.writer)
	}
}

// OnComplete implements Monitor.
func (d *DotsMonitor) OnComplete(hands int) {
	if d.dots%d.lineWidth != 0 {
		fmt.Fprintln(d.writer)
	}
	fmt.Fprintf(d.writer, "Collected %d hands\n", hands)
}

// RateMonitor logs the minting rate at a fixed interval. The clock is
// injected so tests can drive it with a mock.
type RateMonitor struct {
	logger   *log.Logger
	clock    quartz.Clock
	interval time.Duration

	hands  atomic.Int64
	last   int64
	cancel context.CancelFunc
	waiter quartz.Waiter
}

// NewRateMonitor creates a rate monitor logging through logger every
// interval of clock time.
func NewRateMonitor(logger *log.Logger, clock quartz.Clock, interval time.Duration) *RateMonitor {
	return &RateMonitor{
		logger:   logger.WithPrefix("trials"),
		clock:    clock,
		interval: interval,
	}
}

// OnStart implements Monitor, starting the ticker.
func (r *RateMonitor) OnStart(total int) {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.waiter = r.clock.TickerFunc(ctx, r.interval, func() error {
		current := r.hands.Load()
		r.logger.Info("minting",
			"hands", current,
			"of", total,
			"rate", float64(current-r.last)/r.interval.Seconds())
		r.last = current
		return nil
	}, "rate-monitor")
}

// OnHand implements Monitor.
func (r *RateMonitor) OnHand() {
	r.hands.Add(1)
}

// OnComplete implements Monitor, stopping the ticker.
func (r *RateMonitor) OnComplete(hands int) {
	if r.cancel != nil {
		r.cancel()
		_ = r.waiter.Wait()
	}
	r.logger.Info("completed", "hands", hands)
}
