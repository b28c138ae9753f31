package trials

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotsMonitor(t *testing.T) {
	var buf bytes.Buffer
	mon := NewDotsMonitor(&buf)

	mon.OnStart(160) // one dot per two hands at an 80-column line
	for i := 0; i < 160; i++ {
		mon.OnHand()
	}
	mon.OnComplete(160)

	out := buf.String()
	assert.Equal(t, 80, strings.Count(out, "·"))
	assert.Contains(t, out, "Collected 160 hands")
}

func TestDotsMonitorSmallRun(t *testing.T) {
	var buf bytes.Buffer
	mon := NewDotsMonitor(&buf)

	// Fewer hands than columns: one dot per hand.
	mon.OnStart(5)
	for i := 0; i < 5; i++ {
		mon.OnHand()
	}
	mon.OnComplete(5)

	assert.Equal(t, 5, strings.Count(buf.String(), "·"))
}

func TestRateMonitor(t *testing.T) {
	mClock := quartz.NewMock(t)
	var buf bytes.Buffer
	logger := log.New(&buf)

	mon := NewRateMonitor(logger, mClock, time.Second)
	mon.OnStart(100)

	for i := 0; i < 40; i++ {
		mon.OnHand()
	}

	ctx := context.Background()
	mClock.Advance(time.Second).MustWait(ctx)

	for i := 0; i < 10; i++ {
		mon.OnHand()
	}
	mClock.Advance(time.Second).MustWait(ctx)

	mon.OnComplete(50)

	out := buf.String()
	require.Contains(t, out, "minting")
	assert.Contains(t, out, "hands=40")
	assert.Contains(t, out, "hands=50")
	assert.Contains(t, out, "completed")
}
