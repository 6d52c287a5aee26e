package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/slicelab/pizzasearch/internal/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_RapidEditsEmitOnce(t *testing.T) {
	p, sink := newTestPipeline()

	edits := make(chan string, 4)
	for _, q := range []string{"P", "Pe", "Pep", "Pepp"} {
		edits <- q
	}
	close(edits)

	// The interval never elapses: the only emission comes from the flush.
	err := Run(context.Background(), edits, p, time.Hour)
	require.NoError(t, err)

	require.Len(t, sink.calls, 1)
	assert.Equal(t, []string{"Pepperoni", "Pepperoni Special"}, sink.calls[0])
	assert.True(t, p.Closed())
}

func TestRun_SettlesAfterInterval(t *testing.T) {
	list := NewResultList()
	p := NewPipeline(catalog.Default().Items(), list)

	edits := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), edits, p, 10*time.Millisecond)
	}()

	edits <- "Haw"
	edits <- "Hawaiian"
	time.Sleep(100 * time.Millisecond)
	edits <- "Trop"
	time.Sleep(100 * time.Millisecond)
	close(edits)

	require.NoError(t, <-done)
	assert.Equal(t, []string{"Tropicana"}, list.Items())
}

func TestRun_CancelDropsPendingEdit(t *testing.T) {
	p, sink := newTestPipeline()

	ctx, cancel := context.WithCancel(context.Background())
	edits := make(chan string, 1)
	edits <- "Pepperoni"

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, edits, p, time.Hour)
	}()

	// Wait until the edit has been taken off the channel.
	require.Eventually(t, func() bool { return len(edits) == 0 }, time.Second, time.Millisecond)
	cancel()

	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Empty(t, sink.calls)
	assert.True(t, p.Closed())
}

func TestRun_EmptyLinesNeverEmit(t *testing.T) {
	p, sink := newTestPipeline()

	edits := make(chan string, 1)
	edits <- ""
	close(edits)

	require.NoError(t, Run(context.Background(), edits, p, time.Hour))
	assert.Empty(t, sink.calls)
}

func TestRun_ZeroIntervalSettlesEveryEdit(t *testing.T) {
	p, sink := newTestPipeline()

	edits := make(chan string, 5)
	for _, q := range []string{"H", "H", "", "M", "Z"} {
		edits <- q
	}
	close(edits)

	require.NoError(t, Run(context.Background(), edits, p, 0))
	require.Len(t, sink.calls, 3)
	assert.Equal(t, []string{"Hawaiian"}, sink.calls[0])
	assert.Equal(t, []string{"Margharita", "Mexicana"}, sink.calls[1])
	assert.Empty(t, sink.calls[2])
}

func TestRun_TimerSettlesRapidEditsOnce(t *testing.T) {
	p, sink := newTestPipeline()

	edits := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- Run(context.Background(), edits, p, 500*time.Millisecond)
	}()

	for _, q := range []string{"P", "Pe", "Pep", "Pepp"} {
		edits <- q
		time.Sleep(100 * time.Millisecond)
	}
	// Let the timer fire before the stream ends, so the flush has nothing left.
	time.Sleep(time.Second)
	close(edits)
	require.NoError(t, <-done)

	require.Len(t, sink.calls, 1)
	assert.Equal(t, []string{"Pepperoni", "Pepperoni Special"}, sink.calls[0])
}
