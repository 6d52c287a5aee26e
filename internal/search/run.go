package search

import (
	"context"
	"time"
)

// Run drives p from a stream of edits on the calling goroutine. Every edit
// restarts one debounce timer of the given interval; when it fires the latest
// edit is settled. A closed edits channel flushes the pending edit and returns
// nil. A cancelled ctx returns ctx.Err() without emitting. p is closed on
// return in both cases. A non-positive interval settles every edit as soon
// as it arrives.
func Run(ctx context.Context, edits <-chan string, p *Pipeline, interval time.Duration) error {
	defer p.Close()

	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	var tok Token

	for {
		select {
		case <-ctx.Done():
			stopTimer(timer)
			return ctx.Err()

		case q, ok := <-edits:
			// A cancel that raced the edit wins.
			if err := ctx.Err(); err != nil {
				stopTimer(timer)
				return err
			}
			if !ok {
				stopTimer(timer)
				p.Flush()
				return nil
			}
			tok = p.Edit(q)
			if interval <= 0 {
				p.Settle(tok)
				continue
			}
			stopTimer(timer)
			timer.Reset(interval)

		case <-timer.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			p.Settle(tok)
		}
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
