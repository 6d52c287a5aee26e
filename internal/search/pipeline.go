package search

import (
	"log/slog"
)

// Token identifies one debounce timer. Only the token returned by the most
// recent Edit can settle the pipeline.
type Token uint64

// Pipeline turns raw edits of a search field into result lists. It is a plain
// state machine: the caller owns the timer and every method must be called
// from the same goroutine (the UI event loop, or the goroutine running Run).
//
// An edit becomes a result in four steps: it must survive the debounce window
// (only the latest token settles), differ from the previously forwarded value,
// and be non-empty. The survivor is matched against the candidates and the
// full result list is handed to the sink.
type Pipeline struct {
	candidates []string
	opts       MatchOptions
	sink       Sink
	logger     *slog.Logger

	seq        Token
	pending    string
	hasPending bool

	forwarded    string
	hasForwarded bool

	closed bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithMatchOptions sets the match behaviour.
func WithMatchOptions(opts MatchOptions) Option {
	return func(p *Pipeline) { p.opts = opts }
}

// WithLogger sets the logger used for stage diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPipeline creates a pipeline over a copy of candidates that emits to sink.
func NewPipeline(candidates []string, sink Sink, opts ...Option) *Pipeline {
	p := &Pipeline{
		candidates: append([]string(nil), candidates...),
		sink:       sink,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Edit records query as the latest field value and returns the token its
// debounce timer must carry. A closed pipeline returns the zero token, which
// never settles.
func (p *Pipeline) Edit(query string) Token {
	if p.closed {
		return 0
	}
	p.seq++
	p.pending = query
	p.hasPending = true
	return p.seq
}

// Settle is called when the debounce timer for tok fires. It reports the
// emitted list and true when the sink was updated.
func (p *Pipeline) Settle(tok Token) ([]string, bool) {
	if p.closed || !p.hasPending || tok != p.seq {
		return nil, false
	}
	return p.forward(p.pending)
}

// Flush settles the pending edit immediately, as if its timer had fired.
func (p *Pipeline) Flush() ([]string, bool) {
	return p.Settle(p.seq)
}

// Close stops the pipeline. Tokens issued before Close are ignored and the
// sink is never called again. Close is idempotent.
func (p *Pipeline) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.hasPending = false
	p.sink = nil
	p.logger.Debug("search pipeline closed", "pending_token", uint64(p.seq))
}

// Closed reports whether Close has been called.
func (p *Pipeline) Closed() bool {
	return p.closed
}

func (p *Pipeline) forward(query string) ([]string, bool) {
	p.hasPending = false

	if p.hasForwarded && query == p.forwarded {
		p.logger.Debug("search query unchanged", "query", query)
		return nil, false
	}
	p.forwarded = query
	p.hasForwarded = true

	if query == "" {
		p.logger.Debug("search query empty, keeping results")
		return nil, false
	}

	items := Match(p.candidates, query, p.opts)
	p.logger.Debug("search results", "query", query, "count", len(items))
	if p.sink != nil {
		p.sink.SetItems(items)
	}
	return items, true
}
