package search

// Sink receives every emitted result list. Each call replaces the previous
// list entirely.
type Sink interface {
	SetItems(items []string)
}

// ResultList holds the latest emitted results for a rendering layer that
// enumerates rows by index. A nil or detached list ignores writes and reports
// no rows.
type ResultList struct {
	items    []string
	detached bool
}

// NewResultList returns an empty, attached list.
func NewResultList() *ResultList {
	return &ResultList{}
}

// SetItems replaces the current results with a copy of items.
func (l *ResultList) SetItems(items []string) {
	if l == nil || l.detached {
		return
	}
	l.items = append(l.items[:0:0], items...)
}

// ItemCount returns the number of rows.
func (l *ResultList) ItemCount() int {
	if l == nil || l.detached {
		return 0
	}
	return len(l.items)
}

// ItemAt returns row i, or "" when i is out of range.
func (l *ResultList) ItemAt(i int) string {
	if l == nil || l.detached || i < 0 || i >= len(l.items) {
		return ""
	}
	return l.items[i]
}

// Items returns a copy of the current rows.
func (l *ResultList) Items() []string {
	if l == nil || l.detached {
		return nil
	}
	return append([]string(nil), l.items...)
}

// Detach drops the rows and turns every later call into a no-op.
func (l *ResultList) Detach() {
	if l == nil {
		return
	}
	l.detached = true
	l.items = nil
}

// Detached reports whether Detach has been called.
func (l *ResultList) Detached() bool {
	return l == nil || l.detached
}
