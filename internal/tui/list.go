package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/slicelab/pizzasearch/internal/search"
)

// listView is the display sink of the search pipeline. Every emission
// replaces its rows and redraws the viewport before SetItems returns.
type listView struct {
	rows     *search.ResultList
	viewport viewport.Model
	queried  bool
}

func newListView(keys keyMap) *listView {
	vp := viewport.New(80, 20)
	vp.KeyMap = keys.viewportKeys()

	l := &listView{
		rows:     search.NewResultList(),
		viewport: vp,
	}
	l.render()
	return l
}

// SetItems implements search.Sink.
func (l *listView) SetItems(items []string) {
	if l.rows.Detached() {
		return
	}
	l.rows.SetItems(items)
	l.queried = true
	l.render()
}

func (l *listView) resize(width, height int) {
	l.viewport.Width = width
	l.viewport.Height = height
	l.render()
}

func (l *listView) detach() {
	l.rows.Detach()
	l.viewport.SetContent("")
}

func (l *listView) render() {
	if l.rows.Detached() {
		return
	}

	n := l.rows.ItemCount()
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		lines = append(lines, itemStyle.Render(l.rows.ItemAt(i)))
	}
	switch {
	case !l.queried:
		lines = append(lines, hintStyle.Render("Start typing to search the menu."))
	case n == 0:
		lines = append(lines, hintStyle.Render("No matches."))
	}

	l.viewport.SetContent(strings.Join(lines, "\n"))
	l.viewport.GotoTop()
}
