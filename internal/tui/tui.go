package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/slicelab/pizzasearch/internal/catalog"
	"github.com/slicelab/pizzasearch/internal/search"
	"github.com/slicelab/pizzasearch/internal/update"
)

// Options configures the TUI.
type Options struct {
	Catalog  catalog.Catalog
	Debounce time.Duration
	Match    search.MatchOptions
	Theme    string
	Logger   *slog.Logger
	Version  string
}

// debounceMsg fires when the quiet period after an edit has elapsed.
type debounceMsg struct {
	token search.Token
}

// UpdateCheckMsg carries the result of a background update check.
type UpdateCheckMsg struct {
	Result *update.Result
	Err    error
}

// screen holds what lives between the screen being shown and Close. Model
// is copied on every Update, so it is shared by pointer.
type screen struct {
	pipeline *search.Pipeline
	closed   bool
}

// Model is the Bubble Tea model for the search screen.
type Model struct {
	options Options
	input   textinput.Model
	list    *listView
	screen  *screen
	keys    keyMap
	help    help.Model
	width   int
	height  int

	lastValue string

	mdRenderer *glamour.TermRenderer
	showHelp   bool
	helpBody   string
	notice     string

	ready    bool
	quitting bool
}

// New creates a new TUI model. The search pipeline starts with the first
// window size, when the screen is shown, and lives until Close.
func New(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	ti := textinput.New()
	ti.Placeholder = "Search pizzas..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Prompt = inputPromptStyle.Render("> ")

	keys := defaultKeyMap()
	list := newListView(keys)

	renderer, _ := glamour.NewTermRenderer(
		themeOption(opts.Theme),
		glamour.WithWordWrap(76),
	)

	return Model{
		options:    opts,
		input:      ti,
		list:       list,
		screen:     &screen{},
		keys:       keys,
		help:       help.New(),
		mdRenderer: renderer,
	}
}

func themeOption(theme string) glamour.TermRendererOption {
	if theme == "" || theme == "auto" {
		return glamour.WithAutoStyle()
	}
	return glamour.WithStandardStyle(theme)
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Close tears the screen down: the pipeline stops and the list detaches, so
// a debounce tick already in flight is dropped. Safe to call more than once.
func (m Model) Close() {
	if m.screen.closed {
		return
	}
	m.screen.closed = true
	if m.screen.pipeline != nil {
		m.screen.pipeline.Close()
	}
	m.list.detach()
	m.options.Logger.Info("search screen closed")
}

// show starts the search pipeline. Text typed before the screen was shown is
// searched right away.
func (m *Model) show() tea.Cmd {
	if m.screen.closed || m.screen.pipeline != nil {
		return nil
	}
	m.screen.pipeline = search.NewPipeline(m.options.Catalog.Items(), m.list,
		search.WithMatchOptions(m.options.Match),
		search.WithLogger(m.options.Logger),
	)
	m.options.Logger.Info("search screen shown", "debounce", m.options.Debounce)
	return m.editIfChanged()
}

// editIfChanged feeds a changed field value to the pipeline and schedules
// its debounce tick.
func (m *Model) editIfChanged() tea.Cmd {
	v := m.input.Value()
	if v == m.lastValue {
		return nil
	}
	m.lastValue = v
	return m.scheduleSettle(m.screen.pipeline.Edit(v))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Close()
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			if m.showHelp {
				m.helpBody = m.renderMarkdown(helpMarkdown)
			}
			return m, nil

		case m.keys.scrolls(msg):
			var cmd tea.Cmd
			m.list.viewport, cmd = m.list.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width-4, 1)
		m.list.resize(m.width, m.bodyHeight())

		if !m.ready {
			m.ready = true
			var cmds []tea.Cmd
			if cmd := m.show(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			// Background update check (only for release builds)
			if v := m.options.Version; v != "" && v != "dev" {
				cmds = append(cmds, m.checkForUpdate())
			}
			if len(cmds) == 0 {
				return m, nil
			}
			return m, tea.Batch(cmds...)
		}
		return m, nil

	case debounceMsg:
		if m.screen.pipeline == nil {
			return m, nil
		}
		if items, ok := m.screen.pipeline.Settle(msg.token); ok {
			m.options.Logger.Debug("results shown", "count", len(items))
		}
		return m, nil

	case UpdateCheckMsg:
		if msg.Err != nil {
			m.options.Logger.Warn("update check failed", "err", msg.Err)
		} else if msg.Result != nil && msg.Result.UpdateAvailable {
			m.notice = fmt.Sprintf("v%s available, run --update", msg.Result.LatestVersion)
			m.list.resize(m.width, m.bodyHeight())
		}
		return m, nil
	}

	if m.screen.closed {
		return m, nil
	}

	var cmds []tea.Cmd
	var tiCmd tea.Cmd
	m.input, tiCmd = m.input.Update(msg)
	cmds = append(cmds, tiCmd)

	if m.screen.pipeline != nil {
		cmds = append(cmds, m.editIfChanged())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Initializing..."
	}

	status := StatusBar(m.list.rows.ItemCount(), m.options.Catalog.Len(), m.list.queried, m.width)
	if m.notice != "" {
		status += "\n" + noticeStyle.Render(m.notice)
	}
	separator := lipgloss.NewStyle().
		Foreground(secondaryColor).
		Width(m.width).
		Render(strings.Repeat("─", m.width))

	body := m.list.viewport.View()
	if m.showHelp {
		body = lipgloss.NewStyle().MaxHeight(m.bodyHeight()).Render(m.helpBody)
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s",
		status,
		m.input.View(),
		separator,
		body,
		m.help.View(m.keys),
	)
}

// bodyHeight is what is left for the list after the status bar, input,
// separator and footer.
func (m Model) bodyHeight() int {
	h := m.height - 4
	if m.notice != "" {
		h--
	}
	return max(h, 1)
}

// scheduleSettle delivers tok back to Update once the debounce interval has
// passed.
func (m Model) scheduleSettle(tok search.Token) tea.Cmd {
	return tea.Tick(m.options.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{token: tok}
	})
}

func (m Model) renderMarkdown(content string) string {
	if m.mdRenderer == nil {
		return content
	}
	rendered, err := m.mdRenderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

func (m Model) checkForUpdate() tea.Cmd {
	version := m.options.Version
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		res, err := update.Check(ctx, version)
		return UpdateCheckMsg{Result: res, Err: err}
	}
}
