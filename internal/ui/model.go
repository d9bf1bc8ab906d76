// Package ui is the terminal front end: one screen at a time, selected by
// a Screen value, on top of a usecases.Session.
package ui

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"mindguard/internal/export"
	"mindguard/internal/models"
	"mindguard/internal/usecases"
)

// ExportFunc writes a snapshot somewhere and says where.
type ExportFunc func(export.Snapshot) (string, error)

type analyzedMsg struct {
	result usecases.AnalysisResult
	err    error
}

type journalSavedMsg struct {
	entry models.JournalEntry
	err   error
}

type exportedMsg struct {
	dest string
	err  error
}

type Model struct {
	session  *usecases.Session
	exporter ExportFunc
	logger   *zap.Logger
	rng      *rand.Rand

	screen  Screen
	input   textarea.Model
	journal textarea.Model
	spinner spinner.Model
	styles  Styles

	pending bool
	last    *usecases.AnalysisResult
	prompt  string
	status  string
	err     error
	width   int
	height  int
}

func newTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(4)
	return ta
}

func NewModel(session *usecases.Session, exporter ExportFunc, logger *zap.Logger, rng *rand.Rand) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		session:  session,
		exporter: exporter,
		logger:   logger,
		rng:      rng,
		screen:   ScreenWelcome,
		input:    newTextarea("Paste or type social media text, messages, or any content..."),
		journal:  newTextarea("Write your thoughts here..."),
		spinner:  sp,
		styles:   NewStyles(session.Settings().Theme),
	}
}

func (m Model) Screen() Screen {
	return m.screen
}

func (m Model) Init() tea.Cmd {
	return nil
}

// enter switches screens and runs the entry hook of the new screen.
func (m Model) enter(s Screen) (Model, tea.Cmd) {
	m.logger.Debug("screen change", zap.Stringer("from", m.screen), zap.Stringer("to", s))
	m.screen = s
	m.err = nil
	m.input.Blur()
	m.journal.Blur()

	switch s {
	case ScreenDashboard:
		return m, m.input.Focus()
	case ScreenJournal:
		m.prompt = usecases.RandomPrompt(m.rng)
		return m, m.journal.Focus()
	}
	return m, nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.SetWidth(min(60, max(20, msg.Width-8)))
		m.journal.SetWidth(min(60, max(20, msg.Width-8)))
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case analyzedMsg:
		m.pending = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.last = &msg.result
		return m.enter(ScreenResult)

	case journalSavedMsg:
		m.pending = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.journal.Reset()
		m.prompt = usecases.RandomPrompt(m.rng)
		m.notify("Journal entry saved")
		return m, nil

	case exportedMsg:
		m.pending = false
		if msg.err != nil {
			m.logger.Error("export failed", zap.Error(msg.err))
			m.err = msg.err
			return m, nil
		}
		m.notify("Exported to " + msg.dest)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab":
		if m.screen.hasNav() {
			dir := 1
			if key == "shift+tab" {
				dir = -1
			}
			return m.enter(m.screen.step(dir))
		}
	}

	if m.screen.takesText() {
		if key == "ctrl+s" {
			return m.submit()
		}
		return m.updateInputs(msg)
	}

	if key == "q" {
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		if key == "enter" {
			return m.enter(ScreenConsent)
		}
	case ScreenConsent:
		switch key {
		case "enter", "c":
			return m.enter(ScreenDashboard)
		case "esc", "b":
			return m.enter(ScreenWelcome)
		}
	case ScreenResult:
		switch key {
		case "a", "esc":
			return m.enter(ScreenDashboard)
		case "h":
			return m.enter(ScreenHistory)
		}
	case ScreenSettings:
		switch key {
		case "n":
			m.session.ToggleNotifications()
		case "d":
			m.styles = NewStyles(m.session.ToggleTheme().Theme)
		case "e":
			return m.startExport()
		}
	case ScreenHistory, ScreenLibrary, ScreenDashboard, ScreenJournal:
	}

	return m, nil
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case ScreenDashboard:
		m.input, cmd = m.input.Update(msg)
	case ScreenJournal:
		m.journal, cmd = m.journal.Update(msg)
	}
	return m, cmd
}

// submit starts an analysis or a journal save. Nothing happens while an
// earlier operation is still pending or the text is blank.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.pending {
		return m, nil
	}

	var op tea.Cmd
	switch m.screen {
	case ScreenDashboard:
		if isBlank(m.input.Value()) {
			return m, nil
		}
		op = analyzeCmd(m.session, m.input.Value())
	case ScreenJournal:
		if isBlank(m.journal.Value()) {
			return m, nil
		}
		op = saveJournalCmd(m.session, m.journal.Value())
	default:
		return m, nil
	}

	m.pending = true
	m.status = ""
	m.err = nil
	return m, tea.Batch(m.spinner.Tick, op)
}

func (m Model) startExport() (tea.Model, tea.Cmd) {
	if m.pending || m.exporter == nil {
		return m, nil
	}
	m.pending = true
	return m, tea.Batch(m.spinner.Tick, exportCmd(m.exporter, m.session.Snapshot()))
}

// notify shows a status line when notifications are switched on.
func (m *Model) notify(text string) {
	if m.session.Settings().Notifications {
		m.status = text
	}
}

func analyzeCmd(session *usecases.Session, text string) tea.Cmd {
	return func() tea.Msg {
		res, err := session.Analyze(text)
		return analyzedMsg{result: res, err: err}
	}
}

func saveJournalCmd(session *usecases.Session, text string) tea.Cmd {
	return func() tea.Msg {
		entry, err := session.SaveJournal(text)
		return journalSavedMsg{entry: entry, err: err}
	}
}

func exportCmd(exporter ExportFunc, snap export.Snapshot) tea.Cmd {
	return func() tea.Msg {
		dest, err := exporter(snap)
		return exportedMsg{dest: dest, err: err}
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
