package ui

import (
	"fmt"
	"strings"

	"keycalc/internal/config"
	"keycalc/internal/keypad"
	"keycalc/internal/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// ConfigReloadedMsg carries a config that changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a config that failed to reload.
type ConfigErrorMsg struct {
	Err error
}

// Model is the calculator window.
type Model struct {
	ctrl     *keypad.Controller
	layout   keypad.Layout
	renderer *lipgloss.Renderer
	styles   Styles
	keys     KeyMap
	help     help.Model
	log      *logging.Logger

	title string
	mouse bool

	focusRow, focusCol int
	alert              *Alert
	notice             string

	width, height int
}

// New builds a calculator window from cfg. r selects the output profile and
// background detection; nil uses the lipgloss default renderer.
func New(cfg *config.Config, r *lipgloss.Renderer) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	layout, err := cfg.Keypad.Layout()
	if err != nil {
		return Model{}, err
	}
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	ctrl := keypad.NewController()
	m := Model{
		ctrl:     ctrl,
		layout:   layout,
		renderer: r,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		log:      logging.Get(logging.CategoryUI).With("window", ctrl.ID()),
		title:    cfg.UI.Title,
		mouse:    cfg.UI.Mouse,
	}
	m.setTheme(cfg.UI)
	m.log.Info("window opened: %dx%d keypad, dark=%v", layout.Rows(), layout.Columns(), m.styles.Theme.IsDark)
	return m, nil
}

func (m *Model) setTheme(ui config.UIConfig) {
	theme := DetectTheme(ui.Theme, m.renderer).WithPalette(ui.Palette)
	m.styles = NewStyles(theme, m.renderer)
	m.help.Styles.ShortKey = m.styles.Help.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.ShortSeparator = m.styles.Help
	m.help.Styles.FullKey = m.styles.Help.Bold(true)
	m.help.Styles.FullDesc = m.styles.Help
	m.help.Styles.FullSeparator = m.styles.Help
}

// Controller exposes the window's controller.
func (m Model) Controller() *keypad.Controller { return m.ctrl }

// Focus returns the focused keypad cell.
func (m Model) Focus() (row, col int) { return m.focusRow, m.focusCol }

// Alert returns the alert being shown, if any.
func (m Model) Alert() (Alert, bool) {
	if m.alert == nil {
		return Alert{}, false
	}
	return *m.alert, true
}

// Init sets the terminal window title.
func (m Model) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

// Update handles input and config messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config)

	case ConfigErrorMsg:
		m.notice = fmt.Sprintf("config not reloaded: %v", msg.Err)
		m.log.Warn("%s", m.notice)
		return m, nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && (m.alert == nil || msg.Type == tea.KeyCtrlC) {
		return m, tea.Quit
	}

	if m.alert != nil {
		if key.Matches(msg, m.keys.Dismiss) {
			m.dismiss()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.moveFocus(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveFocus(0, 1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1, 0)
	case key.Matches(msg, m.keys.Press):
		m.pressAt(m.focusRow, m.focusCol)
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.alert != nil {
		m.dismiss()
		return m, nil
	}

	row, col, ok := HitTest(msg.X, msg.Y, m.layout.Rows(), m.layout.Columns())
	if !ok {
		return m, nil
	}
	if _, exists := m.layout.At(row, col); !exists {
		return m, nil
	}
	m.focusRow, m.focusCol = row, col
	m.pressAt(row, col)
	return m, nil
}

func (m *Model) pressAt(row, col int) {
	spec, ok := m.layout.At(row, col)
	if !ok {
		return
	}
	res := m.ctrl.Press(spec)
	if res.Err != nil {
		alert := NewAlert(res.Err)
		m.alert = &alert
		m.log.Debug("alert shown: %q", alert.Message)
	}
}

func (m *Model) dismiss() {
	m.alert = nil
	m.log.Debug("alert dismissed")
}

// moveFocus steps the focus, clamping to the target row's length.
func (m *Model) moveFocus(dRow, dCol int) {
	row := m.focusRow + dRow
	if row < 0 || row >= m.layout.Rows() {
		return
	}
	col := m.focusCol + dCol
	if dRow != 0 && col >= m.layout.RowLen(row) {
		col = m.layout.RowLen(row) - 1
	}
	if col < 0 || col >= m.layout.RowLen(row) {
		return
	}
	m.focusRow, m.focusCol = row, col
}

func (m Model) applyConfig(cfg *config.Config) (tea.Model, tea.Cmd) {
	if cfg == nil {
		return m, nil
	}
	layout, err := cfg.Keypad.Layout()
	if err != nil {
		m.notice = fmt.Sprintf("config not reloaded: %v", err)
		m.log.Warn("%s", m.notice)
		return m, nil
	}

	m.layout = layout
	m.mouse = cfg.UI.Mouse
	m.notice = ""
	m.setTheme(cfg.UI)
	if m.focusRow >= layout.Rows() {
		m.focusRow = layout.Rows() - 1
	}
	if m.focusCol >= layout.RowLen(m.focusRow) {
		m.focusCol = layout.RowLen(m.focusRow) - 1
	}
	m.log.Info("config applied: %dx%d keypad", layout.Rows(), layout.Columns())

	if cfg.UI.Title != m.title {
		m.title = cfg.UI.Title
		return m, tea.SetWindowTitle(m.title)
	}
	return m, nil
}

// View renders the window.
func (m Model) View() string {
	gw := GridWidth(m.layout.Columns())

	sections := []string{
		m.styles.Header.Render(runewidth.Truncate(m.title, gw, Ellipsis)),
		m.viewDisplay(gw),
		"",
	}
	if m.alert != nil {
		sections = append(sections, m.viewAlert(gw))
	} else {
		sections = append(sections, m.viewGrid())
	}
	sections = append(sections, "")
	if m.notice != "" {
		sections = append(sections, m.styles.AlertTitle.Render(m.notice))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewDisplay(width int) string {
	text := TruncateHead(m.ctrl.Display(), width-2*DisplayPadding)
	return m.styles.Display.Width(width).Render(text)
}

func (m Model) viewGrid() string {
	gap := strings.Repeat(" ", ButtonGap)
	rows := make([]string, 0, 2*m.layout.Rows())
	for r := 0; r < m.layout.Rows(); r++ {
		if r > 0 {
			rows = append(rows, strings.Repeat("\n", ButtonGap-1))
		}
		cells := make([]string, 0, 2*m.layout.RowLen(r))
		for c := 0; c < m.layout.RowLen(r); c++ {
			spec, _ := m.layout.At(r, c)
			if c > 0 {
				cells = append(cells, gap)
			}
			focused := r == m.focusRow && c == m.focusCol
			cells = append(cells, m.styles.Button(spec.Category, focused).Render(spec.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewAlert(width int) string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.AlertTitle.Render(m.alert.Title),
		m.styles.AlertBody.Render(m.alert.Message),
		"",
		m.styles.AlertHint.Render("esc or click to dismiss"),
	)
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	return m.styles.Alert.Width(inner).Render(body)
}
