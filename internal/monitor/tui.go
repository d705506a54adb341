// Package monitor implements the interactive terminal UI: a tab bar over
// the session collection, split-pane log views driven by the layout
// engine, and modal screens for rename, port settings, and help. All
// session and pane state lives in the workspace; this package only
// renders it and translates input into workspace calls.
package monitor

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/timvw/port-patrol/internal/layout"
	"github.com/timvw/port-patrol/internal/otel"
	"github.com/timvw/port-patrol/internal/serialio"
	"github.com/timvw/port-patrol/internal/session"
	"github.com/timvw/port-patrol/internal/workspace"
)

// viewMode is the current screen.
type viewMode int

const (
	modeMonitor viewMode = iota
	modeTransmit
	modeRename
	modeSettings
	modeHelp
)

// settingsField is a row in the port settings screen.
type settingsField int

const (
	fieldPort settingsField = iota
	fieldBaud
	fieldDataBits
	fieldParity
	fieldStopBits
	fieldFlow
	settingsFieldCount
)

// messages
type tickMsg struct{}

type portsMsg struct {
	ports []string
	err   error
}

// TUI runs the interactive serial monitor.
type TUI struct {
	Workspace *workspace.Workspace
	Opener    serialio.Opener
	Telemetry *otel.Telemetry   // nil disables metrics
	ThemeName string            // "dark" or "light"
	Refresh   time.Duration     // tick interval driving RX drains and notice expiry
	Defaults  serialio.Settings // settings applied to sessions created at runtime
}

// model implements tea.Model
type tuiModel struct {
	ws        *workspace.Workspace
	opener    serialio.Opener
	telemetry *otel.Telemetry
	ctx       context.Context
	refresh   time.Duration
	styles    styles
	defaults  serialio.Settings

	// open connections by session ID
	conns map[uuid.UUID]*conn

	mode viewMode

	// transmit / rename input
	textInput    textinput.Model
	appendMode   AppendMode
	renameTarget int

	// settings screen state
	settingsCursor settingsField
	ports          []string
	portsErr       string

	// dimensions
	width  int
	height int
}

func (t *TUI) Run(ctx context.Context) error {
	ti := textinput.New()
	ti.Placeholder = "Type and press Enter to transmit..."
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Prompt = "> "

	refresh := t.Refresh
	if refresh <= 0 {
		refresh = 100 * time.Millisecond
	}

	m := &tuiModel{
		ws:        t.Workspace,
		opener:    t.Opener,
		telemetry: t.Telemetry,
		ctx:       ctx,
		refresh:   refresh,
		styles:    newStyles(ThemeByName(t.ThemeName)),
		defaults:  t.Defaults,
		conns:     make(map[uuid.UUID]*conn),
		textInput: ti,
	}
	defer m.closeAllConns()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *tuiModel) Init() tea.Cmd {
	return tea.Batch(m.scheduleTick(), m.loadPorts())
}

// scheduleTick returns a tea.Cmd that sends a tickMsg after the refresh
// interval. The tick is the only thing that moves pump data into logs, so
// it always reschedules itself.
func (m *tuiModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return tickMsg{}
	})
}

// loadPorts asks the backend for its port list off the UI goroutine.
func (m *tuiModel) loadPorts() tea.Cmd {
	opener := m.opener
	ctx := m.ctx
	return func() tea.Msg {
		ports, err := opener.List(ctx)
		if err != nil {
			return portsMsg{err: err}
		}
		sort.Strings(ports)
		return portsMsg{ports: ports}
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := msg.Width - 12
		if w < 10 {
			w = 10
		}
		m.textInput.Width = w
		return m, nil

	case portsMsg:
		if msg.err != nil {
			m.portsErr = msg.err.Error()
		} else {
			m.ports = msg.ports
			m.portsErr = ""
		}
		return m, nil

	case tickMsg:
		m.drainConns()
		m.pruneConns()
		m.ws.ExpireNotices(time.Now())
		return m, m.scheduleTick()
	}

	return m, nil
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeTransmit:
		return m.handleTransmitKey(msg)
	case modeRename:
		return m.handleRenameKey(msg)
	case modeSettings:
		return m.handleSettingsKey(msg)
	case modeHelp:
		return m.handleHelpKey(msg)
	}
	return m.handleMonitorKey(msg)
}

func (m *tuiModel) handleMonitorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+q", "ctrl+c":
		m.closeAllConns()
		return m, tea.Quit

	case "ctrl+t":
		idx := m.ws.AddSession(m.defaults.Port, "")
		if s := m.ws.Sessions().Get(idx); s != nil {
			s.Settings = m.defaults
		}
		if m.telemetry != nil {
			m.telemetry.Metrics.RecordSessionAdded(m.ctx)
		}

	case "ctrl+w":
		idx := m.ws.Sessions().ActiveIndex()
		if s := m.ws.Sessions().Get(idx); s != nil {
			m.closeConn(s.ID)
		}
		m.ws.RemoveSession(idx)
		if m.telemetry != nil {
			m.telemetry.Metrics.RecordSessionRemoved(m.ctx)
		}

	case "ctrl+d":
		m.ws.DuplicateSession(m.ws.Sessions().ActiveIndex())
		if m.telemetry != nil {
			m.telemetry.Metrics.RecordSessionAdded(m.ctx)
		}

	case "tab", "ctrl+right":
		m.ws.NextSession()

	case "shift+tab", "ctrl+left":
		m.ws.PrevSession()

	case "alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9":
		m.ws.SwitchTo(int(msg.String()[4] - '1'))

	case "l", "ctrl+l":
		m.ws.NextLayout()
		if m.telemetry != nil {
			m.telemetry.Metrics.RecordLayoutChange(m.ctx, m.ws.LayoutMode().String())
		}

	case "L":
		m.ws.PrevLayout()
		if m.telemetry != nil {
			m.telemetry.Metrics.RecordLayoutChange(m.ctx, m.ws.LayoutMode().String())
		}

	case "p", "ctrl+p":
		m.ws.FocusNextPane()

	case "P":
		m.ws.FocusPrevPane()

	case "n", "ctrl+n":
		m.ws.CycleFocusedPaneSession()

	case "N":
		m.ws.CycleFocusedPaneSessionPrev()

	case "o":
		m.toggleConnection(m.ws.FocusedPaneSession())

	case "c":
		if s := m.ws.FocusedPaneSession(); s != nil {
			s.Log.Clear()
			s.ScrollOffset = 0
			s.Notices.Info("Log cleared")
		}

	case "a":
		if s := m.ws.FocusedPaneSession(); s != nil {
			s.AutoScroll = !s.AutoScroll
			if s.AutoScroll {
				s.ScrollOffset = 0
			}
		}

	case "t":
		m.ws.SetShowTabs(!m.ws.ShowTabs())

	case "r":
		idx := m.ws.Sessions().ActiveIndex()
		if s := m.ws.Sessions().Get(idx); s != nil {
			m.mode = modeRename
			m.renameTarget = idx
			m.textInput.SetValue(s.Name)
			m.textInput.CursorEnd()
			m.textInput.Focus()
			return m, textinput.Blink
		}

	case "s":
		s := m.ws.FocusedPaneSession()
		if s == nil {
			return m, nil
		}
		if !s.CanEditSettings() {
			s.Notices.Warning("Disconnect before editing settings")
			return m, nil
		}
		m.mode = modeSettings
		m.settingsCursor = fieldPort
		return m, m.loadPorts()

	case "i", "enter":
		m.mode = modeTransmit
		m.textInput.SetValue("")
		m.textInput.Focus()
		return m, textinput.Blink

	case "pgup":
		m.scrollFocused(m.focusedVisibleLines())

	case "pgdown":
		m.scrollFocused(-m.focusedVisibleLines())

	case "home":
		if s := m.ws.FocusedPaneSession(); s != nil {
			m.scrollFocused(s.Log.Len())
		}

	case "end":
		if s := m.ws.FocusedPaneSession(); s != nil {
			m.scrollFocused(-s.Log.Len())
		}

	case "?":
		m.mode = modeHelp
	}

	return m, nil
}

func (m *tuiModel) handleTransmitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		m.closeAllConns()
		return m, tea.Quit

	case "esc":
		m.mode = modeMonitor
		m.textInput.Blur()
		return m, nil

	case "enter":
		// Stay in transmit mode so repeated sends don't need a re-focus.
		if text := m.textInput.Value(); text != "" {
			m.transmit(m.ws.FocusedPaneSession(), text)
			m.textInput.SetValue("")
		}
		return m, nil

	case "tab":
		m.appendMode = m.appendMode.Next()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *tuiModel) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+q":
		m.closeAllConns()
		return m, tea.Quit

	case "esc":
		m.mode = modeMonitor
		m.textInput.Blur()
		return m, nil

	case "enter":
		if name := strings.TrimSpace(m.textInput.Value()); name != "" {
			m.ws.RenameSession(m.renameTarget, name)
		}
		m.mode = modeMonitor
		m.textInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *tuiModel) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.ws.FocusedPaneSession()
	if s == nil || !s.CanEditSettings() {
		m.mode = modeMonitor
		return m, nil
	}

	switch msg.String() {
	case "ctrl+q":
		m.closeAllConns()
		return m, tea.Quit

	case "esc", "enter", "s":
		m.mode = modeMonitor

	case "up", "k":
		m.settingsCursor = (m.settingsCursor + settingsFieldCount - 1) % settingsFieldCount

	case "down", "j", "tab":
		m.settingsCursor = (m.settingsCursor + 1) % settingsFieldCount

	case "left", "h":
		m.adjustSetting(s, -1)

	case "right", "l":
		m.adjustSetting(s, 1)

	case "r":
		return m, m.loadPorts()
	}

	return m, nil
}

func (m *tuiModel) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+q" || msg.String() == "ctrl+c" {
		m.closeAllConns()
		return m, tea.Quit
	}
	m.mode = modeMonitor
	return m, nil
}

// adjustSetting cycles the selected settings field one step through its
// option list.
func (m *tuiModel) adjustSetting(s *session.Session, dir int) {
	switch m.settingsCursor {
	case fieldPort:
		if len(m.ports) == 0 {
			return
		}
		s.Settings.Port = cycleChoice(m.ports, s.Settings.Port, dir)
	case fieldBaud:
		s.Settings.BaudRate = cycleChoice(serialio.BaudRates, s.Settings.BaudRate, dir)
	case fieldDataBits:
		s.Settings.DataBits = cycleChoice(serialio.DataBitsOptions, s.Settings.DataBits, dir)
	case fieldParity:
		s.Settings.Parity = cycleChoice(serialio.ParityOptions, s.Settings.Parity, dir)
	case fieldStopBits:
		s.Settings.StopBits = cycleChoice(serialio.StopBitsOptions, s.Settings.StopBits, dir)
	case fieldFlow:
		s.Settings.FlowControl = cycleChoice(serialio.FlowControlOptions, s.Settings.FlowControl, dir)
	}
}

func (m *tuiModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeMonitor && m.mode != modeTransmit {
		return m, nil
	}

	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollFocused(3)
			return m, nil
		case tea.MouseButtonWheelDown:
			m.scrollFocused(-3)
			return m, nil
		}
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	// Tab bar click: row 0 when tabs are visible.
	if m.ws.ShouldShowTabs() && msg.Y == 0 {
		if idx := m.tabAt(msg.X); idx >= 0 {
			m.ws.SwitchTo(idx)
		}
		return m, nil
	}

	// Pane click: focus the pane under the cursor.
	for slot, area := range m.ws.Areas(m.paneBounds()) {
		if msg.X >= area.X && msg.X < area.X+area.W && msg.Y >= area.Y && msg.Y < area.Y+area.H {
			m.ws.FocusPane(slot)
			break
		}
	}
	return m, nil
}

// tabAt maps an X coordinate on the tab bar row to a session index, or -1.
func (m *tuiModel) tabAt(x int) int {
	active := m.ws.Sessions().ActiveIndex()
	pos := 0
	for i, s := range m.ws.Sessions().Sessions() {
		w := visibleLen(m.renderTab(i, s, i == active))
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1
	}
	return -1
}

// paneBounds is the screen region the panes tile: everything between the
// tab bar and the three bottom rows (status, hints, transmit line).
func (m *tuiModel) paneBounds() layout.Rect {
	tabH := 0
	if m.ws.ShouldShowTabs() {
		tabH = 1
	}
	paneH := m.height - tabH - 3
	if paneH < 0 {
		paneH = 0
	}
	return layout.Rect{X: 0, Y: tabH, W: m.width, H: paneH}
}

// focusedVisibleLines is how many log lines fit in the focused pane.
func (m *tuiModel) focusedVisibleLines() int {
	areas := m.ws.Areas(m.paneBounds())
	n := areas[m.ws.FocusedPane()].H - 3 // border rows plus header
	if n < 0 {
		n = 0
	}
	return n
}

// scrollFocused moves the focused session's view delta lines back in the
// log (negative scrolls toward the tail). Reaching the tail re-enables
// autoscroll.
func (m *tuiModel) scrollFocused(delta int) {
	s := m.ws.FocusedPaneSession()
	if s == nil {
		return
	}
	maxOff := s.Log.Len() - m.focusedVisibleLines()
	if maxOff < 0 {
		maxOff = 0
	}
	off := s.ScrollOffset + delta
	if off > maxOff {
		off = maxOff
	}
	if off < 0 {
		off = 0
	}
	s.ScrollOffset = off
	s.AutoScroll = off == 0
}

func (m *tuiModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeRename:
		return m.viewRename()
	case modeSettings:
		return m.viewSettings()
	case modeHelp:
		return m.viewHelp()
	}
	return m.viewMonitor()
}

func (m *tuiModel) viewMonitor() string {
	var b strings.Builder

	if m.ws.ShouldShowTabs() {
		b.WriteString(m.renderTabBar())
		b.WriteString("\n")
	}
	b.WriteString(m.renderPanes())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")
	b.WriteString(m.renderHintLine())
	b.WriteString("\n")
	b.WriteString(m.renderTxLine())

	return b.String()
}

func (m *tuiModel) renderTabBar() string {
	active := m.ws.Sessions().ActiveIndex()
	parts := make([]string, 0, m.ws.Sessions().Count())
	for i, s := range m.ws.Sessions().Sessions() {
		parts = append(parts, m.renderTab(i, s, i == active))
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(strings.Join(parts, " "))
}

func (m *tuiModel) renderTab(i int, s *session.Session, active bool) string {
	dot := ""
	if s.Connected {
		dot = " ●"
	}
	name := truncate(s.Name, 16)
	if active {
		return m.styles.tabNumber.Render(fmt.Sprintf(" %d:", i+1)) +
			m.styles.tabActive.Render(fmt.Sprintf("%s%s ", name, dot))
	}
	return m.styles.tab.Render(fmt.Sprintf(" %d:%s%s ", i+1, name, dot))
}

func (m *tuiModel) renderPanes() string {
	bounds := m.paneBounds()
	if bounds.W < 10 || bounds.H < 3 {
		return m.styles.dim.Render("Terminal too small")
	}

	areas := m.ws.Areas(bounds)
	cells := make([]string, len(areas))
	for slot, area := range areas {
		cells[slot] = m.renderPane(slot, area)
	}

	// Stitch panes back together in the same shape Areas cut them apart.
	switch m.ws.LayoutMode() {
	case layout.SplitHorizontal:
		return lipgloss.JoinVertical(lipgloss.Left, cells[0], cells[1])
	case layout.SplitVertical:
		return lipgloss.JoinHorizontal(lipgloss.Top, cells[0], cells[1])
	case layout.Grid2x2:
		top := lipgloss.JoinHorizontal(lipgloss.Top, cells[0], cells[1])
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[2], cells[3])
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	case layout.Grid1x2:
		bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[1], cells[2])
		return lipgloss.JoinVertical(lipgloss.Left, cells[0], bottom)
	case layout.Grid2x1:
		right := lipgloss.JoinVertical(lipgloss.Left, cells[1], cells[2])
		return lipgloss.JoinHorizontal(lipgloss.Top, cells[0], right)
	}
	return cells[0]
}

func (m *tuiModel) renderPane(slot int, area layout.Rect) string {
	border := m.styles.paneBorder
	if m.ws.IsPaneFocused(slot) {
		border = m.styles.paneFocused
	}

	innerW := area.W - 2
	innerH := area.H - 2
	if innerW < 1 || innerH < 1 {
		return ""
	}

	s := m.ws.SessionForPane(slot)
	if s == nil {
		return border.Width(innerW).Height(innerH).Render(
			m.styles.placeholder.Render("no session"))
	}

	lines := make([]string, 0, innerH)
	lines = append(lines, m.renderPaneHeader(s, innerW))
	lines = append(lines, m.renderLogLines(s, innerW, innerH-1)...)
	return border.Width(innerW).Height(innerH).Render(strings.Join(lines, "\n"))
}

func (m *tuiModel) renderPaneHeader(s *session.Session, width int) string {
	marker := m.styles.dim.Render("○")
	if s.Connected {
		marker = m.styles.connected.Render("●")
	}
	w := width - 2
	if w < 1 {
		w = 1
	}
	return marker + " " + m.styles.paneHeader.Render(truncate(s.Name+"  "+s.Settings.String(), w))
}

// renderLogLines renders the visible window of a session's log, newest at
// the bottom unless the user scrolled back.
func (m *tuiModel) renderLogLines(s *session.Session, width, count int) []string {
	if count <= 0 {
		return nil
	}

	// Narrow panes drop the timestamp column rather than overflow.
	textW := width - 11
	showTime := textW >= 8
	if !showTime {
		textW = width - 2
		if textW < 1 {
			textW = 1
		}
	}

	entries := logWindow(s.Log, s.ScrollOffset, count)
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		var gutter string
		switch e.Dir {
		case session.DirRx:
			gutter = m.styles.rx.Render("←")
		case session.DirTx:
			gutter = m.styles.tx.Render("→")
		default:
			gutter = m.styles.sys.Render("·")
		}
		text := m.styles.text.Render(truncate(e.Text, textW))
		if showTime {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				m.styles.dim.Render(e.At.Format("15:04:05")), gutter, text))
		} else {
			lines = append(lines, gutter+" "+text)
		}
	}
	return lines
}

func (m *tuiModel) renderStatusLine() string {
	left := fmt.Sprintf("Layout: %s  Pane %d/%d",
		m.ws.LayoutMode(), m.ws.FocusedPane()+1, m.ws.PaneCount())
	line := m.styles.status.Render(left)

	if s := m.ws.FocusedPaneSession(); s != nil {
		counters := fmt.Sprintf("RX %s  TX %s",
			formatBytes(s.Log.RxBytes()), formatBytes(s.Log.TxBytes()))
		if !s.AutoScroll {
			counters += fmt.Sprintf("  [scroll -%d]", s.ScrollOffset)
		}
		line += "  " + m.styles.dim.Render(counters)
	}

	if notice := m.latestNotice(); notice != "" {
		line += "  " + notice
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// latestNotice is the newest active notice on the focused pane's session,
// styled by level.
func (m *tuiModel) latestNotice() string {
	s := m.ws.FocusedPaneSession()
	if s == nil {
		return ""
	}
	active := s.Notices.Active(time.Now())
	if len(active) == 0 {
		return ""
	}
	n := active[len(active)-1]
	switch n.Level {
	case session.LevelSuccess:
		return m.styles.noticeSuccess.Render(n.Text)
	case session.LevelWarning:
		return m.styles.noticeWarning.Render(n.Text)
	case session.LevelError:
		return m.styles.noticeError.Render(n.Text)
	}
	return m.styles.noticeInfo.Render(n.Text)
}

func (m *tuiModel) renderHintLine() string {
	var hints string
	if m.mode == modeTransmit {
		hints = "enter=send  tab=line-ending  esc=back"
	} else {
		hints = "ctrl+t=new  ctrl+w=close  tab=switch  l=layout  p=pane  n=bind  o=open  s=settings  i=transmit  ?=help  q=quit"
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(m.styles.dim.Render(hints))
}

func (m *tuiModel) renderTxLine() string {
	line := m.styles.tx.Render("TX") +
		m.styles.dim.Render(fmt.Sprintf(" [%s] ", m.appendMode)) +
		m.textInput.View()
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func (m *tuiModel) viewRename() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Rename Session"))
	b.WriteString("\n\n")
	if s := m.ws.Sessions().Get(m.renameTarget); s != nil {
		b.WriteString(fmt.Sprintf("  Session %d: %s\n\n", m.renameTarget+1, s.Name))
	}
	b.WriteString("  " + m.textInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.dim.Render("  enter=apply  esc=cancel"))

	return b.String()
}

func (m *tuiModel) viewSettings() string {
	s := m.ws.FocusedPaneSession()
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Port Settings"))
	b.WriteString("  ")
	b.WriteString(m.styles.dim.Render(s.Name))
	b.WriteString("\n\n")

	port := s.Settings.Port
	if port == "" {
		port = "(none)"
	}
	rows := []struct {
		name  string
		value string
	}{
		{"Port", port},
		{"Baud rate", fmt.Sprintf("%d", s.Settings.BaudRate)},
		{"Data bits", fmt.Sprintf("%d", s.Settings.DataBits)},
		{"Parity", s.Settings.Parity.String()},
		{"Stop bits", fmt.Sprintf("%d", s.Settings.StopBits)},
		{"Flow control", s.Settings.FlowControl.String()},
	}
	for i, row := range rows {
		cursor := "  "
		style := m.styles.text
		if settingsField(i) == m.settingsCursor {
			cursor = "> "
			style = m.styles.selected
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, padRight(row.name+":", 14), style.Render(row.value)))
	}

	b.WriteString("\n")
	if m.portsErr != "" {
		b.WriteString(m.styles.noticeWarning.Render("  port scan failed: " + m.portsErr))
		b.WriteString("\n")
	} else if len(m.ports) == 0 {
		b.WriteString(m.styles.dim.Render("  no ports detected"))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render("  ↑/↓=field  ←/→=value  r=rescan ports  enter=done"))

	return b.String()
}

func (m *tuiModel) viewHelp() string {
	sections := []struct {
		name string
		keys [][2]string
	}{
		{"Sessions", [][2]string{
			{"ctrl+t", "new session"},
			{"ctrl+w", "close session"},
			{"ctrl+d", "duplicate session"},
			{"tab / shift+tab", "next / previous session"},
			{"alt+1..9", "jump to session"},
			{"r", "rename session"},
			{"t", "toggle tab bar"},
		}},
		{"Layout", [][2]string{
			{"l / L", "next / previous layout"},
			{"p / P", "focus next / previous pane"},
			{"n / N", "change session shown in focused pane"},
		}},
		{"Connection", [][2]string{
			{"o", "open / close port"},
			{"s", "port settings"},
			{"i or enter", "transmit mode"},
			{"c", "clear log"},
		}},
		{"Scrolling", [][2]string{
			{"pgup / pgdown", "scroll log"},
			{"home / end", "oldest / newest"},
			{"a", "toggle autoscroll"},
			{"wheel", "scroll focused pane"},
		}},
	}

	var b strings.Builder
	b.WriteString(m.styles.title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, sec := range sections {
		b.WriteString(m.styles.status.Render(sec.name))
		b.WriteString("\n")
		for _, k := range sec.keys {
			b.WriteString("  " + m.styles.hintKey.Render(padRight(k[0], 18)) + m.styles.hintDesc.Render(k[1]) + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.styles.dim.Render("press any key to return"))

	return b.String()
}

// logWindow returns up to count entries ending offset lines before the
// tail of the log.
func logWindow(l *session.Log, offset, count int) []session.Entry {
	tail := l.Tail(offset + count)
	drop := offset
	if drop > len(tail) {
		drop = len(tail)
	}
	return tail[:len(tail)-drop]
}

// cycleChoice steps cur one position through options, wrapping at both
// ends. A current value not in the list lands on the first option.
func cycleChoice[T comparable](options []T, cur T, dir int) T {
	for i, v := range options {
		if v == cur {
			return options[(i+dir+len(options))%len(options)]
		}
	}
	return options[0]
}

// truncate cuts a string to at most maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// formatBytes formats a byte count for display (e.g., "12.3kB").
func formatBytes(n int64) string {
	if n < 1000 {
		return fmt.Sprintf("%dB", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fkB", float64(n)/1000)
	}
	return fmt.Sprintf("%.2fMB", float64(n)/1000000)
}

// padRight pads a string with spaces to reach the desired visible width.
func padRight(s string, width int) string {
	visible := visibleLen(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// visibleLen returns the visible length of a string, ignoring ANSI escape
// sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		n++
	}
	return n
}
