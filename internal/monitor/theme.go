package monitor

import "github.com/charmbracelet/lipgloss"

// Theme defines all colors used by the monitor TUI.
// Use DarkTheme() or LightTheme() to get a pre-built theme,
// or construct a custom Theme.
type Theme struct {
	Primary         lipgloss.Color // warm accent — title, TX direction
	Secondary       lipgloss.Color // cool accent — active tab text
	Accent          lipgloss.Color // focused pane border, selected field
	Error           lipgloss.Color // error notices, dead connections
	Warning         lipgloss.Color // warning notices
	Success         lipgloss.Color // connected status, success notices
	Info            lipgloss.Color // RX direction, info notices
	Text            lipgloss.Color // primary text
	TextMuted       lipgloss.Color // secondary text — hints, placeholders
	BackgroundPanel lipgloss.Color // settings panel background
	BackgroundElem  lipgloss.Color // highlighted element background
	Border          lipgloss.Color // unfocused pane borders, separators
	ActiveNumber    lipgloss.Color // tab index digits on the active tab
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Primary:         lipgloss.Color("#fab283"),
		Secondary:       lipgloss.Color("#5c9cf5"),
		Accent:          lipgloss.Color("#9d7cd8"),
		Error:           lipgloss.Color("#e06c75"),
		Warning:         lipgloss.Color("#f5a742"),
		Success:         lipgloss.Color("#7fd88f"),
		Info:            lipgloss.Color("#56b6c2"),
		Text:            lipgloss.Color("#eeeeee"),
		TextMuted:       lipgloss.Color("#808080"),
		BackgroundPanel: lipgloss.Color("#141414"),
		BackgroundElem:  lipgloss.Color("#1e1e1e"),
		Border:          lipgloss.Color("#484848"),
		ActiveNumber:    lipgloss.Color("#6a91c6"),
	}
}

// LightTheme returns a light theme for bright terminal backgrounds.
func LightTheme() Theme {
	return Theme{
		Primary:         lipgloss.Color("#b35c00"),
		Secondary:       lipgloss.Color("#0550ae"),
		Accent:          lipgloss.Color("#6639ba"),
		Error:           lipgloss.Color("#cf222e"),
		Warning:         lipgloss.Color("#bf8700"),
		Success:         lipgloss.Color("#116329"),
		Info:            lipgloss.Color("#0969da"),
		Text:            lipgloss.Color("#1f2328"),
		TextMuted:       lipgloss.Color("#656d76"),
		BackgroundPanel: lipgloss.Color("#ffffff"),
		BackgroundElem:  lipgloss.Color("#f6f8fa"),
		Border:          lipgloss.Color("#d0d7de"),
		ActiveNumber:    lipgloss.Color("#3660a0"),
	}
}

// ThemeByName returns a theme by name. Defaults to dark.
func ThemeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// styles holds all lipgloss styles derived from a Theme.
// Constructed once from a Theme and stored in tuiModel.
type styles struct {
	title lipgloss.Style

	// Tab bar
	tabActive lipgloss.Style
	tab       lipgloss.Style
	tabNumber lipgloss.Style

	// Panes
	paneBorder  lipgloss.Style
	paneFocused lipgloss.Style
	paneHeader  lipgloss.Style
	placeholder lipgloss.Style

	// Log directions
	rx  lipgloss.Style
	tx  lipgloss.Style
	sys lipgloss.Style

	// Notices
	noticeInfo    lipgloss.Style
	noticeSuccess lipgloss.Style
	noticeWarning lipgloss.Style
	noticeError   lipgloss.Style

	// General
	text      lipgloss.Style
	dim       lipgloss.Style
	status    lipgloss.Style
	connected lipgloss.Style
	selected  lipgloss.Style

	// Hints
	hintKey  lipgloss.Style
	hintDesc lipgloss.Style
}

// newStyles builds all styles from a theme.
func newStyles(t Theme) styles {
	return styles{
		title: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),

		tabActive: lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Background(t.BackgroundElem),
		tab:       lipgloss.NewStyle().Foreground(t.TextMuted),
		tabNumber: lipgloss.NewStyle().Foreground(t.ActiveNumber),

		paneBorder:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border),
		paneFocused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Accent),
		paneHeader:  lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		placeholder: lipgloss.NewStyle().Foreground(t.TextMuted),

		rx:  lipgloss.NewStyle().Foreground(t.Info),
		tx:  lipgloss.NewStyle().Foreground(t.Primary),
		sys: lipgloss.NewStyle().Foreground(t.TextMuted),

		noticeInfo:    lipgloss.NewStyle().Foreground(t.Info),
		noticeSuccess: lipgloss.NewStyle().Foreground(t.Success),
		noticeWarning: lipgloss.NewStyle().Foreground(t.Warning),
		noticeError:   lipgloss.NewStyle().Foreground(t.Error),

		text:      lipgloss.NewStyle().Foreground(t.Text),
		dim:       lipgloss.NewStyle().Foreground(t.TextMuted),
		status:    lipgloss.NewStyle().Foreground(t.TextMuted),
		connected: lipgloss.NewStyle().Foreground(t.Success),
		selected:  lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Background(t.BackgroundElem),

		hintKey:  lipgloss.NewStyle().Foreground(t.Text),
		hintDesc: lipgloss.NewStyle().Foreground(t.TextMuted),
	}
}
