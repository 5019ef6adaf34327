package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/unitconv/internal/config"
	"github.com/alexisbeaulieu97/unitconv/internal/logger"
	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

// Options configures a new Model.
type Options struct {
	Config *config.Config
	Logger *logger.Logger
	// Category opens the converter directly when set.
	Category units.Category
}

// Model is the root Bubbletea model of the converter TUI.
type Model struct {
	screen Screen
	home   list.Model
	conv   converterScreen

	keys            keyMap
	help            help.Model
	log             *logger.Logger
	defaults        config.Defaults
	defaultCategory units.Category

	unicode       bool
	precisionHint bool

	showError bool
	errorMsg  string

	width  int
	height int
}

// categoryItem adapts a catalog entry to the list.Item interface.
type categoryItem struct {
	info    units.CategoryInfo
	unicode bool
}

func (i categoryItem) Title() string {
	return i.info.Icon(i.unicode) + " " + i.info.Name
}

func (i categoryItem) Description() string {
	return fmt.Sprintf("%s · %d units", i.info.Description, len(i.info.Units))
}

func (i categoryItem) FilterValue() string { return i.info.Name }

// NewModel creates the TUI model. A nil Config falls back to defaults.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	unicode := cfg.Display.UseUnicode()

	categories := units.Categories()
	items := make([]list.Item, 0, len(categories))
	for _, c := range categories {
		items = append(items, categoryItem{info: c, unicode: unicode})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(primaryColor).
		BorderLeftForeground(primaryColor)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		BorderLeftForeground(primaryColor)

	home := list.New(items, delegate, 80, 20)
	home.Title = "Unit Converter"
	home.Styles.Title = titleStyle
	home.SetShowHelp(false)
	home.SetStatusBarItemName("category", "categories")
	home.KeyMap.Quit.SetEnabled(false)

	m := Model{
		screen:          ScreenHome,
		home:            home,
		keys:            defaultKeyMap(),
		help:            help.New(),
		log:             log,
		defaults:        cfg.Defaults,
		defaultCategory: cfg.Category(),
		unicode:         unicode,
		precisionHint:   cfg.Display.PrecisionHint,
		width:           80,
		height:          24,
	}

	if opts.Category != "" {
		m.openConverter(opts.Category)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.screen == ScreenConverter {
		return textinput.Blink
	}
	return nil
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// openConverter switches to the converter for c. The configured default
// units are used when c is the configured default category.
func (m *Model) openConverter(c units.Category) tea.Cmd {
	info, ok := units.CategoryByID(c.String())
	if !ok || len(info.Units) == 0 {
		m.showError = true
		m.errorMsg = "Category not found"
		m.log.With("category", c.String()).Warn("category not found")
		return nil
	}

	from, to := units.DefaultPair(c)
	if c == m.defaultCategory {
		from, to = m.defaults.From, m.defaults.To
	}

	m.conv = newConverterScreen(info, from, to)
	m.screen = ScreenConverter
	m.showError = false
	m.errorMsg = ""
	m.log.With("category", c.String()).Debug("converter opened")
	return textinput.Blink
}

func (m *Model) backToHome() {
	m.screen = ScreenHome
	m.conv.input.Blur()
	m.help.ShowAll = false
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	if opts.Config != nil {
		switch opts.Config.Display.Theme {
		case "light":
			lipgloss.SetHasDarkBackground(false)
		case "dark":
			lipgloss.SetHasDarkBackground(true)
		}
	}

	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
