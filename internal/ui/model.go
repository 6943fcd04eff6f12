package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sgostarter/i/l"

	"swipedeck/internal/config"
	"swipedeck/internal/deck"
	"swipedeck/internal/domain"
	"swipedeck/internal/eventbus"
	"swipedeck/internal/gesture"
	"swipedeck/internal/logic"
	"swipedeck/internal/slider"
	"swipedeck/internal/ui/input"
	inputtypes "swipedeck/internal/ui/input/types"
	"swipedeck/internal/ui/views"
)

// defaultPaneWidth is used until the first WindowSizeMsg arrives
const defaultPaneWidth = 80

// chromeHeight is the number of rows around the deck window
const chromeHeight = 6

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	store     logic.PaneStore
	logger    l.Wrapper

	surface  *Surface
	ctrl     *deck.Controller
	input    *input.Handler
	renderer *views.DeckRenderer
	styles   *views.Styles
	help     help.Model
	pages    paginator.Model

	width  int
	height int

	status    string
	statusErr bool

	// drag state for the default vertical scroll action
	dragging     bool
	dragOriginY  int
	scrollAnchor int
	scroll       map[int]int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus, configSvc and logger may be nil.
func NewModel(bus eventbus.EventBus, cfg *config.Config, configSvc config.ConfigService, store logic.PaneStore, logger l.Wrapper) *Model {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	styles := views.NewStyles()

	m := &Model{
		bus:       bus,
		config:    cfg,
		configSvc: configSvc,
		store:     store,
		logger:    logger.WithFields(l.StringField(l.ClsKey, "ui")),
		input:     input.New(),
		renderer:  views.NewDeckRenderer(styles),
		styles:    styles,
		help:      help.New(),
		pages:     paginator.New(),
		scroll:    make(map[int]int),
	}
	m.pages.Type = paginator.Dots
	m.pages.PerPage = 1
	m.help.ShowAll = cfg.UISettings.ShowHelp

	paneWidth := cfg.UISettings.PaneWidth
	if paneWidth <= 0 {
		paneWidth = defaultPaneWidth
	}
	m.surface = NewSurface(paneWidth, float64(cfg.UISettings.PixelsPerCell), cfg.FrameInterval())
	m.surface.SetCleaner(m.cleanPanes)

	m.ctrl = deck.New(m.surface, slider.Options{
		SlideSpeed:   cfg.SlideSpeed(),
		Ease:         cfg.Ease,
		InitialIndex: cfg.InitialIndex,
		ItemCount:    store.Count(),
		Callbacks:    m.callbacks(),
		Logger:       logger,
	})
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Controller exposes the deck controller
func (m *Model) Controller() *deck.Controller {
	return m.ctrl
}

func (m *Model) callbacks() slider.Callbacks {
	return slider.Callbacks{
		BeforeSlide: func(info slider.SlideInfo) {
			m.publish(eventbus.SlideStartedEvent{Current: info.CurrentSlide, Next: info.NextSlide})
		},
		AfterSlide: func(current int) {
			m.publish(eventbus.SlideCompletedEvent{Current: current})
		},
		OnAdvance: func(next int) {
			m.publish(eventbus.AdvancedEvent{Next: next})
		},
		OnRetreat: func(next int) {
			m.publish(eventbus.RetreatedEvent{Next: next})
		},
		OnSnapBack: func(index int) {
			m.publish(eventbus.SnappedBackEvent{Index: index})
		},
	}
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("swipedeck")
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		paneWidth := m.config.UISettings.PaneWidth
		if paneWidth <= 0 || paneWidth > msg.Width {
			paneWidth = msg.Width
		}
		m.surface.Resize(paneWidth, m.ctrl.Index())

	case tea.KeyMsg:
		actions, _ := m.input.HandleKey(msg)
		for _, action := range actions {
			cmds = append(cmds, m.execute(action))
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		cmds = append(cmds, m.surface.Advance(msg))

	case EventMsg:
		m.handleEvent(msg.Event)

	case pagerMsg:
		if msg.err != nil {
			m.setError(fmt.Sprintf("Pager failed: %v", msg.err))
		}
	}

	cmds = append(cmds, m.surface.TakeCmd())
	return m, tea.Batch(cmds...)
}

func (m *Model) execute(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.SlideAction:
		ev := &inputEvent{cancelable: true}
		if a.Advance {
			m.ctrl.Next(ev)
		} else {
			m.ctrl.Prev(ev)
		}
	case inputtypes.CleanAction:
		m.ctrl.Clean()
	case inputtypes.OpenPagerAction:
		return m.openPager()
	case inputtypes.ReloadAction:
		m.reload()
	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
	case inputtypes.QuitAction:
		m.ctrl.Destroy()
		m.publish(eventbus.DeckDestroyedEvent{})
		return tea.Quit
	}
	return nil
}

// handleMouse maps left-button drags onto gesture start/move/end
func (m *Model) handleMouse(msg tea.MouseMsg) {
	in := m.surface.Input()
	if in == nil {
		return
	}
	x, y := m.surface.Sample(msg.X, msg.Y)
	ev := &inputEvent{sample: gesture.Sample{X: x, Y: y}, cancelable: true}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.dragging = true
		m.dragOriginY = msg.Y
		m.scrollAnchor = m.scroll[m.ctrl.Index()]
		in.Start(ev)

	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		if msg.Button != tea.MouseButtonLeft {
			// the button was released outside the terminal
			m.dragging = false
			in.Cancel(ev)
			return
		}
		in.Move(ev)
		if !ev.prevented {
			m.scrollBody(msg.Y)
		}

	case tea.MouseActionRelease:
		if !m.dragging {
			return
		}
		m.dragging = false
		in.End(ev)
	}
}

// scrollBody is the default action of an unprevented drag: it scrolls the
// current pane's body like a touch scroll would
func (m *Model) scrollBody(y int) {
	idx := m.ctrl.Index()
	pane, ok := m.store.GetPane(idx)
	if !ok {
		return
	}
	maxScroll := max(strings.Count(pane.Body, "\n"), 0)
	offset := m.scrollAnchor + (m.dragOriginY - y)
	m.scroll[idx] = min(max(offset, 0), maxScroll)
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case eventbus.SlideStartedEvent:
		m.setStatus(fmt.Sprintf("Sliding %d → %d", ev.Current+1, ev.Next+1))
	case eventbus.SlideCompletedEvent:
		m.setStatus(fmt.Sprintf("Pane %d of %d", ev.Current+1, m.store.Count()))
	case eventbus.SnappedBackEvent:
		m.setStatus(fmt.Sprintf("Snapped back to pane %d", ev.Index+1))
	case eventbus.DeckCleanedEvent:
		if ev.Removed == 0 {
			m.setStatus("Nothing to clean")
		} else {
			m.setStatus(fmt.Sprintf("Removed %d duplicate panes", ev.Removed))
		}
	case eventbus.ConfigLoadedEvent:
		m.setStatus(fmt.Sprintf("Loaded %d panes", ev.Panes))
	case eventbus.ErrorEvent:
		m.setError(ev.Message)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
	m.logger.Error(s)
}

// cleanPanes is the deck's content normalizer
func (m *Model) cleanPanes() bool {
	removed := logic.CleanStore(m.store)
	if removed > 0 {
		m.ctrl.UpdateItems(m.store.Count())
		m.publish(eventbus.ItemsUpdatedEvent{Count: m.store.Count()})
	}
	m.publish(eventbus.DeckCleanedEvent{Removed: removed})
	return true
}

// reload re-reads the deck file and swaps in its panes. The current index is
// kept; the next slide brings it back in range if the deck shrank.
func (m *Model) reload() {
	if m.configSvc == nil {
		return
	}
	cfg, err := m.configSvc.Load()
	if err != nil {
		m.setError(fmt.Sprintf("Reload failed: %v", err))
		m.publish(eventbus.ErrorEvent{Message: "reload failed", Err: err})
		return
	}
	m.config = cfg
	m.store.ReplaceAll(PanesFromConfig(cfg.Panes))
	m.scroll = make(map[int]int)
	m.ctrl.UpdateItems(m.store.Count())
	m.publish(eventbus.ItemsUpdatedEvent{Count: m.store.Count()})
}

func (m *Model) openPager() tea.Cmd {
	pane, ok := m.store.GetPane(m.ctrl.Index())
	if !ok {
		return nil
	}
	if m.program == nil {
		m.setError("Pager unavailable")
		return nil
	}
	program := m.program
	content := pane.Title + "\n\n" + pane.Body
	return func() tea.Msg {
		return pagerMsg{err: showInPager(program, content)}
	}
}

// View renders the deck
func (m *Model) View() string {
	panes := m.store.GetAllPanes()
	count := len(panes)
	idx := m.ctrl.Index()
	shown := min(max(idx, 0), max(count-1, 0))

	title := ""
	if count > 0 {
		title = panes[shown].Title
	}
	header := m.styles.Title.Render("swipedeck") + "  " + m.styles.Dim.Render(title)

	height := m.height
	if height == 0 {
		height = 24
	}
	window := m.renderer.RenderWindow(panes, m.surface.Position(), m.surface.PaneWidth(), max(height-chromeHeight, 3), func(i int) int {
		return m.scroll[i]
	})

	pages := m.pages
	pages.SetTotalPages(max(count, 1))
	pages.Page = shown
	position := pages.View() + "  " + m.styles.Position.Render(fmt.Sprintf("%d/%d", shown+1, count))

	status := m.styles.Status.Render(m.status)
	if m.statusErr {
		status = m.styles.StatusError.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		window,
		position,
		status,
		m.styles.Help.Render(m.help.View(m.input.Keys())),
	)
}

// PanesFromConfig converts deck file panes into domain panes
func PanesFromConfig(in []config.PaneConfig) []domain.Pane {
	out := make([]domain.Pane, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Pane{Title: p.Title, Body: p.Body})
	}
	return out
}
