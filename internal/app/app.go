package app

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/maskedit/internal/event"
	"github.com/bethropolis/maskedit/internal/field"
	"github.com/bethropolis/maskedit/internal/input"
	"github.com/bethropolis/maskedit/internal/logger"
	"github.com/bethropolis/maskedit/internal/mask"
	"github.com/bethropolis/maskedit/internal/statusbar"
	"github.com/bethropolis/maskedit/internal/theme"
	"github.com/bethropolis/maskedit/internal/tui"
)

// Options configure the interactive field.
type Options struct {
	Name         string
	Rules        mask.Rules
	Initial      string
	MacLike      bool
	HistoryLimit int
	Clipboard    field.Clipboard
	Theme        *theme.Theme // nil uses theme.Default
	Screen       tcell.Screen // nil opens the terminal
}

// App runs one masked field on the terminal until it is submitted or
// cancelled.
type App struct {
	tuiManager   *tui.TUI
	buffer       *field.Buffer
	controller   *field.Controller
	processor    *input.Processor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	styles       tui.Styles
	name         string

	quit      chan struct{}
	quitOnce  sync.Once
	submitted bool
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	var (
		tuiManager *tui.TUI
		err        error
	)
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen)
	} else {
		tuiManager, err = tui.New()
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}
	logger.Debugf("Using theme '%s'", th.Name)

	a := &App{
		tuiManager:   tuiManager,
		buffer:       field.NewBuffer(""),
		processor:    input.NewProcessor(input.Bridge{MacLike: opts.MacLike}),
		statusBar:    statusbar.New(statusBarConfig(th)),
		eventManager: event.NewManager(),
		styles:       fieldStyles(th),
		name:         opts.Name,
		quit:         make(chan struct{}),
	}

	fieldOpts := []field.Option{
		field.WithRules(opts.Rules),
		field.WithMacLike(opts.MacLike),
		field.WithHistoryLimit(opts.HistoryLimit),
		field.WithEvents(a.eventManager),
	}
	if opts.Clipboard != nil {
		fieldOpts = append(fieldOpts, field.WithClipboard(opts.Clipboard))
	}
	a.controller = field.New(a.buffer, fieldOpts...)
	a.controller.SetValue(opts.Initial)

	a.eventManager.Subscribe(event.TypeUnexpectedInput, a.handleUnexpectedInput)
	a.eventManager.Subscribe(event.TypeHistoryRestored, a.handleHistoryRestored)
	a.eventManager.Subscribe(event.TypeSubmit, a.handleSubmit)
	a.eventManager.Subscribe(event.TypeCancel, a.handleCancel)

	a.statusBar.SetTemporaryMessage("Enter accept | Esc cancel | %s undo", undoHint(opts.MacLike))
	return a, nil
}

func fieldStyles(th *theme.Theme) tui.Styles {
	return tui.Styles{
		Label:     th.GetStyle(theme.StyleLabel),
		Value:     th.GetStyle(theme.StyleValue),
		Selection: th.GetStyle(theme.StyleSelection),
		Hint:      th.GetStyle(theme.StyleHint),
	}
}

func statusBarConfig(th *theme.Theme) statusbar.Config {
	cfg := statusbar.DefaultConfig()
	cfg.StyleDefault = th.GetStyle(theme.StyleStatusBar)
	cfg.StyleModified = th.GetStyle(theme.StyleStatusBarModified)
	cfg.StyleMessage = th.GetStyle(theme.StyleStatusBarMessage)
	return cfg
}

func undoHint(macLike bool) string {
	if macLike {
		return "Cmd+Z"
	}
	return "Ctrl+Z"
}

// Value returns the field value.
func (a *App) Value() string { return a.controller.Value() }

// Run processes terminal events until the field is submitted or cancelled.
// It returns the value and whether it was submitted.
func (a *App) Run() (string, bool, error) {
	defer a.tuiManager.Close()

	events := make(chan tcell.Event)
	go a.eventLoop(events)

	a.draw()
	for {
		select {
		case <-a.quit:
			logger.Debugf("App: Exiting, submitted=%v", a.submitted)
			return a.controller.Value(), a.submitted, nil
		case ev := <-events:
			if a.handleEvent(ev) {
				a.draw()
			}
		}
	}
}

// eventLoop forwards terminal events until the screen is finalized.
func (a *App) eventLoop(events chan<- tcell.Event) {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether a redraw is due.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.HandleKey(e)
	}
	return false
}

// HandleKey decodes and applies one key press.
func (a *App) HandleKey(ev *tcell.EventKey) bool {
	intent := a.processor.Process(ev)
	if intent.Kind == input.IntentNone {
		return false
	}
	return a.controller.HandleIntent(intent)
}

func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}
