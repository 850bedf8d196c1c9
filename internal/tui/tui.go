// Package tui renders the three-zone status display in a terminal using
// Bubble Tea. It is a display backend only: it consumes finished zone
// states from the status engine and forwards raw key input to the host
// through callbacks, deciding nothing about what the input means.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kestrelkb/keyhud/render"
)

// Special identifies non-rune keys forwarded to the host.
type Special int

const (
	SpecialNone Special = iota
	SpecialEnter
	SpecialBackspace
	SpecialTab
	SpecialEsc
	SpecialUp
	SpecialDown
	SpecialLeft
	SpecialRight
)

// Action identifies simulator control chords.
type Action int

const (
	ActionToggleTransport Action = iota
	ActionCycleProfile
	ActionCycleLayer
	ActionToggleCharger
	ActionDrainBattery
)

// KeyInput is one forwarded keystroke: either a rune or a special key.
type KeyInput struct {
	Rune    rune
	Special Special
}

// Options configures the UI.
type Options struct {
	// Flipped reverses the zone stacking order, the terminal analog of a
	// 180°-rotated display.
	Flipped bool
	// OnKey receives typed keys. May be nil.
	OnKey func(KeyInput)
	// OnAction receives control chords. May be nil.
	OnAction func(Action)
}

// UI owns the Bubble Tea program. Create with New, then call Run
// (blocking); Renderer and the callbacks are usable once WaitReady
// returns.
type UI struct {
	opts    Options
	program *tea.Program
	readyCh chan struct{}
}

// New creates the display. Call Run to start it.
func New(opts Options) *UI {
	return &UI{opts: opts, readyCh: make(chan struct{})}
}

// WaitReady blocks until the event loop is running.
func (u *UI) WaitReady() { <-u.readyCh }

// Quit tells the event loop to exit.
func (u *UI) Quit() {
	if u.program != nil {
		u.program.Quit()
	}
}

// Run starts the event loop and blocks until quit.
func (u *UI) Run() error {
	m := model{
		flipped:  u.opts.Flipped,
		onKey:    u.opts.OnKey,
		onAction: u.opts.OnAction,
		readyCh:  u.readyCh,
	}
	u.program = tea.NewProgram(m, tea.WithAltScreen())
	_, err := u.program.Run()
	return err
}

// Renderer returns a status renderer drawing into this UI. Only valid
// after WaitReady.
func (u *UI) Renderer() render.Renderer { return &uiRenderer{ui: u} }

type uiRenderer struct{ ui *UI }

func (r *uiRenderer) DrawTop(z render.TopZone)       { r.ui.program.Send(topMsg(z)) }
func (r *uiRenderer) DrawMiddle(z render.MiddleZone) { r.ui.program.Send(middleMsg(z)) }
func (r *uiRenderer) DrawBottom(z render.BottomZone) { r.ui.program.Send(bottomMsg(z)) }

type (
	topMsg    render.TopZone
	middleMsg render.MiddleZone
	bottomMsg render.BottomZone
)

var (
	zoneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#52525b")).
			Padding(0, 1).
			Width(34)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	keyBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#a1a1aa")).
			Padding(0, 1)

	selectedSlotStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#18181b")).
				Background(lipgloss.Color("#e4e4e7")).
				Bold(true)

	slotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	chargeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))
)

type model struct {
	flipped  bool
	onKey    func(KeyInput)
	onAction func(Action)
	readyCh  chan struct{}

	top    render.TopZone
	middle render.MiddleZone
	bottom render.BottomZone
}

func (m model) Init() tea.Cmd {
	readyCh := m.readyCh
	return func() tea.Msg {
		close(readyCh)
		return nil
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case topMsg:
		m.top = render.TopZone(msg)
	case middleMsg:
		m.middle = render.MiddleZone(msg)
	case bottomMsg:
		m.bottom = render.BottomZone(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := func(a Action) (tea.Model, tea.Cmd) {
		if m.onAction != nil {
			m.onAction(a)
		}
		return m, nil
	}
	key := func(k KeyInput) (tea.Model, tea.Cmd) {
		if m.onKey != nil {
			m.onKey(k)
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyCtrlE:
		return action(ActionToggleTransport)
	case tea.KeyCtrlP:
		return action(ActionCycleProfile)
	case tea.KeyCtrlO:
		return action(ActionCycleLayer)
	case tea.KeyCtrlG:
		return action(ActionToggleCharger)
	case tea.KeyCtrlD:
		return action(ActionDrainBattery)
	case tea.KeyEnter:
		return key(KeyInput{Special: SpecialEnter})
	case tea.KeyBackspace:
		return key(KeyInput{Special: SpecialBackspace})
	case tea.KeyTab:
		return key(KeyInput{Special: SpecialTab})
	case tea.KeyEsc:
		return key(KeyInput{Special: SpecialEsc})
	case tea.KeyUp:
		return key(KeyInput{Special: SpecialUp})
	case tea.KeyDown:
		return key(KeyInput{Special: SpecialDown})
	case tea.KeyLeft:
		return key(KeyInput{Special: SpecialLeft})
	case tea.KeyRight:
		return key(KeyInput{Special: SpecialRight})
	case tea.KeySpace:
		return key(KeyInput{Rune: ' '})
	case tea.KeyRunes:
		if m.onKey != nil {
			for _, r := range msg.Runes {
				m.onKey(KeyInput{Rune: r})
			}
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	zones := []string{m.viewTop(), m.viewMiddle(), m.viewBottom()}
	if m.flipped {
		zones[0], zones[2] = zones[2], zones[0]
	}

	hints := dimStyle.Render(strings.Join([]string{
		"type keys to show them",
		"^E endpoint  ^P profile  ^O layer",
		"^G charger  ^D drain  ^C quit",
	}, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left,
		zones[0], zones[1], zones[2], "", hints)
}

func (m model) viewTop() string {
	battery := fmt.Sprintf("BAT %3d%%", m.top.BatteryLevel)
	if m.top.Charging {
		battery += chargeStyle.Render(" +")
	}

	line := battery + strings.Repeat(" ", 4) + m.top.Connection

	keyBox := ""
	if m.top.ShowLastKey {
		keyBox = keyBoxStyle.Render(m.top.LastKey)
	}

	return zoneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, line, keyBox))
}

func (m model) viewMiddle() string {
	parts := make([]string, 0, len(m.middle.Slots))
	for _, slot := range m.middle.Slots {
		if slot.Selected {
			parts = append(parts, selectedSlotStyle.Render("("+slot.Label+")"))
		} else {
			parts = append(parts, slotStyle.Render("("+slot.Label+")"))
		}
	}
	return zoneStyle.Render(strings.Join(parts, " "))
}

func (m model) viewBottom() string {
	return zoneStyle.Render(m.bottom.Text)
}
