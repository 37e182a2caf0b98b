package overlay

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/alertkit/pkg/alert"
)

// PresentFunc builds and presents an alert on host. It runs once, after the
// first window size is known.
type PresentFunc func(host *Host) (*alert.Responder, error)

// BackgroundFunc renders what the alert is drawn over.
type BackgroundFunc func(width, height int) string

// Model is a minimal tea.Model that presents one alert and quits when it
// is dismissed.
type Model struct {
	Host       *Host
	present    PresentFunc
	background BackgroundFunc

	responder *alert.Responder
	width     int
	height    int
	err       error
	done      bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

func WithBackground(fn BackgroundFunc) ModelOption {
	return func(m *Model) { m.background = fn }
}

func NewModel(host *Host, present PresentFunc, opts ...ModelOption) Model {
	m := Model{Host: host, present: present}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.Host.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if m.responder == nil && m.err == nil {
			resp, err := m.present(m.Host)
			if err != nil {
				m.err = err
				return m, tea.Quit
			}
			m.responder = resp
			return m, tea.Batch(cmd, m.Host.Drain())
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			if a := m.Host.Current(); a != nil {
				_ = a.Dismiss(alert.ReasonClose)
			}
			m.done = true
			return m, tea.Quit
		}
	case DismissedMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m Model) View() string {
	bg := ""
	if m.background != nil {
		bg = m.background(m.width, m.height)
	}
	return m.Host.View(bg)
}

// Err returns the error from presenting, if any.
func (m Model) Err() error { return m.err }

// Responder returns the presented alert's responder.
func (m Model) Responder() *alert.Responder { return m.responder }

// Alert returns the presented alert, attached or not.
func (m Model) Alert() *alert.Alert {
	if m.responder == nil {
		return nil
	}
	return m.responder.Alert()
}
