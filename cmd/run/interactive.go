package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	kernelbridge "github.com/wippyai/kernel-bridge"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	bindingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectBinding modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	bindings []string
	open     map[string]kernelbridge.Binding
	inputs   []textinput.Model
	result   string
	selected int
	focusIdx int
	state    modelState
	busy     bool
}

type callResultMsg struct {
	err    error
	result string
}

func newInteractiveModel() *interactiveModel {
	names := append(kernelbridge.Bindings(), directName)
	return &interactiveModel{
		bindings: names,
		open:     make(map[string]kernelbridge.Binding),
		state:    stateSelectBinding,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.busy {
			// A compute call is blocking and cannot be cancelled mid-loop;
			// ignore input until it returns.
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c", "q":
			ctx := context.Background()
			for _, b := range m.open {
				b.Close(ctx)
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectBinding && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectBinding && m.selected < len(m.bindings)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectBinding:
				m.prepareInputs()
				m.state = stateInputArgs

			case stateInputArgs:
				m.busy = true
				return m, m.callBinding

			case stateShowResult:
				m.state = stateSelectBinding
				m.result = ""
				m.err = nil
			}

		case "tab":
			if m.state == stateInputArgs {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputArgs:
				m.state = stateSelectBinding
				m.inputs = nil
			case stateShowResult:
				m.state = stateSelectBinding
				m.result = ""
				m.err = nil
			}
		}

	case callResultMsg:
		m.busy = false
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	iterations := textinput.New()
	iterations.Placeholder = "non-negative integer"
	iterations.Prompt = "iterations: "
	iterations.Width = 40
	iterations.Focus()

	param := textinput.New()
	param.Placeholder = "float64"
	param.Prompt = "param: "
	param.Width = 40

	m.inputs = []textinput.Model{iterations, param}
	m.focusIdx = 0
}

func (m *interactiveModel) callBinding() tea.Msg {
	ctx := context.Background()
	name := m.bindings[m.selected]

	iterations, err := strconv.ParseUint(m.inputs[0].Value(), 10, 64)
	if err != nil {
		return callResultMsg{err: fmt.Errorf("iterations %q: %w", m.inputs[0].Value(), err)}
	}
	param, err := strconv.ParseFloat(m.inputs[1].Value(), 64)
	if err != nil {
		return callResultMsg{err: fmt.Errorf("param %q: %w", m.inputs[1].Value(), err)}
	}

	result, err := m.computeCached(ctx, name, iterations, param)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: strconv.FormatFloat(result, 'g', -1, 64)}
}

// computeCached reuses one binding instance per name across calls so
// repeated runs show the stateless-binding guarantee: same inputs, same bits,
// same instance.
func (m *interactiveModel) computeCached(ctx context.Context, name string, iterations uint64, param float64) (float64, error) {
	if name == directName {
		return compute(ctx, name, iterations, param)
	}
	b, ok := m.open[name]
	if !ok {
		var err error
		b, err = kernelbridge.Open(ctx, name)
		if err != nil {
			return 0, err
		}
		m.open[name] = b
	}
	return b.Compute(ctx, iterations, param)
}

func (m *interactiveModel) View() string {
	s := titleStyle.Render("kernel-bridge") + "\n\n"

	switch m.state {
	case stateSelectBinding:
		s += "Select a binding:\n\n"
		for i, name := range m.bindings {
			line := bindingStyle.Render(name)
			if i == m.selected {
				line = selectedStyle.Render("> " + name)
			} else {
				line = "  " + line
			}
			s += line + "\n"
		}
		s += "\n" + helpStyle.Render("up/down: select • enter: choose • q: quit")

	case stateInputArgs:
		s += "Binding: " + bindingStyle.Render(m.bindings[m.selected]) + "\n\n"
		for _, input := range m.inputs {
			s += input.View() + "\n"
		}
		if m.busy {
			s += "\n" + helpStyle.Render("computing...")
		} else {
			s += "\n" + helpStyle.Render("tab: next field • enter: compute • esc: back")
		}

	case stateShowResult:
		s += "Binding: " + bindingStyle.Render(m.bindings[m.selected]) + "\n\n"
		if m.err != nil {
			s += errorStyle.Render("Error: "+m.err.Error()) + "\n"
		} else {
			s += resultStyle.Render("Result: "+m.result) + "\n"
		}
		s += "\n" + helpStyle.Render("enter/esc: back • q: quit")
	}

	return s + "\n"
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel())
	_, err := p.Run()
	return err
}
