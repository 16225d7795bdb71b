package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qdense/quantum"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusQASM
	focusMenu
	focusSelectTarget
)

// Model represents the TUI application state.
//
// cursorStep is an insertion point between gates: the state panel shows the
// register after the first cursorStep gates, and new gates go in at the cursor.
type Model struct {
	cfg         *Config
	circuit     Circuit
	cursorQubit int
	cursorStep  int
	width       int
	height      int
	qasmEditor  textarea.Model
	focus       focus
	lastQASM    string
	statusMsg   string

	// Palette and CNOT target selection
	menuItem    int
	targetQubit int

	// Simulation result at the cursor
	reg    *quantum.Register
	simErr error
}

func initialModel(cfg *Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Edit QASM here..."
	ta.SetWidth(40)
	ta.SetHeight(20)
	ta.ShowLineNumbers = true

	m := Model{
		cfg:        cfg,
		circuit:    Circuit{NumQubits: cfg.TUI.Qubits},
		qasmEditor: ta,
		focus:      focusCircuit,
	}
	m.sync()
	return m
}

// sync refreshes the QASM editor and the simulated state from the circuit.
func (m *Model) sync() {
	qasm := m.circuit.ToQASM()
	m.qasmEditor.SetValue(qasm)
	m.lastQASM = qasm
	m.resimulate()
}

func (m *Model) resimulate() {
	m.cursorStep = min(max(m.cursorStep, 0), len(m.circuit.Gates))
	m.cursorQubit = min(max(m.cursorQubit, 0), m.circuit.NumQubits-1)
	m.reg, m.simErr = SimulateCircuit(&m.circuit, m.cursorStep)
}

// loadQASM replaces the circuit with parsed QASM text.
func (m *Model) loadQASM(qasm string) error {
	var c Circuit
	if err := c.ParseQASM(qasm); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if err := m.cfg.checkQubits(c.NumQubits); err != nil {
		return err
	}
	m.circuit = c
	m.cursorStep = len(c.Gates)
	m.sync()
	return nil
}

// parseQASMInput applies the editor contents if they changed.
func (m *Model) parseQASMInput() {
	qasm := m.qasmEditor.Value()
	if qasm == m.lastQASM {
		return
	}
	if err := m.loadQASM(qasm); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.statusMsg = "QASM applied"
}

// placeGate inserts g at the cursor and moves the cursor past it.
func (m *Model) placeGate(g quantum.Gate) {
	if err := g.Validate(m.circuit.NumQubits); err != nil {
		m.statusMsg = err.Error()
		return
	}
	m.circuit.InsertGate(m.cursorStep, g)
	m.cursorStep++
	m.sync()
}

// setQubits grows or shrinks the register, dropping gates on removed qubits.
func (m *Model) setQubits(n int) {
	if n < 1 {
		return
	}
	if err := m.cfg.checkQubits(n); err != nil {
		m.statusMsg = err.Error()
		return
	}
	for q := n; q < m.circuit.NumQubits; q++ {
		m.circuit.RemoveGatesOnQubit(q)
	}
	m.circuit.NumQubits = n
	m.sync()
}

// nextTarget moves the CNOT target selection by delta, skipping the control.
func (m *Model) nextTarget(delta int) {
	n := m.circuit.NumQubits
	t := m.targetQubit
	for range n {
		t = (t + delta + n) % n
		if t != m.cursorQubit {
			break
		}
	}
	m.targetQubit = t
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.qasmEditor.SetWidth(max(msg.Width/3-6, 20))
		m.qasmEditor.SetHeight(max(m.topHeight()-6, 4))

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if m.focus != focusQASM {
			m.statusMsg = ""
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusQASM
				cmds = append(cmds, m.qasmEditor.Focus())
			case "up", "k":
				m.cursorQubit = max(m.cursorQubit-1, 0)
			case "down", "j":
				m.cursorQubit = min(m.cursorQubit+1, m.circuit.NumQubits-1)
			case "left", "h":
				m.cursorStep = max(m.cursorStep-1, 0)
				m.resimulate()
			case "right", "l":
				m.cursorStep = min(m.cursorStep+1, len(m.circuit.Gates))
				m.resimulate()
			case "home":
				m.cursorStep = 0
				m.resimulate()
			case "end":
				m.cursorStep = len(m.circuit.Gates)
				m.resimulate()
			case "+", "=":
				m.setQubits(m.circuit.NumQubits + 1)
			case "-":
				m.setQubits(m.circuit.NumQubits - 1)
			case "a":
				m.focus = focusMenu
				m.menuItem = 0
			case "backspace", "delete":
				if m.cursorStep > 0 {
					m.circuit.RemoveGate(m.cursorStep - 1)
					m.cursorStep--
					m.sync()
				}
			case "ctrl+r":
				m.circuit.Gates = nil
				m.cursorStep = 0
				m.sync()
			case "ctrl+s":
				if err := os.WriteFile("circuit.qasm", []byte(m.circuit.ToQASM()), 0o644); err != nil {
					m.statusMsg = err.Error()
				} else {
					m.statusMsg = "Saved circuit.qasm"
				}
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "left", "h", "up", "k":
				m.menuItem = (m.menuItem - 1 + len(gateMenu)) % len(gateMenu)
			case "right", "l", "down", "j":
				m.menuItem = (m.menuItem + 1) % len(gateMenu)
			case "enter":
				item := gateMenu[m.menuItem]
				m.focus = focusCircuit
				if !item.kind.Controlled() {
					m.placeGate(quantum.NewGate(item.kind, m.cursorQubit))
					break
				}
				if m.circuit.NumQubits < 2 {
					m.statusMsg = "CNOT needs at least two qubits"
					break
				}
				m.targetQubit = m.cursorQubit
				m.nextTarget(1)
				m.focus = focusSelectTarget
			}

		case focusSelectTarget:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				m.nextTarget(-1)
			case "down", "j":
				m.nextTarget(1)
			case "enter":
				m.focus = focusCircuit
				m.placeGate(quantum.NewCNOT(m.targetQubit, m.cursorQubit))
			}

		case focusQASM:
			switch key {
			case "tab", "esc":
				m.parseQASMInput()
				m.qasmEditor.Blur()
				m.focus = focusCircuit
			case "ctrl+r":
				m.parseQASMInput()
			default:
				var cmd tea.Cmd
				m.qasmEditor, cmd = m.qasmEditor.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// topHeight is the height shared by the circuit and QASM panels.
func (m Model) topHeight() int {
	return max((m.height-controlsHeight)/2, 8)
}

const controlsHeight = 4

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	qasmWidth := m.width / 3
	circuitWidth := m.width - qasmWidth - 4
	topH := m.topHeight()
	stateH := max(m.height-topH-controlsHeight-6, 4)

	circuitPanel := m.renderCircuitPanel(circuitWidth, topH)
	qasmPanel := m.renderQASMPanel(qasmWidth, topH)
	statePanel := m.renderStatePanel(m.width-4, stateH)

	var bottom string
	if m.focus == focusMenu {
		bottom = controlsStyle.Width(m.width - 4).Height(controlsHeight - 2).Render(m.renderMenu())
	} else {
		bottom = m.renderControlsPanel(m.width-4, controlsHeight-2)
	}

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, qasmPanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, statePanel, bottom)
}

// statusLine describes the cursor or the pending CNOT target.
func (m Model) statusLine() string {
	if m.focus == focusSelectTarget {
		return fmt.Sprintf("  %s control q[%d]  target: %s%s",
			activeGateStyle.Render("CX"),
			m.cursorQubit,
			targetSelectStyle.Render(fmt.Sprintf("q[%d]", m.targetQubit)),
			dimStyle.Render("   ↑↓ Move  Enter Confirm  Esc Cancel"))
	}
	s := fmt.Sprintf("  After %d/%d gates, qubit %d", m.cursorStep, len(m.circuit.Gates), m.cursorQubit)
	if m.statusMsg != "" {
		s += "  │  " + activeGateStyle.Render(m.statusMsg)
	}
	return s
}
