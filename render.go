package main

import (
	"fmt"
	"math"
	"strings"

	"qdense/quantum"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return string([]rune(s)[:width])
	}
	total := width - n
	left := total / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", total-left)
}

// wire centres a symbol on a horizontal wire segment of width cellW.
func wire(symbol string) string {
	n := len([]rune(symbol))
	left := (cellW - n) / 2
	return strings.Repeat("─", left) + symbol + strings.Repeat("─", cellW-n-left)
}

// ──────────────────────────── Cell rendering ────────────────────────────

// cellSymbol returns the wire segment for qubit in the column of gate g.
func cellSymbol(g quantum.Gate, qubit int) string {
	switch {
	case g.Target == qubit && g.Kind.Controlled():
		return wire("⊕")
	case g.Target == qubit:
		return wire("┤" + g.Kind.String() + "├")
	case g.Kind.Controlled() && g.Control == qubit:
		return wire("●")
	case g.Kind.Controlled() && qubit > min(g.Control, g.Target) && qubit < max(g.Control, g.Target):
		return wire("┼")
	default:
		return wire("")
	}
}

// spans reports whether g draws a vertical line between qubit and qubit+1.
func spans(g quantum.Gate, qubit int) bool {
	if !g.Kind.Controlled() {
		return false
	}
	return qubit >= min(g.Control, g.Target) && qubit < max(g.Control, g.Target)
}

// visibleSteps returns the first column shown and how many columns fit.
func (m Model) visibleSteps(width int) (start, count int) {
	count = max((width-labelVisualW-4)/cellW, 1)
	if m.cursorStep >= count {
		start = m.cursorStep - count + 1
	}
	return start, count
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the circuit grid. The last column is the empty
// slot after the final gate, so the cursor can sit past it.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Quantum Circuit"))
	sb.WriteString("\n\n")

	start, count := m.visibleSteps(width)
	end := min(start+count, len(m.circuit.Gates)+1)
	if start > 0 {
		fmt.Fprintf(&sb, "  ◀ showing gates %d–%d\n", start, end-1)
	}

	// Step header with cursor marker
	header := strings.Repeat(" ", labelVisualW)
	for step := start; step < end; step++ {
		if step == m.cursorStep {
			header += cursorBoxStyle.Render(padCenter("▼", cellW))
		} else {
			header += dimStyle.Render(padCenter(fmt.Sprintf("%d", step), cellW))
		}
	}
	sb.WriteString(header + "\n")

	for qubit := range m.circuit.NumQubits {
		label := fmt.Sprintf("q[%d]", qubit)
		line := qubitLabelStyle.Render(fmt.Sprintf("%-5s", label)) + "──"
		link := strings.Repeat(" ", labelVisualW)

		for step := start; step < end; step++ {
			if step == len(m.circuit.Gates) {
				if step == m.cursorStep && qubit == m.cursorQubit {
					line += cursorBoxStyle.Render(wire("░"))
				} else {
					line += dimStyle.Render(wire(""))
				}
				continue
			}

			g := m.circuit.Gates[step]
			cell := cellSymbol(g, qubit)
			switch {
			case step == m.cursorStep && qubit == m.cursorQubit:
				line += cursorBoxStyle.Render(cell)
			case m.focus == focusSelectTarget && step == m.cursorStep && qubit == m.targetQubit:
				line += targetSelectStyle.Render(cell)
			case gateReferences(g, qubit):
				line += gateStyle.Render(cell)
			default:
				line += dimStyle.Render(cell)
			}

			if spans(g, qubit) {
				link += gateStyle.Render(padCenter("│", cellW))
			} else {
				link += strings.Repeat(" ", cellW)
			}
		}

		sb.WriteString(line + "\n")
		if qubit < m.circuit.NumQubits-1 {
			sb.WriteString(link + "\n")
		}
	}

	sb.WriteString("\n" + m.statusLine())
	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderQASMPanel renders the QASM editor panel.
func (m Model) renderQASMPanel(width, height int) string {
	var sb strings.Builder

	title := "QASM Editor"
	if m.focus == focusQASM {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.qasmEditor.View())

	return qasmStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel lists the non-zero amplitudes at the cursor with
// probability bars, followed by the per-qubit marginals.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("State after %d gates", m.cursorStep)))
	sb.WriteString("\n")

	if m.simErr != nil {
		sb.WriteString(errorStyle.Render(m.simErr.Error()))
		return stateStyle.Width(width).Height(height).Render(sb.String())
	}

	reg := m.reg
	probs := reg.Probabilities()
	rows := 0
	for i, a := range reg.State() {
		if probs[i] <= m.cfg.Tolerance {
			continue
		}
		if rows == height-3 {
			sb.WriteString(dimStyle.Render("  …") + "\n")
			break
		}
		filled := int(math.Round(probs[i] * barW))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barW-filled)
		ampStyle := positiveAmpStyle
		if a < 0 {
			ampStyle = negativeAmpStyle
		}
		fmt.Fprintf(&sb, "  |%s⟩  %s  %s  %.4f\n",
			basisLabel(i, reg.NumQubits()),
			ampStyle.Render(fmt.Sprintf("%+.4f", a)),
			ampStyle.Render(bar),
			probs[i])
		rows++
	}

	marginals := make([]string, 0, reg.NumQubits())
	for q, p := range reg.QubitProbabilities() {
		marginals = append(marginals, fmt.Sprintf("q[%d] P1=%.3f", q, p.Prob1))
	}
	sb.WriteString(dimStyle.Render("  " + strings.Join(marginals, "  ")))
	sb.WriteString(dimStyle.Render(fmt.Sprintf("  │  ‖ψ‖=%.6f", reg.Norm())))

	return stateStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Navigate: "))
	sb.WriteString("↑↓/jk Move qubit  ←→/hl Step through gates  +/- Qubits")
	sb.WriteString("    ")
	sb.WriteString(activeGateStyle.Render("a"))
	sb.WriteString(" Add gate\n")

	sb.WriteString(activeGateStyle.Render("Actions:  "))
	sb.WriteString("Tab Switch focus  Bksp Delete  ^R Clear  ^S Save  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}
