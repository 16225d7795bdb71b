package main

import (
	"fmt"
	"strings"

	"qdense/quantum"
)

// menuItem represents a single gate choice in the palette.
type menuItem struct {
	name   string
	kind   quantum.GateKind
	symbol string
}

// gateMenu is the fixed gate palette.
var gateMenu = []menuItem{
	{name: "Hadamard", kind: quantum.GateH, symbol: "H"},
	{name: "Pauli-X (NOT)", kind: quantum.GateX, symbol: "X"},
	{name: "Pauli-Z", kind: quantum.GateZ, symbol: "Z"},
	{name: "CNOT", kind: quantum.GateCNOT, symbol: "●─⊕"},
}

// renderMenu renders the gate palette shown in place of the controls panel.
func (m Model) renderMenu() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf("Add gate on q[%d]", m.cursorQubit)))
	sb.WriteString("  ")
	for i, item := range gateMenu {
		label := fmt.Sprintf(" %s %s ", item.symbol, item.name)
		if i == m.menuItem {
			sb.WriteString(menuSelectedStyle.Render("▸" + label))
		} else {
			sb.WriteString(menuNormalStyle.Render(" " + label))
		}
	}
	sb.WriteString("\n")
	if gateMenu[m.menuItem].kind.Controlled() {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("q[%d] is the control; pick the target next.  ", m.cursorQubit)))
	}
	sb.WriteString(dimStyle.Render("←→ Select  ⏎ Ok  Esc ✕"))
	return sb.String()
}
