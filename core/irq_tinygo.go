//go:build tinygo

package core

import "runtime/interrupt"

type irqState = interrupt.State

// irqSave disables interrupts and returns the previous state.
func irqSave() irqState {
	return interrupt.Disable()
}

// irqRestore restores the interrupt state.
func irqRestore(state irqState) {
	interrupt.Restore(state)
}
