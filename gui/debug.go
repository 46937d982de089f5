package gui

// DebugState holds global debug flags that persist across game resets
type DebugState struct {
	ShowHitboxes bool // Outline every collision box and print player physics
}

// Global debug state instance (persists across game resets)
var globalDebugState = &DebugState{
	ShowHitboxes: false,
}

// GetDebugState returns the global debug state
func GetDebugState() *DebugState {
	return globalDebugState
}
