package responses

import "time"

// OptimalSlot is the suggested booking window. When no gap of the requested
// duration exists the endpoint returns success with a null slot.
type OptimalSlot struct {
	Slot *SlotInterval `json:"slot"`
}

type SlotInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ConflictCheck struct {
	HasConflicts bool               `json:"has_conflicts"`
	Conflicts    []ScheduleConflict `json:"conflicts,omitempty"`
}
