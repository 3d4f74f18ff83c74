package services

import (
	"fmt"

	"tribunal_app_go/models"
)

// LifecycleEvent is a real-world occurrence that can move an appeal through
// its workflow without a direct staff edit of status or stage.
type LifecycleEvent string

const (
	EventMediationScheduled LifecycleEvent = "MEDIATION_SCHEDULED"
	EventHearingScheduled   LifecycleEvent = "HEARING_SCHEDULED"
	EventOrderRecorded      LifecycleEvent = "ORDER_RECORDED"
)

// stageTransitions is the full ruleset for event-driven stage changes:
// current stage -> next stage, per event. A stage absent from an event's map
// is left untouched by that event. Keeping the rules in one table means the
// workflow ordering (1 -> 2a -> 4 -> 5) can be read and tested in one place
// instead of being re-derived from each handler.
var stageTransitions = map[LifecycleEvent]map[string]string{
	// Scheduling a mediation moves a freshly received appeal into the
	// mediation stage. Appeals further along are not pulled back.
	EventMediationScheduled: {
		models.Stage1: models.Stage2a,
	},
	// Scheduling an oral hearing advances every pre-hearing stage to the
	// hearing-scheduling stage. Stage 5 (hearing held) never regresses.
	EventHearingScheduled: {
		models.Stage1:  models.Stage4,
		models.Stage2a: models.Stage4,
		models.Stage2b: models.Stage4,
		models.Stage2c: models.Stage4,
		models.Stage3:  models.Stage4,
	},
}

// statusTransitions maps events to the status they force, regardless of the
// current status.
var statusTransitions = map[LifecycleEvent]string{
	EventOrderRecorded: models.StatusOrderIssued,
}

// NextStage returns the stage an event forces from the current stage, and
// whether a transition applies at all.
func NextStage(event LifecycleEvent, current string) (string, bool) {
	rules, ok := stageTransitions[event]
	if !ok {
		return "", false
	}
	next, ok := rules[current]
	if !ok || next == current {
		return "", false
	}
	return next, true
}

// NextStatus returns the status an event forces, and whether the change is
// needed given the current status.
func NextStatus(event LifecycleEvent, current string) (string, bool) {
	next, ok := statusTransitions[event]
	if !ok || next == current {
		return "", false
	}
	return next, true
}

// TransitionString formats a transition for audit details as "old → new",
// or nil when no transition occurred.
func TransitionString(old, new string) *string {
	if old == new {
		return nil
	}
	s := fmt.Sprintf("%s → %s", old, new)
	return &s
}
