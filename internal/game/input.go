package game

import (
	"fmt"
	"time"
)

// ButtonAction is a named input action. The presentation layer maps
// physical buttons onto these; the core never sees raw button indices.
type ButtonAction uint8

const (
	ActionBoost ButtonAction = iota
	ActionRepair
	ActionEventAccept
	ActionEventDecline
)

// ActionResult reports what an input action did. Applied is false when
// the action was not valid in the current context (repair with nothing
// damaged, accept with no event pending, and so on).
type ActionResult struct {
	Applied      bool
	Resolution   Resolution // set for event actions
	RepairedPart string     // set for a successful repair
}

// HandleAction dispatches a named action against the game state,
// synchronously within the current tick. Boost and repair are only
// valid while no event is pending; accept and decline only while one
// is.
func HandleAction(gs *GameState, engine *EventEngine, action ButtonAction, now time.Time) ActionResult {
	switch action {
	case ActionBoost:
		if gs.ActiveEvent != nil {
			return ActionResult{}
		}
		points := gs.BoostPoints
		if !gs.ActivateBoost(now) {
			return ActionResult{}
		}
		gs.Log.Add(fmt.Sprintf("Boost engaged: %ds of doubled speed.", points), MsgInfo)
		return ActionResult{Applied: true}

	case ActionRepair:
		if gs.ActiveEvent != nil {
			return ActionResult{}
		}
		part, ok := gs.ConsumeRepair()
		if !ok {
			return ActionResult{}
		}
		gs.Log.Add(fmt.Sprintf("Repaired %s.", part), MsgInfo)
		return ActionResult{Applied: true, RepairedPart: part}

	case ActionEventAccept, ActionEventDecline:
		if gs.ActiveEvent == nil {
			return ActionResult{}
		}
		title := gs.ActiveEvent.Title
		choice := 0
		if action == ActionEventDecline {
			choice = 1
		}
		res := engine.Resolve(gs, choice)
		if !res.Applied {
			return ActionResult{}
		}
		logResolution(gs.Log, title, res)
		return ActionResult{Applied: true, Resolution: res}
	}
	return ActionResult{}
}

func logResolution(log *MessageLog, title string, res Resolution) {
	if !res.Succeeded {
		log.Add(fmt.Sprintf("%s: no luck this time.", title), MsgWarning)
		return
	}
	text := fmt.Sprintf("%s %s.", title, OutcomeLabel(res.Outcome))
	if res.DarkMatterDelta != 0 {
		text += fmt.Sprintf(" %+.0f dark matter.", res.DarkMatterDelta)
	}
	if res.DistanceDelta != 0 {
		text += fmt.Sprintf(" %+.0f mi.", res.DistanceDelta)
	}
	if res.PartGranted != "" {
		text += fmt.Sprintf(" Spare part: %s.", res.PartGranted)
	}
	log.Add(text, MsgDiscovery)
}
