package fsm

import (
	"rover/types"
	"time"
)

/*
 * Ranging distances at or below this are treated as a blocked front
 */
const FRONT_THRESHOLD = 10 // cm

const (
	BACKUP_SHORT = 200 * time.Millisecond
	BACKUP_LONG  = 500 * time.Millisecond
	TURN_AVOID   = 300 * time.Millisecond
	TURN_TIE     = 100 * time.Millisecond
	TURN_BUMP    = 250 * time.Millisecond
)

/*
 * Front ranging takes priority over bump handling in the same cycle,
 * the contact pair is only examined when the front is clear
 */
func Classify(distance int, contact types.ContactState) types.ObstacleEvent {
	if distance <= FRONT_THRESHOLD {
		return types.ObstacleEvent{Type: types.EV_Front, Distance: distance}
	}

	switch {
	case contact.LeftPressed && contact.RightPressed:
		return types.ObstacleEvent{Type: types.EV_BumpBoth}

	case contact.LeftPressed:
		return types.ObstacleEvent{Type: types.EV_BumpLeft}

	case contact.RightPressed:
		return types.ObstacleEvent{Type: types.EV_BumpRight}

	default:
		return types.ObstacleEvent{Type: types.EV_None}
	}
}

func OnObstacle(event types.ObstacleEvent) types.FsmOutput {
	if event.Type == types.EV_None {
		return types.FsmOutput{
			SetMotion: true,
			Motion:    types.MC_Forward,
			Behaviour: types.RB_Cruising,
		}
	}

	/*
	 * Common prologue: stop and raise the alert before any
	 * scan or corrective sequence
	 */
	output := types.FsmOutput{
		SetMotion: true,
		Motion:    types.MC_Stop,
		SetAlert:  true,
		Alert:     true,
	}

	if event.Type == types.EV_Front {
		output.StartScan = true
		output.Behaviour = types.RB_Scanning
	} else {
		output.Steps = BumpPlan(event.Type)
		output.Behaviour = types.RB_Avoiding
	}

	return output
}

func OnScanComplete(result types.ScanResult) types.FsmOutput {
	return types.FsmOutput{
		Steps:     ChooseTurn(result),
		Behaviour: types.RB_Avoiding,
	}
}

/*
 * Advance the pending avoidance plan by one step. When the plan is
 * drained the alert is dropped and the rover resumes cruising, no
 * avoidance state survives into the next cycle.
 */
func OnStepTimeout(roverState *types.RoverState) types.FsmOutput {
	if len(roverState.Steps) > 1 {
		return types.FsmOutput{
			Steps:     roverState.Steps[1:],
			Behaviour: types.RB_Avoiding,
		}
	}

	return types.FsmOutput{
		SetAlert:  true,
		Alert:     false,
		Behaviour: types.RB_Cruising,
	}
}

/*
 * Turn away from the side with less clearance. On a tie neither side
 * showed an advantage: back up further and default to a short right
 * turn.
 */
func ChooseTurn(result types.ScanResult) []types.TimedStep {
	switch {
	case result.Left > result.Right:
		return []types.TimedStep{
			{Command: types.MC_Backward, Duration: BACKUP_SHORT},
			{Command: types.MC_TurnLeft, Duration: TURN_AVOID},
		}

	case result.Right > result.Left:
		return []types.TimedStep{
			{Command: types.MC_Backward, Duration: BACKUP_SHORT},
			{Command: types.MC_TurnRight, Duration: TURN_AVOID},
		}

	default:
		return []types.TimedStep{
			{Command: types.MC_Backward, Duration: BACKUP_LONG},
			{Command: types.MC_TurnRight, Duration: TURN_TIE},
		}
	}
}

/*
 * Steer away from the side that made contact. Both switches pressed
 * is not a distinct policy: the two per-switch corrections run back
 * to back, left-switch handling first.
 */
func BumpPlan(event types.EventType) []types.TimedStep {
	leftSwitch := []types.TimedStep{
		{Command: types.MC_Backward, Duration: BACKUP_LONG},
		{Command: types.MC_TurnRight, Duration: TURN_BUMP},
	}

	rightSwitch := []types.TimedStep{
		{Command: types.MC_Backward, Duration: BACKUP_LONG},
		{Command: types.MC_TurnLeft, Duration: TURN_BUMP},
	}

	switch event {
	case types.EV_BumpLeft:
		return leftSwitch

	case types.EV_BumpRight:
		return rightSwitch

	case types.EV_BumpBoth:
		return append(leftSwitch, rightSwitch...)

	default:
		return nil
	}
}
