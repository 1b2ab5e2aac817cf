package fsm

import (
	"reflect"
	"testing"

	"rover/types"
)

func TestClassifyFrontThreshold(t *testing.T) {
	tests := []struct {
		name     string
		distance int
		want     types.EventType
	}{
		{"at_threshold", 10, types.EV_Front},
		{"below_threshold", 1, types.EV_Front},
		{"just_above_threshold", 11, types.EV_None},
		{"far_clear", 50, types.EV_None},
		{"sensor_max", 400, types.EV_None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			event := Classify(tc.distance, types.ContactState{})

			if event.Type != tc.want {
				t.Errorf("Classify(%d, clear) = %s, want %s", tc.distance, event.Type, tc.want)
			}
			if event.Type == types.EV_Front && event.Distance != tc.distance {
				t.Errorf("Front event carries distance %d, want %d", event.Distance, tc.distance)
			}
		})
	}
}

func TestClassifyContactPairs(t *testing.T) {
	tests := []struct {
		name    string
		contact types.ContactState
		want    types.EventType
	}{
		{"none", types.ContactState{}, types.EV_None},
		{"left", types.ContactState{LeftPressed: true}, types.EV_BumpLeft},
		{"right", types.ContactState{RightPressed: true}, types.EV_BumpRight},
		{"both", types.ContactState{LeftPressed: true, RightPressed: true}, types.EV_BumpBoth},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			event := Classify(50, tc.contact)

			if event.Type != tc.want {
				t.Errorf("Classify(50, %+v) = %s, want %s", tc.contact, event.Type, tc.want)
			}
		})
	}
}

/*
 * Front ranging wins over bump state in the same cycle
 */
func TestClassifyFrontPriority(t *testing.T) {
	event := Classify(5, types.ContactState{LeftPressed: true, RightPressed: true})

	if event.Type != types.EV_Front {
		t.Fatalf("Classify(5, both pressed) = %s, want Front", event.Type)
	}
	if event.Distance != 5 {
		t.Errorf("Front event carries distance %d, want 5", event.Distance)
	}
}

func TestChooseTurn(t *testing.T) {
	tests := []struct {
		name   string
		result types.ScanResult
		want   []types.TimedStep
	}{
		{
			"more_space_left",
			types.ScanResult{Left: 30, Right: 10},
			[]types.TimedStep{
				{Command: types.MC_Backward, Duration: BACKUP_SHORT},
				{Command: types.MC_TurnLeft, Duration: TURN_AVOID},
			},
		},
		{
			"more_space_right",
			types.ScanResult{Left: 10, Right: 30},
			[]types.TimedStep{
				{Command: types.MC_Backward, Duration: BACKUP_SHORT},
				{Command: types.MC_TurnRight, Duration: TURN_AVOID},
			},
		},
		{
			"tie_backs_up_further_and_turns_right",
			types.ScanResult{Left: 20, Right: 20},
			[]types.TimedStep{
				{Command: types.MC_Backward, Duration: BACKUP_LONG},
				{Command: types.MC_TurnRight, Duration: TURN_TIE},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			steps := ChooseTurn(tc.result)

			if !reflect.DeepEqual(steps, tc.want) {
				t.Errorf("ChooseTurn(%+v) = %v, want %v", tc.result, steps, tc.want)
			}
		})
	}
}

/*
 * Mirrored scan results must select mirrored turns
 */
func TestChooseTurnAntisymmetric(t *testing.T) {
	left := ChooseTurn(types.ScanResult{Left: 30, Right: 10})
	right := ChooseTurn(types.ScanResult{Left: 10, Right: 30})

	if left[1].Command != types.MC_TurnLeft || right[1].Command != types.MC_TurnRight {
		t.Errorf("turns not mirrored: %s vs %s", left[1].Command, right[1].Command)
	}
	if left[0] != right[0] {
		t.Errorf("backup steps differ: %v vs %v", left[0], right[0])
	}
	if left[1].Duration != right[1].Duration {
		t.Errorf("turn durations differ: %v vs %v", left[1].Duration, right[1].Duration)
	}
}

func TestBumpPlan(t *testing.T) {
	leftSwitch := []types.TimedStep{
		{Command: types.MC_Backward, Duration: BACKUP_LONG},
		{Command: types.MC_TurnRight, Duration: TURN_BUMP},
	}
	rightSwitch := []types.TimedStep{
		{Command: types.MC_Backward, Duration: BACKUP_LONG},
		{Command: types.MC_TurnLeft, Duration: TURN_BUMP},
	}

	tests := []struct {
		name  string
		event types.EventType
		want  []types.TimedStep
	}{
		{"left_steers_right", types.EV_BumpLeft, leftSwitch},
		{"right_steers_left", types.EV_BumpRight, rightSwitch},
		{"both_runs_left_then_right", types.EV_BumpBoth, append(append([]types.TimedStep{}, leftSwitch...), rightSwitch...)},
		{"none", types.EV_None, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			steps := BumpPlan(tc.event)

			if !reflect.DeepEqual(steps, tc.want) {
				t.Errorf("BumpPlan(%s) = %v, want %v", tc.event, steps, tc.want)
			}
		})
	}
}

func TestOnObstacle(t *testing.T) {
	t.Run("none_keeps_cruising_forward", func(t *testing.T) {
		output := OnObstacle(types.ObstacleEvent{Type: types.EV_None})

		if !output.SetMotion || output.Motion != types.MC_Forward {
			t.Errorf("want Forward, got %+v", output)
		}
		if output.Behaviour != types.RB_Cruising || output.SetAlert || output.StartScan || output.Steps != nil {
			t.Errorf("unexpected side effects on clear cycle: %+v", output)
		}
	})

	t.Run("front_stops_alerts_and_scans", func(t *testing.T) {
		output := OnObstacle(types.ObstacleEvent{Type: types.EV_Front, Distance: 8})

		if !output.SetMotion || output.Motion != types.MC_Stop {
			t.Errorf("want Stop before scanning, got %+v", output)
		}
		if !output.SetAlert || !output.Alert {
			t.Error("alert not raised on front block")
		}
		if !output.StartScan || output.Behaviour != types.RB_Scanning {
			t.Errorf("want scan in behaviour Scanning, got %+v", output)
		}
		if output.Steps != nil {
			t.Error("front block must not install steps before the scan result")
		}
	})

	t.Run("bump_stops_alerts_and_installs_plan", func(t *testing.T) {
		output := OnObstacle(types.ObstacleEvent{Type: types.EV_BumpLeft})

		if !output.SetMotion || output.Motion != types.MC_Stop {
			t.Errorf("want Stop before backing up, got %+v", output)
		}
		if !output.SetAlert || !output.Alert {
			t.Error("alert not raised on bump")
		}
		if output.StartScan {
			t.Error("bump handling must not scan")
		}
		if output.Behaviour != types.RB_Avoiding || !reflect.DeepEqual(output.Steps, BumpPlan(types.EV_BumpLeft)) {
			t.Errorf("want bump plan in behaviour Avoiding, got %+v", output)
		}
	})
}

func TestOnScanComplete(t *testing.T) {
	result := types.ScanResult{Left: 30, Right: 10}
	output := OnScanComplete(result)

	if output.Behaviour != types.RB_Avoiding {
		t.Errorf("behaviour = %s, want Avoiding", output.Behaviour)
	}
	if !reflect.DeepEqual(output.Steps, ChooseTurn(result)) {
		t.Errorf("steps = %v, want %v", output.Steps, ChooseTurn(result))
	}
}

func TestOnStepTimeout(t *testing.T) {
	t.Run("advances_to_next_step", func(t *testing.T) {
		roverState := &types.RoverState{
			Behaviour: types.RB_Avoiding,
			Steps: []types.TimedStep{
				{Command: types.MC_Backward, Duration: BACKUP_SHORT},
				{Command: types.MC_TurnLeft, Duration: TURN_AVOID},
			},
		}

		output := OnStepTimeout(roverState)

		if output.Behaviour != types.RB_Avoiding {
			t.Errorf("behaviour = %s, want Avoiding", output.Behaviour)
		}
		if len(output.Steps) != 1 || output.Steps[0].Command != types.MC_TurnLeft {
			t.Errorf("steps = %v, want remaining turn", output.Steps)
		}
	})

	t.Run("drained_plan_drops_alert_and_resumes_cruising", func(t *testing.T) {
		roverState := &types.RoverState{
			Behaviour: types.RB_Avoiding,
			Steps:     []types.TimedStep{{Command: types.MC_TurnLeft, Duration: TURN_AVOID}},
			Alert:     true,
		}

		output := OnStepTimeout(roverState)

		if output.Behaviour != types.RB_Cruising {
			t.Errorf("behaviour = %s, want Cruising", output.Behaviour)
		}
		if !output.SetAlert || output.Alert {
			t.Errorf("alert not dropped: %+v", output)
		}
		if len(output.Steps) != 0 {
			t.Errorf("steps not drained: %v", output.Steps)
		}
	})
}
