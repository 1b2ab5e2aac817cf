package types

import "time"

type MotionCommand int

const (
	MC_Stop MotionCommand = iota
	MC_Forward
	MC_Backward
	MC_TurnLeft
	MC_TurnRight
)

func (c MotionCommand) String() string {
	switch c {
	case MC_Stop:
		return "Stop"
	case MC_Forward:
		return "Forward"
	case MC_Backward:
		return "Backward"
	case MC_TurnLeft:
		return "TurnLeft"
	case MC_TurnRight:
		return "TurnRight"
	default:
		return "Unknown"
	}
}

/*
 * Polarity of one two-terminal motor channel
 */
type MotorPolarity int

const (
	MP_Off MotorPolarity = iota
	MP_Forward
	MP_Reverse
)

/*
 * Logical pressed/unpressed state of the two bump switches.
 * The hardware lines are active low, the driver inverts them.
 */
type ContactState struct {
	LeftPressed  bool
	RightPressed bool
}

type EventType int

const (
	EV_None EventType = iota
	EV_Front
	EV_BumpLeft
	EV_BumpRight
	EV_BumpBoth
)

func (e EventType) String() string {
	switch e {
	case EV_None:
		return "None"
	case EV_Front:
		return "Front"
	case EV_BumpLeft:
		return "BumpLeft"
	case EV_BumpRight:
		return "BumpRight"
	case EV_BumpBoth:
		return "BumpBoth"
	default:
		return "Unknown"
	}
}

/*
 * Distance is only meaningful for EV_Front
 */
type ObstacleEvent struct {
	Type     EventType
	Distance int
}

type TimedStep struct {
	Command  MotionCommand
	Duration time.Duration
}

/*
 * Left/right clearance in centimeters reported by a sweep
 */
type ScanResult struct {
	Left  int
	Right int
}

type Behaviour int

const (
	RB_Cruising Behaviour = iota
	RB_Scanning
	RB_Avoiding
)

func (b Behaviour) String() string {
	switch b {
	case RB_Cruising:
		return "Cruising"
	case RB_Scanning:
		return "Scanning"
	case RB_Avoiding:
		return "Avoiding"
	default:
		return "Unknown"
	}
}

/*
 * Side effects requested by the fsm, performed by vehicle.SetState
 */
type FsmOutput struct {
	SetMotion bool
	Motion    MotionCommand
	SetAlert  bool
	Alert     bool
	StartScan bool
	Steps     []TimedStep
	Behaviour Behaviour
}

type RoverState struct {
	Behaviour Behaviour
	Steps     []TimedStep
	Alert     bool
	Halted    bool
	LastEvent ObstacleEvent
	LastScan  ScanResult
}

type RoverConfig struct {
	RoverID       int
	BroadcastPort int
	CommandPort   int
	Verbose       bool
}
