package vehicle

import (
	"fmt"

	"rover/fsm"
	"rover/hardware"
	"rover/network"
	"rover/timer"
	"rover/types"
)

type MotionActuator interface {
	Apply(command types.MotionCommand)
}

type Scanner interface {
	Scan() types.ScanResult
}

/*
 * Controller owns one control cycle: sample, classify, dispatch.
 * Sensors and remote commands are consumed only at cycle boundaries;
 * once an avoidance plan is installed it runs to completion.
 */
type Controller struct {
	config    *types.RoverConfig
	state     *types.RoverState
	hw        hardware.Interface
	motion    MotionActuator
	scanner   Scanner
	stepTimer *timer.StepTimer
	telemetry chan<- []byte
}

func NewController(
	config *types.RoverConfig,
	hw hardware.Interface,
	motion MotionActuator,
	scanner Scanner,
	stepTimer *timer.StepTimer,
	telemetry chan<- []byte,
) *Controller {

	return &Controller{
		config:    config,
		state:     &types.RoverState{Behaviour: types.RB_Cruising},
		hw:        hw,
		motion:    motion,
		scanner:   scanner,
		stepTimer: stepTimer,
		telemetry: telemetry,
	}
}

func (c *Controller) State() types.RoverState {
	return *c.state
}

/*
 * Tick advances the control loop by one iteration. While avoiding,
 * the only work is checking the current step deadline: new obstacles
 * and contacts are invisible until the plan drains.
 */
func (c *Controller) Tick() {
	switch c.state.Behaviour {
	case types.RB_Avoiding:
		if c.stepTimer.TimedOut() {
			output := fsm.OnStepTimeout(c.state)
			c.SetState(output)
		}

	case types.RB_Cruising:
		if c.state.Halted {
			c.motion.Apply(types.MC_Stop)
			return
		}

		distance := c.hw.RangeCm()
		contact := c.hw.Contact()

		event := fsm.Classify(distance, contact)
		c.state.LastEvent = event

		output := fsm.OnObstacle(event)
		c.SetState(output)

		if event.Type != types.EV_None {
			c.publish(network.FormatStatusMsg(types.Status{
				Behaviour: c.state.Behaviour,
				Event:     event.Type,
				Distance:  distance,
				Command:   output.Motion,
			}, c.config.RoverID))

			if c.config.Verbose {
				fmt.Printf("event=%s distance=%dcm behaviour=%s\n",
					event.Type, distance, c.state.Behaviour)
			}
		}

		if output.StartScan {
			result := c.scanner.Scan()
			c.state.LastScan = result

			scanOutput := fsm.OnScanComplete(result)

			chosen := types.MC_Stop
			if len(scanOutput.Steps) > 0 {
				chosen = scanOutput.Steps[len(scanOutput.Steps)-1].Command
			}
			c.publish(network.FormatScanMsg(types.Scan{
				Left:   result.Left,
				Right:  result.Right,
				Chosen: chosen,
			}, c.config.RoverID))

			c.SetState(scanOutput)
		}
	}
}

/*
 * Takes in output from fsm and performs the requested side effects.
 * Installing a non-empty plan applies its first step and arms the
 * step deadline, everything else tears the plan down.
 */
func (c *Controller) SetState(output types.FsmOutput) {
	if output.SetMotion {
		c.motion.Apply(output.Motion)
	}

	if output.SetAlert {
		c.hw.SetAlert(output.Alert)
		c.state.Alert = output.Alert
	}

	c.state.Behaviour = output.Behaviour

	if len(output.Steps) > 0 {
		c.state.Steps = output.Steps

		step := output.Steps[0]
		c.motion.Apply(step.Command)
		c.stepTimer.Start(step.Duration)
	} else if output.Behaviour != types.RB_Avoiding {
		c.state.Steps = nil
		c.stepTimer.Stop()
	}
}

/*
 * Remote halt/resume. The flag is honored between cycles only: a
 * running avoidance plan still completes before the rover parks.
 */
func (c *Controller) Halt() {
	c.state.Halted = true
}

func (c *Controller) Resume() {
	c.state.Halted = false
}

/*
 * Telemetry must never block the control loop, drop when full
 */
func (c *Controller) publish(encodedMsg []byte) {
	if c.telemetry == nil {
		return
	}

	select {
	case c.telemetry <- encodedMsg:
	default:
	}
}
