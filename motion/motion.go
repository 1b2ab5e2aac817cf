package motion

import (
	"rover/hardware"
	"rover/types"
)

/*
 * Actuator maps the five discrete motion commands onto the two motor
 * channels. Applying a command replaces the previous drive state
 * immediately, there is no ramping and no blended state.
 */
type Actuator struct {
	hw hardware.Interface
}

func New(hw hardware.Interface) *Actuator {
	return &Actuator{hw: hw}
}

func (a *Actuator) Apply(command types.MotionCommand) {
	left, right := Polarities(command)
	a.hw.SetMotors(left, right)
}

/*
 * Differential drive: Forward and Backward drive both channels in the
 * same sense, the turns drive them in opposite senses from each other.
 * The motors are mounted mirrored, which is why Forward is the reverse
 * polarity on both.
 */
func Polarities(command types.MotionCommand) (left types.MotorPolarity, right types.MotorPolarity) {
	switch command {
	case types.MC_Forward:
		return types.MP_Reverse, types.MP_Reverse

	case types.MC_Backward:
		return types.MP_Forward, types.MP_Forward

	case types.MC_TurnLeft:
		return types.MP_Reverse, types.MP_Forward

	case types.MC_TurnRight:
		return types.MP_Forward, types.MP_Reverse

	default:
		return types.MP_Off, types.MP_Off
	}
}
