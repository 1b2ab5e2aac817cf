package hardware

import "rover/types"

/*
 * Reported when no reliable echo returns within the listen window.
 * Deliberately far above the front threshold so a dropped echo reads
 * as open space rather than a blocked front.
 */
const RANGE_MAX_CM = 400

/*
 * Interface is the physical I/O boundary of the rover. It is owned by
 * main and passed into the components that need it, never held as
 * package state, so the control logic runs against a fake in tests.
 */
type Interface interface {
	RangeCm() int
	SetAngle(degrees int)
	Contact() types.ContactState
	SetMotors(left types.MotorPolarity, right types.MotorPolarity)
	SetAlert(on bool)
}
