package scanner

import (
	"time"

	"rover/hardware"
	"rover/types"
)

const (
	SERVO_LEFT   = 0
	SERVO_CENTER = 90
	SERVO_RIGHT  = 180

	STEP_DELAY    = 5 * time.Millisecond
	SETTLE_HOLD   = 50 * time.Millisecond
	CENTER_TRAVEL = 350 * time.Millisecond
)

/*
 * Scanner sweeps the ranging sensor across the servo mount to sample
 * left and right clearance. A scan is synchronous and uninterruptible:
 * no obstacle polling happens until it returns, and the mount is
 * guaranteed to be back at center before it does.
 */
type Scanner struct {
	hw    hardware.Interface
	sleep func(time.Duration)
}

func New(hw hardware.Interface) *Scanner {
	return &Scanner{hw: hw, sleep: time.Sleep}
}

func (s *Scanner) Scan() types.ScanResult {
	/*
	 * Sweep to the right extreme one degree at a time so the servo
	 * and echo mechanics settle, then sample while aimed right
	 */
	for angle := SERVO_LEFT; angle <= SERVO_RIGHT; angle++ {
		s.hw.SetAngle(angle)
		s.sleep(STEP_DELAY)
	}
	right := s.hw.RangeCm()
	s.sleep(SETTLE_HOLD)

	/*
	 * Sweep back and sample while aimed left
	 */
	for angle := SERVO_RIGHT; angle >= SERVO_LEFT; angle-- {
		s.hw.SetAngle(angle)
		s.sleep(STEP_DELAY)
	}
	left := s.hw.RangeCm()
	s.sleep(SETTLE_HOLD)

	/*
	 * Re-center and wait out the travel before reporting, so forward
	 * motion never resumes with the sensor aimed sideways
	 */
	s.hw.SetAngle(SERVO_CENTER)
	s.sleep(CENTER_TRAVEL)

	return types.ScanResult{Left: left, Right: right}
}
