package hardware

import (
	"sync"

	"rover/types"
)

/*
 * Sim is an in-memory hardware backend so the rover binary and the
 * control-logic tests run off-target. Ranging readings are scripted:
 * each RangeCm call consumes the next scripted value, the final value
 * is sticky. An empty script reads as open space.
 */
type Sim struct {
	mu sync.Mutex

	distances []int
	distance  int
	contact   types.ContactState

	angle  int
	angles []int
	alert  bool
	left   types.MotorPolarity
	right  types.MotorPolarity
}

func NewSim(distances []int) *Sim {
	return &Sim{
		distances: distances,
		distance:  RANGE_MAX_CM,
		angle:     90,
	}
}

func (s *Sim) RangeCm() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.distances) > 0 {
		s.distance = s.distances[0]
		s.distances = s.distances[1:]
	}

	return s.distance
}

func (s *Sim) SetAngle(degrees int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.angle = degrees
	s.angles = append(s.angles, degrees)
}

func (s *Sim) Contact() types.ContactState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.contact
}

func (s *Sim) SetMotors(left types.MotorPolarity, right types.MotorPolarity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.left = left
	s.right = right
}

func (s *Sim) SetAlert(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alert = on
}

/*
 * Script and inspection hooks
 */

func (s *Sim) SetDistance(distance int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.distances = nil
	s.distance = distance
}

func (s *Sim) Press(left bool, right bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contact = types.ContactState{LeftPressed: left, RightPressed: right}
}

func (s *Sim) Angle() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.angle
}

func (s *Sim) Angles() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]int(nil), s.angles...)
}

func (s *Sim) Alert() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.alert
}

func (s *Sim) Motors() (types.MotorPolarity, types.MotorPolarity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.left, s.right
}
