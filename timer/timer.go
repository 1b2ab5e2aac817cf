package timer

import "time"

/*
 * StepTimer is a single software timer polled by the control loop.
 * The time source is injected so deadlines can be simulated in tests.
 */
type StepTimer struct {
	now      func() time.Time
	deadline time.Time
	active   bool
}

func New(now func() time.Time) *StepTimer {
	if now == nil {
		now = time.Now
	}

	return &StepTimer{now: now}
}

func (t *StepTimer) Start(duration time.Duration) {
	t.deadline = t.now().Add(duration)
	t.active = true
}

func (t *StepTimer) Stop() {
	t.active = false
}

/*
 * TimedOut reports whether an armed deadline has passed. A stopped
 * timer never times out.
 */
func (t *StepTimer) TimedOut() bool {
	return t.active && !t.now().Before(t.deadline)
}

func (t *StepTimer) Active() bool {
	return t.active
}
