package hardware

import (
	"time"

	"rover/types"

	"github.com/stianeikeland/go-rpio/v4"
)

const ECHO_TIMEOUT = 30 * time.Millisecond

/*
 * Servo PWM: 50 Hz frame divided into pwmCycle counts of 10 us each,
 * so a duty count maps directly onto pulse width.
 */
const (
	pwmCycle     = 2000
	pwmFrequency = 50 * pwmCycle
)

/*
 * RPi drives the rover hardware through the Raspberry Pi GPIO header.
 */
type RPi struct {
	leftA  rpio.Pin
	leftB  rpio.Pin
	rightA rpio.Pin
	rightB rpio.Pin

	servo   rpio.Pin
	trigger rpio.Pin
	echo    rpio.Pin

	bumpLeft  rpio.Pin
	bumpRight rpio.Pin

	led    rpio.Pin
	buzzer rpio.Pin
}

func OpenRPi(pins PinMap) (*RPi, error) {
	if err := rpio.Open(); err != nil {
		return nil, err
	}

	r := &RPi{
		leftA:     rpio.Pin(pins.LeftMotorA),
		leftB:     rpio.Pin(pins.LeftMotorB),
		rightA:    rpio.Pin(pins.RightMotorA),
		rightB:    rpio.Pin(pins.RightMotorB),
		servo:     rpio.Pin(pins.Servo),
		trigger:   rpio.Pin(pins.Trigger),
		echo:      rpio.Pin(pins.Echo),
		bumpLeft:  rpio.Pin(pins.BumpLeft),
		bumpRight: rpio.Pin(pins.BumpRight),
		led:       rpio.Pin(pins.Led),
		buzzer:    rpio.Pin(pins.Buzzer),
	}

	for _, pin := range []rpio.Pin{r.leftA, r.leftB, r.rightA, r.rightB, r.trigger, r.led, r.buzzer} {
		pin.Output()
		pin.Low()
	}

	r.echo.Input()

	/*
	 * Switch lines are active low: pulled up, closed contact
	 * shorts to ground
	 */
	r.bumpLeft.Input()
	r.bumpLeft.PullUp()
	r.bumpRight.Input()
	r.bumpRight.PullUp()

	r.servo.Mode(rpio.Pwm)
	r.servo.Freq(pwmFrequency)
	r.SetAngle(90)

	return r, nil
}

func (r *RPi) Close() {
	r.SetMotors(types.MP_Off, types.MP_Off)
	r.SetAlert(false)
	rpio.Close()
}

/*
 * Single-sample HC-SR04 reading. A missed echo is reported as open
 * space, the classifier never sees an error.
 */
func (r *RPi) RangeCm() int {
	r.trigger.High()
	time.Sleep(10 * time.Microsecond)
	r.trigger.Low()

	launch := time.Now()
	for r.echo.Read() == rpio.Low {
		if time.Since(launch) > ECHO_TIMEOUT {
			return RANGE_MAX_CM
		}
	}

	rise := time.Now()
	for r.echo.Read() == rpio.High {
		if time.Since(rise) > ECHO_TIMEOUT {
			return RANGE_MAX_CM
		}
	}

	// 58 us of echo round trip per centimeter
	distance := int(time.Since(rise).Microseconds() / 58)

	if distance <= 0 || distance > RANGE_MAX_CM {
		return RANGE_MAX_CM
	}

	return distance
}

func (r *RPi) SetAngle(degrees int) {
	if degrees < 0 {
		degrees = 0
	}
	if degrees > 180 {
		degrees = 180
	}

	// 0.5 ms to 2.5 ms pulse across the 180 degree range
	duty := uint32(50 + degrees*200/180)
	r.servo.DutyCycle(duty, pwmCycle)
}

func (r *RPi) Contact() types.ContactState {
	return types.ContactState{
		LeftPressed:  r.bumpLeft.Read() == rpio.Low,
		RightPressed: r.bumpRight.Read() == rpio.Low,
	}
}

func (r *RPi) SetMotors(left types.MotorPolarity, right types.MotorPolarity) {
	setChannel(r.leftA, r.leftB, left)
	setChannel(r.rightA, r.rightB, right)
}

func setChannel(a rpio.Pin, b rpio.Pin, polarity types.MotorPolarity) {
	switch polarity {
	case types.MP_Forward:
		a.High()
		b.Low()

	case types.MP_Reverse:
		a.Low()
		b.High()

	default:
		a.Low()
		b.Low()
	}
}

/*
 * The audible and visual indicators are always driven together
 */
func (r *RPi) SetAlert(on bool) {
	if on {
		r.led.High()
		r.buzzer.High()
	} else {
		r.led.Low()
		r.buzzer.Low()
	}
}
