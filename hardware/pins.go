package hardware

import (
	"encoding/json"
	"os"
)

/*
 * PinMap holds the BCM pin assignments for the Raspberry Pi backend.
 * Each motor channel is a two-terminal H-bridge input pair.
 */
type PinMap struct {
	LeftMotorA  int `json:"left_motor_a"`
	LeftMotorB  int `json:"left_motor_b"`
	RightMotorA int `json:"right_motor_a"`
	RightMotorB int `json:"right_motor_b"`
	Servo       int `json:"servo"`
	Trigger     int `json:"trigger"`
	Echo        int `json:"echo"`
	BumpLeft    int `json:"bump_left"`
	BumpRight   int `json:"bump_right"`
	Led         int `json:"led"`
	Buzzer      int `json:"buzzer"`
}

func DefaultPinMap() PinMap {
	return PinMap{
		LeftMotorA:  5,
		LeftMotorB:  6,
		RightMotorA: 13,
		RightMotorB: 19,
		Servo:       18,
		Trigger:     23,
		Echo:        24,
		BumpLeft:    17,
		BumpRight:   27,
		Led:         20,
		Buzzer:      21,
	}
}

func LoadPinMap(path string) (PinMap, error) {
	pins := DefaultPinMap()

	data, err := os.ReadFile(path)
	if err != nil {
		return pins, err
	}

	if err := json.Unmarshal(data, &pins); err != nil {
		return pins, err
	}

	return pins, nil
}
