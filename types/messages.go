package types

import (
	"bytes"
	"encoding/json"
)

type MsgTypes int

const (
	STATUS MsgTypes = iota
	SCAN
	HALT
	RESUME
)

/*
 * Telemetry snapshot emitted once per avoidance episode
 */
type Status struct {
	Behaviour Behaviour
	Event     EventType
	Distance  int
	Command   MotionCommand
}

/*
 * Result of a clearance sweep and the turn it selected
 */
type Scan struct {
	Left   int
	Right  int
	Chosen MotionCommand
}

type Halt struct{}

type Resume struct{}

/*
 * Header must have a fixed size
 * -> RoverID must be between 0 and 9
 */
type Header struct {
	Type    MsgTypes
	RoverID int
}

type Content interface {
	Status | Scan | Halt | Resume
}

type Msg[T Content] struct {
	Header  Header
	Content T
}

/*
 * Parses message header and content to json separately in
 * order to retrieve content type from header upon msg receival
 */
func (msg Msg[T]) ToJson() []byte {
	encodedContent, err := json.Marshal(msg.Content)

	if err != nil {
		panic(err)
	}

	encodedHeader, err := json.Marshal(msg.Header)

	if err != nil {
		panic(err)
	}

	separator := []byte("")

	return bytes.Join([][]byte{encodedHeader, encodedContent}, separator)
}
