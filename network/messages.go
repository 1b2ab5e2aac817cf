package network

import (
	"encoding/json"
	"errors"

	"rover/types"
)

const SIZE_OF_HEADER = 22

func GetMsgHeader(encodedMsg []byte) (*types.Header, error) {
	if len(encodedMsg) < SIZE_OF_HEADER {
		return nil, errors.New("message shorter than header")
	}

	var header types.Header

	encodedHeader := encodedMsg[:SIZE_OF_HEADER]

	err := json.Unmarshal(encodedHeader, &header)

	if err != nil {
		return nil, err
	}

	return &header, nil
}

func GetMsgContent[T types.Content](encodedMsg []byte) (*T, error) {
	if len(encodedMsg) < SIZE_OF_HEADER {
		return nil, errors.New("message shorter than header")
	}

	var content T

	encodedContent := encodedMsg[SIZE_OF_HEADER:]

	err := json.Unmarshal(encodedContent, &content)

	if err != nil {
		return nil, err
	}

	return &content, nil
}

func FormatStatusMsg(status types.Status, roverID int) []byte {
	msg := types.Msg[types.Status]{
		Header: types.Header{
			Type:    types.STATUS,
			RoverID: roverID,
		},
		Content: status,
	}

	return msg.ToJson()
}

func FormatScanMsg(scan types.Scan, roverID int) []byte {
	msg := types.Msg[types.Scan]{
		Header: types.Header{
			Type:    types.SCAN,
			RoverID: roverID,
		},
		Content: scan,
	}

	return msg.ToJson()
}

func FormatHaltMsg(roverID int) []byte {
	msg := types.Msg[types.Halt]{
		Header: types.Header{
			Type:    types.HALT,
			RoverID: roverID,
		},
	}

	return msg.ToJson()
}

func FormatResumeMsg(roverID int) []byte {
	msg := types.Msg[types.Resume]{
		Header: types.Header{
			Type:    types.RESUME,
			RoverID: roverID,
		},
	}

	return msg.ToJson()
}
