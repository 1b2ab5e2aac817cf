package network

import (
	"fmt"
	"net"
)

const BROADCAST_ADDR = "255.255.255.255"

/*
 * Broadcasts telemetry datagrams on the specified port.
 */
func Broadcast(port int, messages <-chan []byte) {
	conn, err := net.Dial("udp4", fmt.Sprintf("%s:%d", BROADCAST_ADDR, port))

	if err != nil {
		panic(err)
	}
	defer conn.Close()

	for encodedMsg := range messages {
		_, err := conn.Write(encodedMsg)

		if err != nil {
			panic(err)
		}
	}
}
