package network

import (
	"fmt"

	"github.com/libp2p/go-reuseport"
)

const BUFFER_SIZE = 1024

/*
 * Listen for remote command messages on the specified port.
 */
func ListenForCommands(port int, commandChannel chan<- []byte) {
	conn, err := reuseport.ListenPacket("udp4", fmt.Sprintf(":%d", port))

	if err != nil {
		panic(err)
	}
	defer conn.Close()

	buffer := make([]byte, BUFFER_SIZE)

	for {
		n, _, err := conn.ReadFrom(buffer)

		if err != nil {
			continue
		}

		commandChannel <- append([]byte(nil), buffer[:n]...)
	}
}
