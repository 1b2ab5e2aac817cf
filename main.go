package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"rover/hardware"
	"rover/motion"
	"rover/network"
	"rover/scanner"
	"rover/timer"
	"rover/types"
	"rover/vehicle"
)

const STARTUP_SETTLE = 1500 * time.Millisecond
const TELEMETRY_BUFFER = 16

/*
 * Parse command line arguments
 */
func parseCommandlineFlags() (int, int, int, string, bool, bool) {
	roverID := flag.Int("id", -1, "Rover id (0-9)")
	broadcastPort := flag.Int("bport", -1, "Telemetry broadcast port")
	commandPort := flag.Int("cport", -1, "Remote command port")
	pinPath := flag.String("pins", "", "Path to JSON pin map (Raspberry Pi backend)")
	useSim := flag.Bool("sim", false, "Use the simulated hardware backend")
	verbose := flag.Bool("v", false, "Log every obstacle event")

	flag.Parse()

	if *roverID < 0 || *roverID > 9 || *broadcastPort < 0 || *commandPort < 0 {
		fmt.Println("Missing flags, use flag -h to see usage")
		os.Exit(1)
	}

	return *roverID, *broadcastPort, *commandPort, *pinPath, *useSim, *verbose
}

func main() {
	roverID, broadcastPort, commandPort, pinPath, useSim, verbose := parseCommandlineFlags()

	roverConfig := &types.RoverConfig{
		RoverID:       roverID,
		BroadcastPort: broadcastPort,
		CommandPort:   commandPort,
		Verbose:       verbose,
	}

	/*
	 * Initiate rover hardware
	 */
	var hw hardware.Interface

	if useSim {
		hw = hardware.NewSim(nil)
	} else {
		pins := hardware.DefaultPinMap()

		if pinPath != "" {
			loaded, err := hardware.LoadPinMap(pinPath)

			if err != nil {
				panic(err)
			}
			pins = loaded
		}

		rpi, err := hardware.OpenRPi(pins)

		if err != nil {
			panic(err)
		}
		defer rpi.Close()

		hw = rpi
	}

	/*
	 * Start telemetry broadcasting and remote command listening
	 */
	telemetry := make(chan []byte, TELEMETRY_BUFFER)
	go network.Broadcast(roverConfig.BroadcastPort, telemetry)

	commandChannel := make(chan []byte)
	go network.ListenForCommands(roverConfig.CommandPort, commandChannel)

	controller := vehicle.NewController(
		roverConfig,
		hw,
		motion.New(hw),
		scanner.New(hw),
		timer.New(nil),
		telemetry,
	)

	/*
	 * Let the servo and sensor electronics settle before the
	 * first cycle
	 */
	hw.SetAngle(scanner.SERVO_CENTER)
	time.Sleep(STARTUP_SETTLE)

	/*
	 * Main for/select
	 */
	for {
		select {
		/*
		 * Handle remote commands
		 */
		case encodedMsg := <-commandChannel:
			header, err := network.GetMsgHeader(encodedMsg)

			/*
			 * Discard message if we cannot parse the header
			 */
			if err != nil {
				continue
			}

			switch header.Type {
			case types.HALT:
				controller.Halt()

			case types.RESUME:
				controller.Resume()
			}

		/*
		 * Advance the control loop
		 */
		default:
			controller.Tick()
		}
	}
}
