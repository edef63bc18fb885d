package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"servocal"
	"servocal/calhub"
	"servocal/monitor"
	"servocal/ui"
)

func main() {
	var portName, hubAddr, name, outFile string
	var baud int
	flag.StringVar(&portName, "port", "", "Serial port of the calibrator. Default is the first USB serial port")
	flag.IntVar(&baud, "baud", servocal.DefaultBaudRate, "Serial baud rate")
	flag.StringVar(&hubAddr, "hub", "", "Calibration hub address to upload the captured table to")
	flag.StringVar(&name, "name", "", "Name for the uploaded calibration")
	flag.StringVar(&outFile, "out", "", "File to save the captured table to as CSV")
	flag.Parse()

	if os.Getenv("ENABLE_UI") == "true" {
		ui.NewCalibratorUI().Run()
		return
	}

	runCLI(portName, baud, hubAddr, name, outFile)
}

func runCLI(portName string, baud int, hubAddr, name, outFile string) {
	if portName == "" {
		ports, err := monitor.GetSerialPorts()
		if err != nil {
			panic(err)
		}
		portName = ports[0]
	}

	port, err := monitor.Open(monitor.Config{Port: portName, BaudRate: baud})
	if err != nil {
		panic(err)
	}
	defer port.Close()

	fmt.Fprintln(os.Stderr, "Waiting for export on", portName, "(hold both bound buttons on the device)...")

	table, err := monitor.Capture(port)
	if err != nil {
		panic(err)
	}

	fmt.Print(table.String())

	if outFile != "" {
		err = os.WriteFile(outFile, []byte(table.String()), 0o644)
		if err != nil {
			panic(err)
		}
	}

	if hubAddr != "" {
		if name == "" {
			name = "capture-" + time.Now().Format("2006-01-02T15:04:05")
		}

		client := calhub.NewClient(hubAddr)
		id, err := client.Upload(context.Background(), servocal.Calibration{
			Name:       name,
			CapturedAt: time.Now(),
			Servos:     table,
		})
		if err != nil {
			panic(err)
		}
		fmt.Fprintln(os.Stderr, "Uploaded as", id)
	}
}
