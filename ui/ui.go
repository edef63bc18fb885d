// Package ui is a small desktop companion for capturing and uploading
// calibration tables.
package ui

import (
	"context"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"servocal"
	"servocal/calhub"
	"servocal/monitor"
)

type CalibratorUI struct {
	table servocal.Table
}

func NewCalibratorUI() *CalibratorUI {
	return &CalibratorUI{}
}

func (u *CalibratorUI) Run() {
	application := app.New()
	window := application.NewWindow("Servo Calibration")
	window.Resize(fyne.NewSize(400, 400))

	ports, err := monitor.GetSerialPorts()
	if err != nil {
		ports = nil
	}
	ports = append(ports, monitor.PortNone)

	portSelect := widget.NewSelect(ports, nil)
	portSelect.SetSelected(ports[0])

	baudRate := strconv.Itoa(servocal.DefaultBaudRate)
	baudEntry := widget.NewEntry()
	baudEntry.Bind(binding.BindString(&baudRate))

	hubAddr := ""
	hubEntry := widget.NewEntry()
	hubEntry.Bind(binding.BindString(&hubAddr))

	name := ""
	nameEntry := widget.NewEntry()
	nameEntry.Bind(binding.BindString(&name))

	tableLabel := widget.NewLabel("No capture yet.\nHold both bound buttons on the device to export.")
	tableScroll := container.NewVScroll(tableLabel)
	tableScroll.SetMinSize(fyne.NewSize(300, 150))

	uploadButton := widget.NewButton("Upload", func() {
		if len(u.table) == 0 || hubAddr == "" {
			dialog.ShowInformation("Upload", "Capture a table and set a hub address first.", window)
			return
		}

		go func() {
			client := calhub.NewClient(hubAddr)
			id, err := client.Upload(context.Background(), servocal.Calibration{
				Name:       name,
				CapturedAt: time.Now(),
				Servos:     u.table,
			})
			fyne.Do(func() {
				if err != nil {
					dialog.ShowError(err, window)
					return
				}
				dialog.ShowInformation("Upload", "Uploaded as "+id, window)
			})
		}()
	})
	uploadButton.Disable()

	var captureButton *widget.Button
	captureButton = widget.NewButton("Capture", func() {
		port := portSelect.Selected
		if port == monitor.PortNone {
			dialog.ShowInformation("Capture", "Select a serial port first.", window)
			return
		}

		baud, err := strconv.Atoi(baudRate)
		if err != nil {
			dialog.ShowError(err, window)
			return
		}

		captureButton.Disable()
		tableLabel.SetText("Waiting for export...")

		go func() {
			table, err := capture(port, baud)
			fyne.Do(func() {
				captureButton.Enable()
				if err != nil {
					dialog.ShowError(err, window)
					tableLabel.SetText("Capture failed.")
					return
				}
				u.table = table
				tableLabel.SetText(table.String())
				uploadButton.Enable()
			})
		}()
	})

	form := container.NewVBox(
		widget.NewCard("Device", "", container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Serial Port:"),
				portSelect,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Baud Rate:"),
				baudEntry,
			),
			captureButton,
		)),
		widget.NewCard("Hub", "", container.NewVBox(
			container.NewGridWithColumns(2,
				widget.NewLabel("Hub Address:"),
				hubEntry,
			),
			container.NewGridWithColumns(2,
				widget.NewLabel("Name:"),
				nameEntry,
			),
			uploadButton,
		)),
		tableScroll,
	)

	window.SetContent(form)
	window.ShowAndRun()
}

func capture(portName string, baud int) (servocal.Table, error) {
	port, err := monitor.Open(monitor.Config{Port: portName, BaudRate: baud})
	if err != nil {
		return nil, err
	}
	defer port.Close()

	return monitor.Capture(port)
}
