package serialio

import (
	"context"
	"fmt"

	"go.bug.st/serial"
)

// Device opens real serial ports through the OS.
type Device struct{}

// NewDevice creates the device backend.
func NewDevice() *Device {
	return &Device{}
}

// Name returns "device".
func (d *Device) Name() string {
	return "device"
}

// List returns the serial ports known to the OS.
func (d *Device) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("list serial ports: %w", err)
	}
	return ports, nil
}

// Open opens the port described by settings. Hardware and software flow
// control are not supported by this backend.
func (d *Device) Open(ctx context.Context, settings Settings) (Port, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if settings.FlowControl != FlowNone {
		return nil, fmt.Errorf("%s flow control is not supported by the device backend", settings.FlowControl)
	}

	mode := &serial.Mode{
		BaudRate: settings.BaudRate,
		DataBits: settings.DataBits,
		Parity:   toParity(settings.Parity),
		StopBits: toStopBits(settings.StopBits),
	}
	port, err := serial.Open(settings.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", settings.Port, err)
	}
	return port, nil
}

func toParity(p Parity) serial.Parity {
	switch p {
	case ParityEven:
		return serial.EvenParity
	case ParityOdd:
		return serial.OddParity
	default:
		return serial.NoParity
	}
}

func toStopBits(n int) serial.StopBits {
	if n == 2 {
		return serial.TwoStopBits
	}
	return serial.OneStopBit
}
