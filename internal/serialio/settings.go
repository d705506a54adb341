package serialio

import (
	"fmt"
	"strings"
)

// Parity is the parity bit scheme for a serial frame.
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

// String returns the single-letter form used in settings summaries.
func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "E"
	case ParityOdd:
		return "O"
	default:
		return "N"
	}
}

// Label returns the full name shown in the settings panel.
func (p Parity) Label() string {
	switch p {
	case ParityEven:
		return "Even"
	case ParityOdd:
		return "Odd"
	default:
		return "None"
	}
}

// ParseParity maps a config string to a Parity. Empty means none.
func ParseParity(s string) (Parity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "n":
		return ParityNone, nil
	case "even", "e":
		return ParityEven, nil
	case "odd", "o":
		return ParityOdd, nil
	}
	return ParityNone, fmt.Errorf("unknown parity %q", s)
}

// FlowControl is the flow control scheme for a serial connection.
type FlowControl int

const (
	FlowNone FlowControl = iota
	FlowHardware
	FlowSoftware
)

// String returns the name shown in the settings panel.
func (f FlowControl) String() string {
	switch f {
	case FlowHardware:
		return "Hardware"
	case FlowSoftware:
		return "Software"
	default:
		return "None"
	}
}

// ParseFlowControl maps a config string to a FlowControl. Empty means none.
func ParseFlowControl(s string) (FlowControl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FlowNone, nil
	case "hardware", "rts/cts", "rtscts":
		return FlowHardware, nil
	case "software", "xon/xoff", "xonxoff":
		return FlowSoftware, nil
	}
	return FlowNone, fmt.Errorf("unknown flow control %q", s)
}

// Option lists cycled by the settings panel, in display order.
var (
	BaudRates          = []int{300, 1200, 2400, 4800, 9600, 19200, 38400, 57600, 115200, 230400}
	DataBitsOptions    = []int{5, 6, 7, 8}
	StopBitsOptions    = []int{1, 2}
	ParityOptions      = []Parity{ParityNone, ParityEven, ParityOdd}
	FlowControlOptions = []FlowControl{FlowNone, FlowHardware, FlowSoftware}
)

// Settings describes how to open a serial port.
type Settings struct {
	Port        string      `yaml:"port"`
	BaudRate    int         `yaml:"baud_rate"`
	DataBits    int         `yaml:"data_bits"`
	Parity      Parity      `yaml:"parity"`
	StopBits    int         `yaml:"stop_bits"`
	FlowControl FlowControl `yaml:"flow_control"`
}

// DefaultSettings returns the 9600-8-N-1 baseline with no flow control.
func DefaultSettings() Settings {
	return Settings{
		BaudRate: 9600,
		DataBits: 8,
		Parity:   ParityNone,
		StopBits: 1,
	}
}

// Validate checks that the settings describe an openable port.
func (s Settings) Validate() error {
	if s.Port == "" {
		return fmt.Errorf("port cannot be empty")
	}
	if s.BaudRate <= 0 {
		return fmt.Errorf("baud rate must be greater than 0")
	}
	if s.DataBits < 5 || s.DataBits > 8 {
		return fmt.Errorf("data bits must be between 5 and 8")
	}
	if s.StopBits < 1 || s.StopBits > 2 {
		return fmt.Errorf("stop bits must be 1 or 2")
	}
	return nil
}

// String formats the settings for pane headers and tab labels, e.g.
// "/dev/ttyUSB0 @ 115200 bps, 8-N-1".
func (s Settings) String() string {
	return fmt.Sprintf("%s @ %d bps, %d-%s-%d", s.Port, s.BaudRate, s.DataBits, s.Parity, s.StopBits)
}
