package monitor

import (
	"fmt"
	"strings"
)

// AppendMode selects the line ending appended to transmitted text.
type AppendMode int

const (
	AppendNone AppendMode = iota
	AppendLF
	AppendCR
	AppendCRLF
	AppendLFCR
)

// appendModeOrder is the cycle order for the TX line selector.
var appendModeOrder = []AppendMode{AppendNone, AppendLF, AppendCR, AppendCRLF, AppendLFCR}

// Bytes returns the suffix appended to outgoing data.
func (a AppendMode) Bytes() []byte {
	switch a {
	case AppendLF:
		return []byte{0x0a}
	case AppendCR:
		return []byte{0x0d}
	case AppendCRLF:
		return []byte{0x0d, 0x0a}
	case AppendLFCR:
		return []byte{0x0a, 0x0d}
	default:
		return nil
	}
}

// String returns the label shown on the TX line selector.
func (a AppendMode) String() string {
	switch a {
	case AppendLF:
		return "LF"
	case AppendCR:
		return "CR"
	case AppendCRLF:
		return "CRLF"
	case AppendLFCR:
		return "LFCR"
	default:
		return "None"
	}
}

// Next returns the mode after a in cycle order, wrapping.
func (a AppendMode) Next() AppendMode {
	for i, mode := range appendModeOrder {
		if mode == a {
			return appendModeOrder[(i+1)%len(appendModeOrder)]
		}
	}
	return AppendNone
}

// ParseAppendMode reads a line-ending name as used in config and flags.
func ParseAppendMode(s string) (AppendMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return AppendNone, nil
	case "lf", "\\n":
		return AppendLF, nil
	case "cr", "\\r":
		return AppendCR, nil
	case "crlf", "\\r\\n":
		return AppendCRLF, nil
	case "lfcr":
		return AppendLFCR, nil
	default:
		return AppendNone, fmt.Errorf("unknown line ending %q (supported: none, lf, cr, crlf, lfcr)", s)
	}
}
