package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "port-patrol"

// Metrics holds all OTEL metric instruments for port-patrol.
// All counters are cumulative (monotonic) and safe for concurrent use.
type Metrics struct {
	// Session lifecycle counters
	SessionsAdded   metric.Int64Counter
	SessionsRemoved metric.Int64Counter

	// Layout counter (partitioned by mode via attributes)
	LayoutChanges metric.Int64Counter

	// Port lifecycle counters (partitioned by port via attributes)
	PortsOpened      metric.Int64Counter
	PortOpenFailures metric.Int64Counter

	// Traffic counters (partitioned by port via attributes)
	BytesReceived metric.Int64Counter
	BytesSent     metric.Int64Counter
}

// NewMetrics creates all metric instruments. Returns no-op instruments
// when no MeterProvider is registered (safe to call unconditionally).
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}
	var err error

	// --- Session lifecycle counters ---

	m.SessionsAdded, err = meter.Int64Counter("sessions.added",
		metric.WithDescription("Number of monitoring sessions created"))
	if err != nil {
		return nil, err
	}

	m.SessionsRemoved, err = meter.Int64Counter("sessions.removed",
		metric.WithDescription("Number of monitoring sessions closed"))
	if err != nil {
		return nil, err
	}

	// --- Layout counter ---

	m.LayoutChanges, err = meter.Int64Counter("layout.changes",
		metric.WithDescription("Number of pane layout switches partitioned by target mode"))
	if err != nil {
		return nil, err
	}

	// --- Port lifecycle counters ---

	m.PortsOpened, err = meter.Int64Counter("serial.ports.opened",
		metric.WithDescription("Number of serial ports opened successfully"))
	if err != nil {
		return nil, err
	}

	m.PortOpenFailures, err = meter.Int64Counter("serial.ports.open_failures",
		metric.WithDescription("Number of serial port open attempts that failed"))
	if err != nil {
		return nil, err
	}

	// --- Traffic counters ---

	m.BytesReceived, err = meter.Int64Counter("serial.bytes.received",
		metric.WithDescription("Total bytes read from serial ports"),
		metric.WithUnit("By"))
	if err != nil {
		return nil, err
	}

	m.BytesSent, err = meter.Int64Counter("serial.bytes.sent",
		metric.WithDescription("Total bytes written to serial ports"),
		metric.WithUnit("By"))
	if err != nil {
		return nil, err
	}

	return m, nil
}

// RecordSessionAdded records a session creation.
func (m *Metrics) RecordSessionAdded(ctx context.Context) {
	if m == nil {
		return
	}
	m.SessionsAdded.Add(ctx, 1)
}

// RecordSessionRemoved records a session close.
func (m *Metrics) RecordSessionRemoved(ctx context.Context) {
	if m == nil {
		return
	}
	m.SessionsRemoved.Add(ctx, 1)
}

// RecordLayoutChange records a layout switch to the named mode.
func (m *Metrics) RecordLayoutChange(ctx context.Context, mode string) {
	if m == nil {
		return
	}
	m.LayoutChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("layout.mode", mode),
	))
}

// RecordPortOpened records a successful port open.
func (m *Metrics) RecordPortOpened(ctx context.Context, port string) {
	if m == nil {
		return
	}
	m.PortsOpened.Add(ctx, 1, metric.WithAttributes(
		attribute.String("serial.port", port),
	))
}

// RecordPortOpenFailure records a failed port open attempt.
func (m *Metrics) RecordPortOpenFailure(ctx context.Context, port string) {
	if m == nil {
		return
	}
	m.PortOpenFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("serial.port", port),
	))
}

// RecordRxBytes records bytes read from a port.
func (m *Metrics) RecordRxBytes(ctx context.Context, port string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.BytesReceived.Add(ctx, n, metric.WithAttributes(
		attribute.String("serial.port", port),
	))
}

// RecordTxBytes records bytes written to a port.
func (m *Metrics) RecordTxBytes(ctx context.Context, port string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.BytesSent.Add(ctx, n, metric.WithAttributes(
		attribute.String("serial.port", port),
	))
}
