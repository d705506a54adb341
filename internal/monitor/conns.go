package monitor

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/timvw/port-patrol/internal/serialio"
	"github.com/timvw/port-patrol/internal/session"
)

// conn is a live serial connection owned by exactly one session. The pump
// owns the port once started; Close tears both down.
type conn struct {
	port serialio.Port
	pump *serialio.Pump
}

// connect opens the focused session's port and starts pumping received
// data. Failure lands in the session's notices, not in an error return;
// the UI keeps running either way.
func (m *tuiModel) connect(s *session.Session) {
	if s == nil {
		return
	}
	if _, open := m.conns[s.ID]; open {
		return
	}
	if err := s.Settings.Validate(); err != nil {
		s.Notices.Warning(fmt.Sprintf("Cannot connect: %v", err))
		return
	}

	port, err := m.opener.Open(m.ctx, s.Settings)
	if err != nil {
		s.Notices.Error(fmt.Sprintf("Connect failed: %v", err))
		if m.telemetry != nil {
			m.telemetry.Metrics.RecordPortOpenFailure(m.ctx, s.Settings.Port)
		}
		return
	}

	pump := serialio.NewPump(port)
	pump.Start()
	m.conns[s.ID] = &conn{port: port, pump: pump}

	s.Connected = true
	s.SettingsLocked = true
	s.Log.Append(session.DirSystem, "Connected: "+s.Settings.String())
	s.Notices.Success("Connected: " + s.Settings.String())
	if m.telemetry != nil {
		m.telemetry.Metrics.RecordPortOpened(m.ctx, s.Settings.Port)
	}
}

// disconnect closes the session's connection if one is open.
func (m *tuiModel) disconnect(s *session.Session) {
	if s == nil {
		return
	}
	c, open := m.conns[s.ID]
	if !open {
		return
	}
	delete(m.conns, s.ID)
	_ = c.pump.Close()

	s.Connected = false
	s.SettingsLocked = false
	s.Log.Append(session.DirSystem, "Disconnected")
	s.Notices.Info("Disconnected")
}

// toggleConnection connects a disconnected session and disconnects a
// connected one.
func (m *tuiModel) toggleConnection(s *session.Session) {
	if s == nil {
		return
	}
	if _, open := m.conns[s.ID]; open {
		m.disconnect(s)
	} else {
		m.connect(s)
	}
}

// closeConn tears down the connection for a session ID without touching
// session state. Used when the session itself is going away.
func (m *tuiModel) closeConn(id uuid.UUID) {
	if c, open := m.conns[id]; open {
		delete(m.conns, id)
		_ = c.pump.Close()
	}
}

// closeAllConns tears down every open connection. Called on quit.
func (m *tuiModel) closeAllConns() {
	for id, c := range m.conns {
		delete(m.conns, id)
		_ = c.pump.Close()
	}
}

// pruneConns closes connections whose session no longer exists. Sessions
// are removed through the workspace, which cannot reach into the
// connection table, so the tick sweeps for orphans.
func (m *tuiModel) pruneConns() {
	if len(m.conns) == 0 {
		return
	}
	live := make(map[uuid.UUID]bool, len(m.conns))
	for _, s := range m.ws.Sessions().Sessions() {
		live[s.ID] = true
	}
	for id := range m.conns {
		if !live[id] {
			m.closeConn(id)
		}
	}
}

// drainConns moves pending received lines from every pump into its
// session's log and retires pumps whose port has died.
func (m *tuiModel) drainConns() {
	for _, s := range m.ws.Sessions().Sessions() {
		c, open := m.conns[s.ID]
		if !open {
			continue
		}

		lines, raw := c.pump.Drain()
		for _, line := range lines {
			s.Log.Append(session.DirRx, line)
		}
		if raw > 0 {
			s.Log.AddRxBytes(raw)
			if m.telemetry != nil {
				m.telemetry.Metrics.RecordRxBytes(m.ctx, s.Settings.Port, int64(raw))
			}
		}

		if c.pump.Done() {
			err := c.pump.Err()
			delete(m.conns, s.ID)
			_ = c.pump.Close()
			s.Connected = false
			s.SettingsLocked = false
			if err != nil {
				s.Log.Append(session.DirSystem, fmt.Sprintf("Connection lost: %v", err))
				s.Notices.Error(fmt.Sprintf("Connection lost: %v", err))
			} else {
				s.Log.Append(session.DirSystem, "Port closed")
				s.Notices.Warning("Port closed")
			}
		}
	}
}

// transmit writes text plus the configured line ending to the session's
// port and logs the send.
func (m *tuiModel) transmit(s *session.Session, text string) {
	if s == nil {
		return
	}
	c, open := m.conns[s.ID]
	if !open {
		s.Notices.Warning("Not connected")
		return
	}

	payload := append([]byte(text), m.appendMode.Bytes()...)
	n, err := c.port.Write(payload)
	if err != nil {
		s.Notices.Error(fmt.Sprintf("Send failed: %v", err))
		return
	}

	s.Log.Append(session.DirTx, text)
	s.Log.AddTxBytes(n)
	if m.telemetry != nil {
		m.telemetry.Metrics.RecordTxBytes(m.ctx, s.Settings.Port, int64(n))
	}
}
