package edit

import (
	"deskclock/hal"
	"deskclock/internal/config"
	"deskclock/internal/input"
	"deskclock/internal/layout"
	"deskclock/internal/render"
)

// chainOrder is the SET button sequence. Each editor is offered only when
// the previous one was skipped.
var chainOrder = []Kind{TimeFields, AlarmFields, DateFields, MoonFields}

// Editor runs at most one session at a time, either a chain started by the
// SET button or a direct edit started by touching a cell.
type Editor struct {
	cfg config.Config
	r   *render.Renderer
	t   Target
	log hal.Logger

	session *Session
	chain   []Kind
}

func NewEditor(cfg config.Config, r *render.Renderer, t Target, log hal.Logger) *Editor {
	return &Editor{cfg: cfg, r: r, t: t, log: log}
}

// Active reports whether a session is open.
func (e *Editor) Active() bool { return e.session != nil }

// Session is the open session, or nil.
func (e *Editor) Session() *Session { return e.session }

// StartChain offers the time, alarm (only while armed), date and moon
// editors in turn.
func (e *Editor) StartChain(now uint64) {
	e.chain = chainOrder
	e.next(now)
}

// StartDirect opens the editor for a touched cell at its first field. It
// reports false for cells without an editor and for a disarmed alarm.
func (e *Editor) StartDirect(cell layout.Cell, now uint64) bool {
	var kind Kind
	switch cell {
	case layout.Time:
		kind = TimeFields
	case layout.Alarm:
		if !e.t.AlarmArmed() {
			return false
		}
		kind = AlarmFields
	case layout.Date:
		kind = DateFields
	case layout.Weather:
		kind = MoonFields
	default:
		return false
	}
	e.chain = nil
	e.session = BeginDirect(kind, e.cfg, e.r, e.t, e.log, now)
	return true
}

// next opens the next editor of the chain, or closes the chain.
func (e *Editor) next(now uint64) {
	e.session = nil
	for len(e.chain) > 0 {
		kind := e.chain[0]
		e.chain = e.chain[1:]
		if kind == AlarmFields && !e.t.AlarmArmed() {
			continue
		}
		e.session = Begin(kind, e.cfg, e.r, e.t, e.log, now)
		return
	}
}

// Step drives the open session and reports true once editing is over, at
// which point the caller should force a full repaint.
func (e *Editor) Step(ev input.Events, now uint64) bool {
	if e.session == nil {
		return false
	}
	if !e.session.Step(ev, now) {
		return false
	}
	if e.session.Engaged() {
		e.chain = nil
	}
	e.next(now)
	return e.session == nil
}
