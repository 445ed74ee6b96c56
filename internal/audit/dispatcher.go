package audit

import "go.uber.org/zap"

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Writer persists audit events. The gorm-backed Logger is the production
// implementation.
type Writer interface {
	Write(ev Event) error
}

// Dispatcher decouples audit writes from the request path. Events go through
// a buffered channel; when the buffer is full they are dropped rather than
// slowing down the API.
type Dispatcher struct {
	writer Writer
	queue  chan Event
	log    *zap.Logger
}

func NewDispatcher(writer Writer, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
		log:    log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Write(ev); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
