package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Queue — буфер между воркфлоу и диспетчером. Publish не блокирует
// вызывающего: события уходят в канал, доставляет их один фоновый воркер.
// Переполненный буфер означает потерю события (с warn в лог) — уведомления
// fire-and-forget по контракту.
type Queue struct {
	ch     chan Event
	d      Dispatcher
	logger *zap.SugaredLogger

	closeOnce sync.Once
	done      chan struct{}
}

// NewQueue запускает воркер доставки. size — ёмкость буфера.
func NewQueue(d Dispatcher, logger *zap.SugaredLogger, size int) *Queue {
	if size <= 0 {
		size = 64
	}
	q := &Queue{
		ch:     make(chan Event, size),
		d:      d,
		logger: logger,
		done:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *Queue) run() {
	defer close(q.done)
	for e := range q.ch {
		if err := q.d.Notify(context.Background(), e); err != nil {
			q.logger.Warnw("notification delivery failed",
				"kind", e.Kind,
				"request_id", e.RequestID,
				"error", err,
			)
		}
	}
}

// Publish ставит событие в очередь доставки.
func (q *Queue) Publish(e Event) {
	select {
	case q.ch <- e:
	default:
		q.logger.Warnw("notification queue full, dropping event",
			"kind", e.Kind,
			"request_id", e.RequestID,
		)
	}
}

// Close останавливает воркер, дождавшись доставки того, что уже в буфере.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.ch)
		<-q.done
	})
}
