package notify

import (
	"context"

	"go.uber.org/zap"
)

// LogDispatcher пишет события в лог. Используется, когда брокеры Kafka
// не сконфигурированы (локальная разработка, тесты).
type LogDispatcher struct {
	logger *zap.SugaredLogger
}

func NewLogDispatcher(logger *zap.SugaredLogger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Notify(_ context.Context, e Event) error {
	d.logger.Infow("notification event",
		"kind", e.Kind,
		"request_id", e.RequestID,
		"book_title", e.BookTitle,
		"lender", e.LenderName,
		"borrower", e.BorrowerName,
	)
	return nil
}
