package notify

import (
	"context"
	"time"
)

// Kind — вид события жизненного цикла заявки.
type Kind string

const (
	KindBorrowRequested Kind = "BorrowRequested"
	KindBorrowApproved  Kind = "BorrowApproved"
	KindBorrowRejected  Kind = "BorrowRejected"
	KindReturnRequested Kind = "ReturnRequested"
	KindReturnCompleted Kind = "ReturnCompleted"
)

// Event — payload уведомления. Имена и почта снимаются с заявки в момент
// перехода, получатель события их повторно не читает из БД.
type Event struct {
	Kind          Kind      `json:"kind"`
	RequestID     string    `json:"request_id"`
	BookTitle     string    `json:"book_title"`
	LenderName    string    `json:"lender_name"`
	LenderEmail   string    `json:"lender_email"`
	BorrowerName  string    `json:"borrower_name"`
	BorrowerEmail string    `json:"borrower_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Dispatcher доставляет событие получателю. Доставка best-effort: ошибка
// логируется очередью и никогда не влияет на результат перехода.
type Dispatcher interface {
	Notify(ctx context.Context, e Event) error
}
