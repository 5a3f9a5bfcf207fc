package service

import (
	"Enderbrary/internal/apperr"
	"Enderbrary/internal/model"
	"Enderbrary/internal/notify"
	"Enderbrary/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notifier принимает событие жизненного цикла для фоновой доставки.
// Реализуется notify.Queue; в тестах — синхронным рекордером.
type Notifier interface {
	Publish(e notify.Event)
}

// BorrowService — конечный автомат заявки на выдачу книги.
//
// Переходы:
//
//	(create)          -> PENDING            (borrower)
//	PENDING           -> APPROVED           (lender, атомарно занимает книгу)
//	PENDING           -> REJECTED           (lender)
//	APPROVED          -> RETURN_REQUESTED   (borrower)
//	RETURN_REQUESTED  -> RETURNED           (lender, возвращает книгу в доступные)
//
// REJECTED и RETURNED терминальны. Каждый успешный переход публикует ровно
// одно уведомление; его доставка не влияет на результат операции.
type BorrowService struct {
	borrows  repo.BorrowRepository
	books    repo.BookRepository
	notifier Notifier
	logger   *zap.SugaredLogger

	loanPeriod time.Duration
	opTimeout  time.Duration
}

// NewBorrowService создаёт сервис воркфлоу заявок.
func NewBorrowService(borrows repo.BorrowRepository, books repo.BookRepository, notifier Notifier, logger *zap.SugaredLogger, loanPeriod, opTimeout time.Duration) *BorrowService {
	if loanPeriod <= 0 {
		loanPeriod = 14 * 24 * time.Hour
	}
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return &BorrowService{
		borrows:    borrows,
		books:      books,
		notifier:   notifier,
		logger:     logger,
		loanPeriod: loanPeriod,
		opTimeout:  opTimeout,
	}
}

func (s *BorrowService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// Create создаёт заявку borrower-а на книгу. Книга должна существовать,
// быть доступной и не в архиве; владелец не может заказать свою книгу.
func (s *BorrowService) Create(ctx context.Context, bookID, borrowerID string) (*BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.OwnerID == borrowerID {
		return nil, apperr.ErrUnauthorized
	}
	if book.Archived {
		return nil, apperr.ErrInvalidState
	}
	if !book.Available {
		// книга уже на руках; retry имеет смысл после её возврата
		return nil, apperr.ErrConflict
	}

	now := time.Now().UTC()
	br := &model.BorrowRequest{
		ID:          uuid.NewString(),
		BookID:      book.ID,
		BorrowerID:  borrowerID,
		LenderID:    book.OwnerID, // снимок владельца на момент создания
		RequestedAt: now,
		DueAt:       now.Add(s.loanPeriod),
		Status:      model.StatusPending,
	}
	if err := s.borrows.Create(ctx, br); err != nil {
		return nil, err
	}

	created, err := s.borrows.GetByID(ctx, br.ID)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("borrow request created", "request_id", created.ID, "book_id", bookID, "borrower_id", borrowerID)
	s.notifier.Publish(eventFrom(notify.KindBorrowRequested, created))
	return toBorrowView(created), nil
}

// Approve переводит PENDING -> APPROVED и атомарно занимает книгу.
// Если книгу уже заняли (конкурентный approve другой заявки) — ErrConflict,
// заявка остаётся PENDING.
func (s *BorrowService) Approve(ctx context.Context, requestID, callerID string) (*BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	br, err := s.borrows.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !canAct(br, callerID, opApprove) {
		return nil, apperr.ErrUnauthorized
	}
	if err := s.borrows.ApproveAndHold(ctx, br.ID, br.BookID); err != nil {
		return nil, err
	}

	br.Status = model.StatusApproved
	s.logger.Infow("borrow request approved", "request_id", br.ID, "book_id", br.BookID)
	s.notifier.Publish(eventFrom(notify.KindBorrowApproved, br))
	return toBorrowView(br), nil
}

// Reject переводит PENDING -> REJECTED. Книга не затрагивается.
func (s *BorrowService) Reject(ctx context.Context, requestID, callerID string) (*BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	br, err := s.borrows.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !canAct(br, callerID, opReject) {
		return nil, apperr.ErrUnauthorized
	}
	if err := s.borrows.UpdateStatus(ctx, br.ID, model.StatusPending, model.StatusRejected); err != nil {
		return nil, err
	}

	br.Status = model.StatusRejected
	s.logger.Infow("borrow request rejected", "request_id", br.ID)
	s.notifier.Publish(eventFrom(notify.KindBorrowRejected, br))
	return toBorrowView(br), nil
}

// ReturnBook — borrower просит принять книгу назад: APPROVED -> RETURN_REQUESTED.
func (s *BorrowService) ReturnBook(ctx context.Context, requestID, callerID string) (*BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	br, err := s.borrows.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !canAct(br, callerID, opReturnBook) {
		return nil, apperr.ErrUnauthorized
	}
	if err := s.borrows.UpdateStatus(ctx, br.ID, model.StatusApproved, model.StatusReturnRequested); err != nil {
		return nil, err
	}

	br.Status = model.StatusReturnRequested
	s.logger.Infow("return requested", "request_id", br.ID)
	s.notifier.Publish(eventFrom(notify.KindReturnRequested, br))
	return toBorrowView(br), nil
}

// CompleteReturn — lender подтверждает возврат: RETURN_REQUESTED -> RETURNED,
// книга атомарно возвращается в доступные.
func (s *BorrowService) CompleteReturn(ctx context.Context, requestID, callerID string) (*BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	br, err := s.borrows.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !canAct(br, callerID, opCompleteReturn) {
		return nil, apperr.ErrUnauthorized
	}
	if err := s.borrows.CompleteReturn(ctx, br.ID, br.BookID); err != nil {
		return nil, err
	}

	br.Status = model.StatusReturned
	s.logger.Infow("return completed", "request_id", br.ID, "book_id", br.BookID)
	s.notifier.Publish(eventFrom(notify.KindReturnCompleted, br))
	return toBorrowView(br), nil
}

// Get возвращает проекцию заявки.
func (s *BorrowService) Get(ctx context.Context, requestID string) (*BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	br, err := s.borrows.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return toBorrowView(br), nil
}

// ListByBorrower — заявки, созданные пользователем.
func (s *BorrowService) ListByBorrower(ctx context.Context, borrowerID string) ([]BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.borrows.ListByBorrower(ctx, borrowerID)
	if err != nil {
		return nil, err
	}
	return toBorrowViews(items), nil
}

// ListByLender — заявки, адресованные пользователю как владельцу книг.
func (s *BorrowService) ListByLender(ctx context.Context, lenderID string) ([]BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.borrows.ListByLender(ctx, lenderID)
	if err != nil {
		return nil, err
	}
	return toBorrowViews(items), nil
}

// ListForBook — заявки по книге; доступно только текущему владельцу книги.
func (s *BorrowService) ListForBook(ctx context.Context, bookID, callerID string) ([]BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	book, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.OwnerID != callerID {
		return nil, apperr.ErrUnauthorized
	}
	items, err := s.borrows.ListByBookAndLender(ctx, bookID, callerID)
	if err != nil {
		return nil, err
	}
	return toBorrowViews(items), nil
}

// ListByBorrowerAndStatus — заявки пользователя в конкретном статусе.
func (s *BorrowService) ListByBorrowerAndStatus(ctx context.Context, borrowerID string, status model.BorrowStatus) ([]BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.borrows.ListByBorrowerAndStatus(ctx, borrowerID, status)
	if err != nil {
		return nil, err
	}
	return toBorrowViews(items), nil
}

// ListByLenderAndStatus — заявки к пользователю в конкретном статусе.
func (s *BorrowService) ListByLenderAndStatus(ctx context.Context, lenderID string, status model.BorrowStatus) ([]BorrowRequestView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	items, err := s.borrows.ListByLenderAndStatus(ctx, lenderID, status)
	if err != nil {
		return nil, err
	}
	return toBorrowViews(items), nil
}
