package repo

import (
	"Enderbrary/internal/apperr"
	"Enderbrary/internal/model"
	"context"

	"gorm.io/gorm"
)

// BorrowRepository — доступ к заявкам на выдачу.
// Все смены статуса — предикатные UPDATE ("status = from"), чтобы две
// конкурентные операции над одной заявкой не прошли обе.
type BorrowRepository interface {
	Create(ctx context.Context, br *model.BorrowRequest) error

	// GetByID возвращает заявку вместе с книгой и профилями сторон.
	GetByID(ctx context.Context, id string) (*model.BorrowRequest, error)

	// UpdateStatus — compare-and-set статуса. Ноль затронутых строк —
	// ErrInvalidState (или ErrNotFound, если заявки больше нет).
	UpdateStatus(ctx context.Context, id string, from, to model.BorrowStatus) error

	// ApproveAndHold в одной транзакции переводит заявку PENDING->APPROVED
	// и занимает книгу. Провал любого шага откатывает оба.
	ApproveAndHold(ctx context.Context, requestID, bookID string) error

	// CompleteReturn в одной транзакции переводит заявку
	// RETURN_REQUESTED->RETURNED и возвращает книгу в доступные.
	CompleteReturn(ctx context.Context, requestID, bookID string) error

	ListByBorrower(ctx context.Context, borrowerID string) ([]model.BorrowRequest, error)
	ListByLender(ctx context.Context, lenderID string) ([]model.BorrowRequest, error)
	ListByBookAndLender(ctx context.Context, bookID, lenderID string) ([]model.BorrowRequest, error)
	ListByBorrowerAndStatus(ctx context.Context, borrowerID string, status model.BorrowStatus) ([]model.BorrowRequest, error)
	ListByLenderAndStatus(ctx context.Context, lenderID string, status model.BorrowStatus) ([]model.BorrowRequest, error)
}

type borrowRepo struct {
	db *gorm.DB
}

// NewBorrowRepository создаёт реализацию репозитория для BorrowRequest.
func NewBorrowRepository(db *gorm.DB) BorrowRepository {
	return &borrowRepo{db: db}
}

func (r *borrowRepo) Create(ctx context.Context, br *model.BorrowRequest) error {
	return wrapDBErr(r.db.WithContext(ctx).Create(br).Error)
}

func (r *borrowRepo) GetByID(ctx context.Context, id string) (*model.BorrowRequest, error) {
	var br model.BorrowRequest
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Borrower").
		Preload("Lender").
		First(&br, "id = ?", id).Error
	if err != nil {
		return nil, wrapDBErr(err)
	}
	return &br, nil
}

func (r *borrowRepo) UpdateStatus(ctx context.Context, id string, from, to model.BorrowStatus) error {
	return casStatus(r.db.WithContext(ctx), id, from, to)
}

func (r *borrowRepo) ApproveAndHold(ctx context.Context, requestID, bookID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := casStatus(tx, requestID, model.StatusPending, model.StatusApproved); err != nil {
			return err
		}
		if _, err := trySetUnavailable(tx, bookID); err != nil {
			return err
		}
		return nil
	})
	return wrapDBErr(err)
}

func (r *borrowRepo) CompleteReturn(ctx context.Context, requestID, bookID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := casStatus(tx, requestID, model.StatusReturnRequested, model.StatusReturned); err != nil {
			return err
		}
		res := tx.Model(&model.Book{}).Where("id = ?", bookID).Update("available", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.ErrNotFound
		}
		return nil
	})
	return wrapDBErr(err)
}

func (r *borrowRepo) ListByBorrower(ctx context.Context, borrowerID string) ([]model.BorrowRequest, error) {
	return r.list(ctx, "borrower_id = ?", borrowerID)
}

func (r *borrowRepo) ListByLender(ctx context.Context, lenderID string) ([]model.BorrowRequest, error) {
	return r.list(ctx, "lender_id = ?", lenderID)
}

func (r *borrowRepo) ListByBookAndLender(ctx context.Context, bookID, lenderID string) ([]model.BorrowRequest, error) {
	return r.list(ctx, "book_id = ? AND lender_id = ?", bookID, lenderID)
}

func (r *borrowRepo) ListByBorrowerAndStatus(ctx context.Context, borrowerID string, status model.BorrowStatus) ([]model.BorrowRequest, error) {
	return r.list(ctx, "borrower_id = ? AND status = ?", borrowerID, status)
}

func (r *borrowRepo) ListByLenderAndStatus(ctx context.Context, lenderID string, status model.BorrowStatus) ([]model.BorrowRequest, error) {
	return r.list(ctx, "lender_id = ? AND status = ?", lenderID, status)
}

func (r *borrowRepo) list(ctx context.Context, cond string, args ...any) ([]model.BorrowRequest, error) {
	var items []model.BorrowRequest
	err := r.db.WithContext(ctx).
		Preload("Book").
		Preload("Borrower").
		Preload("Lender").
		Where(cond, args...).
		Order("requested_at").
		Find(&items).Error
	if err != nil {
		return nil, wrapDBErr(err)
	}
	return items, nil
}

// casStatus выполняет предикатный UPDATE статуса заявки.
func casStatus(db *gorm.DB, id string, from, to model.BorrowStatus) error {
	res := db.Model(&model.BorrowRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return wrapDBErr(res.Error)
	}
	if res.RowsAffected == 0 {
		var br model.BorrowRequest
		if err := db.Select("id").First(&br, "id = ?", id).Error; err != nil {
			return wrapDBErr(err)
		}
		return apperr.ErrInvalidState
	}
	return nil
}
