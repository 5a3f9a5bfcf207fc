package repo

import (
	"Enderbrary/internal/apperr"
	"Enderbrary/internal/model"
	"context"

	"gorm.io/gorm"
)

// BookRepository — доступ к книгам плюс операции "реестра доступности".
// TrySetUnavailable/SetAvailable — единственный путь изменения флага
// available; оба выполняются как compare-and-set на уровне SQL.
type BookRepository interface {
	Create(ctx context.Context, b *model.Book) error
	GetByID(ctx context.Context, id string) (*model.Book, error)

	// ListByOwner возвращает книги владельца; archived отбирает
	// заархивированные либо активные.
	ListByOwner(ctx context.Context, ownerID string, archived bool) ([]model.Book, error)

	// Update меняет описательные поля книги владельца. Флаги
	// available/archived через Update менять нельзя.
	Update(ctx context.Context, id, ownerID string, updates map[string]any) (*model.Book, error)

	// Archive одноразово помечает книгу владельца как архивную.
	Archive(ctx context.Context, id, ownerID string) (*model.Book, error)

	// TrySetUnavailable атомарно занимает книгу: успех только если книга
	// существует, не в архиве и сейчас доступна. Иначе ErrConflict/ErrNotFound.
	TrySetUnavailable(ctx context.Context, id string) (*model.Book, error)

	// SetAvailable идемпотентно возвращает книгу в доступные.
	SetAvailable(ctx context.Context, id string) (*model.Book, error)
}

type bookRepo struct {
	db *gorm.DB
}

// NewBookRepository создаёт реализацию репозитория для Book.
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepo{db: db}
}

func (r *bookRepo) Create(ctx context.Context, b *model.Book) error {
	return wrapDBErr(r.db.WithContext(ctx).Create(b).Error)
}

func (r *bookRepo) GetByID(ctx context.Context, id string) (*model.Book, error) {
	var b model.Book
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, wrapDBErr(err)
	}
	return &b, nil
}

func (r *bookRepo) ListByOwner(ctx context.Context, ownerID string, archived bool) ([]model.Book, error) {
	var books []model.Book
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND archived = ?", ownerID, archived).
		Order("created_at").
		Find(&books).Error
	if err != nil {
		return nil, wrapDBErr(err)
	}
	return books, nil
}

func (r *bookRepo) Update(ctx context.Context, id, ownerID string, updates map[string]any) (*model.Book, error) {
	// флаги состояния принадлежат реестру, не редактору книги
	delete(updates, "available")
	delete(updates, "archived")

	tx := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(updates)
	if tx.Error != nil {
		return nil, wrapDBErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		// не найдена или чужая — наружу одинаково NotFound
		return nil, apperr.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *bookRepo) Archive(ctx context.Context, id, ownerID string) (*model.Book, error) {
	tx := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("archived", true)
	if tx.Error != nil {
		return nil, wrapDBErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *bookRepo) TrySetUnavailable(ctx context.Context, id string) (*model.Book, error) {
	return trySetUnavailable(r.db.WithContext(ctx), id)
}

func (r *bookRepo) SetAvailable(ctx context.Context, id string) (*model.Book, error) {
	tx := r.db.WithContext(ctx).Model(&model.Book{}).
		Where("id = ?", id).
		Update("available", true)
	if tx.Error != nil {
		return nil, wrapDBErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, apperr.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// trySetUnavailable — общая часть для репозитория и транзакции approve.
// Ровно один UPDATE с предикатом; ноль затронутых строк различаем
// повторным чтением: книги нет -> NotFound, книга есть -> Conflict.
func trySetUnavailable(db *gorm.DB, id string) (*model.Book, error) {
	tx := db.Model(&model.Book{}).
		Where("id = ? AND archived = ? AND available = ?", id, false, true).
		Update("available", false)
	if tx.Error != nil {
		return nil, wrapDBErr(tx.Error)
	}
	if tx.RowsAffected == 0 {
		var b model.Book
		if err := db.First(&b, "id = ?", id).Error; err != nil {
			return nil, wrapDBErr(err)
		}
		return nil, apperr.ErrConflict
	}
	var b model.Book
	if err := db.First(&b, "id = ?", id).Error; err != nil {
		return nil, wrapDBErr(err)
	}
	return &b, nil
}
