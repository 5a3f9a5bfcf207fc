package repo

import (
	"Enderbrary/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository — минимальный контракт доступа к профилям пользователей.
// Профили создаются лениво из проверенных claims токена, CRUD наружу нет.
type UserRepository interface {
	// Ensure вставляет профиль или обновляет name/email, если запись уже есть.
	Ensure(ctx context.Context, u *model.User) error

	// GetByID возвращает профиль по идентификатору.
	GetByID(ctx context.Context, id string) (*model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория для User.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Ensure(ctx context.Context, u *model.User) error {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "email"}),
	}).Create(u)
	return wrapDBErr(tx.Error)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, wrapDBErr(err)
	}
	return &u, nil
}
