package service

import (
	"Enderbrary/internal/model"
	"Enderbrary/internal/repo"
	"context"
	"time"
)

// UserService поддерживает актуальный read-model профилей: identity
// приходит из токена, профиль лениво апсертится при мутирующих операциях,
// чтобы уведомлениям было откуда брать имя и почту.
type UserService struct {
	users     repo.UserRepository
	opTimeout time.Duration
}

// NewUserService создаёт сервис профилей.
func NewUserService(users repo.UserRepository, opTimeout time.Duration) *UserService {
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return &UserService{users: users, opTimeout: opTimeout}
}

// Ensure апсертит профиль пользователя.
func (s *UserService) Ensure(ctx context.Context, id, name, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.opTimeout)
	defer cancel()
	return s.users.Ensure(ctx, &model.User{ID: id, Name: name, Email: email})
}
