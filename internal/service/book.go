package service

import (
	"Enderbrary/internal/model"
	"Enderbrary/internal/repo"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookInput — редактируемые владельцем поля книги.
type BookInput struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CoverURL    string `json:"cover_url"`
}

// BookService — операции владельца над книгами. Флаги available/archived
// меняются только реестром (BookRepository), сервис их не трогает напрямую.
type BookService struct {
	books     repo.BookRepository
	logger    *zap.SugaredLogger
	opTimeout time.Duration
}

// NewBookService создаёт сервис книг.
func NewBookService(books repo.BookRepository, logger *zap.SugaredLogger, opTimeout time.Duration) *BookService {
	if opTimeout <= 0 {
		opTimeout = 5 * time.Second
	}
	return &BookService{books: books, logger: logger, opTimeout: opTimeout}
}

func (s *BookService) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.opTimeout)
}

// Add регистрирует новую книгу владельца: доступна, не в архиве.
func (s *BookService) Add(ctx context.Context, ownerID string, in BookInput) (*BookView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	b := &model.Book{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Category:    in.Category,
		CoverURL:    in.CoverURL,
		Available:   true,
		Archived:    false,
	}
	if err := s.books.Create(ctx, b); err != nil {
		return nil, err
	}
	s.logger.Infow("book added", "book_id", b.ID, "owner_id", ownerID)
	return toBookView(b), nil
}

// Get возвращает книгу по идентификатору.
func (s *BookService) Get(ctx context.Context, bookID string) (*BookView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	b, err := s.books.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return toBookView(b), nil
}

// ListMine — активные книги владельца.
func (s *BookService) ListMine(ctx context.Context, ownerID string) ([]BookView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	books, err := s.books.ListByOwner(ctx, ownerID, false)
	if err != nil {
		return nil, err
	}
	return toBookViews(books), nil
}

// ListMineArchived — заархивированные книги владельца.
func (s *BookService) ListMineArchived(ctx context.Context, ownerID string) ([]BookView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	books, err := s.books.ListByOwner(ctx, ownerID, true)
	if err != nil {
		return nil, err
	}
	return toBookViews(books), nil
}

// Update меняет описательные поля книги владельца.
func (s *BookService) Update(ctx context.Context, bookID, ownerID string, in BookInput) (*BookView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	b, err := s.books.Update(ctx, bookID, ownerID, map[string]any{
		"title":       in.Title,
		"author":      in.Author,
		"description": in.Description,
		"category":    in.Category,
		"cover_url":   in.CoverURL,
	})
	if err != nil {
		return nil, err
	}
	return toBookView(b), nil
}

// Archive одноразово убирает книгу из оборота. Разархивирования нет;
// уже выданные по ней заявки доживают свой цикл как обычно.
func (s *BookService) Archive(ctx context.Context, bookID, ownerID string) (*BookView, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	b, err := s.books.Archive(ctx, bookID, ownerID)
	if err != nil {
		return nil, err
	}
	s.logger.Infow("book archived", "book_id", bookID, "owner_id", ownerID)
	return toBookView(b), nil
}
