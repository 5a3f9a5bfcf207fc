package handlers

import (
	"Enderbrary/internal/config"
	"Enderbrary/internal/middleware"
	"Enderbrary/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	bookService *service.BookService,
	borrowService *service.BorrowService,
	userService *service.UserService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	bookHandler := NewBookHandler(bookService, userService, logger)
	borrowHandler := NewBorrowHandler(borrowService, userService, logger)

	// Book routes (owner-facing; каталога и поиска нет)
	r.Route("/api/v1/books", func(r chi.Router) {
		r.Post("/", bookHandler.Add)
		r.Get("/me", bookHandler.ListMine)
		r.Get("/me/archived", bookHandler.ListMineArchived)
		r.Get("/{bookId}", bookHandler.Get)
		r.Patch("/{bookId}", bookHandler.Update)
		r.Patch("/{bookId}/archive", bookHandler.Archive)
	})

	// Borrow workflow routes
	r.Route("/api/v1/borrow", func(r chi.Router) {
		r.Post("/{bookId}", borrowHandler.Create)
		r.Patch("/{requestId}/approve", borrowHandler.Approve)
		r.Patch("/{requestId}/reject", borrowHandler.Reject)
		r.Patch("/{requestId}/return", borrowHandler.ReturnBook)
		r.Patch("/{requestId}/complete-return", borrowHandler.CompleteReturn)
		r.Get("/my-requests", borrowHandler.MyRequests)
		r.Get("/my-requests/pending", borrowHandler.MyPendingRequests)
		r.Get("/my-requests/approved", borrowHandler.MyApprovedRequests)
		r.Get("/incoming-requests", borrowHandler.IncomingRequests)
		r.Get("/lent", borrowHandler.LentBooks)
		r.Get("/book/{bookId}", borrowHandler.RequestsForBook)
		r.Get("/{requestId}", borrowHandler.Get)
	})

	return &Handler{Router: r}
}
