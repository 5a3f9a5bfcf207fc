package service

import (
	"Enderbrary/internal/model"
	"Enderbrary/internal/notify"
	"Enderbrary/internal/repo"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// notifyRecorder — синхронный Notifier для тестов: копит события в памяти.
type notifyRecorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *notifyRecorder) Publish(e notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *notifyRecorder) kinds() []notify.Kind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]notify.Kind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func (r *notifyRecorder) last() notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

type testEnv struct {
	db       *gorm.DB
	books    repo.BookRepository
	borrows  repo.BorrowRepository
	users    repo.UserRepository
	recorder *notifyRecorder

	borrowSvc *BorrowService
	bookSvc   *BookService
	userSvc   *UserService
}

// newTestEnv поднимает in-memory базу и сервисы поверх реальных репозиториев.
// Один коннект на базу: sqlite однописательный, так исключаем busy-ошибки
// в конкурентных тестах.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Book{}, &model.BorrowRequest{}))

	rec := &notifyRecorder{}
	logger := zap.NewNop().Sugar()

	env := &testEnv{
		db:       db,
		books:    repo.NewBookRepository(db),
		borrows:  repo.NewBorrowRepository(db),
		users:    repo.NewUserRepository(db),
		recorder: rec,
	}
	env.borrowSvc = NewBorrowService(env.borrows, env.books, rec, logger, 14*24*time.Hour, 5*time.Second)
	env.bookSvc = NewBookService(env.books, logger, 5*time.Second)
	env.userSvc = NewUserService(env.users, 5*time.Second)
	return env
}

func (e *testEnv) addUser(t *testing.T, name string) string {
	t.Helper()
	id := uuid.NewString()
	require.NoError(t, e.db.Create(&model.User{ID: id, Name: name, Email: name + "@example.com"}).Error)
	return id
}
