package repo

import (
	"Enderbrary/internal/model"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB поднимает отдельную in-memory базу на каждый тест.
// Уникальный DSN нужен, чтобы shared cache не протекал между тестами.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Book{}, &model.BorrowRequest{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u := &model.User{ID: uuid.NewString(), Name: name, Email: name + "@example.com"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBook(t *testing.T, db *gorm.DB, ownerID string, available, archived bool) *model.Book {
	t.Helper()
	b := &model.Book{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		Title:   "Dune",
		Author:  "Frank Herbert",
	}
	require.NoError(t, db.Create(b).Error)
	// false не переживает default:true при Create, выставляем явно
	require.NoError(t, db.Model(b).Updates(map[string]any{"available": available, "archived": archived}).Error)
	b.Available = available
	b.Archived = archived
	return b
}

func seedRequest(t *testing.T, db *gorm.DB, bookID, borrowerID, lenderID string, status model.BorrowStatus) *model.BorrowRequest {
	t.Helper()
	now := time.Now()
	br := &model.BorrowRequest{
		ID:          uuid.NewString(),
		BookID:      bookID,
		BorrowerID:  borrowerID,
		LenderID:    lenderID,
		RequestedAt: now,
		DueAt:       now.Add(14 * 24 * time.Hour),
		Status:      status,
	}
	require.NoError(t, db.Create(br).Error)
	return br
}
