package repo

import (
	"Enderbrary/internal/apperr"
	"Enderbrary/internal/model"
	"context"
	"errors"
	"strings"

	gormpg "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение и прогоняет автомиграции.
// Пустой DSN — локальный SQLite-файл (modernc, без CGo), удобно для разработки.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "enderbrary.db?_pragma=busy_timeout(5000)"}
	case strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host="):
		dial = gormpg.Open(dsn)
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Book{}, &model.BorrowRequest{}); err != nil {
		return nil, err
	}
	return db, nil
}

// wrapDBErr приводит ошибки драйвера к доменной таксономии:
// запись не найдена -> ErrNotFound, таймаут/отмена -> ErrUnavailable.
func wrapDBErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperr.ErrUnavailable
	default:
		return err
	}
}
