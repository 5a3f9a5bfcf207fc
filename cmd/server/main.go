package main

import (
	"Enderbrary/internal/config"
	"Enderbrary/internal/handlers"
	"Enderbrary/internal/middleware"
	"Enderbrary/internal/notify"
	"Enderbrary/internal/repo"
	"Enderbrary/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	bookRepo := repo.NewBookRepository(gormDB)
	borrowRepo := repo.NewBorrowRepository(gormDB)

	// уведомления: Kafka при настроенных брокерах, иначе только лог
	var dispatcher notify.Dispatcher
	if brokers := cfg.BrokerList(); len(brokers) > 0 {
		kafkaDispatcher, err := notify.NewKafkaDispatcher(brokers, cfg.KafkaTopic, sugar)
		if err != nil {
			sugar.Fatalw("failed to create kafka dispatcher", "error", err)
		}
		defer func() {
			if err := kafkaDispatcher.Close(); err != nil {
				sugar.Errorw("failed to close kafka dispatcher", "error", err)
			}
		}()
		dispatcher = kafkaDispatcher
	} else {
		dispatcher = notify.NewLogDispatcher(sugar)
	}
	queue := notify.NewQueue(dispatcher, sugar, 256)
	defer queue.Close()

	userService := service.NewUserService(userRepo, cfg.DBTimeout())
	bookService := service.NewBookService(bookRepo, sugar, cfg.DBTimeout())
	borrowService := service.NewBorrowService(borrowRepo, bookRepo, queue, sugar, cfg.LoanPeriod(), cfg.DBTimeout())

	h := handlers.NewHandler(bookService, borrowService, userService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"KafkaBrokers", cfg.KafkaBrokers,
		"LoanDays", cfg.LoanDays,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
