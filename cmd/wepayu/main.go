package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wepayu/internal/command"
	"github.com/wepayu/internal/config"
	"github.com/wepayu/internal/handler"
	"github.com/wepayu/internal/repository"
	"github.com/wepayu/internal/service"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	// Логи идут в stderr, stdout занят результатами скриптов
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Хранилище снапшотов
	var snapshots repository.SnapshotRepository
	if cfg.Persist {
		db, err := connectDB(cfg.Database)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			return 1
		}

		sqlDB, err := db.DB()
		if err != nil {
			logger.Error("failed to get sql.DB", slog.Any("error", err))
			return 1
		}
		defer sqlDB.Close()

		if err := repository.Migrate(sqlDB, cfg.Database.GooseDialect(), logger); err != nil {
			logger.Error("failed to run migrations", slog.Any("error", err))
			return 1
		}
		snapshots = repository.NewSnapshotRepository(db)
	}

	// Инициализация репозиториев
	roster := repository.NewRosterRepository()
	schedules := repository.NewScheduleRegistry()
	commands := command.NewLog(logger)

	// Инициализация сервисов
	employees := service.NewEmployeeService(roster, schedules, commands)
	entries := service.NewEntryService(roster, commands)
	payroll := service.NewPayrollService(roster, schedules, commands, logger)
	system := service.NewSystemService(roster, schedules, commands, snapshots, logger)

	// Инициализация хендлеров
	h := handler.NewPayrollHandler(employees, entries, payroll, system, logger)
	router := handler.NewRouter(h, logger)
	runner := handler.NewRunner(router.Setup(), h.Open, logger)

	scripts := os.Args[1:]
	if len(scripts) == 0 {
		scripts = []string{"-"}
	}

	failed := false
	for _, path := range scripts {
		if ctx.Err() != nil {
			logger.Info("interrupted")
			return 130
		}

		var result *handler.ScriptResult
		if path == "-" {
			result, err = runner.Run(ctx, "stdin", os.Stdin)
		} else {
			result, err = runner.RunFile(ctx, path)
		}
		if err != nil {
			logger.Error("script aborted", slog.String("script", path), slog.Any("error", err))
			return 1
		}

		for _, f := range result.Failures {
			fmt.Printf("%s:%s\n", result.Script, f)
		}
		status := "OK"
		if !result.Passed() {
			status = "FALHOU"
			failed = true
		}
		fmt.Printf("%s: %s (%d comandos, %d falhas)\n", result.Script, status, result.Commands, len(result.Failures))
	}

	if failed {
		return 1
	}
	return 0
}

func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		dialector = sqlite.Open(cfg.Path)
	}

	var db *gorm.DB
	var err error

	for attempt := range cfg.ConnectAttempts {
		if attempt > 0 {
			time.Sleep(time.Second)
		}
		db, err = gorm.Open(dialector, &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err == nil {
			sqlDB, _ := db.DB()
			if err = sqlDB.Ping(); err == nil {
				return db, nil
			}
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.ConnectAttempts, err)
}
