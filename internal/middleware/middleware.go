package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wepayu/internal/dto"
)

// HandlerFunc выполняет одну команду скрипта и возвращает её результат
type HandlerFunc func(ctx context.Context, cmd *dto.Command) (string, error)

// Logger middleware для логирования команд
func Logger(logger *slog.Logger) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd *dto.Command) (string, error) {
			start := time.Now()

			result, err := next(ctx, cmd)

			attrs := []any{
				slog.String("command", cmd.Name),
				slog.Int("line", cmd.Line),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			logger.Debug("script command", attrs...)

			return result, err
		}
	}
}

// Recoverer middleware для обработки паник
func Recoverer(logger *slog.Logger) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, cmd *dto.Command) (result string, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic recovered",
						slog.Any("error", r),
						slog.String("command", cmd.Name),
						slog.Int("line", cmd.Line),
					)
					err = fmt.Errorf("internal error: %v", r)
				}
			}()
			return next(ctx, cmd)
		}
	}
}

// Chain применяет middleware так, что первый в списке оказывается внешним
func Chain(h HandlerFunc, mws ...func(HandlerFunc) HandlerFunc) HandlerFunc {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
