package command

import (
	"log/slog"

	"github.com/wepayu/internal/domain"
)

// Command - обратимая операция над реестром
type Command interface {
	Name() string
	// Apply выполняет операцию и запоминает состояние для отмены
	Apply() error
	// Reverse восстанавливает состояние, запомненное в Apply
	Reverse() error
}

// Log - история команд с undo/redo
type Log struct {
	history []Command
	redo    []Command
	logger  *slog.Logger
}

// NewLog создаёт пустую историю
func NewLog(logger *slog.Logger) *Log {
	return &Log{logger: logger}
}

// Execute выполняет команду, при ошибке история не меняется
func (l *Log) Execute(cmd Command) error {
	if err := cmd.Apply(); err != nil {
		l.logger.Debug("command failed", slog.String("command", cmd.Name()), slog.Any("error", err))
		return err
	}
	l.history = append(l.history, cmd)
	l.redo = nil
	l.logger.Debug("command executed", slog.String("command", cmd.Name()), slog.Int("history", len(l.history)))
	return nil
}

func (l *Log) Undo() error {
	if len(l.history) == 0 {
		return domain.ErrNothingToUndo
	}
	cmd := l.history[len(l.history)-1]
	if err := cmd.Reverse(); err != nil {
		return err
	}
	l.history = l.history[:len(l.history)-1]
	l.redo = append(l.redo, cmd)
	l.logger.Debug("command undone", slog.String("command", cmd.Name()))
	return nil
}

func (l *Log) Redo() error {
	if len(l.redo) == 0 {
		return domain.ErrNothingToRedo
	}
	cmd := l.redo[len(l.redo)-1]
	if err := cmd.Apply(); err != nil {
		return err
	}
	l.redo = l.redo[:len(l.redo)-1]
	l.history = append(l.history, cmd)
	l.logger.Debug("command redone", slog.String("command", cmd.Name()))
	return nil
}

// Clear забывает всю историю
func (l *Log) Clear() {
	l.history = nil
	l.redo = nil
}

// Depth возвращает размеры стеков истории и повтора
func (l *Log) Depth() (history, redo int) {
	return len(l.history), len(l.redo)
}
