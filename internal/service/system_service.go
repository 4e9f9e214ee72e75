package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wepayu/internal/command"
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/repository"
)

// SystemService - жизненный цикл системы и история команд
type SystemService interface {
	// Open начинает сессию: загружает снапшот (если есть хранилище) и очищает историю
	Open(ctx context.Context) error
	Reset(ctx context.Context) error
	Undo(ctx context.Context) error
	Redo(ctx context.Context) error
	// Shutdown сохраняет состояние; после него undo и redo запрещены до следующего Open
	Shutdown(ctx context.Context) error
}

type systemService struct {
	roster    repository.RosterRepository
	schedules repository.ScheduleRegistry
	commands  *command.Log
	snapshots repository.SnapshotRepository
	logger    *slog.Logger
	closed    bool
}

// NewSystemService создаёт сервис; snapshots может быть nil, тогда состояние живёт только в памяти
func NewSystemService(
	roster repository.RosterRepository,
	schedules repository.ScheduleRegistry,
	commands *command.Log,
	snapshots repository.SnapshotRepository,
	logger *slog.Logger,
) SystemService {
	return &systemService{
		roster:    roster,
		schedules: schedules,
		commands:  commands,
		snapshots: snapshots,
		logger:    logger,
	}
}

func (s *systemService) Open(ctx context.Context) error {
	s.closed = false
	s.commands.Clear()

	if s.snapshots == nil {
		return nil
	}

	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	state := repository.RosterState{
		Employees:   make(map[string]*domain.Employee, len(snap.Employees)),
		Memberships: make(map[string]*domain.UnionMembership, len(snap.Memberships)),
		LastID:      snap.LastID,
	}
	for _, emp := range snap.Employees {
		state.Employees[emp.ID] = emp
	}
	for _, m := range snap.Memberships {
		state.Memberships[m.ID] = m
	}
	s.roster.Restore(state)
	s.schedules.Restore(snap.Schedules)

	s.logger.Info("snapshot loaded",
		slog.Int("employees", len(snap.Employees)),
		slog.Int("memberships", len(snap.Memberships)),
		slog.Int("schedules", len(snap.Schedules)),
	)
	return nil
}

func (s *systemService) Reset(ctx context.Context) error {
	return s.commands.Execute(command.NewReset(s.roster, s.schedules))
}

func (s *systemService) Undo(ctx context.Context) error {
	if s.closed {
		return domain.ErrCommandsAfterClose
	}
	return s.commands.Undo()
}

func (s *systemService) Redo(ctx context.Context) error {
	if s.closed {
		return domain.ErrCommandsAfterClose
	}
	return s.commands.Redo()
}

func (s *systemService) Shutdown(ctx context.Context) error {
	if s.snapshots != nil {
		snap := &repository.Snapshot{
			Employees:   s.roster.List(),
			Memberships: s.roster.Memberships(),
			Schedules:   s.schedules.Custom(),
			LastID:      s.roster.LastID(),
		}
		if err := s.snapshots.Save(ctx, snap); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}
		s.logger.Info("snapshot saved", slog.Int("employees", len(snap.Employees)))
	}

	s.closed = true
	return nil
}
