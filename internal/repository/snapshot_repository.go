package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wepayu/internal/domain"
	"gorm.io/gorm"
)

// Snapshot - полное состояние системы для сохранения между запусками
type Snapshot struct {
	Employees   []*domain.Employee
	Memberships []*domain.UnionMembership
	Schedules   []domain.PaymentSchedule
	LastID      int64
}

// SnapshotRepository определяет интерфейс хранилища снапшотов
type SnapshotRepository interface {
	Save(ctx context.Context, snap *Snapshot) error
	Load(ctx context.Context) (*Snapshot, error)
}

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository создаёт новый экземпляр репозитория
func NewSnapshotRepository(db *gorm.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Save заменяет сохранённое состояние целиком в одной транзакции
func (r *snapshotRepository) Save(ctx context.Context, snap *Snapshot) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{
			&employeeRow{}, &timeCardRow{}, &saleRow{},
			&membershipRow{}, &serviceChargeRow{}, &scheduleRow{}, &systemStateRow{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("failed to clear snapshot: %w", err)
			}
		}

		var (
			employees []employeeRow
			cards     []timeCardRow
			sales     []saleRow
		)
		for _, emp := range snap.Employees {
			employees = append(employees, toEmployeeRow(emp))
			for i, c := range emp.TimeCards {
				cards = append(cards, timeCardRow{
					EmployeeID: emp.ID,
					Seq:        i,
					WorkDate:   c.Date.Format(domain.ReportDateLayout),
					Hours:      c.Hours.Decimal(),
				})
			}
			for i, s := range emp.Sales {
				sales = append(sales, saleRow{
					EmployeeID: emp.ID,
					Seq:        i,
					SaleDate:   s.Date.Format(domain.ReportDateLayout),
					Amount:     s.Amount.Decimal(),
				})
			}
		}

		var (
			memberships []membershipRow
			charges     []serviceChargeRow
		)
		for _, m := range snap.Memberships {
			memberships = append(memberships, membershipRow{
				ID:        m.ID,
				DailyDues: m.DailyDues.Decimal(),
				Debt:      m.Debt.Decimal(),
			})
			for i, c := range m.Charges {
				charges = append(charges, serviceChargeRow{
					MembershipID: m.ID,
					Seq:          i,
					ChargeDate:   c.Date.Format(domain.ReportDateLayout),
					Amount:       c.Amount.Decimal(),
				})
			}
		}

		schedules := make([]scheduleRow, 0, len(snap.Schedules))
		for i, s := range snap.Schedules {
			schedules = append(schedules, scheduleRow{Description: s.Description(), Seq: i})
		}

		if err := createAll(tx, employees); err != nil {
			return err
		}
		if err := createAll(tx, cards); err != nil {
			return err
		}
		if err := createAll(tx, sales); err != nil {
			return err
		}
		if err := createAll(tx, memberships); err != nil {
			return err
		}
		if err := createAll(tx, charges); err != nil {
			return err
		}
		if err := createAll(tx, schedules); err != nil {
			return err
		}
		return tx.Create(&systemStateRow{ID: 1, LastID: snap.LastID}).Error
	})
}

// createAll вставляет строки пачками, пустой срез пропускается
func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.CreateInBatches(&rows, 200).Error; err != nil {
		return fmt.Errorf("failed to save snapshot rows: %w", err)
	}
	return nil
}

// Load читает сохранённое состояние, пустое хранилище даёт пустой снапшот
func (r *snapshotRepository) Load(ctx context.Context) (*Snapshot, error) {
	db := r.db.WithContext(ctx)
	snap := &Snapshot{}

	var state []systemStateRow
	if err := db.Find(&state).Error; err != nil {
		return nil, err
	}
	if len(state) > 0 {
		snap.LastID = state[0].LastID
	}

	var schedules []scheduleRow
	if err := db.Order("seq ASC").Find(&schedules).Error; err != nil {
		return nil, err
	}
	for _, row := range schedules {
		s, err := domain.ParseSchedule(row.Description)
		if err != nil {
			return nil, fmt.Errorf("corrupt snapshot: schedule %q: %w", row.Description, err)
		}
		snap.Schedules = append(snap.Schedules, s)
	}

	var memberships []membershipRow
	if err := db.Order("id ASC").Find(&memberships).Error; err != nil {
		return nil, err
	}
	var charges []serviceChargeRow
	if err := db.Order("membership_id ASC, seq ASC").Find(&charges).Error; err != nil {
		return nil, err
	}
	byMembership := make(map[string]*domain.UnionMembership, len(memberships))
	for _, row := range memberships {
		m := &domain.UnionMembership{
			ID:        row.ID,
			DailyDues: domain.NewMoney(row.DailyDues),
			Debt:      domain.NewMoney(row.Debt),
		}
		byMembership[m.ID] = m
		snap.Memberships = append(snap.Memberships, m)
	}
	for _, row := range charges {
		m, ok := byMembership[row.MembershipID]
		if !ok {
			return nil, fmt.Errorf("corrupt snapshot: charge for unknown membership %q", row.MembershipID)
		}
		date, err := parseStoredDate(row.ChargeDate)
		if err != nil {
			return nil, err
		}
		m.Charges = append(m.Charges, domain.ServiceCharge{Date: date, Amount: domain.NewMoney(row.Amount)})
	}

	var employees []employeeRow
	if err := db.Find(&employees).Error; err != nil {
		return nil, err
	}
	var cards []timeCardRow
	if err := db.Order("employee_id ASC, seq ASC").Find(&cards).Error; err != nil {
		return nil, err
	}
	var sales []saleRow
	if err := db.Order("employee_id ASC, seq ASC").Find(&sales).Error; err != nil {
		return nil, err
	}

	byEmployee := make(map[string]*domain.Employee, len(employees))
	for _, row := range employees {
		emp, err := fromEmployeeRow(row)
		if err != nil {
			return nil, err
		}
		byEmployee[emp.ID] = emp
		snap.Employees = append(snap.Employees, emp)
	}
	for _, row := range cards {
		emp, ok := byEmployee[row.EmployeeID]
		if !ok {
			return nil, fmt.Errorf("corrupt snapshot: time card for unknown employee %q", row.EmployeeID)
		}
		date, err := parseStoredDate(row.WorkDate)
		if err != nil {
			return nil, err
		}
		emp.TimeCards = append(emp.TimeCards, domain.TimeCard{Date: date, Hours: domain.NewMoney(row.Hours)})
	}
	for _, row := range sales {
		emp, ok := byEmployee[row.EmployeeID]
		if !ok {
			return nil, fmt.Errorf("corrupt snapshot: sale for unknown employee %q", row.EmployeeID)
		}
		date, err := parseStoredDate(row.SaleDate)
		if err != nil {
			return nil, err
		}
		emp.Sales = append(emp.Sales, domain.Sale{Date: date, Amount: domain.NewMoney(row.Amount)})
	}

	return snap, nil
}

func toEmployeeRow(emp *domain.Employee) employeeRow {
	return employeeRow{
		ID:             emp.ID,
		Name:           emp.Name,
		Address:        emp.Address,
		Kind:           string(emp.Kind),
		Salary:         emp.Salary.Decimal(),
		CommissionRate: emp.CommissionRate.Decimal(),
		PaymentMethod:  string(emp.PaymentMethod.Kind),
		Bank:           emp.PaymentMethod.Bank,
		Agency:         emp.PaymentMethod.Agency,
		Account:        emp.PaymentMethod.Account,
		UnionID:        emp.UnionID,
		Schedule:       emp.Schedule.Description(),
	}
}

func fromEmployeeRow(row employeeRow) (*domain.Employee, error) {
	kind, ok := domain.ParseKind(row.Kind)
	if !ok {
		return nil, fmt.Errorf("corrupt snapshot: employee %s has kind %q", row.ID, row.Kind)
	}
	schedule, err := domain.ParseSchedule(row.Schedule)
	if err != nil {
		return nil, fmt.Errorf("corrupt snapshot: employee %s schedule %q: %w", row.ID, row.Schedule, err)
	}
	return &domain.Employee{
		ID:             row.ID,
		Name:           row.Name,
		Address:        row.Address,
		Kind:           kind,
		Salary:         domain.NewMoney(row.Salary),
		CommissionRate: domain.NewMoney(row.CommissionRate),
		PaymentMethod: domain.PaymentMethod{
			Kind:    domain.PaymentMethodKind(row.PaymentMethod),
			Bank:    row.Bank,
			Agency:  row.Agency,
			Account: row.Account,
		},
		UnionID:  row.UnionID,
		Schedule: schedule,
	}, nil
}

func parseStoredDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.ReportDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt snapshot: date %q: %w", s, err)
	}
	return t, nil
}
