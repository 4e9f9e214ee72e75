package service_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wepayu/internal/command"
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/dto"
	"github.com/wepayu/internal/repository"
	"github.com/wepayu/internal/service"
)

type fixture struct {
	roster    repository.RosterRepository
	employees service.EmployeeService
	entries   service.EntryService
	payroll   service.PayrollService
	system    service.SystemService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	roster := repository.NewRosterRepository()
	schedules := repository.NewScheduleRegistry()
	commands := command.NewLog(logger)

	return &fixture{
		roster:    roster,
		employees: service.NewEmployeeService(roster, schedules, commands),
		entries:   service.NewEntryService(roster, commands),
		payroll:   service.NewPayrollService(roster, schedules, commands, logger),
		system:    service.NewSystemService(roster, schedules, commands, nil, logger),
	}
}

func ptr(s string) *string { return &s }

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func (f *fixture) hire(t *testing.T, name, kind, salary string, commission *string) string {
	t.Helper()
	id, err := f.employees.Create(context.Background(), &dto.CreateEmployeeRequest{
		Name:       name,
		Address:    "Rua " + name,
		Kind:       kind,
		Salary:     salary,
		Commission: commission,
	})
	require.NoError(t, err)
	return id
}

func (f *fixture) card(t *testing.T, id, date, hours string) {
	t.Helper()
	require.NoError(t, f.entries.PostTimeCard(context.Background(), &dto.TimeCardRequest{
		EmployeeID: id, Date: date, Hours: hours,
	}))
}

func (f *fixture) total(t *testing.T, date string) string {
	t.Helper()
	total, err := f.payroll.Total(context.Background(), mustDate(t, date))
	require.NoError(t, err)
	return total.String()
}

func TestCreate_KindRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		kind       string
		commission *string
		wantErr    error
	}{
		{"hourly", "horista", nil, nil},
		{"salaried", "assalariado", nil, nil},
		{"commissioned", "comissionado", ptr("0,1"), nil},
		{"commissioned without rate", "comissionado", nil, dto.ErrKindNotApplicable},
		{"hourly with rate", "horista", ptr("0,1"), dto.ErrKindNotApplicable},
		{"unknown", "gerente", nil, dto.ErrKindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.employees.Create(ctx, &dto.CreateEmployeeRequest{
				Name: "X", Address: "Y", Kind: tt.kind, Salary: "100", Commission: tt.commission,
			})
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCreate_SequentialIDs(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, "1", f.hire(t, "Ana", "horista", "10", nil))
	assert.Equal(t, "2", f.hire(t, "Bia", "horista", "10", nil))
}

func TestGetAttribute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.hire(t, "Ana", "comissionado", "1200", ptr("0,1"))

	tests := []struct {
		attribute string
		want      string
		wantErr   error
	}{
		{"nome", "Ana", nil},
		{"endereco", "Rua Ana", nil},
		{"tipo", "comissionado", nil},
		{"salario", "1200,00", nil},
		{"comissao", "0,10", nil},
		{"sindicalizado", "false", nil},
		{"metodoPagamento", "emMaos", nil},
		{"agendaPagamento", "semanal 2 5", nil},
		{"idSindicato", "", domain.ErrNotUnionized},
		{"banco", "", domain.ErrNotPaidByBank},
		{"cor", "", domain.ErrAttributeDoesNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.attribute, func(t *testing.T) {
			got, err := f.employees.GetAttribute(ctx, id, tt.attribute)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.hire(t, "Ana", "horista", "10", nil)
	f.hire(t, "Bia", "horista", "10", nil)
	second := f.hire(t, "Ana", "horista", "10", nil)

	id, err := f.employees.FindByName(ctx, &dto.FindByNameRequest{Name: "Ana", Index: "2"})
	require.NoError(t, err)
	assert.Equal(t, second, id)

	_, err = f.employees.FindByName(ctx, &dto.FindByNameRequest{Name: "Ana", Index: "3"})
	assert.Equal(t, domain.ErrNoEmployeeWithName, err)
}

func TestAlter_ChangeKindKeepsUnionAndMethod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.hire(t, "Ana", "horista", "10", nil)
	f.card(t, id, "3/1/2005", "8")

	require.NoError(t, f.employees.Alter(ctx, id, &dto.EnrollRequest{UnionID: "s1", UnionDues: "1"}))
	require.NoError(t, f.employees.Alter(ctx, id, &dto.AlterPaymentMethodRequest{Method: "correios"}))
	require.NoError(t, f.employees.Alter(ctx, id, &dto.AlterKindRequest{Kind: "comissionado", Commission: ptr("0,05")}))

	emp, err := f.employees.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.KindCommissioned, emp.Kind)
	assert.Equal(t, "10,00", emp.Salary.String())
	assert.Equal(t, "s1", emp.UnionID)
	assert.Equal(t, domain.PaymentByMail, emp.PaymentMethod.Kind)
	assert.Equal(t, "semanal 2 5", emp.Schedule.Description())
	assert.Empty(t, emp.TimeCards)
}

func TestAlter_DuplicateUnionID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := f.hire(t, "Ana", "horista", "10", nil)
	b := f.hire(t, "Bia", "horista", "10", nil)

	require.NoError(t, f.employees.Alter(ctx, a, &dto.EnrollRequest{UnionID: "s1", UnionDues: "1"}))
	err := f.employees.Alter(ctx, b, &dto.EnrollRequest{UnionID: "s1", UnionDues: "1"})
	assert.Equal(t, domain.ErrMembershipIDTaken, err)

	// выход из профсоюза не освобождает id
	require.NoError(t, f.employees.Alter(ctx, a, &dto.AlterUnionRequest{Unionized: "false"}))
	err = f.employees.Alter(ctx, b, &dto.EnrollRequest{UnionID: "s1", UnionDues: "1"})
	assert.Equal(t, domain.ErrMembershipIDTaken, err)
}

func TestAlter_UnknownSchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.hire(t, "Ana", "horista", "10", nil)

	err := f.employees.Alter(ctx, id, &dto.AlterScheduleRequest{Schedule: "semanal 3"})
	assert.Equal(t, domain.ErrScheduleNotAvailable, err)

	require.NoError(t, f.payroll.CreateSchedule(ctx, "semanal 3"))
	require.NoError(t, f.employees.Alter(ctx, id, &dto.AlterScheduleRequest{Schedule: "semanal 3"}))
	assert.Equal(t, domain.ErrScheduleExists, f.payroll.CreateSchedule(ctx, "semanal 3"))
}

func TestQueries_InclusiveRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.hire(t, "Ana", "horista", "10", nil)
	f.card(t, id, "3/1/2005", "10")
	f.card(t, id, "4/1/2005", "7,5")

	normal, err := f.entries.NormalHours(ctx, &dto.RangeQuery{EmployeeID: id, StartDate: "3/1/2005", EndDate: "4/1/2005"})
	require.NoError(t, err)
	assert.Equal(t, "15,5", normal.Compact())

	extra, err := f.entries.ExtraHours(ctx, &dto.RangeQuery{EmployeeID: id, StartDate: "3/1/2005", EndDate: "3/1/2005"})
	require.NoError(t, err)
	assert.Equal(t, "2", extra.Compact())

	_, err = f.entries.NormalHours(ctx, &dto.RangeQuery{EmployeeID: id, StartDate: "5/1/2005", EndDate: "4/1/2005"})
	assert.Equal(t, domain.ErrDateRangeInverted, err)

	_, err = f.entries.Sales(ctx, &dto.RangeQuery{EmployeeID: id, StartDate: "3/1/2005", EndDate: "4/1/2005"})
	assert.Equal(t, domain.ErrNotCommissioned, err)
}

func TestPayroll_HourlyWeek(t *testing.T) {
	f := newFixture(t)
	id := f.hire(t, "Ana", "horista", "20", nil)
	for _, d := range []string{"3/1/2005", "4/1/2005", "5/1/2005", "6/1/2005", "7/1/2005"} {
		f.card(t, id, d, "8")
	}

	assert.Equal(t, "800,00", f.total(t, "7/1/2005"))
	assert.Equal(t, "0,00", f.total(t, "6/1/2005"))
}

func TestPayroll_Overtime(t *testing.T) {
	f := newFixture(t)
	id := f.hire(t, "Ana", "horista", "20", nil)
	f.card(t, id, "5/1/2005", "10")

	// 8*20 + 2*20*1,5
	assert.Equal(t, "220,00", f.total(t, "7/1/2005"))
}

func TestPayroll_SalariedMonthEnd(t *testing.T) {
	f := newFixture(t)
	f.hire(t, "Caio", "assalariado", "2400", nil)

	assert.Equal(t, "2400,00", f.total(t, "31/1/2005"))
	assert.Equal(t, "0,00", f.total(t, "28/1/2005"))
}

func TestPayroll_CommissionedBiweekly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.hire(t, "Duda", "comissionado", "1200", ptr("0,10"))
	require.NoError(t, f.entries.PostSale(ctx, &dto.SaleRequest{EmployeeID: id, Date: "20/1/2005", Amount: "500"}))

	assert.Equal(t, "603,84", f.total(t, "28/1/2005"))
	assert.Equal(t, "0,00", f.total(t, "21/1/2005"))
}

func TestPayroll_TotalIsIdempotent(t *testing.T) {
	f := newFixture(t)
	id := f.hire(t, "Ana", "horista", "20", nil)
	f.card(t, id, "3/1/2005", "8")

	assert.Equal(t, f.total(t, "7/1/2005"), f.total(t, "7/1/2005"))
}

func TestPayroll_HourlyDebtCarry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dir := t.TempDir()

	id := f.hire(t, "Ana", "horista", "20", nil)
	require.NoError(t, f.employees.Alter(ctx, id, &dto.EnrollRequest{UnionID: "s1", UnionDues: "10"}))

	payroll, err := f.payroll.Run(ctx, mustDate(t, "7/1/2005"), filepath.Join(dir, "week1.txt"))
	require.NoError(t, err)
	require.Len(t, payroll.Hourly, 1)
	assert.Equal(t, "0,00", payroll.Hourly[0].Deductions.String())

	m, err := f.roster.GetMembership("s1")
	require.NoError(t, err)
	assert.Equal(t, "70,00", m.Debt.String())

	f.card(t, id, "10/1/2005", "8")
	require.NoError(t, f.entries.PostServiceCharge(ctx, &dto.ServiceChargeRequest{MemberID: "s1", Date: "12/1/2005", Amount: "5"}))

	payroll, err = f.payroll.Run(ctx, mustDate(t, "14/1/2005"), filepath.Join(dir, "week2.txt"))
	require.NoError(t, err)
	line := payroll.Hourly[0]
	assert.Equal(t, "160,00", line.Gross.String())
	assert.Equal(t, "145,00", line.Deductions.String())
	assert.Equal(t, "15,00", line.Net.String())
	assert.Equal(t, "0,00", m.Debt.String())
}

func TestPayroll_DeductionsCappedAtGross(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.hire(t, "Ana", "horista", "10", nil)
	require.NoError(t, f.employees.Alter(ctx, id, &dto.EnrollRequest{UnionID: "s1", UnionDues: "10"}))
	f.card(t, id, "7/1/2005", "1")

	payroll, err := f.payroll.Run(ctx, mustDate(t, "7/1/2005"), filepath.Join(t.TempDir(), "folha.txt"))
	require.NoError(t, err)
	line := payroll.Hourly[0]
	assert.Equal(t, "10,00", line.Deductions.String())
	assert.Equal(t, "0,00", line.Net.String())

	m, _ := f.roster.GetMembership("s1")
	assert.Equal(t, "60,00", m.Debt.String())
}

func TestPayroll_HourlyDuesFixedWeekOnMonthlySchedule(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.hire(t, "Ana", "horista", "20", nil)
	require.NoError(t, f.employees.Alter(ctx, id, &dto.EnrollRequest{UnionID: "s1", UnionDues: "10"}))
	require.NoError(t, f.employees.Alter(ctx, id, &dto.AlterScheduleRequest{Schedule: "mensal $"}))
	f.card(t, id, "3/1/2005", "8")
	f.card(t, id, "27/1/2005", "8")
	require.NoError(t, f.entries.PostServiceCharge(ctx, &dto.ServiceChargeRequest{MemberID: "s1", Date: "10/1/2005", Amount: "5"}))
	require.NoError(t, f.entries.PostServiceCharge(ctx, &dto.ServiceChargeRequest{MemberID: "s1", Date: "28/1/2005", Amount: "3"}))

	payroll, err := f.payroll.Run(ctx, mustDate(t, "31/1/2005"), filepath.Join(t.TempDir(), "folha.txt"))
	require.NoError(t, err)
	require.Len(t, payroll.Hourly, 1)

	// 7 дней взносов и сборы только за последние 7 дней
	line := payroll.Hourly[0]
	assert.Equal(t, "320,00", line.Gross.String())
	assert.Equal(t, "73,00", line.Deductions.String())
	assert.Equal(t, "247,00", line.Net.String())

	m, _ := f.roster.GetMembership("s1")
	assert.True(t, m.Debt.IsZero())
}

func TestPayroll_RunUndoRedo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	out := filepath.Join(t.TempDir(), "folha.txt")

	id := f.hire(t, "Ana", "horista", "20", nil)
	require.NoError(t, f.employees.Alter(ctx, id, &dto.EnrollRequest{UnionID: "s1", UnionDues: "10"}))

	_, err := f.payroll.Run(ctx, mustDate(t, "7/1/2005"), out)
	require.NoError(t, err)
	require.NoError(t, f.system.Undo(ctx))
	require.NoError(t, os.Remove(out))
	require.NoError(t, f.system.Redo(ctx))

	m, _ := f.roster.GetMembership("s1")
	assert.Equal(t, "70,00", m.Debt.String())

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "FOLHA DE PAGAMENTO DO DIA 2005-01-07")
}

func TestPayroll_FailedWriteKeepsDebt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.hire(t, "Ana", "horista", "20", nil)
	require.NoError(t, f.employees.Alter(ctx, id, &dto.EnrollRequest{UnionID: "s1", UnionDues: "10"}))

	_, err := f.payroll.Run(ctx, mustDate(t, "7/1/2005"), filepath.Join(t.TempDir(), "missing", "folha.txt"))
	require.Error(t, err)

	m, _ := f.roster.GetMembership("s1")
	assert.True(t, m.Debt.IsZero())
}

func TestSystem_UndoRedoRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	id := f.hire(t, "Ana", "horista", "20", nil)
	require.NoError(t, f.employees.Alter(ctx, id, &dto.AlterNameRequest{Name: "Bia"}))

	require.NoError(t, f.system.Undo(ctx))
	name, _ := f.employees.GetAttribute(ctx, id, "nome")
	assert.Equal(t, "Ana", name)

	require.NoError(t, f.system.Redo(ctx))
	name, _ = f.employees.GetAttribute(ctx, id, "nome")
	assert.Equal(t, "Bia", name)
}

func TestSystem_ResetAndShutdown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.hire(t, "Ana", "horista", "20", nil)

	require.NoError(t, f.system.Reset(ctx))
	assert.Empty(t, f.roster.List())

	require.NoError(t, f.system.Undo(ctx))
	assert.Len(t, f.roster.List(), 1)

	require.NoError(t, f.system.Shutdown(ctx))
	assert.Equal(t, domain.ErrCommandsAfterClose, f.system.Undo(ctx))
	assert.Equal(t, domain.ErrCommandsAfterClose, f.system.Redo(ctx))

	require.NoError(t, f.system.Open(ctx))
	assert.Equal(t, domain.ErrNothingToUndo, f.system.Undo(ctx))
}
