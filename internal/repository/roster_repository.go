package repository

import (
	"cmp"
	"maps"
	"slices"
	"strconv"

	"github.com/wepayu/internal/domain"
)

// RosterRepository определяет интерфейс для работы с сотрудниками и членствами в профсоюзе
type RosterRepository interface {
	NextID() string
	LastID() int64
	Create(emp *domain.Employee) error
	GetByID(id string) (*domain.Employee, error)
	Update(emp *domain.Employee) error
	Delete(id string) error
	List() []*domain.Employee
	FindByName(name string) []*domain.Employee

	GetMembership(id string) (*domain.UnionMembership, error)
	MembershipExists(id string) bool
	PutMembership(m *domain.UnionMembership)
	DeleteMembership(id string)
	Memberships() []*domain.UnionMembership

	Snapshot() RosterState
	Restore(state RosterState)
	Clear()
}

// RosterState - полная копия состояния реестра
type RosterState struct {
	Employees   map[string]*domain.Employee
	Memberships map[string]*domain.UnionMembership
	LastID      int64
}

type rosterRepository struct {
	employees   map[string]*domain.Employee
	memberships map[string]*domain.UnionMembership
	lastID      int64
}

// NewRosterRepository создаёт пустой реестр в памяти
func NewRosterRepository() RosterRepository {
	return &rosterRepository{
		employees:   make(map[string]*domain.Employee),
		memberships: make(map[string]*domain.UnionMembership),
	}
}

func (r *rosterRepository) NextID() string {
	r.lastID++
	return strconv.FormatInt(r.lastID, 10)
}

// LastID - последний выданный числовой id
func (r *rosterRepository) LastID() int64 {
	return r.lastID
}

func (r *rosterRepository) Create(emp *domain.Employee) error {
	if emp.ID == "" {
		emp.ID = r.NextID()
	}
	r.employees[emp.ID] = emp
	return nil
}

func (r *rosterRepository) GetByID(id string) (*domain.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeDoesNotExist
	}
	return emp, nil
}

func (r *rosterRepository) Update(emp *domain.Employee) error {
	if _, ok := r.employees[emp.ID]; !ok {
		return domain.ErrEmployeeDoesNotExist
	}
	r.employees[emp.ID] = emp
	return nil
}

func (r *rosterRepository) Delete(id string) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeDoesNotExist
	}
	delete(r.employees, id)
	return nil
}

// List возвращает сотрудников в порядке создания
func (r *rosterRepository) List() []*domain.Employee {
	result := slices.Collect(maps.Values(r.employees))
	slices.SortFunc(result, compareByID)
	return result
}

func (r *rosterRepository) FindByName(name string) []*domain.Employee {
	var result []*domain.Employee
	for _, emp := range r.List() {
		if emp.Name == name {
			result = append(result, emp)
		}
	}
	return result
}

func (r *rosterRepository) GetMembership(id string) (*domain.UnionMembership, error) {
	m, ok := r.memberships[id]
	if !ok {
		return nil, domain.ErrMemberDoesNotExist
	}
	return m, nil
}

func (r *rosterRepository) MembershipExists(id string) bool {
	_, ok := r.memberships[id]
	return ok
}

func (r *rosterRepository) PutMembership(m *domain.UnionMembership) {
	r.memberships[m.ID] = m
}

func (r *rosterRepository) DeleteMembership(id string) {
	delete(r.memberships, id)
}

func (r *rosterRepository) Memberships() []*domain.UnionMembership {
	result := slices.Collect(maps.Values(r.memberships))
	slices.SortFunc(result, func(a, b *domain.UnionMembership) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Snapshot делает глубокую копию всех коллекций
func (r *rosterRepository) Snapshot() RosterState {
	state := RosterState{
		Employees:   make(map[string]*domain.Employee, len(r.employees)),
		Memberships: make(map[string]*domain.UnionMembership, len(r.memberships)),
		LastID:      r.lastID,
	}
	for id, emp := range r.employees {
		state.Employees[id] = emp.Clone()
	}
	for id, m := range r.memberships {
		state.Memberships[id] = m.Clone()
	}
	return state
}

// Restore заменяет состояние копией из state
func (r *rosterRepository) Restore(state RosterState) {
	r.employees = make(map[string]*domain.Employee, len(state.Employees))
	r.memberships = make(map[string]*domain.UnionMembership, len(state.Memberships))
	for id, emp := range state.Employees {
		r.employees[id] = emp.Clone()
	}
	for id, m := range state.Memberships {
		r.memberships[id] = m.Clone()
	}
	r.lastID = state.LastID
}

func (r *rosterRepository) Clear() {
	r.employees = make(map[string]*domain.Employee)
	r.memberships = make(map[string]*domain.UnionMembership)
	r.lastID = 0
}

// compareByID сравнивает числовые id, нечисловые идут после в лексическом порядке
func compareByID(a, b *domain.Employee) int {
	ai, aErr := strconv.ParseInt(a.ID, 10, 64)
	bi, bErr := strconv.ParseInt(b.ID, 10, 64)
	switch {
	case aErr == nil && bErr == nil:
		return cmp.Compare(ai, bi)
	case aErr == nil:
		return -1
	case bErr == nil:
		return 1
	}
	return cmp.Compare(a.ID, b.ID)
}
