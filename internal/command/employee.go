package command

import (
	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/repository"
)

// CreateEmployee добавляет запись; id выделяется при первом Apply и сохраняется для redo
type CreateEmployee struct {
	roster   repository.RosterRepository
	template *domain.Employee
	id       string
}

func NewCreateEmployee(roster repository.RosterRepository, template *domain.Employee) *CreateEmployee {
	return &CreateEmployee{roster: roster, template: template.Clone()}
}

func (c *CreateEmployee) Name() string { return "criarEmpregado" }

func (c *CreateEmployee) Apply() error {
	if c.id == "" {
		c.id = c.roster.NextID()
	}
	emp := c.template.Clone()
	emp.ID = c.id
	return c.roster.Create(emp)
}

func (c *CreateEmployee) Reverse() error {
	return c.roster.Delete(c.id)
}

// ID - идентификатор, выданный при выполнении
func (c *CreateEmployee) ID() string {
	return c.id
}

// RemoveEmployee удаляет запись, членство в профсоюзе остаётся в индексе
type RemoveEmployee struct {
	roster  repository.RosterRepository
	id      string
	removed *domain.Employee
}

func NewRemoveEmployee(roster repository.RosterRepository, id string) *RemoveEmployee {
	return &RemoveEmployee{roster: roster, id: id}
}

func (c *RemoveEmployee) Name() string { return "removerEmpregado" }

func (c *RemoveEmployee) Apply() error {
	emp, err := c.roster.GetByID(c.id)
	if err != nil {
		return err
	}
	c.removed = emp.Clone()
	return c.roster.Delete(c.id)
}

func (c *RemoveEmployee) Reverse() error {
	return c.roster.Create(c.removed.Clone())
}

// Alteration строит новую версию записи из копии текущей.
// Если возвращено членство, оно регистрируется в индексе профсоюза.
type Alteration func(current *domain.Employee) (*domain.Employee, *domain.UnionMembership, error)

// AlterEmployee меняет атрибут записи; отмена возвращает прежнюю копию
type AlterEmployee struct {
	roster    repository.RosterRepository
	id        string
	attribute string
	alter     Alteration

	prior      *domain.Employee
	addedUnion string
}

func NewAlterEmployee(roster repository.RosterRepository, id, attribute string, alter Alteration) *AlterEmployee {
	return &AlterEmployee{roster: roster, id: id, attribute: attribute, alter: alter}
}

func (c *AlterEmployee) Name() string { return "alteraEmpregado " + c.attribute }

func (c *AlterEmployee) Apply() error {
	emp, err := c.roster.GetByID(c.id)
	if err != nil {
		return err
	}

	next, membership, err := c.alter(emp.Clone())
	if err != nil {
		return err
	}
	if membership != nil && c.roster.MembershipExists(membership.ID) {
		return domain.ErrMembershipIDTaken
	}

	c.prior = emp.Clone()
	c.addedUnion = ""
	if membership != nil {
		c.roster.PutMembership(membership)
		c.addedUnion = membership.ID
	}
	return c.roster.Update(next)
}

func (c *AlterEmployee) Reverse() error {
	if c.addedUnion != "" {
		c.roster.DeleteMembership(c.addedUnion)
	}
	return c.roster.Update(c.prior.Clone())
}
