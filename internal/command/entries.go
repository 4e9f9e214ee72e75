package command

import (
	"slices"

	"github.com/wepayu/internal/domain"
	"github.com/wepayu/internal/repository"
)

// PostTimeCard добавляет карточку horista
type PostTimeCard struct {
	roster repository.RosterRepository
	id     string
	card   domain.TimeCard
	prior  []domain.TimeCard
}

func NewPostTimeCard(roster repository.RosterRepository, id string, card domain.TimeCard) *PostTimeCard {
	return &PostTimeCard{roster: roster, id: id, card: card}
}

func (c *PostTimeCard) Name() string { return "lancaCartao" }

func (c *PostTimeCard) Apply() error {
	emp, err := c.roster.GetByID(c.id)
	if err != nil {
		return err
	}
	if !emp.AcceptsTimeCard() {
		return domain.ErrNotHourly
	}
	c.prior = slices.Clone(emp.TimeCards)
	emp.TimeCards = append(slices.Clone(emp.TimeCards), c.card)
	return nil
}

func (c *PostTimeCard) Reverse() error {
	emp, err := c.roster.GetByID(c.id)
	if err != nil {
		return err
	}
	emp.TimeCards = slices.Clone(c.prior)
	return nil
}

// PostSale добавляет результат продажи comissionado
type PostSale struct {
	roster repository.RosterRepository
	id     string
	sale   domain.Sale
	prior  []domain.Sale
}

func NewPostSale(roster repository.RosterRepository, id string, sale domain.Sale) *PostSale {
	return &PostSale{roster: roster, id: id, sale: sale}
}

func (c *PostSale) Name() string { return "lancaVenda" }

func (c *PostSale) Apply() error {
	emp, err := c.roster.GetByID(c.id)
	if err != nil {
		return err
	}
	if !emp.AcceptsSale() {
		return domain.ErrNotCommissioned
	}
	c.prior = slices.Clone(emp.Sales)
	emp.Sales = append(slices.Clone(emp.Sales), c.sale)
	return nil
}

func (c *PostSale) Reverse() error {
	emp, err := c.roster.GetByID(c.id)
	if err != nil {
		return err
	}
	emp.Sales = slices.Clone(c.prior)
	return nil
}

// PostServiceCharge добавляет сбор члену профсоюза
type PostServiceCharge struct {
	roster       repository.RosterRepository
	membershipID string
	charge       domain.ServiceCharge
	prior        []domain.ServiceCharge
}

func NewPostServiceCharge(roster repository.RosterRepository, membershipID string, charge domain.ServiceCharge) *PostServiceCharge {
	return &PostServiceCharge{roster: roster, membershipID: membershipID, charge: charge}
}

func (c *PostServiceCharge) Name() string { return "lancaTaxaServico" }

func (c *PostServiceCharge) Apply() error {
	m, err := c.roster.GetMembership(c.membershipID)
	if err != nil {
		return err
	}
	c.prior = slices.Clone(m.Charges)
	m.Charges = append(slices.Clone(m.Charges), c.charge)
	return nil
}

func (c *PostServiceCharge) Reverse() error {
	m, err := c.roster.GetMembership(c.membershipID)
	if err != nil {
		return err
	}
	m.Charges = slices.Clone(c.prior)
	return nil
}
