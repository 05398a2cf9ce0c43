package models

import (
	"github.com/facturation/backend/internal/domain/partner"
)

// ClientModel is the persistence model for the Client aggregate root.
// Business columns keep the historical French schema names.
type ClientModel struct {
	AggregateModel
	Name        string `gorm:"column:nom;type:varchar(200);not null;index"`
	ContactName string `gorm:"column:contact;type:varchar(200)"`
	Email       string `gorm:"column:email;type:varchar(200);index"`
	Phone       string `gorm:"column:telephone;type:varchar(50)"`
	Address     string `gorm:"column:adresse;type:varchar(500)"`
	City        string `gorm:"column:ville;type:varchar(100);index"`
	PostalCode  string `gorm:"column:code_postal;type:varchar(20)"`
	Country     string `gorm:"column:pays;type:varchar(100);not null;default:'France'"`
	SIRET       string `gorm:"column:siret;type:varchar(20)"`
	VATNumber   string `gorm:"column:tva_intracom;type:varchar(30)"`
	Notes       string `gorm:"column:notes;type:text"`
}

// TableName returns the table name for GORM
func (ClientModel) TableName() string {
	return "clients"
}

// ToDomain converts the persistence model to a domain Client entity.
func (m *ClientModel) ToDomain() *partner.Client {
	return &partner.Client{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		ContactName:       m.ContactName,
		Email:             m.Email,
		Phone:             m.Phone,
		Address:           m.Address,
		City:              m.City,
		PostalCode:        m.PostalCode,
		Country:           m.Country,
		SIRET:             m.SIRET,
		VATNumber:         m.VATNumber,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Client entity.
func (m *ClientModel) FromDomain(c *partner.Client) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.ContactName = c.ContactName
	m.Email = c.Email
	m.Phone = c.Phone
	m.Address = c.Address
	m.City = c.City
	m.PostalCode = c.PostalCode
	m.Country = c.Country
	m.SIRET = c.SIRET
	m.VATNumber = c.VATNumber
	m.Notes = c.Notes
}

// ClientModelFromDomain creates a new persistence model from a domain Client entity.
func ClientModelFromDomain(c *partner.Client) *ClientModel {
	m := &ClientModel{}
	m.FromDomain(c)
	return m
}
