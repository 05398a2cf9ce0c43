package partner

import (
	"regexp"
	"strings"
	"time"

	"github.com/facturation/backend/internal/domain/shared"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Client represents a billed customer in the partner context
// It is the aggregate root for client-related operations
type Client struct {
	shared.BaseAggregateRoot
	Name        string `json:"nom"`
	ContactName string `json:"contact"`
	Email       string `json:"email"`
	Phone       string `json:"telephone"`
	Address     string `json:"adresse"`
	City        string `json:"ville"`
	PostalCode  string `json:"code_postal"`
	Country     string `json:"pays"`
	SIRET       string `json:"siret"`
	VATNumber   string `json:"tva_intracom"`
	Notes       string `json:"notes"`
}

// NewClient creates a new client with required fields
func NewClient(name, email string) (*Client, error) {
	if err := validateClientName(name); err != nil {
		return nil, err
	}
	if err := validateClientEmail(email); err != nil {
		return nil, err
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Country:           "France",
	}, nil
}

// Update updates the client's information
func (c *Client) Update(name, contactName, email, phone, address, city, postalCode, country, siret, vatNumber, notes string) error {
	if err := validateClientName(name); err != nil {
		return err
	}
	if err := validateClientEmail(email); err != nil {
		return err
	}

	c.Name = name
	c.ContactName = contactName
	c.Email = email
	c.Phone = phone
	c.Address = address
	c.City = city
	c.PostalCode = postalCode
	if country != "" {
		c.Country = country
	}
	c.SIRET = siret
	c.VATNumber = vatNumber
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

func validateClientName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Le nom du client est requis")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Le nom du client ne peut pas dépasser 200 caractères")
	}
	return nil
}

func validateClientEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_INPUT", "L'adresse email est invalide")
	}
	return nil
}
