package models

import "github.com/SscSPs/oris_formation_app/internal/core/domain"

// Client is a row of the clients table.
type Client struct {
	ClientID    string `db:"client_id"`
	Name        string `db:"name"`
	Siret       string `db:"siret"`
	VATNumber   string `db:"vat_number"`
	Address     string `db:"address"`
	City        string `db:"city"`
	Zip         string `db:"zip"`
	ContactName string `db:"contact_name"`
	Email       string `db:"email"`
	Phone       string `db:"phone"`
	Status      string `db:"status"`
	AuditFields
}

func ToModelClient(c domain.Client) Client {
	return Client{
		ClientID:    c.ClientID,
		Name:        c.Name,
		Siret:       c.Siret,
		VATNumber:   c.VATNumber,
		Address:     c.Address,
		City:        c.City,
		Zip:         c.Zip,
		ContactName: c.ContactName,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      string(c.Status),
		AuditFields: toModelAudit(c.AuditFields),
	}
}

func (m Client) ToDomain() domain.Client {
	return domain.Client{
		ClientID:    m.ClientID,
		Name:        m.Name,
		Siret:       m.Siret,
		VATNumber:   m.VATNumber,
		Address:     m.Address,
		City:        m.City,
		Zip:         m.Zip,
		ContactName: m.ContactName,
		Email:       m.Email,
		Phone:       m.Phone,
		Status:      domain.ClientStatus(m.Status),
		AuditFields: m.AuditFields.toDomain(),
	}
}
