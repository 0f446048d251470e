package dto

import (
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// CreateClientRequest defines the data needed to create a client or prospect.
type CreateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Siret       string `json:"siret"`
	VATNumber   string `json:"vatNumber"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	ContactName string `json:"contactName"`
	Email       string `json:"email" binding:"omitempty,email"`
	Phone       string `json:"phone"`
	Status      string `json:"status" binding:"omitempty,clientstatus"`
}

// UpdateClientRequest replaces every editable field of a client.
type UpdateClientRequest CreateClientRequest

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Siret         string    `json:"siret"`
	VATNumber     string    `json:"vatNumber"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	Zip           string    `json:"zip"`
	ContactName   string    `json:"contactName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ID:            c.ClientID,
		Name:          c.Name,
		Siret:         c.Siret,
		VATNumber:     c.VATNumber,
		Address:       c.Address,
		City:          c.City,
		Zip:           c.Zip,
		ContactName:   c.ContactName,
		Email:         c.Email,
		Phone:         c.Phone,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListClientResponse converts a slice of domain.Client
func ToListClientResponse(clients []domain.Client) []ClientResponse {
	res := make([]ClientResponse, len(clients))
	for i := range clients {
		res[i] = ToClientResponse(&clients[i])
	}
	return res
}
