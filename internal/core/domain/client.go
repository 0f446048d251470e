package domain

// ClientStatus tracks where a company stands in the sales funnel.
type ClientStatus string

const (
	ClientProspect ClientStatus = "PROSPECT"
	ClientActive   ClientStatus = "CLIENT"
	ClientInactive ClientStatus = "INACTIVE"
)

// IsValid reports whether s is a known client status.
func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientProspect, ClientActive, ClientInactive:
		return true
	}
	return false
}

// UnknownClientName is displayed when a document references a deleted client.
const UnknownClientName = "Client inconnu"

// Client is a customer or prospect company.
type Client struct {
	ClientID    string       `json:"id"`
	Name        string       `json:"name"` // Raison sociale
	Siret       string       `json:"siret"`
	VATNumber   string       `json:"vatNumber"` // TVA intracommunautaire
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Zip         string       `json:"zip"`
	ContactName string       `json:"contactName"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Status      ClientStatus `json:"status"`
	AuditFields
}
