package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/oris_formation_app/internal/apperrors"
)

// Certification records a qualification held by a trainee, e.g. an electrical clearance level.
type Certification struct {
	CertificationID string    `json:"id"`
	TraineeName     string    `json:"traineeName"`
	CompanyName     string    `json:"companyName"`
	Level           string    `json:"level"` // B2V, BC, ...
	ExpiryDate      time.Time `json:"expiryDate"`
	AuditFields
}

func (c Certification) Validate() error {
	if strings.TrimSpace(c.TraineeName) == "" || strings.TrimSpace(c.Level) == "" || c.ExpiryDate.IsZero() {
		return fmt.Errorf("%w: traineeName, level and expiryDate are required", apperrors.ErrValidation)
	}
	return nil
}

// DaysUntilExpiry counts whole days from today to the expiry date; negative once expired.
func (c Certification) DaysUntilExpiry(today time.Time) int {
	return int(Day(c.ExpiryDate).Sub(Day(today)).Hours() / 24)
}

// IsExpiringWithin reports whether the certification lapses within the next days days
// or has already lapsed.
func (c Certification) IsExpiringWithin(today time.Time, days int) bool {
	return c.DaysUntilExpiry(today) <= days
}
