package models

import (
	"time"

	"github.com/SscSPs/oris_formation_app/internal/core/domain"
)

// AuditFields are the bookkeeping columns carried by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

func toModelAudit(a domain.AuditFields) AuditFields {
	return AuditFields{CreatedAt: a.CreatedAt, LastUpdatedAt: a.LastUpdatedAt}
}

func (a AuditFields) toDomain() domain.AuditFields {
	return domain.AuditFields{CreatedAt: a.CreatedAt, LastUpdatedAt: a.LastUpdatedAt}
}
