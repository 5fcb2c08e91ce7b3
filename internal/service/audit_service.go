package service

import (
	"context"

	"github.com/openrota/rota-api/internal/models"
	appErrors "github.com/openrota/rota-api/pkg/errors"
)

type auditLister interface {
	List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEvent, error)
}

// AuditService serves read access to the assignment audit trail. Writes go
// through the assignment store only.
type AuditService struct {
	audit auditLister
}

// NewAuditService wires the read side of the audit trail.
func NewAuditService(audit auditLister) *AuditService {
	return &AuditService{audit: audit}
}

// List returns audit events matching the filter in recording order.
func (s *AuditService) List(ctx context.Context, filter models.AuditFilter) ([]models.AuditEvent, error) {
	events, err := s.audit.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list audit events")
	}
	if events == nil {
		events = []models.AuditEvent{}
	}
	return events, nil
}
