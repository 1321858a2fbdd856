package service

import (
	"github.com/powercave/mail-service/internal/model"
	"github.com/powercave/mail-service/internal/repository"
)

// TenantService exposes per-tenant views over the email log.
type TenantService struct {
	LogRepo repository.EmailLogRepositoryInterface
}

// LastEmailsByTenant returns the most recent logged email per member,
// newest first.
func (s *TenantService) LastEmailsByTenant() ([]model.EmailLog, error) {
	return s.LogRepo.LatestByTenant()
}
