// internal/controller/tenant_controller.go
package controller

import (
	"net/http"

	"github.com/powercave/mail-service/internal/logger"
	"github.com/powercave/mail-service/internal/service"
)

var tenantLog = logger.ForService("tenant")

type TenantController struct {
	Tenants *service.TenantService
}

// LastEmailsByTenant returns the newest logged email per member.
func (c *TenantController) LastEmailsByTenant(w http.ResponseWriter, r *http.Request) {
	entries, err := c.Tenants.LastEmailsByTenant()
	if err != nil {
		tenantLog.Errorw("Error getting last emails by tenant", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Error retrieving last emails by tenant",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count": len(entries),
		"data":  entries,
	})
}
