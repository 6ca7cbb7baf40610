package middleware

import (
	"net/http"

	"github.com/fenzolabs/fenzo-backend/api/responses"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
)

type settingsSource interface {
	Current() *models.Settings
}

// Maintenance rejects storefront traffic while maintenance mode is on.
// Admin routes are mounted outside this middleware so operators can turn
// the mode back off.
func Maintenance(source settingsSource, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if source != nil {
				if current := source.Current(); current != nil && current.MaintenanceMode {
					msg := current.MaintenanceMessage
					if msg == "" {
						msg = "store is under maintenance"
					}
					err := pkgerrors.New(pkgerrors.CodeMaintenance, msg)
					responses.WriteError(r.Context(), logg, w, err)
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
