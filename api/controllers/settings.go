package controllers

import (
	"net/http"

	"github.com/fenzolabs/fenzo-backend/api/responses"
	settingsvc "github.com/fenzolabs/fenzo-backend/internal/settings"
	"github.com/fenzolabs/fenzo-backend/pkg/db/models"
	pkgerrors "github.com/fenzolabs/fenzo-backend/pkg/errors"
	"github.com/fenzolabs/fenzo-backend/pkg/logger"
)

// SettingsSource reads the cached settings snapshot.
type SettingsSource interface {
	Current() *models.Settings
}

// StorefrontSettings serves the public settings document. It prefers the
// in-memory snapshot and falls back to the database before the first refresh.
func StorefrontSettings(source SettingsSource, svc settingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var current *models.Settings
		if source != nil {
			current = source.Current()
		}
		if current == nil {
			if svc == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "settings unavailable"))
				return
			}
			loaded, err := svc.Get(r.Context())
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			current = loaded
		}

		responses.WriteSuccess(w, settingsvc.ToPublic(current))
	}
}
