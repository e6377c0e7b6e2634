package v1

import (
	"github.com/avivash/geofeed-validator/internal/handler"
	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all v1 API routes
func SetupRoutes(validateHandler *handler.ValidateHandler) chi.Router {
	r := chi.NewRouter()

	// Feed validation endpoint
	// POST /v1/validate with the raw geofeed as the request body
	r.Post("/validate", validateHandler.ValidateFeed)

	return r
}
