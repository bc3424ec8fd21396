package activity

import (
	"net/http"

	"startupbridge/internal/response"
	"startupbridge/internal/services"
	"startupbridge/internal/utils"

	"go.uber.org/zap"
)

// ActivityController accepts client side activity entries
type ActivityController struct {
	serviceCollection *services.ServiceCollection
	logger            *zap.Logger
	responseBuilder   *response.Builder
}

// NewActivityController creates a new activity controller
func NewActivityController(
	serviceCollection *services.ServiceCollection,
	logger *zap.Logger,
	responseBuilder *response.Builder,
) *ActivityController {
	return &ActivityController{
		serviceCollection: serviceCollection,
		logger:            logger,
		responseBuilder:   responseBuilder,
	}
}

// LogActivity handles POST /api/activity. Storage failures still answer success.
func (c *ActivityController) LogActivity(w http.ResponseWriter, r *http.Request) {
	var req services.LogActivityRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	req.UserAgent = r.UserAgent()
	req.URL = r.Referer()

	if err := c.serviceCollection.ActivityService.Record(r.Context(), &req); err != nil {
		c.logger.Debug("Rejected activity entry", zap.Error(err), zap.String("action", req.Action))
		c.responseBuilder.WriteError(w, r, err)
		return
	}

	c.responseBuilder.WriteSuccess(w, r, nil)
}
