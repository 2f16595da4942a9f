package apihandlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sohosai/sos-backend/pkg/apihelpers"
	mw "github.com/sohosai/sos-backend/pkg/apihelpers/middlewares"
	"github.com/sohosai/sos-backend/pkg/utils"
)

const (
	HeaderInstanceID = "X-Instance-ID"
)

// AddServiceAPI exposes read access to answers for other backend services,
// authenticated with an API key instead of an operator token.
func (h *HttpEndpoints) AddServiceAPI(rg *gin.RouterGroup) {
	serviceGroup := rg.Group("/service")

	serviceGroup.Use(mw.HasValidAPIKey(h.serviceAPIKeys))
	{
		serviceGroup.GET("/forms/:formID/answers", h.getFormAnswersForService)
	}
}

func (h *HttpEndpoints) getFormAnswersForService(c *gin.Context) {
	instanceID := c.GetHeader(HeaderInstanceID)
	if !utils.ContainsString(h.allowedInstanceIDs, instanceID) {
		slog.Warn("instanceID not allowed", slog.String("instanceID", instanceID), slog.String("path", c.Request.URL.Path))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "instanceID not allowed"})
		return
	}
	formID := c.Param("formID")

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("failed to parse query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse query"})
		return
	}

	answers, paginationInfo, err := h.formDBConn.GetFormAnswersPaginated(instanceID, formID, query.Filter, query.Sort, query.Page, query.Limit)
	if err != nil {
		slog.Error("failed to get form answers", slog.String("instanceID", instanceID), slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get form answers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"answers":    answers,
		"pagination": paginationInfo,
	})
}
