package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	formDB "github.com/sohosai/sos-backend/pkg/db/form"
	"github.com/sohosai/sos-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

func HealthCheckHandle(c *gin.Context) {
	serviceInfos := make(map[string]interface{})
	infos, err := os.ReadFile("serviceInfos.json")
	if err != nil {
		slog.Debug("Error reading serviceInfos.json", slog.String("error", err.Error()))
	} else {
		err = json.Unmarshal(infos, &serviceInfos)
		if err != nil {
			slog.Debug("Error unmarshalling serviceInfos.json", slog.String("error", err.Error()))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"serviceInfos": serviceInfos,
	})
}

type HttpEndpoints struct {
	formDBConn         *formDB.FormDBService
	tokenSignKey       string
	allowedInstanceIDs []string
}

func NewHTTPHandler(
	tokenSignKey string,
	formDBConn *formDB.FormDBService,
	allowedInstanceIDs []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:       tokenSignKey,
		formDBConn:         formDBConn,
		allowedInstanceIDs: allowedInstanceIDs,
	}
}

func (h *HttpEndpoints) isInstanceAllowed(instanceID string) bool {
	return utils.ContainsString(h.allowedInstanceIDs, instanceID)
}
