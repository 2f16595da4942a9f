package apihandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	formDB "github.com/sohosai/sos-backend/pkg/db/form"
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
	tokenExpiresIn     time.Duration
	allowedInstanceIDs []string
	serviceAPIKeys     []string
}

func NewHTTPHandler(
	tokenSignKey string,
	tokenExpiresIn time.Duration,
	formDBConn *formDB.FormDBService,
	allowedInstanceIDs []string,
	serviceAPIKeys []string,
) *HttpEndpoints {
	return &HttpEndpoints{
		tokenSignKey:       tokenSignKey,
		tokenExpiresIn:     tokenExpiresIn,
		formDBConn:         formDBConn,
		allowedInstanceIDs: allowedInstanceIDs,
		serviceAPIKeys:     serviceAPIKeys,
	}
}
