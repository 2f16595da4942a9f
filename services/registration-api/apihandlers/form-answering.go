package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	mw "github.com/sohosai/sos-backend/pkg/apihelpers/middlewares"
	formService "github.com/sohosai/sos-backend/pkg/form"
	"github.com/sohosai/sos-backend/pkg/form/formengine"
	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
	jwthandling "github.com/sohosai/sos-backend/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddFormAnsweringAPI(rg *gin.RouterGroup) {
	formsGroup := rg.Group("/forms")

	formsGroup.Use(mw.GetAndValidateApplicantJWT(h.tokenSignKey))
	{
		formsGroup.GET("/", h.getForms)
	}

	formGroup := formsGroup.Group("/:formID")
	{
		formGroup.GET("/", h.getForm)

		formGroup.GET("/answer", h.getOwnAnswer)
		formGroup.POST("/answer", mw.RequirePayload(), h.submitAnswer)
		formGroup.PUT("/answer", mw.RequirePayload(), h.updateAnswer)
	}
}

func (h *HttpEndpoints) getApplicantToken(c *gin.Context) (*jwthandling.ApplicantClaims, bool) {
	token := c.MustGet("validatedToken").(*jwthandling.ApplicantClaims)
	if !h.isInstanceAllowed(token.InstanceID) {
		slog.Warn("instanceID not allowed", slog.String("instanceID", token.InstanceID), slog.String("path", c.Request.URL.Path))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "instanceID not allowed"})
		return nil, false
	}
	return token, true
}

func (h *HttpEndpoints) getForms(c *gin.Context) {
	token, ok := h.getApplicantToken(c)
	if !ok {
		return
	}

	forms, err := formService.GetForms(token.InstanceID)
	if err != nil {
		slog.Error("failed to get forms", slog.String("instanceID", token.InstanceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

func (h *HttpEndpoints) getForm(c *gin.Context) {
	token, ok := h.getApplicantToken(c)
	if !ok {
		return
	}
	formID := c.Param("formID")

	form, err := formService.GetForm(token.InstanceID, formID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
			return
		}
		slog.Error("failed to get form", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get form"})
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *HttpEndpoints) getOwnAnswer(c *gin.Context) {
	token, ok := h.getApplicantToken(c)
	if !ok {
		return
	}
	formID := c.Param("formID")

	answer, err := formService.GetAnswerForProject(token.InstanceID, formID, token.ProjectID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "answer not found"})
			return
		}
		slog.Error("failed to get answer", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("projectID", token.ProjectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get answer"})
		return
	}
	c.JSON(http.StatusOK, answer)
}

type submitAnswerReq struct {
	Items []formTypes.AnswerItem `json:"items"`
}

func (h *HttpEndpoints) submitAnswer(c *gin.Context) {
	token, ok := h.getApplicantToken(c)
	if !ok {
		return
	}
	formID := c.Param("formID")

	var req submitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind answer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse request body"})
		return
	}

	_formID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form id"})
		return
	}

	answer := formTypes.FormAnswer{
		FormID:    _formID,
		ProjectID: token.ProjectID,
		AuthorID:  token.Subject,
		Items:     req.Items,
	}

	saved, err := formService.SubmitAnswer(token.InstanceID, answer)
	if err != nil {
		h.handleAnswerError(c, token, formID, err, "failed to submit answer")
		return
	}
	slog.Info("answer submitted", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("projectID", token.ProjectID))
	c.JSON(http.StatusOK, saved)
}

func (h *HttpEndpoints) updateAnswer(c *gin.Context) {
	token, ok := h.getApplicantToken(c)
	if !ok {
		return
	}
	formID := c.Param("formID")

	var req submitAnswerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind answer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse request body"})
		return
	}

	_formID, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form id"})
		return
	}

	answer := formTypes.FormAnswer{
		FormID:    _formID,
		ProjectID: token.ProjectID,
		AuthorID:  token.Subject,
		Items:     req.Items,
	}

	saved, err := formService.UpdateAnswer(token.InstanceID, answer)
	if err != nil {
		h.handleAnswerError(c, token, formID, err, "failed to update answer")
		return
	}
	slog.Info("answer updated", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("projectID", token.ProjectID))
	c.JSON(http.StatusOK, saved)
}

func (h *HttpEndpoints) handleAnswerError(c *gin.Context, token *jwthandling.ApplicantClaims, formID string, err error, fallbackMsg string) {
	var cErr *formengine.CheckAnswerError
	if errors.As(err, &cErr) {
		slog.Warn("answer rejected", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("projectID", token.ProjectID), slog.String("reason", cErr.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": cErr.Error()})
		return
	}
	switch {
	case errors.Is(err, formService.ErrAnswerPeriodNotStarted), errors.Is(err, formService.ErrAnswerPeriodEnded):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, formService.ErrAnswerAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, mongo.ErrNoDocuments):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		slog.Error(fallbackMsg, slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("projectID", token.ProjectID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
