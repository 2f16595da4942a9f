package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sohosai/sos-backend/pkg/apihelpers"
	mw "github.com/sohosai/sos-backend/pkg/apihelpers/middlewares"
	formService "github.com/sohosai/sos-backend/pkg/form"
	"github.com/sohosai/sos-backend/pkg/form/formengine"
	formTypes "github.com/sohosai/sos-backend/pkg/form/types"
	jwthandling "github.com/sohosai/sos-backend/pkg/jwt-handling"
)

func (h *HttpEndpoints) AddFormManagementAPI(rg *gin.RouterGroup) {
	formsGroup := rg.Group("/forms")

	formsGroup.Use(mw.OperatorAuthMiddleware(h.tokenSignKey, h.allowedInstanceIDs))
	{
		formsGroup.GET("/", h.getAllForms)
		formsGroup.POST("/", mw.RequirePayload(), h.createForm)
	}

	formGroup := formsGroup.Group("/:formID")
	{
		formGroup.GET("/", h.getForm)
		formGroup.PUT("/", mw.RequirePayload(), h.updateForm)
		formGroup.DELETE("/", mw.IsAdminOperator(), h.deleteForm)

		formGroup.GET("/answers", h.getFormAnswers)
		formGroup.GET("/answers/:answerID", h.getFormAnswer)
	}
}

func (h *HttpEndpoints) getAllForms(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.OperatorClaims)

	forms, err := formService.GetForms(token.InstanceID)
	if err != nil {
		slog.Error("failed to get forms", slog.String("instanceID", token.InstanceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"forms": forms})
}

func (h *HttpEndpoints) createForm(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.OperatorClaims)

	var req formTypes.Form
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse request body"})
		return
	}
	req.AuthorID = token.ID

	form, err := formService.CreateForm(token.InstanceID, req)
	if err != nil {
		var vErr *formengine.ValidationError
		if errors.As(err, &vErr) {
			slog.Warn("form definition rejected", slog.String("instanceID", token.InstanceID), slog.String("reason", vErr.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		slog.Error("failed to create form", slog.String("instanceID", token.InstanceID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create form"})
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *HttpEndpoints) getForm(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.OperatorClaims)
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

func (h *HttpEndpoints) updateForm(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.OperatorClaims)
	formID := c.Param("formID")

	var req formTypes.Form
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse request body"})
		return
	}

	_id, err := primitive.ObjectIDFromHex(formID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form id"})
		return
	}
	req.ID = _id

	form, err := formService.UpdateForm(token.InstanceID, req)
	if err != nil {
		var vErr *formengine.ValidationError
		if errors.As(err, &vErr) {
			slog.Warn("form definition rejected", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("reason", vErr.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
			return
		}
		slog.Error("failed to update form", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update form"})
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *HttpEndpoints) deleteForm(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.OperatorClaims)
	formID := c.Param("formID")

	if err := formService.DeleteForm(token.InstanceID, formID); err != nil {
		slog.Error("failed to delete form", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete form"})
		return
	}
	slog.Info("form deleted", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("operatorID", token.ID))
	c.JSON(http.StatusOK, gin.H{"message": "form deleted"})
}

func (h *HttpEndpoints) getFormAnswers(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.OperatorClaims)
	formID := c.Param("formID")

	query, err := apihelpers.ParsePaginatedQueryFromCtx(c)
	if err != nil {
		slog.Error("failed to parse query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse query"})
		return
	}

	answers, paginationInfo, err := h.formDBConn.GetFormAnswersPaginated(token.InstanceID, formID, query.Filter, query.Sort, query.Page, query.Limit)
	if err != nil {
		slog.Error("failed to get form answers", slog.String("instanceID", token.InstanceID), slog.String("formID", formID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get form answers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"answers":    answers,
		"pagination": paginationInfo,
	})
}

func (h *HttpEndpoints) getFormAnswer(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.OperatorClaims)
	answerID := c.Param("answerID")

	answer, err := formService.GetAnswer(token.InstanceID, answerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "answer not found"})
			return
		}
		slog.Error("failed to get form answer", slog.String("instanceID", token.InstanceID), slog.String("answerID", answerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get form answer"})
		return
	}
	c.JSON(http.StatusOK, answer)
}
