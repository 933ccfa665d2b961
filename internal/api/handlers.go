// Package api exposes training calculations over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yandex-Practicum/go-ftracker/internal/app"
	"github.com/Yandex-Practicum/go-ftracker/internal/observability"
	"github.com/Yandex-Practicum/go-ftracker/internal/training"
)

// ReportRequest is one package of tracker readings.
type ReportRequest struct {
	Type string `json:"type"`
	Data []any  `json:"data"`
}

// ReportResponse carries the calculated figures and the formatted line.
type ReportResponse struct {
	training.InfoMessage
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves training reports. It holds no state: every request is
// calculated on its own.
type Handler struct{}

// NewHandler builds a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes wires endpoints to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/report", h.report)
	r.GET("/ping", ping)
}

func ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (h *Handler) report(c *gin.Context) {
	var req ReportRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "unable to parse body"})
		return
	}

	_, known := training.Arity(req.Type)
	info, err := app.Report(app.Package{Type: req.Type, Data: req.Data})
	if err != nil {
		status, outcome := classify(err)
		observability.RecordTraining(req.Type, known, outcome)
		_ = c.Error(err)
		c.JSON(status, errorResponse{Error: err.Error()})
		return
	}

	observability.RecordTraining(req.Type, known, observability.OutcomeOK)
	c.JSON(http.StatusOK, ReportResponse{InfoMessage: info, Message: info.Message()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, training.ErrUnknownTraining), errors.Is(err, training.ErrArgsMismatch):
		return http.StatusBadRequest, observability.OutcomeRejected
	case errors.Is(err, training.ErrZeroDivision), errors.Is(err, training.ErrNotFinite):
		return http.StatusUnprocessableEntity, observability.OutcomeFailed
	default:
		return http.StatusInternalServerError, observability.OutcomeFailed
	}
}
