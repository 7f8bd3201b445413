package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// PipelineFailurePayload is the tagged failure shape the UI consumes. The
// message stays non-technical; the technical detail rides in the payload so
// a client can show it behind a toggle.
type PipelineFailurePayload struct {
	Stage   string `json:"stage"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// RespondPipelineFailure maps a pipeline failure to an HTTP status and
// renders the tagged {stage, kind, message} payload.
func RespondPipelineFailure(c *gin.Context, f *PipelineFailure) {
	code := http.StatusInternalServerError
	switch {
	case f.Kind == KindInvalidInput:
		code = http.StatusBadRequest
	case f.Kind == KindTimeout:
		code = http.StatusGatewayTimeout
	case f.Stage == StageGenerating:
		code = http.StatusBadGateway
	case f.Stage == StageParsing:
		code = http.StatusUnprocessableEntity
	}

	detail := ""
	if f.Detail != nil {
		detail = f.Detail.Error()
	}

	log.Printf("itinerary pipeline failure: stage=%s kind=%s detail=%v", f.Stage, f.Kind, f.Detail)

	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: "Could not generate the itinerary",
		TraceID: traceID(c),
		Data: PipelineFailurePayload{
			Stage:   string(f.Stage),
			Kind:    f.Kind,
			Message: f.Message,
			Detail:  detail,
		},
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyPlaceList):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrRecommendationFailed):
		RespondError(c, http.StatusBadGateway, "Recommendation service is unavailable")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
