package utils

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrEmptyPlaceList        = errors.New("place list is empty")
	ErrPreferenceFetchFailed = errors.New("could not fetch user preferences")
	ErrEmptyAIResponse       = errors.New("model response contains no usable text")
	ErrRecommendationFailed  = errors.New("recommendation service unavailable")
	ErrDatabaseError         = errors.New("database error")
)

// HTTPStatusError reports a non-200 reply from an upstream endpoint.
type HTTPStatusError struct {
	Status int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

type ParseFailureKind string

const (
	ParseSyntaxError ParseFailureKind = "syntax_error"
	ParseSchemaError ParseFailureKind = "schema_error"
)

// ParseFailure is the typed outcome of failing to turn raw model output into
// an itinerary. Raw carries the original text so the caller can surface it
// for diagnostics instead of a generic error.
type ParseFailure struct {
	Kind    ParseFailureKind
	Message string
	Raw     string
}

func (f *ParseFailure) Error() string {
	return fmt.Sprintf("itinerary parse failed (%s): %s", f.Kind, f.Message)
}

type PipelineStage string

const (
	StageFetchingPreferences PipelineStage = "fetching_preferences"
	StageComposing           PipelineStage = "composing"
	StageGenerating          PipelineStage = "generating"
	StageParsing             PipelineStage = "parsing"
	StagePersisting          PipelineStage = "persisting"
)

const (
	KindInvalidInput    = "invalid_input"
	KindNetworkError    = "network_error"
	KindTimeout         = "timeout"
	KindHTTPError       = "http_error"
	KindEmptyResponse   = "empty_response"
	KindRouteSaveFailed = "route_save_failed"
	KindPlacesSaveFail  = "places_save_failed"
	KindLinksSaveFail   = "links_save_failed"
)

// PipelineFailure is the tagged failure the itinerary pipeline exposes to
// callers: the stage that broke, a machine-readable kind and a message fit
// for the UI. Detail keeps the underlying error for logging.
type PipelineFailure struct {
	Stage   PipelineStage
	Kind    string
	Message string
	Detail  error
}

func (f *PipelineFailure) Error() string {
	return fmt.Sprintf("pipeline failed at %s (%s): %s", f.Stage, f.Kind, f.Message)
}

func (f *PipelineFailure) Unwrap() error {
	return f.Detail
}
