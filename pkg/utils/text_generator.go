package utils

import (
	"context"
	"errors"
)

// TextGenerator is the boundary to the generative endpoint. Implementations
// send a single request and return whatever text the model produced; they
// never retry and never assume any structure inside the payload beyond "a
// string". Classifying and recovering the text is the caller's problem.
type TextGenerator interface {
	GenerateItinerary(ctx context.Context, prompt string) (string, error)
}

// ClassifyGenerationError folds a generator error into the pipeline's
// failure taxonomy.
func ClassifyGenerationError(err error) string {
	var statusErr *HTTPStatusError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &statusErr):
		return KindHTTPError
	case errors.Is(err, ErrEmptyAIResponse):
		return KindEmptyResponse
	default:
		return KindNetworkError
	}
}
