package errors

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// Respond sends a ProblemDetail with the proper content type, defaulting
// the instance URI to the request path.
func Respond(c *gin.Context, problem ProblemDetail) {
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// RespondError responds with err when it is already a ProblemDetail and
// falls back to an opaque internal problem otherwise, so unexpected
// failures never leak internal state to the caller.
func RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		Respond(c, problem)
		return
	}
	Respond(c, ErrInternal)
}

// ValidationFailed sends a 400 problem with field-level messages.
func ValidationFailed(c *gin.Context, fieldErrors map[string]string) {
	Respond(c, NewValidationProblem(fieldErrors))
}

// NotFound sends a 404 problem naming the missing resource.
func NotFound(c *gin.Context, resourceType string, identifier any) {
	Respond(c, NewNotFoundProblem(resourceType, identifier))
}

// BadRequest sends a 400 problem with the given detail.
func BadRequest(c *gin.Context, detail string) {
	Respond(c, ErrBadRequest.WithDetail(detail))
}
