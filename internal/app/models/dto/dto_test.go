package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enrollPayload struct {
	Name       string  `validate:"required,max=5"`
	StudentIDs []int64 `validate:"required,min=1,unique"`
}

func TestValidationMessages(t *testing.T) {
	err := validator.New().Struct(enrollPayload{Name: "too long", StudentIDs: []int64{1, 1}})
	require.Error(t, err)

	messages := ValidationMessages(err)
	assert.Equal(t, "Name must be at most 5 characters", messages["Name"])
	assert.Equal(t, "StudentIDs must contain distinct values", messages["StudentIDs"])
}

func TestValidationMessages_NonValidatorError(t *testing.T) {
	messages := ValidationMessages(errors.New("unexpected EOF"))
	assert.Equal(t, "unexpected EOF", messages["request"])
}

func TestHandleValidationError(t *testing.T) {
	err := validator.New().Struct(enrollPayload{})
	detail := HandleValidationError(err)

	assert.Equal(t, ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, ErrorSeverityError, detail.Severity)
	details, ok := detail.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Name is required", details["Name"])
}

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(NewErrorDetail(ErrorCodeResourceNotFound, "Course not found").WithField("id"))
	assert.False(t, resp.Success)
	assert.Equal(t, "id", resp.Error.Field)
	assert.False(t, resp.Timestamp.IsZero())
}
