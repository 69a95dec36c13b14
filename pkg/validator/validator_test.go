package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email  string `validate:"required,email"`
	Status string `validate:"required,oneof=completed cancelled"`
	Date   string `validate:"required,datetime=2006-01-02"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:  "a@b.test",
		Status: "completed",
		Date:   "2025-03-14",
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{
		Email:  "not-an-email",
		Status: "done",
		Date:   "14-03-2025",
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Status must be one of: completed cancelled", formatted["Status"])
	assert.Equal(t, "Date must match the format 2006-01-02", formatted["Date"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", formatted["Email"])
}
