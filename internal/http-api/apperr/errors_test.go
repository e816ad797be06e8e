package apperr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDuplicateNameErrorMessage(t *testing.T) {
	err := &DuplicateNameError{Target: "The Godfather", Score: 0.956}
	assert.Equal(t, 96, err.Percent())
	assert.Equal(t, `name is too similar to "The Godfather" (96%)`, err.Error())
}

func TestDuplicateNameErrorRoundsHalfUp(t *testing.T) {
	err := &DuplicateNameError{Target: "x", Score: 0.805}
	assert.Equal(t, 81, err.Percent())
}

func TestValidationErrorJoinsFields(t *testing.T) {
	err := Validation(
		FieldError{Field: "name", Message: "too short"},
		FieldError{Field: "email", Message: "invalid email"},
	)
	assert.Equal(t, "validation failed: name: too short; email: invalid email", err.Error())
}

func TestNotFoundErrorMessage(t *testing.T) {
	assert.Equal(t, "user not found", NotFound("user").Error())
}
