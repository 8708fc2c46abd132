package http

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateValidation(t *testing.T) {
	RegisterValidations()

	type payload struct {
		When *string `json:"when" binding:"omitempty,date"`
	}
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		value *string
		valid bool
	}{
		{"absent", nil, true},
		{"calendar date", str("2024-02-29"), true},
		{"timestamp", str("2024-02-29T10:00:00Z"), true},
		{"impossible date", str("2023-02-30"), false},
		{"free text", str("last tuesday"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(payload{When: tt.value})
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			details := validationDetails(err)
			require.Len(t, details, 1)
			assert.Equal(t, "when", details[0].Field)
		})
	}
}

func TestBindingErrorMessage(t *testing.T) {
	RegisterValidations()

	type payload struct {
		Name string `json:"name" binding:"required"`
	}

	err := binding.Validator.ValidateStruct(payload{})
	require.Error(t, err)

	assert.Equal(t, "validation failed", bindingErrorMessage(err))
	assert.Equal(t, []FieldError{{Field: "name", Message: "name is required"}}, validationDetails(err))
}
