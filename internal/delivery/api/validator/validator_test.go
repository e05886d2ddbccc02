package validator

import (
	"testing"

	"efood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_AddItemInput(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      usecase.AddItemInput
		wantFields []FieldError
	}{
		{
			name:  "valid",
			input: usecase.AddItemInput{ProductID: 1, Name: "Pita", Price: 350, Quantity: 2},
		},
		{
			name:  "missing product and zero quantity",
			input: usecase.AddItemInput{Price: 350},
			wantFields: []FieldError{
				{Field: "product_id", Rule: "required"},
				{Field: "quantity", Rule: "required"},
			},
		},
		{
			name:       "quantity over limit",
			input:      usecase.AddItemInput{ProductID: 1, Quantity: 1000},
			wantFields: []FieldError{{Field: "quantity", Rule: "lte", Param: "999"}},
		},
		{
			name:       "negative price",
			input:      usecase.AddItemInput{ProductID: 1, Quantity: 1, Price: -1},
			wantFields: []FieldError{{Field: "price", Rule: "gte", Param: "0"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			if tt.wantFields == nil {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantFields, Fields(err))
		})
	}
}

func TestFields_OtherError(t *testing.T) {
	assert.Nil(t, Fields(assert.AnError))
}
