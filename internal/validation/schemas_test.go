package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaValidator_ValidateClothingItem(t *testing.T) {
	sv, err := NewSchemaValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "valid item",
			payload: `{"name": "Blue Jeans", "type": "jeans", "color": "blue", "tags": ["casual"]}`,
			wantErr: false,
		},
		{
			name:    "tags are optional",
			payload: `{"name": "White Tee", "type": "t-shirt", "color": "white"}`,
			wantErr: false,
		},
		{
			name:    "missing color",
			payload: `{"name": "Blue Jeans", "type": "jeans"}`,
			wantErr: true,
		},
		{
			name:    "empty name",
			payload: `{"name": "", "type": "jeans", "color": "blue"}`,
			wantErr: true,
		},
		{
			name:    "unexpected field",
			payload: `{"name": "Jeans", "type": "jeans", "color": "blue", "price": 20}`,
			wantErr: true,
		},
		{
			name:    "tags must be strings",
			payload: `{"name": "Jeans", "type": "jeans", "color": "blue", "tags": [1, 2]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sv.ValidateClothingItem([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
