package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name    string
		pwd     string
		attrs   []string
		wantErr bool
	}{
		{"ok", "go0d-enough", nil, false},
		{"contains space", "s3cure pass", nil, true},
		{"too short", "ab1", nil, true},
		{"all numeric", "12345678", nil, true},
		{"similar to email", "maya@tnhk.in1", []string{"maya@tnhk.in"}, true},
		{"unrelated to attrs", "x9!unrelated", []string{"maya@tnhk.in"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.pwd, tt.attrs...)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
