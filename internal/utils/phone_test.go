package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain digits", input: "9876543210", want: "9876543210"},
		{name: "country prefix", input: "+91 98765-43210", want: "919876543210"},
		{name: "parentheses", input: "(987) 654 3210", want: "9876543210"},
		{name: "too short", input: "12345", wantErr: true},
		{name: "too long", input: "1234567890123456", wantErr: true},
		{name: "letters", input: "98765abc10", wantErr: true},
		{name: "empty", input: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeMobile(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMobile)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	assert.Equal(t, "******3210", MaskPhoneNumber("9876543210"))
	assert.Equal(t, "********3210", MaskPhoneNumber("+91 98765-43210"))
	assert.Equal(t, "123", MaskPhoneNumber("123"))
	assert.Equal(t, "", MaskPhoneNumber(""))
}
