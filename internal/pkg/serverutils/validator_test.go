package serverutils

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     sampleRequest
		wantErr bool
		wantIn  string
	}{
		{
			name:    "valid",
			req:     sampleRequest{FullName: "Jane", Email: "jane@example.com"},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     sampleRequest{Email: "jane@example.com"},
			wantErr: true,
			wantIn:  "FullName",
		},
		{
			name:    "bad email",
			req:     sampleRequest{FullName: "Jane", Email: "not-an-email"},
			wantErr: true,
			wantIn:  "Email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateRequest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not name field %q", err, tt.wantIn)
			}
		})
	}
}
