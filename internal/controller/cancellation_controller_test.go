package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"askmedix-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type stubCancellation struct {
	result service.CancellationResult
	token  string
}

func (s *stubCancellation) Cancel(ctx context.Context, token string) (service.CancellationResult, error) {
	s.token = token
	return s.result, nil
}

func TestCancelEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		result     service.CancellationResult
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			result:     service.ResultCancelled,
			wantStatus: http.StatusOK,
			wantBody:   "successfully cancelled",
		},
		{
			name:       "already cancelled",
			result:     service.ResultAlreadyCancelled,
			wantStatus: http.StatusOK,
			wantBody:   "cancelled earlier",
		},
		{
			name:       "unknown token",
			result:     service.ResultNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   "couldn't find your appointment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCancellation{result: tt.result}
			app := fiber.New()
			NewCancellationController(stub).RegisterRoutes(app)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/cancel/tok-abc", nil))
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if stub.token != "tok-abc" {
				t.Errorf("service received token %q", stub.token)
			}
			body, _ := io.ReadAll(resp.Body)
			if !strings.Contains(string(body), tt.wantBody) {
				t.Errorf("body %q does not contain %q", string(body), tt.wantBody)
			}
		})
	}
}
