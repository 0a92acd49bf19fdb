package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"askmedix-be/internal/constant"

	"github.com/gofiber/fiber/v2"
)

type stubAssistant struct {
	answer   string
	question string
}

func (s *stubAssistant) Answer(ctx context.Context, question string) string {
	s.question = question
	if s.answer != "" {
		return s.answer
	}
	return constant.FallbackNoAnswer
}

func newChatApp(assistant *stubAssistant) *fiber.App {
	app := fiber.New()
	NewChatController(assistant).RegisterRoutes(app)
	return app
}

func TestAskReturnsPlainTextAnswer(t *testing.T) {
	assistant := &stubAssistant{answer: "Drink fluids and rest."}
	app := newChatApp(assistant)

	form := url.Values{"msg": {"how do I treat a cold?"}}
	req := httptest.NewRequest(http.MethodPost, "/get", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "Drink fluids and rest." {
		t.Errorf("body = %q", string(body))
	}
	if assistant.question != "how do I treat a cold?" {
		t.Errorf("service received %q", assistant.question)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("content type = %q", ct)
	}
}

func TestAskWithoutMessageStillAnswers200(t *testing.T) {
	app := newChatApp(&stubAssistant{})

	req := httptest.NewRequest(http.MethodPost, "/get", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, the chat endpoint never errors", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != constant.FallbackNoAnswer {
		t.Errorf("body = %q", string(body))
	}
}

func TestHomeServesChatPage(t *testing.T) {
	app := newChatApp(&stubAssistant{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "AskMediX") {
		t.Error("chat page missing branding")
	}
}
