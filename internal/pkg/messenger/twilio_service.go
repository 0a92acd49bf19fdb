package messenger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

type IMessengerService interface {
	SendSMS(ctx context.Context, to, body string) (string, error)
	SendWhatsApp(ctx context.Context, to, body string) (string, error)
}

// twilioService talks to the Twilio Messages API directly over REST.
type twilioService struct {
	accountSid     string
	authToken      string
	phoneNumber    string
	whatsappNumber string
	baseURL        string
	client         *http.Client
}

func NewTwilioService(accountSid, authToken, phoneNumber, whatsappNumber string) IMessengerService {
	return &twilioService{
		accountSid:     accountSid,
		authToken:      authToken,
		phoneNumber:    phoneNumber,
		whatsappNumber: whatsappNumber,
		baseURL:        twilioAPIBase,
		client:         &http.Client{Timeout: 15 * time.Second},
	}
}

// NewTwilioServiceWithBaseURL is used by tests to point at a fake server.
func NewTwilioServiceWithBaseURL(accountSid, authToken, phoneNumber, whatsappNumber, baseURL string) IMessengerService {
	s := NewTwilioService(accountSid, authToken, phoneNumber, whatsappNumber).(*twilioService)
	s.baseURL = baseURL
	return s
}

func (s *twilioService) SendSMS(ctx context.Context, to, body string) (string, error) {
	return s.sendMessage(ctx, s.phoneNumber, to, body)
}

func (s *twilioService) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	from := s.whatsappNumber
	if !strings.HasPrefix(from, "whatsapp:") {
		from = "whatsapp:" + from
	}
	if !strings.HasPrefix(to, "whatsapp:") {
		to = "whatsapp:" + to
	}
	return s.sendMessage(ctx, from, to, body)
}

func (s *twilioService) sendMessage(ctx context.Context, from, to, body string) (string, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.accountSid)

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.accountSid, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if jsonErr := json.Unmarshal(respBody, &apiErr); jsonErr == nil && apiErr.Message != "" {
			return "", fmt.Errorf("twilio error %d: %s", apiErr.Code, apiErr.Message)
		}
		return "", fmt.Errorf("twilio returned status %s", resp.Status)
	}

	var message struct {
		Sid string `json:"sid"`
	}
	if err := json.Unmarshal(respBody, &message); err != nil {
		return "", err
	}
	return message.Sid, nil
}
