package service

import (
	"context"
	"time"

	"askmedix-be/internal/entity"
	"askmedix-be/internal/repository/specification"
	"askmedix-be/pkg/embedding"
	"askmedix-be/pkg/events"
	"askmedix-be/pkg/llm"
	"askmedix-be/pkg/vectorstore"

	"github.com/google/uuid"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type stubEmbedder struct {
	vector []float32
	err    error
}

func (s *stubEmbedder) Generate(text string, taskType string) (*embedding.EmbeddingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &embedding.EmbeddingResponse{
		Embedding: embedding.EmbeddingResponseEmbedding{Values: s.vector},
	}, nil
}

type stubStore struct {
	chunks    []vectorstore.ScoredChunk
	queryErr  error
	upserted  []vectorstore.Record
	upsertErr error
	count     int64
}

func (s *stubStore) EnsureIndex(ctx context.Context, dimension int) (bool, error) {
	return false, nil
}

func (s *stubStore) Upsert(ctx context.Context, records []vectorstore.Record) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, records...)
	return nil
}

func (s *stubStore) Query(ctx context.Context, vector []float32, k int) ([]vectorstore.ScoredChunk, error) {
	if s.queryErr != nil {
		return nil, s.queryErr
	}
	if k < len(s.chunks) {
		return s.chunks[:k], nil
	}
	return s.chunks, nil
}

func (s *stubStore) Count(ctx context.Context) (int64, error) {
	return s.count, nil
}

type stubLLM struct {
	answer string
	err    error
	prompt string
}

func (s *stubLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(history) > 0 {
		s.prompt = history[len(history)-1].Content
	}
	return s.answer, nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	s.prompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

// fakeAppointmentRepo is an in-memory contract.AppointmentRepository.
type fakeAppointmentRepo struct {
	appointments []*entity.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *appointment
	f.appointments = append(f.appointments, &stored)
	return nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	for i, a := range f.appointments {
		if a.Id == appointment.Id {
			stored := *appointment
			f.appointments[i] = &stored
			return nil
		}
	}
	return nil
}

func (f *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeAppointmentRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Appointment, error) {
	if len(f.appointments) == 0 {
		return nil, nil
	}
	return f.appointments[0], nil
}

func (f *fakeAppointmentRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	return f.appointments, nil
}

func (f *fakeAppointmentRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.appointments)), nil
}

func (f *fakeAppointmentRepo) FindByCancelToken(ctx context.Context, token string) (*entity.Appointment, error) {
	for _, a := range f.appointments {
		if a.CancelToken == token {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) UpdateStatusByToken(ctx context.Context, token string, status string) (int64, error) {
	var affected int64
	for _, a := range f.appointments {
		if a.CancelToken == token {
			a.Status = status
			now := time.Now()
			a.UpdatedAt = &now
			affected++
		}
	}
	return affected, nil
}

type fakeDeliveryLogRepo struct {
	logs []*entity.DeliveryLog
}

func (f *fakeDeliveryLogRepo) Create(ctx context.Context, log *entity.DeliveryLog) error {
	stored := *log
	f.logs = append(f.logs, &stored)
	return nil
}

func (f *fakeDeliveryLogRepo) FindAllByAppointmentId(ctx context.Context, appointmentId uuid.UUID) ([]*entity.DeliveryLog, error) {
	return f.logs, nil
}

func (f *fakeDeliveryLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DeliveryLog, error) {
	return f.logs, nil
}

type fakeMessenger struct {
	smsErr      error
	whatsAppErr error
	smsSent     []string
	waSent      []string
}

func (f *fakeMessenger) SendSMS(ctx context.Context, to, body string) (string, error) {
	if f.smsErr != nil {
		return "", f.smsErr
	}
	f.smsSent = append(f.smsSent, to)
	return "SM-test", nil
}

func (f *fakeMessenger) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	if f.whatsAppErr != nil {
		return "", f.whatsAppErr
	}
	f.waSent = append(f.waSent, to)
	return "WA-test", nil
}

type fakeMailer struct {
	err  error
	sent []string
}

func (f *fakeMailer) SendAppointmentConfirmation(toEmail, fullName string, scheduledAt time.Time, cancelURL string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

type capturingPublisherService struct {
	payloads [][]byte
}

func (c *capturingPublisherService) Publish(ctx context.Context, payload []byte) error {
	c.payloads = append(c.payloads, payload)
	return nil
}

type capturingEventPublisher struct {
	published []events.Event
	err       error
}

func (c *capturingEventPublisher) Publish(ctx context.Context, evt events.Event) error {
	if c.err != nil {
		return c.err
	}
	c.published = append(c.published, evt)
	return nil
}
