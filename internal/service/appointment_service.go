package service

import (
	"context"
	"fmt"
	"time"

	"askmedix-be/internal/constant"
	"askmedix-be/internal/dto"
	"askmedix-be/internal/entity"
	"askmedix-be/internal/pkg/logger"
	"askmedix-be/internal/pkg/mailer"
	"askmedix-be/internal/pkg/messenger"
	"askmedix-be/internal/repository/contract"
	"askmedix-be/pkg/events"

	"github.com/google/uuid"
)

const scheduleLayout = "2006-01-02 15:04"

type IAppointmentService interface {
	Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.ScheduleAppointmentResponse, error)
	List(ctx context.Context) ([]*dto.AppointmentResponse, error)
}

// EventPublisher mirrors the notification event sink. Optional: a nil
// publisher disables event emission without touching the booking flow.
type EventPublisher interface {
	Publish(ctx context.Context, evt events.Event) error
}

type appointmentService struct {
	appointmentRepo contract.AppointmentRepository
	deliveryLogRepo contract.DeliveryLogRepository
	messengerSvc    messenger.IMessengerService
	emailSvc        mailer.IEmailService
	eventPublisher  EventPublisher
	log             logger.ILogger
	baseURL         string
}

func NewAppointmentService(
	appointmentRepo contract.AppointmentRepository,
	deliveryLogRepo contract.DeliveryLogRepository,
	messengerSvc messenger.IMessengerService,
	emailSvc mailer.IEmailService,
	eventPublisher EventPublisher,
	log logger.ILogger,
	baseURL string,
) IAppointmentService {
	return &appointmentService{
		appointmentRepo: appointmentRepo,
		deliveryLogRepo: deliveryLogRepo,
		messengerSvc:    messengerSvc,
		emailSvc:        emailSvc,
		eventPublisher:  eventPublisher,
		log:             log,
		baseURL:         baseURL,
	}
}

func (s *appointmentService) Schedule(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.ScheduleAppointmentResponse, error) {
	scheduledAt, err := time.ParseInLocation(scheduleLayout, req.Date+" "+req.Time, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date or time: %w", err)
	}

	appointment := entity.Appointment{
		Id:          uuid.New(),
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		ScheduledAt: scheduledAt,
		CancelToken: uuid.New().String(),
		Status:      constant.AppointmentStatusScheduled,
		CreatedAt:   time.Now(),
	}

	if err := s.appointmentRepo.Create(ctx, &appointment); err != nil {
		return nil, err
	}

	cancelURL := fmt.Sprintf("%s/cancel/%s", s.baseURL, appointment.CancelToken)
	deliveries := s.notifyAll(ctx, &appointment, cancelURL)

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeAppointmentScheduled,
			Data: map[string]interface{}{
				"appointment_id": appointment.Id,
				"full_name":      appointment.FullName,
				"scheduled_at":   appointment.ScheduledAt,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("appointment", "failed to publish scheduled event", map[string]interface{}{
				"appointment_id": appointment.Id,
				"error":          err.Error(),
			})
		}
	}

	return &dto.ScheduleAppointmentResponse{
		Id:          appointment.Id,
		ScheduledAt: appointment.ScheduledAt,
		CancelURL:   cancelURL,
		Deliveries:  deliveries,
	}, nil
}

func (s *appointmentService) List(ctx context.Context) ([]*dto.AppointmentResponse, error) {
	appointments, err := s.appointmentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = &dto.AppointmentResponse{
			Id:          a.Id,
			FullName:    a.FullName,
			Email:       a.Email,
			Phone:       a.Phone,
			ScheduledAt: a.ScheduledAt,
			Status:      a.Status,
			CreatedAt:   a.CreatedAt,
		}
	}
	return responses, nil
}

// notifyAll fans the confirmation out to SMS, WhatsApp and email. Channels are
// independent: one failing never blocks another, and the booking itself has
// already been persisted.
func (s *appointmentService) notifyAll(ctx context.Context, appointment *entity.Appointment, cancelURL string) []dto.DeliveryReport {
	body := fmt.Sprintf("Hi %s, your AskMediX doctor visit is scheduled on %s.\nTo cancel, click: %s",
		appointment.FullName,
		appointment.ScheduledAt.Format("2006-01-02 15:04"),
		cancelURL,
	)

	reports := make([]dto.DeliveryReport, 0, 3)

	smsSid, smsErr := s.messengerSvc.SendSMS(ctx, appointment.Phone, body)
	reports = append(reports, s.report(ctx, appointment, constant.ChannelSMS, appointment.Phone, smsErr, map[string]interface{}{"sid": smsSid}))

	waSid, waErr := s.messengerSvc.SendWhatsApp(ctx, appointment.Phone, body)
	reports = append(reports, s.report(ctx, appointment, constant.ChannelWhatsApp, appointment.Phone, waErr, map[string]interface{}{"sid": waSid}))

	emailErr := s.emailSvc.SendAppointmentConfirmation(appointment.Email, appointment.FullName, appointment.ScheduledAt, cancelURL)
	reports = append(reports, s.report(ctx, appointment, constant.ChannelEmail, appointment.Email, emailErr, nil))

	return reports
}

func (s *appointmentService) report(ctx context.Context, appointment *entity.Appointment, channel, recipient string, deliveryErr error, metadata map[string]interface{}) dto.DeliveryReport {
	report := dto.DeliveryReport{
		Channel: channel,
		Sent:    deliveryErr == nil,
	}
	errorMessage := ""
	if deliveryErr != nil {
		errorMessage = deliveryErr.Error()
		report.Warning = fmt.Sprintf("%s delivery failed", channel)
		s.log.Warn("appointment", "notification delivery failed", map[string]interface{}{
			"appointment_id": appointment.Id,
			"channel":        channel,
			"error":          errorMessage,
		})
	}

	if s.deliveryLogRepo != nil {
		logEntry := entity.DeliveryLog{
			Id:            uuid.New(),
			AppointmentId: appointment.Id,
			Channel:       channel,
			Recipient:     recipient,
			Succeeded:     deliveryErr == nil,
			ErrorMessage:  errorMessage,
			Metadata:      metadata,
			CreatedAt:     time.Now(),
		}
		if err := s.deliveryLogRepo.Create(ctx, &logEntry); err != nil {
			s.log.Warn("appointment", "failed to persist delivery log", map[string]interface{}{
				"appointment_id": appointment.Id,
				"channel":        channel,
				"error":          err.Error(),
			})
		}
	}
	return report
}
