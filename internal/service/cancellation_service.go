package service

import (
	"context"
	"time"

	"askmedix-be/internal/constant"
	"askmedix-be/internal/pkg/logger"
	"askmedix-be/internal/repository/contract"
	"askmedix-be/pkg/events"
)

// CancellationResult is the outcome of a cancellation attempt.
type CancellationResult int

const (
	ResultCancelled CancellationResult = iota
	ResultAlreadyCancelled
	ResultNotFound
)

type ICancellationService interface {
	// Cancel flips the appointment carrying the token to CANCELLED.
	// Idempotent: repeating the call reports AlreadyCancelled.
	Cancel(ctx context.Context, token string) (CancellationResult, error)
}

type cancellationService struct {
	appointmentRepo contract.AppointmentRepository
	eventPublisher  EventPublisher
	log             logger.ILogger
}

func NewCancellationService(
	appointmentRepo contract.AppointmentRepository,
	eventPublisher EventPublisher,
	log logger.ILogger,
) ICancellationService {
	return &cancellationService{
		appointmentRepo: appointmentRepo,
		eventPublisher:  eventPublisher,
		log:             log,
	}
}

func (s *cancellationService) Cancel(ctx context.Context, token string) (CancellationResult, error) {
	appointment, err := s.appointmentRepo.FindByCancelToken(ctx, token)
	if err != nil {
		return ResultNotFound, err
	}
	if appointment == nil {
		return ResultNotFound, nil
	}
	if appointment.Status == constant.AppointmentStatusCancelled {
		return ResultAlreadyCancelled, nil
	}

	affected, err := s.appointmentRepo.UpdateStatusByToken(ctx, token, constant.AppointmentStatusCancelled)
	if err != nil {
		return ResultNotFound, err
	}
	if affected == 0 {
		return ResultNotFound, nil
	}

	s.log.Info("cancellation", "appointment cancelled", map[string]interface{}{
		"appointment_id": appointment.Id,
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeAppointmentCancelled,
			Data: map[string]interface{}{
				"appointment_id": appointment.Id,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.log.Warn("cancellation", "failed to publish cancelled event", map[string]interface{}{
				"appointment_id": appointment.Id,
				"error":          err.Error(),
			})
		}
	}

	return ResultCancelled, nil
}
