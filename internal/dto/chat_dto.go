package dto

type AskRequest struct {
	Msg string `json:"msg" form:"msg" validate:"required"`
}

// Events published on the in-process bus.

type QuestionAnsweredMessage struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AppointmentScheduledMessage struct {
	AppointmentId string `json:"appointment_id"`
	FullName      string `json:"full_name"`
	ScheduledAt   string `json:"scheduled_at"`
}
