package constant

// In-process bus topics.
const (
	TopicQuestionAnswered = "question.answered"
	TopicSystemEvents     = "system.events"
)
