package constant

// SystemPrompt is the fixed instruction prepended to every retrieval-augmented
// generation request. Retrieved passages are injected below it by the prompt builder.
const SystemPrompt = "You are AskMediX, a medical assistant. Answer the user's question " +
	"using only the reference passages provided. If the passages do not contain the " +
	"answer, say you don't know. Keep answers concise (three sentences maximum) and " +
	"never invent medical facts."

// User-facing fallback strings. These exact strings are part of the external
// contract of POST /get and must not be reworded.
const (
	FallbackNoAnswer      = "Sorry, I couldn't find a suitable answer."
	FallbackPipelineError = "Oops! Something went wrong while generating a response."
)

// Retrieval parameters.
const (
	RetrievalTopK = 3
)

// Appointment statuses as stored on the record. Only the status field is ever
// mutated after creation, and only by the cancellation service.
const (
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "CANCELLED"
)

// Notification channels.
const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)
