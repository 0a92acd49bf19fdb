package bootstrap

import (
	"context"
	"log"
	"time"

	"askmedix-be/internal/config"
	"askmedix-be/internal/constant"
	"askmedix-be/internal/controller"
	"askmedix-be/internal/pkg/logger"
	"askmedix-be/internal/pkg/mailer"
	"askmedix-be/internal/pkg/messenger"
	"askmedix-be/internal/pkg/serverutils"
	"askmedix-be/internal/repository/contract"
	sheetsrepo "askmedix-be/internal/repository/sheets"
	"askmedix-be/internal/repository/unitofwork"
	"askmedix-be/internal/service"
	"askmedix-be/pkg/documents"
	"askmedix-be/pkg/embedding"
	"askmedix-be/pkg/events"
	"askmedix-be/pkg/llm/factory"
	"askmedix-be/pkg/vectorstore"
	"askmedix-be/pkg/vectorstore/pgvec"
	"askmedix-be/pkg/vectorstore/pinecone"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController         controller.IChatController
	AppointmentController  controller.IAppointmentController
	CancellationController controller.ICancellationController

	// Background Services (Exposed for main.go to run)
	ConsumerService            service.IConsumerService
	SystemEventConsumerService service.ISystemEventConsumerService
	IngestionService           service.IIngestionService

	// Infrastructure shared with main.go
	VectorStore vectorstore.Store
	RateLimiter *serverutils.RateLimiter
	Logger      logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	messengerService := messenger.NewTwilioService(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.PhoneNumber,
		cfg.Twilio.WhatsAppNumber,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.EmbeddingModel)
	case "gemini":
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	default:
		embeddingProvider = embedding.NewHuggingFaceProvider(cfg.Keys.HuggingFace, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: HUGGINGFACE (%s)", cfg.Ai.EmbeddingModel)
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.HuggingFace,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Vector Store
	var store vectorstore.Store
	if cfg.VectorIndex.Backend == "pinecone" {
		store = pinecone.NewStore(pinecone.Config{
			APIKey:    cfg.Keys.Pinecone,
			IndexName: cfg.VectorIndex.IndexName,
			Metric:    cfg.VectorIndex.Metric,
			Cloud:     cfg.VectorIndex.Cloud,
			Region:    cfg.VectorIndex.Region,
			Host:      cfg.VectorIndex.Host,
		})
		log.Printf("[INFO] Using Vector Store: PINECONE (%s)", cfg.VectorIndex.IndexName)
	} else {
		store = pgvec.NewStore(db, unitofwork.NewUnitOfWork(db).ChunkEmbeddingRepository())
		log.Printf("[INFO] Using Vector Store: PGVECTOR")
	}

	// 5. Appointment storage backend
	var appointmentRepo contract.AppointmentRepository
	var deliveryLogRepo contract.DeliveryLogRepository
	if config.AppointmentStore() == "sheets" {
		sheetsRepo, err := sheetsrepo.NewAppointmentRepository(
			context.Background(),
			cfg.Sheets.CredentialsFile,
			cfg.Sheets.SpreadsheetID,
			cfg.Sheets.SheetName,
		)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize Sheets appointment store: %v", err)
		}
		appointmentRepo = sheetsRepo
		// Delivery logs need Postgres; sheets deployments go without the audit trail.
		log.Printf("[INFO] Using Appointment Store: SHEETS (%s)", cfg.Sheets.SpreadsheetID)
	} else {
		uow := unitofwork.NewUnitOfWork(db)
		appointmentRepo = uow.AppointmentRepository()
		deliveryLogRepo = uow.DeliveryLogRepository()
		log.Printf("[INFO] Using Appointment Store: POSTGRES")
	}

	// 6. Redis (rate limiting); optional
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}
	rateLimiter := serverutils.NewRateLimiter(rdb, 60, time.Minute)

	// 7. Services
	eventPublisher := events.NewPublisher(pubSub, constant.TopicSystemEvents)
	publisherService := service.NewPublisherService(pubSub, constant.TopicQuestionAnswered)
	consumerService := service.NewConsumerService(pubSub, constant.TopicQuestionAnswered, uowFactory)
	systemEventConsumer := service.NewSystemEventConsumerService(pubSub, constant.TopicSystemEvents, sysLogger)

	ingestionService := service.NewIngestionService(
		documents.NewLoader(),
		embeddingProvider,
		store,
		sysLogger,
		cfg.Ingestion.SourcePath,
		cfg.Ingestion.ChunkSize,
		cfg.Ingestion.ChunkOverlap,
	)

	assistantService := service.NewAssistantService(
		embeddingProvider,
		store,
		llmProvider,
		publisherService,
		sysLogger,
	)

	appointmentService := service.NewAppointmentService(
		appointmentRepo,
		deliveryLogRepo,
		messengerService,
		emailService,
		eventPublisher,
		sysLogger,
		cfg.App.BaseURL,
	)

	cancellationService := service.NewCancellationService(
		appointmentRepo,
		eventPublisher,
		sysLogger,
	)

	// 8. Controllers
	return &Container{
		ChatController:             controller.NewChatController(assistantService),
		AppointmentController:      controller.NewAppointmentController(appointmentService),
		CancellationController:     controller.NewCancellationController(cancellationService),
		ConsumerService:            consumerService,
		SystemEventConsumerService: systemEventConsumer,
		IngestionService:           ingestionService,
		VectorStore:                store,
		RateLimiter:                rateLimiter,
		Logger:                     sysLogger,
	}
}
