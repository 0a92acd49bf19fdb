package service

import (
	"context"
	"encoding/json"
	"strings"

	"askmedix-be/internal/constant"
	"askmedix-be/internal/dto"
	"askmedix-be/internal/pkg/logger"
	"askmedix-be/pkg/embedding"
	"askmedix-be/pkg/llm"
	"askmedix-be/pkg/rag/prompt"
	"askmedix-be/pkg/vectorstore"
)

type IAssistantService interface {
	// Answer runs the full retrieval pipeline and always returns a
	// displayable string. Failures are swallowed, logged, and mapped
	// to the fixed fallback message.
	Answer(ctx context.Context, question string) string
}

type assistantService struct {
	embeddingProvider embedding.EmbeddingProvider
	store             vectorstore.Store
	llmProvider       llm.LLMProvider
	publisherService  IPublisherService
	log               logger.ILogger
}

func NewAssistantService(
	embeddingProvider embedding.EmbeddingProvider,
	store vectorstore.Store,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	log logger.ILogger,
) IAssistantService {
	return &assistantService{
		embeddingProvider: embeddingProvider,
		store:             store,
		llmProvider:       llmProvider,
		publisherService:  publisherService,
		log:               log,
	}
}

func (s *assistantService) Answer(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return constant.FallbackNoAnswer
	}

	answer, err := s.generate(ctx, question)
	if err != nil {
		s.log.Error("assistant", "answer pipeline failed", map[string]interface{}{
			"question": question,
			"error":    err.Error(),
		})
		return constant.FallbackPipelineError
	}

	if answer == "" {
		return constant.FallbackNoAnswer
	}

	// Only real model answers are worth logging; fallback text is not a QA pair.
	s.publishInteraction(ctx, question, answer)
	return answer
}

func (s *assistantService) generate(ctx context.Context, question string) (string, error) {
	queryEmbedding, err := s.embeddingProvider.Generate(question, embedding.TaskRetrievalQuery)
	if err != nil {
		return "", err
	}

	passages, err := s.store.Query(ctx, queryEmbedding.Embedding.Values, constant.RetrievalTopK)
	if err != nil {
		return "", err
	}

	builder := prompt.NewBuilder(constant.SystemPrompt, question, passages)
	answer, err := s.llmProvider.Generate(ctx, builder.Build(),
		llm.WithTemperature(0.5),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// publishInteraction hands the QA pair to the interaction log consumer.
// Auxiliary: a publish failure never degrades the answer.
func (s *assistantService) publishInteraction(ctx context.Context, question, answer string) {
	if s.publisherService == nil {
		return
	}
	payload, err := json.Marshal(dto.QuestionAnsweredMessage{
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("assistant", "failed to publish interaction", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
