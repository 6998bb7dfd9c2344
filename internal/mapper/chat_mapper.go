package mapper

import (
	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ExchangeToEntity(e *model.ChatExchange) *entity.ChatExchange {
	if e == nil {
		return nil
	}

	movieIds := make([]uuid.UUID, 0, len(e.RecommendedMovieIds))
	for _, raw := range e.RecommendedMovieIds {
		if id, err := uuid.Parse(raw); err == nil {
			movieIds = append(movieIds, id)
		}
	}

	return &entity.ChatExchange{
		Id:                  e.Id,
		UserId:              e.UserId,
		SessionId:           e.SessionId,
		Role:                e.Role,
		Content:             e.Content,
		RecommendedMovieIds: movieIds,
		SearchQuery:         e.SearchQuery,
		Intent:              e.Intent,
		Confidence:          e.Confidence,
		Tokens: entity.TokenUsage{
			Prompt:     e.PromptTokens,
			Completion: e.CompletionTokens,
			Total:      e.TotalTokens,
		},
		CreatedAt: e.CreatedAt,
	}
}

func (m *ChatMapper) ExchangeToModel(e *entity.ChatExchange) *model.ChatExchange {
	if e == nil {
		return nil
	}

	movieIds := make([]string, 0, len(e.RecommendedMovieIds))
	for _, id := range e.RecommendedMovieIds {
		movieIds = append(movieIds, id.String())
	}

	return &model.ChatExchange{
		Id:                  e.Id,
		UserId:              e.UserId,
		SessionId:           e.SessionId,
		Role:                e.Role,
		Content:             e.Content,
		RecommendedMovieIds: datatypes.NewJSONSlice(movieIds),
		SearchQuery:         e.SearchQuery,
		Intent:              e.Intent,
		Confidence:          e.Confidence,
		PromptTokens:        e.Tokens.Prompt,
		CompletionTokens:    e.Tokens.Completion,
		TotalTokens:         e.Tokens.Total,
		CreatedAt:           e.CreatedAt,
	}
}
