package implementation

import (
	"context"
	"time"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/mapper"
	"mozi-streaming-be/internal/model"
	"mozi-streaming-be/internal/repository/contract"
	"mozi-streaming-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatExchangeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatExchangeRepository(db *gorm.DB) contract.ChatExchangeRepository {
	return &ChatExchangeRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatExchangeRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatExchangeRepositoryImpl) Create(ctx context.Context, exchange *entity.ChatExchange) error {
	m := r.mapper.ExchangeToModel(exchange)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*exchange = *r.mapper.ExchangeToEntity(m)
	return nil
}

func (r *ChatExchangeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatExchange, error) {
	var models []*model.ChatExchange
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatExchange, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ExchangeToEntity(m)
	}
	return entities, nil
}

func (r *ChatExchangeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ChatExchange{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ChatExchangeRepositoryImpl) DeleteBySession(ctx context.Context, userId uuid.UUID, sessionId string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userId, sessionId).
		Delete(&model.ChatExchange{}).Error
}

func (r *ChatExchangeRepositoryImpl) DeleteAllByUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Delete(&model.ChatExchange{}).Error
}

func (r *ChatExchangeRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.ChatExchange{})
	return res.RowsAffected, res.Error
}

func (r *ChatExchangeRepositoryImpl) SessionSummaries(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ChatSessionSummary, error) {
	type row struct {
		SessionId     string
		LastMessage   string
		LastMessageAt time.Time
		MessageCount  int64
	}

	var rows []row
	err := r.db.WithContext(ctx).
		Raw(`SELECT e.session_id,
		            (SELECT content FROM chat_exchanges
		              WHERE user_id = e.user_id AND session_id = e.session_id
		              ORDER BY created_at DESC LIMIT 1) AS last_message,
		            MAX(e.created_at) AS last_message_at,
		            COUNT(*) AS message_count
		       FROM chat_exchanges e
		      WHERE e.user_id = ?
		   GROUP BY e.user_id, e.session_id
		   ORDER BY last_message_at DESC
		      LIMIT ?`, userId, limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.ChatSessionSummary, len(rows))
	for i, rw := range rows {
		summaries[i] = &entity.ChatSessionSummary{
			SessionId:     rw.SessionId,
			LastMessage:   rw.LastMessage,
			LastMessageAt: rw.LastMessageAt,
			MessageCount:  rw.MessageCount,
		}
	}
	return summaries, nil
}

func (r *ChatExchangeRepositoryImpl) Stats(ctx context.Context) (*entity.ChatStats, error) {
	stats := &entity.ChatStats{}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.ChatExchange{}).Count(&stats.TotalMessages).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.ChatExchange{}).Distinct("user_id").Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.ChatExchange{}).Distinct("session_id").Count(&stats.TotalSessions).Error; err != nil {
		return nil, err
	}

	var intents []entity.IntentCount
	err := db.Model(&model.ChatExchange{}).
		Select("intent, COUNT(*) AS count").
		Where("role = ?", "user").
		Group("intent").
		Order("count DESC").
		Scan(&intents).Error
	if err != nil {
		return nil, err
	}
	stats.IntentDistribution = intents

	var tokens struct {
		TotalTokens int64
		AvgTokens   float64
	}
	err = db.Model(&model.ChatExchange{}).
		Select("COALESCE(SUM(total_tokens),0) AS total_tokens, COALESCE(AVG(total_tokens),0) AS avg_tokens").
		Where("role = ?", "assistant").
		Scan(&tokens).Error
	if err != nil {
		return nil, err
	}
	stats.TotalTokens = tokens.TotalTokens
	stats.AvgTokens = tokens.AvgTokens

	var active []entity.UserMessageCount
	err = db.Model(&model.ChatExchange{}).
		Select("user_id, COUNT(*) AS message_count").
		Group("user_id").
		Order("message_count DESC").
		Limit(10).
		Scan(&active).Error
	if err != nil {
		return nil, err
	}
	stats.ActiveUsers = active

	return stats, nil
}
