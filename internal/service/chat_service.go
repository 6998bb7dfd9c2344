package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mozi-streaming-be/internal/constant"
	"mozi-streaming-be/internal/dto"
	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/pkg/logger"
	"mozi-streaming-be/internal/repository/specification"
	"mozi-streaming-be/internal/repository/unitofwork"
	"mozi-streaming-be/pkg/chat/analyzer"
	"mozi-streaming-be/pkg/chat/catalog"
	"mozi-streaming-be/pkg/chat/prompt"
	"mozi-streaming-be/pkg/events"
	"mozi-streaming-be/pkg/llm"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

const EventChatExchangeCreated = "CHAT_EXCHANGE_CREATED"

// ErrEmptyMessage rejects a send whose message is blank after trimming.
// The transport layer maps it to a 400.
var ErrEmptyMessage = errors.New("message is required")

type IChatService interface {
	// SendMessage runs one assistant turn. userId is nil for guests: guests get
	// an answer but no history reads and no persistence.
	SendMessage(ctx context.Context, userId *uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, sessionId string, limit int) (*dto.ChatHistoryResponse, error)
	ClearHistory(ctx context.Context, userId uuid.UUID, sessionId string) error
	GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error)
	GetSuggestions(ctx context.Context, userId uuid.UUID) (*dto.ChatSuggestionsResponse, error)
	GetStats(ctx context.Context) (*dto.ChatStatsResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	provider         llm.Provider
	publisherService IPublisherService
	suggestionCache  *gocache.Cache
	logger           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.Provider,
	publisherService IPublisherService,
	suggestionCache *gocache.Cache,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		provider:         provider,
		publisherService: publisherService,
		suggestionCache:  suggestionCache,
		logger:           log,
	}
}

// ApologyFor picks the localized user-facing apology for a failed turn. Model
// failures read as "busy", anything else stays generic. Technical detail never
// appears here.
func ApologyFor(err error) string {
	if errors.Is(err, llm.ErrModelUnavailable) || errors.Is(err, llm.ErrModelResponseInvalid) {
		return constant.ChatErrorBusy
	}
	return constant.ChatErrorGeneric
}

func (s *chatService) SendMessage(ctx context.Context, userId *uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = constant.DefaultChatSessionId
	}
	isGuest := userId == nil

	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile := prompt.Profile{}
	var history []*entity.ChatExchange
	if !isGuest {
		user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: *userId})
		if err != nil {
			return nil, err
		}
		if user != nil {
			profile.UserName = user.DisplayName()
			profile.Plan = user.Plan
			profile.FavoriteGenres = user.FavoriteGenres
		}

		watches, err := uow.UserRepository().FindRecentWatches(ctx, *userId, constant.ChatHistoryWindow)
		if err != nil {
			return nil, err
		}
		for _, w := range watches {
			profile.WatchedTitles = append(profile.WatchedTitles, w.Title)
		}

		history, err = uow.ChatExchangeRepository().FindAll(ctx,
			specification.OwnedBy{UserID: *userId},
			specification.BySessionID{SessionID: sessionId},
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: constant.ChatHistoryWindow},
		)
		if err != nil {
			return nil, err
		}
		reverseExchanges(history)
	}

	intent := analyzer.ClassifyIntent(message)
	genres := analyzer.ExtractGenres(message)
	title, hasTitle := analyzer.ExtractTitleCandidate(message, intent, genres)
	featureHelp := analyzer.LookupFeatureHelp(message)

	resolver := catalog.NewResolver(uow.MovieRepository())
	resolution, err := resolver.Resolve(ctx, catalog.Analysis{
		Intent:         intent,
		Genres:         genres,
		TitleCandidate: title,
		HasTitle:       hasTitle,
	})
	if err != nil {
		return nil, err
	}

	// The system prompt rides inside the final user turn, after the history,
	// together with whatever grounding fragments this message earned.
	// Fragments bring their own separators.
	userTurn := prompt.BuildSystemPrompt(profile) + "\n\n" + message + featureHelp + resolution.Fragment

	turns := make([]llm.Message, 0, len(history)+1)
	for _, h := range history {
		turns = append(turns, llm.Message{Role: h.Role, Content: h.Content})
	}
	turns = append(turns, llm.Message{Role: llm.RoleUser, Content: userTurn})

	completion, err := s.provider.Complete(ctx, turns)
	if err != nil {
		s.logger.Error("chat_service", "model completion failed", map[string]interface{}{
			"session_id": sessionId,
			"is_guest":   isGuest,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("model completion: %w", err)
	}

	if !isGuest {
		if err := s.persistTurn(ctx, uow, *userId, sessionId, message, intent, genres, resolution, completion); err != nil {
			return nil, err
		}
	}

	movies := make([]dto.MovieCard, 0, len(resolution.Movies))
	for _, m := range resolution.Movies {
		movies = append(movies, dto.MovieCard{
			Id:            m.Id,
			Title:         m.Title,
			Slug:          m.Slug,
			Poster:        m.Poster,
			ReleaseYear:   m.ReleaseYear(),
			Genres:        m.Genres,
			RatingAverage: m.RatingAverage,
		})
	}

	return &dto.SendMessageResponse{
		Response:  completion.Text,
		Movies:    movies,
		Intent:    string(intent),
		SessionId: sessionId,
		IsGuest:   isGuest,
	}, nil
}

// persistTurn writes the user and assistant exchanges atomically, then emits
// the analytics event. Publishing is auxiliary and never fails the turn.
func (s *chatService) persistTurn(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	userId uuid.UUID,
	sessionId string,
	message string,
	intent analyzer.Intent,
	genres []string,
	resolution *catalog.Resolution,
	completion *llm.Completion,
) error {
	now := time.Now()

	movieIds := make([]uuid.UUID, 0, len(resolution.Movies))
	for _, m := range resolution.Movies {
		movieIds = append(movieIds, m.Id)
	}

	userExchange := entity.ChatExchange{
		Id:          uuid.New(),
		UserId:      userId,
		SessionId:   sessionId,
		Role:        constant.ChatRoleUser,
		Content:     message,
		SearchQuery: strings.Join(genres, ", "),
		Intent:      string(intent),
		CreatedAt:   now,
	}
	assistantExchange := entity.ChatExchange{
		Id:                  uuid.New(),
		UserId:              userId,
		SessionId:           sessionId,
		Role:                constant.ChatRoleAssistant,
		Content:             completion.Text,
		RecommendedMovieIds: movieIds,
		Intent:              string(intent),
		Confidence:          constant.ChatIntentConfidence,
		Tokens:              entity.TokenUsage(completion.Tokens),
		// Skewed so the assistant reply always sorts after the user turn.
		CreatedAt: now.Add(time.Millisecond),
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatExchangeRepository().Create(ctx, &userExchange); err != nil {
		return err
	}
	if err := uow.ChatExchangeRepository().Create(ctx, &assistantExchange); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if s.publisherService != nil {
		evt := events.BaseEvent{
			Type: EventChatExchangeCreated,
			Data: map[string]interface{}{
				"exchange_id": assistantExchange.Id,
				"user_id":     userId,
				"session_id":  sessionId,
				"intent":      string(intent),
				"movie_count": len(movieIds),
			},
			OccurredAt: now,
		}
		payload, err := json.Marshal(evt)
		if err == nil {
			err = s.publisherService.Publish(ctx, payload)
		}
		if err != nil {
			s.logger.Warn("chat_service", "failed to publish exchange event", map[string]interface{}{
				"session_id": sessionId,
				"error":      err.Error(),
			})
		}
	}

	return nil
}

func (s *chatService) GetHistory(ctx context.Context, userId uuid.UUID, sessionId string, limit int) (*dto.ChatHistoryResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	specs := []specification.Specification{
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit},
	}
	if sessionId != "" {
		specs = append(specs, specification.BySessionID{SessionID: sessionId})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	exchanges, err := uow.ChatExchangeRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	reverseExchanges(exchanges)

	items := make([]dto.ChatExchangeResponse, 0, len(exchanges))
	for _, e := range exchanges {
		items = append(items, dto.ChatExchangeResponse{
			Id:                  e.Id,
			SessionId:           e.SessionId,
			Role:                e.Role,
			Content:             e.Content,
			RecommendedMovieIds: e.RecommendedMovieIds,
			Intent:              e.Intent,
			CreatedAt:           e.CreatedAt,
		})
	}

	return &dto.ChatHistoryResponse{
		SessionId: sessionId,
		Exchanges: items,
	}, nil
}

func (s *chatService) ClearHistory(ctx context.Context, userId uuid.UUID, sessionId string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if sessionId == "" {
		return uow.ChatExchangeRepository().DeleteAllByUser(ctx, userId)
	}
	return uow.ChatExchangeRepository().DeleteBySession(ctx, userId, sessionId)
}

func (s *chatService) GetSessions(ctx context.Context, userId uuid.UUID) ([]*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	summaries, err := uow.ChatExchangeRepository().SessionSummaries(ctx, userId, 20)
	if err != nil {
		return nil, err
	}

	sessions := make([]*dto.ChatSessionResponse, 0, len(summaries))
	for _, sum := range summaries {
		sessions = append(sessions, &dto.ChatSessionResponse{
			SessionId:     sum.SessionId,
			LastMessage:   sum.LastMessage,
			LastMessageAt: sum.LastMessageAt,
			MessageCount:  sum.MessageCount,
		})
	}
	return sessions, nil
}

func (s *chatService) GetSuggestions(ctx context.Context, userId uuid.UUID) (*dto.ChatSuggestionsResponse, error) {
	cacheKey := "chat:suggestions:" + userId.String()
	if cached, found := s.suggestionCache.Get(cacheKey); found {
		if suggestions, ok := cached.([]string); ok {
			return &dto.ChatSuggestionsResponse{Suggestions: suggestions}, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	favorites, err := uow.UserRepository().FindFavoriteMovies(ctx, userId)
	if err != nil {
		return nil, err
	}
	watches, err := uow.UserRepository().FindRecentWatches(ctx, userId, 50)
	if err != nil {
		return nil, err
	}

	// Favorites weigh double: an explicit ❤️ says more than a watch.
	genreWeight := map[string]int{}
	for _, fav := range favorites {
		for _, g := range fav.Genres {
			genreWeight[g] += 2
		}
	}
	for _, w := range watches {
		for _, g := range w.Genres {
			genreWeight[g]++
		}
	}

	suggestions := make([]string, 0, len(constant.ChatGenericSuggestions)+1)
	if top := topGenre(genreWeight); top != "" {
		suggestions = append(suggestions, fmt.Sprintf("Gợi ý phim %s", strings.ToLower(top)))
	}
	suggestions = append(suggestions, constant.ChatGenericSuggestions...)

	s.suggestionCache.Set(cacheKey, suggestions, gocache.DefaultExpiration)
	return &dto.ChatSuggestionsResponse{Suggestions: suggestions}, nil
}

func (s *chatService) GetStats(ctx context.Context) (*dto.ChatStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	stats, err := uow.ChatExchangeRepository().Stats(ctx)
	if err != nil {
		return nil, err
	}

	avgPerUser := 0.0
	if stats.TotalUsers > 0 {
		avgPerUser = float64(stats.TotalMessages) / float64(stats.TotalUsers)
	}

	intents := make([]dto.IntentCountResponse, 0, len(stats.IntentDistribution))
	for _, ic := range stats.IntentDistribution {
		intents = append(intents, dto.IntentCountResponse{Intent: ic.Intent, Count: ic.Count})
	}
	users := make([]dto.ActiveUserResponse, 0, len(stats.ActiveUsers))
	for _, u := range stats.ActiveUsers {
		users = append(users, dto.ActiveUserResponse{UserId: u.UserId, MessageCount: u.MessageCount})
	}

	return &dto.ChatStatsResponse{
		TotalMessages:      stats.TotalMessages,
		TotalUsers:         stats.TotalUsers,
		TotalSessions:      stats.TotalSessions,
		AvgMessagesPerUser: avgPerUser,
		IntentDistribution: intents,
		TotalTokens:        stats.TotalTokens,
		AvgTokensPerReply:  stats.AvgTokens,
		ActiveUsers:        users,
	}, nil
}

// topGenre returns the heaviest genre, breaking weight ties alphabetically so
// identical profiles always suggest the same thing.
func topGenre(weights map[string]int) string {
	names := make([]string, 0, len(weights))
	for g := range weights {
		names = append(names, g)
	}
	sort.Slice(names, func(i, j int) bool {
		if weights[names[i]] != weights[names[j]] {
			return weights[names[i]] > weights[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

func reverseExchanges(exchanges []*entity.ChatExchange) {
	for i, j := 0, len(exchanges)-1; i < j; i, j = i+1, j-1 {
		exchanges[i], exchanges[j] = exchanges[j], exchanges[i]
	}
}
