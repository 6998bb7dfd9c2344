package service

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mozi-streaming-be/internal/constant"
	"mozi-streaming-be/internal/dto"
	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/pkg/logger"
	"mozi-streaming-be/internal/repository/contract"
	"mozi-streaming-be/internal/repository/specification"
	"mozi-streaming-be/internal/repository/unitofwork"
	"mozi-streaming-be/pkg/llm"
)

// ---- fakes ----

type fakeChatRepo struct {
	exchanges []*entity.ChatExchange
	created   []*entity.ChatExchange
}

func (f *fakeChatRepo) Create(ctx context.Context, exchange *entity.ChatExchange) error {
	f.created = append(f.created, exchange)
	f.exchanges = append(f.exchanges, exchange)
	return nil
}

func (f *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatExchange, error) {
	var userId *uuid.UUID
	sessionId := ""
	limit := len(f.exchanges)
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.OwnedBy:
			id := sp.UserID
			userId = &id
		case specification.BySessionID:
			sessionId = sp.SessionID
		case specification.Pagination:
			limit = sp.Limit
		}
	}

	out := make([]*entity.ChatExchange, 0, len(f.exchanges))
	for _, e := range f.exchanges {
		if userId != nil && e.UserId != *userId {
			continue
		}
		if sessionId != "" && e.SessionId != sessionId {
			continue
		}
		out = append(out, e)
	}
	// the service always asks newest-first
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.exchanges)), nil
}

func (f *fakeChatRepo) DeleteBySession(ctx context.Context, userId uuid.UUID, sessionId string) error {
	kept := f.exchanges[:0]
	for _, e := range f.exchanges {
		if e.UserId == userId && e.SessionId == sessionId {
			continue
		}
		kept = append(kept, e)
	}
	f.exchanges = kept
	return nil
}

func (f *fakeChatRepo) DeleteAllByUser(ctx context.Context, userId uuid.UUID) error {
	kept := f.exchanges[:0]
	for _, e := range f.exchanges {
		if e.UserId == userId {
			continue
		}
		kept = append(kept, e)
	}
	f.exchanges = kept
	return nil
}

func (f *fakeChatRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	var removed int64
	kept := f.exchanges[:0]
	for _, e := range f.exchanges {
		if e.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	f.exchanges = kept
	return removed, nil
}

func (f *fakeChatRepo) SessionSummaries(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.ChatSessionSummary, error) {
	bysession := map[string]*entity.ChatSessionSummary{}
	for _, e := range f.exchanges {
		if e.UserId != userId {
			continue
		}
		sum, ok := bysession[e.SessionId]
		if !ok {
			sum = &entity.ChatSessionSummary{SessionId: e.SessionId}
			bysession[e.SessionId] = sum
		}
		sum.MessageCount++
		if e.CreatedAt.After(sum.LastMessageAt) {
			sum.LastMessage = e.Content
			sum.LastMessageAt = e.CreatedAt
		}
	}
	out := make([]*entity.ChatSessionSummary, 0, len(bysession))
	for _, s := range bysession {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageAt.After(out[j].LastMessageAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeChatRepo) Stats(ctx context.Context) (*entity.ChatStats, error) {
	return &entity.ChatStats{}, nil
}

type fakeUserRepo struct {
	user      *entity.User
	watches   []*entity.WatchRecord
	favorites []*entity.FavoriteMovie
}

func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) FindRecentWatches(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.WatchRecord, error) {
	if len(f.watches) > limit {
		return f.watches[:limit], nil
	}
	return f.watches, nil
}

func (f *fakeUserRepo) FindFavoriteMovies(ctx context.Context, userId uuid.UUID) ([]*entity.FavoriteMovie, error) {
	return f.favorites, nil
}

type fakeMovieRepo struct {
	movies []*entity.Movie
}

func (f *fakeMovieRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Movie, error) {
	if len(f.movies) == 0 {
		return nil, nil
	}
	return f.movies[0], nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Movie, error) {
	var byTitle *specification.TitleMatches
	var byGenre *specification.HasAnyGenre
	limit := len(f.movies)
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.TitleMatches:
			byTitle = &sp
		case specification.HasAnyGenre:
			byGenre = &sp
		case specification.Pagination:
			limit = sp.Limit
		}
	}

	out := make([]*entity.Movie, 0, len(f.movies))
	for _, m := range f.movies {
		if byTitle != nil && !strings.Contains(strings.ToLower(m.Title), strings.ToLower(byTitle.Substring)) {
			continue
		}
		if byGenre != nil && !genresOverlap(m.Genres, byGenre.Genres) {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeMovieRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(f.movies)), nil
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.movies = append(f.movies, movie)
	return nil
}

func genresOverlap(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

type fakeGenreRepo struct{}

func (f *fakeGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) { return nil, nil }
func (f *fakeGenreRepo) Count(ctx context.Context) (int64, error)            { return 0, nil }
func (f *fakeGenreRepo) CreateBulk(ctx context.Context, genres []*entity.Genre) error {
	return nil
}

type fakeUow struct {
	chatRepo  *fakeChatRepo
	userRepo  *fakeUserRepo
	movieRepo *fakeMovieRepo
	genreRepo *fakeGenreRepo

	begins    int
	commits   int
	rollbacks int
}

func (f *fakeUow) Begin(ctx context.Context) error { f.begins++; return nil }
func (f *fakeUow) Commit() error                   { f.commits++; return nil }
func (f *fakeUow) Rollback() error                 { f.rollbacks++; return nil }

func (f *fakeUow) UserRepository() contract.UserRepository                 { return f.userRepo }
func (f *fakeUow) MovieRepository() contract.MovieRepository               { return f.movieRepo }
func (f *fakeUow) GenreRepository() contract.GenreRepository               { return f.genreRepo }
func (f *fakeUow) ChatExchangeRepository() contract.ChatExchangeRepository { return f.chatRepo }

type fakeFactory struct {
	uow *fakeUow
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeProvider struct {
	completion *llm.Completion
	err        error
	calls      int
	lastTurns  []llm.Message
}

func (f *fakeProvider) Complete(ctx context.Context, turns []llm.Message) (*llm.Completion, error) {
	f.calls++
	f.lastTurns = turns
	if f.err != nil {
		return nil, f.err
	}
	return f.completion, nil
}

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

var _ logger.ILogger = noopLogger{}

// ---- helpers ----

func newTestService(uow *fakeUow, provider *fakeProvider) IChatService {
	return NewChatService(
		&fakeFactory{uow: uow},
		provider,
		nil,
		gocache.New(5*time.Minute, 10*time.Minute),
		noopLogger{},
	)
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		chatRepo:  &fakeChatRepo{},
		userRepo:  &fakeUserRepo{},
		movieRepo: &fakeMovieRepo{},
		genreRepo: &fakeGenreRepo{},
	}
}

func testMovie(title string, year int, rating float64, genres ...string) *entity.Movie {
	return &entity.Movie{
		Id:            uuid.New(),
		Title:         title,
		Slug:          strings.ToLower(title),
		Overview:      "Tóm tắt " + title,
		ReleaseDate:   time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC),
		Genres:        genres,
		RatingAverage: rating,
	}
}

// ---- tests ----

func TestSendMessageGuestWritesNothing(t *testing.T) {
	uow := newFakeUow()
	provider := &fakeProvider{completion: &llm.Completion{Text: "Chào bạn!"}}
	svc := newTestService(uow, provider)

	res, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{
		Message: "xin chào",
	})
	require.NoError(t, err)

	assert.True(t, res.IsGuest)
	assert.Equal(t, "Chào bạn!", res.Response)
	assert.Equal(t, constant.DefaultChatSessionId, res.SessionId)
	assert.Empty(t, uow.chatRepo.created, "guest turns must not persist")
	assert.Zero(t, uow.begins)
}

func TestSendMessagePersistsExactlyTwoExchanges(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.userRepo.user = &entity.User{Id: userId, Username: "anh", Plan: "premium"}
	uow.movieRepo.movies = []*entity.Movie{
		testMovie("Bố Già", 2021, 8.0, "hài"),
	}
	provider := &fakeProvider{completion: &llm.Completion{
		Text:   "Đây là vài phim hài hay.",
		Tokens: llm.TokenUsage{Prompt: 120, Completion: 40, Total: 160},
	}}
	svc := newTestService(uow, provider)

	res, err := svc.SendMessage(context.Background(), &userId, &dto.SendMessageRequest{
		Message:   "gợi ý phim hài đi",
		SessionId: "phim-toi",
	})
	require.NoError(t, err)
	assert.False(t, res.IsGuest)

	require.Len(t, uow.chatRepo.created, 2)
	userTurn, assistantTurn := uow.chatRepo.created[0], uow.chatRepo.created[1]

	assert.Equal(t, constant.ChatRoleUser, userTurn.Role)
	assert.Equal(t, "gợi ý phim hài đi", userTurn.Content)
	assert.Equal(t, "recommend", userTurn.Intent)
	assert.Equal(t, "hài", userTurn.SearchQuery)

	assert.Equal(t, constant.ChatRoleAssistant, assistantTurn.Role)
	assert.Equal(t, res.Response, assistantTurn.Content)
	assert.Equal(t, constant.ChatIntentConfidence, assistantTurn.Confidence)
	assert.Equal(t, entity.TokenUsage{Prompt: 120, Completion: 40, Total: 160}, assistantTurn.Tokens)
	assert.True(t, assistantTurn.CreatedAt.After(userTurn.CreatedAt))

	// one transaction around both inserts
	assert.Equal(t, 1, uow.begins)
	assert.Equal(t, 1, uow.commits)

	// recommended ids on the record are exactly the movies in the response
	require.Len(t, res.Movies, 1)
	require.Len(t, assistantTurn.RecommendedMovieIds, 1)
	assert.Equal(t, res.Movies[0].Id, assistantTurn.RecommendedMovieIds[0])
}

func TestSendMessageGenreScenario(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.userRepo.user = &entity.User{Id: userId, FullName: "Ngọc", Plan: "vip", FavoriteGenres: []string{"hành động"}}
	uow.movieRepo.movies = []*entity.Movie{
		testMovie("Lật Mặt 7", 2024, 8.4, "hành động"),
		testMovie("Hai Phượng", 2019, 7.9, "hành động"),
	}
	provider := &fakeProvider{completion: &llm.Completion{Text: "Thử Lật Mặt 7 nhé."}}
	svc := newTestService(uow, provider)

	res, err := svc.SendMessage(context.Background(), &userId, &dto.SendMessageRequest{
		Message: "tìm phim hành động hay",
	})
	require.NoError(t, err)

	assert.Equal(t, "search", res.Intent)
	assert.Len(t, res.Movies, 2)

	// the model saw the catalog fragment and the profile, all in one user turn
	require.NotEmpty(t, provider.lastTurns)
	last := provider.lastTurns[len(provider.lastTurns)-1]
	assert.Equal(t, llm.RoleUser, last.Role)
	assert.Contains(t, last.Content, "Ngọc")
	assert.Contains(t, last.Content, "PHIM CÓ SẴN:")
	assert.Contains(t, last.Content, "Lật Mặt 7")
}

func TestSendMessageSpecificMovieScenario(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.userRepo.user = &entity.User{Id: userId, Username: "minh"}
	uow.movieRepo.movies = []*entity.Movie{
		testMovie("Mai", 2024, 8.1, "lãng mạn"),
		testMovie("Đất Rừng Phương Nam", 2023, 7.5, "chính kịch"),
	}
	provider := &fakeProvider{completion: &llm.Completion{Text: "Mai là phim tình cảm của 2024."}}
	svc := newTestService(uow, provider)

	res, err := svc.SendMessage(context.Background(), &userId, &dto.SendMessageRequest{
		Message: `nội dung phim "Mai" là gì?`,
	})
	require.NoError(t, err)

	assert.Equal(t, "info", res.Intent)
	require.Len(t, res.Movies, 1)
	assert.Equal(t, "Mai", res.Movies[0].Title)

	last := provider.lastTurns[len(provider.lastTurns)-1]
	assert.Contains(t, last.Content, "THÔNG TIN PHIM:")
	assert.Contains(t, last.Content, "Tóm tắt Mai")
}

func TestSendMessageEmptyMessageSkipsModel(t *testing.T) {
	uow := newFakeUow()
	provider := &fakeProvider{completion: &llm.Completion{Text: "unused"}}
	svc := newTestService(uow, provider)

	for _, msg := range []string{"", "   ", "\n\t"} {
		_, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: msg})
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}
	assert.Zero(t, provider.calls)
	assert.Empty(t, uow.chatRepo.created)
}

func TestSendMessageIncludesHistoryOldestFirst(t *testing.T) {
	userId := uuid.New()
	base := time.Now().Add(-time.Hour)
	uow := newFakeUow()
	uow.userRepo.user = &entity.User{Id: userId, Username: "thu"}
	uow.chatRepo.exchanges = []*entity.ChatExchange{
		{Id: uuid.New(), UserId: userId, SessionId: "default", Role: constant.ChatRoleUser, Content: "câu đầu", CreatedAt: base},
		{Id: uuid.New(), UserId: userId, SessionId: "default", Role: constant.ChatRoleAssistant, Content: "trả lời đầu", CreatedAt: base.Add(time.Second)},
	}
	provider := &fakeProvider{completion: &llm.Completion{Text: "ok"}}
	svc := newTestService(uow, provider)

	_, err := svc.SendMessage(context.Background(), &userId, &dto.SendMessageRequest{Message: "xin chào"})
	require.NoError(t, err)

	// two history turns, then the current user turn
	require.Len(t, provider.lastTurns, 3)
	assert.Equal(t, "câu đầu", provider.lastTurns[0].Content)
	assert.Equal(t, "trả lời đầu", provider.lastTurns[1].Content)
}

func TestSendMessageInlinesSystemPromptIntoUserTurn(t *testing.T) {
	uow := newFakeUow()
	provider := &fakeProvider{completion: &llm.Completion{Text: "chào bạn"}}
	svc := newTestService(uow, provider)

	_, err := svc.SendMessage(context.Background(), nil, &dto.SendMessageRequest{Message: "xin chào"})
	require.NoError(t, err)

	// no standalone system turn: a guest send is exactly one user turn that
	// opens with the persona prompt and ends with the message text
	require.Len(t, provider.lastTurns, 1)
	turn := provider.lastTurns[0]
	assert.Equal(t, llm.RoleUser, turn.Role)
	assert.Contains(t, turn.Content, "Bạn là trợ lý AI thông minh của MOZI")
	assert.True(t, strings.HasSuffix(turn.Content, "\n\nxin chào"))
	for _, tr := range provider.lastTurns {
		assert.NotEqual(t, llm.RoleSystem, tr.Role)
	}
}

func TestSendMessageModelFailurePersistsNothing(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.userRepo.user = &entity.User{Id: userId, Username: "hoa"}
	provider := &fakeProvider{err: llm.ErrModelUnavailable}
	svc := newTestService(uow, provider)

	_, err := svc.SendMessage(context.Background(), &userId, &dto.SendMessageRequest{Message: "xin chào"})
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrModelUnavailable)
	assert.Empty(t, uow.chatRepo.created)
}

func TestApologyFor(t *testing.T) {
	assert.Equal(t, constant.ChatErrorBusy, ApologyFor(llm.ErrModelUnavailable))
	assert.Equal(t, constant.ChatErrorBusy, ApologyFor(llm.ErrModelResponseInvalid))
	assert.Equal(t, constant.ChatErrorGeneric, ApologyFor(context.DeadlineExceeded))
}

func TestGetHistoryReturnsOldestFirst(t *testing.T) {
	userId := uuid.New()
	base := time.Now().Add(-time.Hour)
	uow := newFakeUow()
	for i := 0; i < 3; i++ {
		uow.chatRepo.exchanges = append(uow.chatRepo.exchanges, &entity.ChatExchange{
			Id:        uuid.New(),
			UserId:    userId,
			SessionId: "default",
			Role:      constant.ChatRoleUser,
			Content:   string(rune('a' + i)),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	svc := newTestService(uow, &fakeProvider{})

	res, err := svc.GetHistory(context.Background(), userId, "default", 0)
	require.NoError(t, err)

	require.Len(t, res.Exchanges, 3)
	assert.Equal(t, "a", res.Exchanges[0].Content)
	assert.Equal(t, "c", res.Exchanges[2].Content)
}

func TestClearHistoryScopesToSession(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.chatRepo.exchanges = []*entity.ChatExchange{
		{Id: uuid.New(), UserId: userId, SessionId: "a", CreatedAt: time.Now()},
		{Id: uuid.New(), UserId: userId, SessionId: "b", CreatedAt: time.Now()},
	}
	svc := newTestService(uow, &fakeProvider{})

	require.NoError(t, svc.ClearHistory(context.Background(), userId, "a"))
	assert.Len(t, uow.chatRepo.exchanges, 1)

	require.NoError(t, svc.ClearHistory(context.Background(), userId, ""))
	assert.Empty(t, uow.chatRepo.exchanges)
}

func TestGetSuggestionsWeighsFavoritesDouble(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.userRepo.favorites = []*entity.FavoriteMovie{
		{MovieId: uuid.New(), Title: "A", Genres: []string{"kinh dị"}},
	}
	uow.userRepo.watches = []*entity.WatchRecord{
		{MovieId: uuid.New(), Title: "B", Genres: []string{"hài"}},
	}
	svc := newTestService(uow, &fakeProvider{})

	res, err := svc.GetSuggestions(context.Background(), userId)
	require.NoError(t, err)

	// favorite genre outweighs the single watch
	require.Len(t, res.Suggestions, 5)
	assert.Equal(t, "Gợi ý phim kinh dị", res.Suggestions[0])
	assert.Equal(t, constant.ChatGenericSuggestions, res.Suggestions[1:])
}

func TestGetSuggestionsCachesResult(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.userRepo.favorites = []*entity.FavoriteMovie{
		{MovieId: uuid.New(), Title: "A", Genres: []string{"hài"}},
	}
	svc := newTestService(uow, &fakeProvider{})

	first, err := svc.GetSuggestions(context.Background(), userId)
	require.NoError(t, err)

	// mutate the source; the cached answer must not change
	uow.userRepo.favorites = nil
	second, err := svc.GetSuggestions(context.Background(), userId)
	require.NoError(t, err)

	assert.Equal(t, first.Suggestions, second.Suggestions)
}

func TestRetentionPurgeOnce(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.chatRepo.exchanges = []*entity.ChatExchange{
		{Id: uuid.New(), UserId: userId, SessionId: "a", CreatedAt: time.Now().Add(-31 * 24 * time.Hour)},
		{Id: uuid.New(), UserId: userId, SessionId: "a", CreatedAt: time.Now()},
	}
	svc := NewRetentionService(&fakeFactory{uow: uow}, constant.ChatRetentionWindow, time.Hour, noopLogger{})

	removed, err := svc.PurgeOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Len(t, uow.chatRepo.exchanges, 1)
}
