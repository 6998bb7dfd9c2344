package catalog

import (
	"context"
	"fmt"
	"strings"

	"mozi-streaming-be/internal/constant"
	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/repository/contract"
	"mozi-streaming-be/internal/repository/specification"
	"mozi-streaming-be/pkg/chat/analyzer"
)

// Analysis is the analyzer output the resolver consumes for one turn.
type Analysis struct {
	Intent         analyzer.Intent
	Genres         []string
	TitleCandidate string
	HasTitle       bool
}

// Resolution carries the movies matched for a turn plus the prompt fragment
// describing them. SpecificMovie and a multi-movie list are mutually
// exclusive: a turn takes exactly one path.
type Resolution struct {
	Movies        []*entity.Movie
	Fragment      string
	SpecificMovie bool
}

// Resolver translates analyzer output into catalog matches. Read-only.
type Resolver struct {
	movieRepo contract.MovieRepository
}

func NewResolver(movieRepo contract.MovieRepository) *Resolver {
	return &Resolver{movieRepo: movieRepo}
}

// Resolve evaluates the mutually exclusive paths in order: specific title,
// then genre/recommend, then nothing. A title candidate that matches no
// catalog row falls through to the genre path.
func (r *Resolver) Resolve(ctx context.Context, a Analysis) (*Resolution, error) {
	if a.HasTitle {
		res, err := r.resolveSpecific(ctx, a.TitleCandidate)
		if err != nil {
			return nil, err
		}
		if res != nil {
			return res, nil
		}
	}

	if a.Intent == analyzer.IntentRecommend || a.Intent == analyzer.IntentSearch || len(a.Genres) > 0 {
		return r.resolveByGenre(ctx, a.Genres)
	}

	return &Resolution{Movies: []*entity.Movie{}}, nil
}

// resolveSpecific matches the candidate against catalog titles. When several
// titles contain the candidate, an exact (case-insensitive) title wins,
// otherwise the best-rated match does.
func (r *Resolver) resolveSpecific(ctx context.Context, title string) (*Resolution, error) {
	matches, err := r.movieRepo.FindAll(ctx,
		specification.TitleMatches{Substring: title},
		specification.OrderBy{Field: "rating_average", Desc: true},
		specification.Pagination{Limit: 10},
	)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}

	movie := matches[0]
	for _, m := range matches {
		if strings.EqualFold(m.Title, title) {
			movie = m
			break
		}
	}

	fragment := fmt.Sprintf("\n\nTHÔNG TIN PHIM:\n%q (%d) - %s - ⭐ %.1f/10\n%s",
		movie.Title,
		movie.ReleaseYear(),
		strings.Join(movie.Genres, ", "),
		movie.RatingAverage,
		movie.Overview,
	)

	return &Resolution{
		Movies:        []*entity.Movie{movie},
		Fragment:      fragment,
		SpecificMovie: true,
	}, nil
}

// resolveByGenre lists the top catalog matches for the extracted genre set
// (unfiltered when empty), rating first, views as the only secondary key.
func (r *Resolver) resolveByGenre(ctx context.Context, genres []string) (*Resolution, error) {
	specs := []specification.Specification{
		specification.OrderBy{Field: "rating_average", Desc: true},
		specification.OrderBy{Field: "views", Desc: true},
		specification.Pagination{Limit: constant.MaxRecommendedMovies},
	}
	if len(genres) > 0 {
		specs = append([]specification.Specification{specification.HasAnyGenre{Genres: genres}}, specs...)
	}

	movies, err := r.movieRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}
	if len(movies) == 0 {
		return &Resolution{Movies: []*entity.Movie{}}, nil
	}

	var sb strings.Builder
	sb.WriteString("\n\nPHIM CÓ SẴN:\n")
	for i, m := range movies {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("%d. %q (%d) - %s - ⭐ %.1f/10",
			i+1, m.Title, m.ReleaseYear(), strings.Join(m.Genres, ", "), m.RatingAverage))
	}

	return &Resolution{
		Movies:   movies,
		Fragment: sb.String(),
	}, nil
}
