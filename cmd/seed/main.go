package main

import (
	"context"
	"log"
	"os"
	"time"

	"mozi-streaming-be/internal/entity"
	"mozi-streaming-be/internal/repository/specification"
	"mozi-streaming-be/internal/repository/unitofwork"
	"mozi-streaming-be/pkg/chat/analyzer"
	"mozi-streaming-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type movieSeed struct {
	title    string
	slug     string
	overview string
	year     int
	genres   []string
	rating   float64
	views    int64
}

var movieSeeds = []movieSeed{
	{"Bố Già", "bo-gia", "Ba Sang gồng gánh cả xóm lao động giữa Sài Gòn, cho đến khi khoảng cách thế hệ với cậu con trai đẩy cả nhà vào sóng gió.", 2021, []string{"hài", "gia đình", "chính kịch"}, 8.0, 1200000},
	{"Mai", "mai", "Một cô gái massage quá khứ ngổn ngang gặp chàng nhạc công trẻ, và tình yêu của họ va phải mọi định kiến.", 2024, []string{"lãng mạn", "chính kịch"}, 8.1, 2000000},
	{"Hai Phượng", "hai-phuong", "Người mẹ đơn thân truy đuổi bọn bắt cóc xuyên đêm từ miền Tây lên Sài Gòn để cứu con gái.", 2019, []string{"hành động", "tội phạm"}, 7.9, 900000},
	{"Lật Mặt 7: Một Điều Ước", "lat-mat-7", "Bà Hai chỉ ước cả sáu đứa con về đông đủ một lần, nhưng mỗi đứa một cảnh đời.", 2024, []string{"gia đình", "chính kịch"}, 8.4, 1500000},
	{"Đất Rừng Phương Nam", "dat-rung-phuong-nam", "Cậu bé An lưu lạc miền Tây thời loạn, đi tìm cha giữa rừng nước phương Nam.", 2023, []string{"phiêu lưu", "chính kịch", "lịch sử"}, 7.5, 800000},
	{"Nhà Bà Nữ", "nha-ba-nu", "Quán bánh canh của bà Nữ nuôi cả ba thế hệ đàn bà, và cả ba đều khắc khẩu với nhau.", 2023, []string{"hài", "gia đình"}, 7.2, 1100000},
	{"Quỷ Cẩu", "quy-cau", "Lò mổ chó của một gia đình nghèo gặp chuỗi tai ương rùng rợn sau một đêm trăng máu.", 2023, []string{"kinh dị", "bí ẩn"}, 7.0, 600000},
	{"Em Và Trịnh", "em-va-trinh", "Những bóng hồng đi qua đời nhạc sĩ họ Trịnh, kể bằng âm nhạc và hồi ức.", 2022, []string{"lãng mạn", "nhạc", "chính kịch"}, 7.1, 700000},
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	log.Println("Seeding genre catalog...")
	existing, err := uow.GenreRepository().FindAll(ctx)
	if err != nil {
		log.Fatal("Error: Failed to load genres:", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, g := range existing {
		seen[g.Name] = true
	}

	var missing []*entity.Genre
	for _, name := range analyzer.GenreVocabulary() {
		if seen[name] {
			continue
		}
		missing = append(missing, &entity.Genre{Id: uuid.New(), Name: name})
	}
	if err := uow.GenreRepository().CreateBulk(ctx, missing); err != nil {
		log.Fatal("Error: Failed to create genres:", err)
	}
	log.Printf("Created %d genres (%d already present)", len(missing), len(seen))

	log.Println("Seeding sample movies...")
	movieRepo := uow.MovieRepository()
	for _, seed := range movieSeeds {
		found, err := movieRepo.FindOne(ctx, specification.Filter("slug", seed.slug))
		if err != nil {
			log.Printf("Error looking up movie %q: %v", seed.title, err)
			continue
		}
		if found != nil {
			log.Printf("Movie %q already exists, skipping...", seed.title)
			continue
		}

		movie := &entity.Movie{
			Id:            uuid.New(),
			Title:         seed.title,
			Slug:          seed.slug,
			Overview:      seed.overview,
			Poster:        "/posters/" + seed.slug + ".jpg",
			ReleaseDate:   time.Date(seed.year, time.March, 1, 0, 0, 0, 0, time.UTC),
			Genres:        seed.genres,
			RatingAverage: seed.rating,
			RatingCount:   int(seed.views / 1000),
			Views:         seed.views,
		}
		if err := movieRepo.Create(ctx, movie); err != nil {
			log.Printf("Error creating movie %q: %v", seed.title, err)
		} else {
			log.Printf("Created movie: %s (%d)", seed.title, seed.year)
		}
	}

	log.Println("Seeding completed!")
}
