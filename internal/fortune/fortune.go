package fortune

import (
	"context"
	"errors"
	"time"

	"github.com/harutrip/harutrip/backend/go-services/internal/cache"
	"github.com/harutrip/harutrip/backend/go-services/internal/errs"
	"github.com/harutrip/harutrip/backend/go-services/pkg/logger"
	"github.com/harutrip/harutrip/backend/go-services/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fortune is one daily message, keyed by its ISO calendar date. Documents
// are written once by the offline seeder and only ever read here.
type Fortune struct {
	Date       string `json:"date" bson:"date"`
	Message    string `json:"message" bson:"message"`
	LuckyItem  string `json:"luckyItem" bson:"luckyItem"`
	LuckyColor string `json:"luckyColor" bson:"luckyColor"`
}

// Repository reads date-keyed fortunes. A missing date returns (nil, nil):
// no fortune published for that day is a normal condition, not an error.
type Repository interface {
	ByDate(ctx context.Context, date string) (*Fortune, error)
	Upsert(ctx context.Context, f Fortune) error
}

type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) ByDate(ctx context.Context, date string) (*Fortune, error) {
	var f Fortune
	err := m.col.FindOne(ctx, bson.M{"date": date}).Decode(&f)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errs.Store(err)
	}
	return &f, nil
}

func (m *MongoRepo) Upsert(ctx context.Context, f Fortune) error {
	_, err := m.col.ReplaceOne(ctx, bson.M{"date": f.Date}, f, options.Replace().SetUpsert(true))
	if err != nil {
		return errs.Store(err)
	}
	return nil
}

// MemoryRepo backs unit tests.
type MemoryRepo struct {
	byDate map[string]Fortune
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byDate: make(map[string]Fortune)}
}

func (m *MemoryRepo) ByDate(_ context.Context, date string) (*Fortune, error) {
	f, ok := m.byDate[date]
	if !ok {
		return nil, nil
	}
	return &f, nil
}

func (m *MemoryRepo) Upsert(_ context.Context, f Fortune) error {
	m.byDate[f.Date] = f
	return nil
}

// Service serves the fortune of the day through an optional cache.
type Service struct {
	repo  Repository
	cache *cache.Cache
	now   func() time.Time
}

func NewService(repo Repository, c *cache.Cache) *Service {
	return &Service{repo: repo, cache: c, now: time.Now}
}

// Today returns the fortune for the current calendar date, or nil when none
// was published. Hits are cached until midnight; cache failures degrade to
// the store.
func (s *Service) Today(ctx context.Context) (*Fortune, error) {
	return s.ForDate(ctx, s.now().Format("2006-01-02"))
}

func (s *Service) ForDate(ctx context.Context, date string) (*Fortune, error) {
	var cached Fortune
	hit, err := s.cache.Get(ctx, "fortune:"+date, &cached)
	if err != nil {
		logger.Warnf("fortune cache read failed: %v", err)
	}
	if hit {
		metrics.CacheHits.WithLabelValues("fortune").Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues("fortune").Inc()

	f, err := s.repo.ByDate(ctx, date)
	if err != nil || f == nil {
		return f, err
	}
	if err := s.cache.Set(ctx, "fortune:"+date, f, untilMidnight(s.now())); err != nil {
		logger.Warnf("fortune cache write failed: %v", err)
	}
	return f, nil
}

func untilMidnight(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return next.Sub(now)
}
