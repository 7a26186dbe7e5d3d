package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"pwstrength/internal/domain/entity"
	"pwstrength/internal/domain/service/scorer"
	"pwstrength/internal/domain/value"
)

const (
	defaultLookupCacheTTL = 10 * time.Minute
	lookupCacheCleanup    = time.Minute
)

// Dictionary отвечает, встречается ли пароль в списке распространённых.
type Dictionary interface {
	Contains(ctx context.Context, password string) (bool, error)
}

// Recorder получает итог каждой проверки (метрики).
type Recorder interface {
	ObserveCheck(mode entity.CheckMode, rating entity.Rating, common bool)
	ObserveLookup(d time.Duration, err error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCheck(entity.CheckMode, entity.Rating, bool) {}
func (nopRecorder) ObserveLookup(time.Duration, error)                 {}

type StrengthService struct {
	dictionary  Dictionary
	recorder    Recorder
	lookupCache *cache.Cache
}

func NewStrengthService(dictionary Dictionary) *StrengthService {
	return &StrengthService{
		dictionary:  dictionary,
		recorder:    nopRecorder{},
		lookupCache: cache.New(defaultLookupCacheTTL, lookupCacheCleanup),
	}
}

func (s *StrengthService) WithRecorder(recorder Recorder) *StrengthService {
	s.recorder = recorder
	return s
}

// WithLookupCacheTTL задаёт время жизни закэшированных ответов словаря,
// 0 отключает кэш.
func (s *StrengthService) WithLookupCacheTTL(ttl time.Duration) *StrengthService {
	if ttl <= 0 {
		s.lookupCache = nil
		return s
	}

	s.lookupCache = cache.New(ttl, lookupCacheCleanup)
	return s
}

// Local даёт мгновенную оценку без обращения к словарю.
func (s *StrengthService) Local(password string) (entity.Report, error) {
	result, err := scorer.Score(password, false)
	if err != nil {
		return entity.Report{}, fmt.Errorf("scorer.Score: %w", err)
	}

	s.recorder.ObserveCheck(entity.ModeLocal, result.Rating, false)

	return entity.Report{
		ScoreResult: result,
		Mode:        entity.ModeLocal,
	}, nil
}

// Check считает ту же оценку и сверяет пароль со словарём.
func (s *StrengthService) Check(ctx context.Context, password string) (entity.Report, error) {
	// Невалидный ввод отсекаем до похода в словарь.
	if err := scorer.Validate(password); err != nil {
		return entity.Report{}, fmt.Errorf("scorer.Validate: %w", err)
	}

	common, err := s.isCommon(ctx, password)
	if err != nil {
		return entity.Report{}, fmt.Errorf("isCommon: %w", err)
	}

	result, err := scorer.Score(password, common)
	if err != nil {
		return entity.Report{}, fmt.Errorf("scorer.Score: %w", err)
	}

	s.recorder.ObserveCheck(entity.ModeAuthoritative, result.Rating, common)

	report := entity.Report{
		ScoreResult: result,
		Common:      common,
		Mode:        entity.ModeAuthoritative,
	}
	if common {
		report.Warning = entity.CommonPasswordWarning
	}

	return report, nil
}

func (s *StrengthService) isCommon(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}

	key := cacheKey(password)

	if s.lookupCache != nil {
		if cached, ok := s.lookupCache.Get(key); ok {
			return cached.(bool), nil //nolint:forcetypeassert
		}
	}

	start := time.Now()
	common, err := s.dictionary.Contains(ctx, password)
	s.recorder.ObserveLookup(time.Since(start), err)

	if err != nil {
		return false, fmt.Errorf("dictionary.Contains: %w", err)
	}

	if s.lookupCache != nil {
		s.lookupCache.SetDefault(key, common)
	}

	return common, nil
}

// cacheKey хэширует нормализованный пароль, сам пароль в кэше не хранится.
func cacheKey(password string) string {
	sum := sha256.Sum256([]byte(value.NormalizePassword(password)))
	return hex.EncodeToString(sum[:])
}
