package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"trivia-game/internal/domain"
	"golang.org/x/sync/singleflight"
)

// BankLoader parses a question bank source (file formats, Postgres, etc).
type BankLoader interface {
	Load(ctx context.Context, source string) ([]*domain.Category, error)
}

// BankRepository caches parsed banks with TTL so repeated loads of the same
// source hit the parser once. Every LoadBank returns a fresh deep copy, so
// answered flags set during one session never leak into another.
type BankRepository struct {
	loader BankLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedBank
}

type cachedBank struct {
	categories []*domain.Category
	expiresAt  time.Time
}

func NewBankRepository(loader BankLoader, ttl time.Duration) *BankRepository {
	return &BankRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedBank),
	}
}

func (r *BankRepository) LoadBank(ctx context.Context, source string) ([]*domain.Category, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[source]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return domain.CloneCategories(entry.categories), nil
	}
	r.mu.RUnlock()

	result, err, _ := r.sf.Do(source, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[source]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.categories, nil
		}
		r.mu.RUnlock()

		categories, err := r.loader.Load(ctx, source)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[source] = cachedBank{
			categories: categories,
			expiresAt:  now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return domain.CloneCategories(result.([]*domain.Category)), nil
}

func (r *BankRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticBankLoader serves banks from an in-memory map (useful for tests/demos).
type StaticBankLoader struct {
	banks map[string][]*domain.Category
}

func NewStaticBankLoader(banks map[string][]*domain.Category) *StaticBankLoader {
	return &StaticBankLoader{banks: banks}
}

func (l *StaticBankLoader) Load(_ context.Context, source string) ([]*domain.Category, error) {
	if categories, ok := l.banks[source]; ok {
		return categories, nil
	}
	return nil, domain.ErrBankNotFound
}
