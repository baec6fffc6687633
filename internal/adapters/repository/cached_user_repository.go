package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/comitanigiacomo/adaptfitness-engine/internal/core/domain"
)

var _ domain.UserRepository = (*CachedUserRepository)(nil)

const userCacheTTL = 30 * time.Minute

// CachedUserRepository keeps users read by id in Redis. Every authenticated
// request resolves its user by id, so this is the hot path. Cached users
// carry no password hash; GetByEmail, which login needs, always reads
// through.
type CachedUserRepository struct {
	next  domain.UserRepository
	cache *redis.Client
}

func NewCachedUserRepository(next domain.UserRepository, cache *redis.Client) *CachedUserRepository {
	return &CachedUserRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedUserRepository) cacheKey(userID string) string {
	return fmt.Sprintf("users:%s", userID)
}

func (r *CachedUserRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate user %s: %v", userID, err)
	}
}

func (r *CachedUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	key := r.cacheKey(id)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var user domain.User
		if err := json.Unmarshal([]byte(val), &user); err == nil {
			return &user, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", id)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	user, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(user); err == nil {
		if setErr := r.cache.Set(ctx, key, data, userCacheTTL).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return user, nil
}

func (r *CachedUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.next.GetByEmail(ctx, email)
}

func (r *CachedUserRepository) Create(ctx context.Context, user *domain.User) error {
	return r.next.Create(ctx, user)
}

func (r *CachedUserRepository) UpdateProfile(ctx context.Context, user *domain.User) error {
	if err := r.next.UpdateProfile(ctx, user); err != nil {
		return err
	}
	r.invalidate(ctx, user.ID)
	return nil
}
