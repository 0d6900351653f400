package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/onefitted/fitted/internal/engine"
	"github.com/onefitted/fitted/pkg/models"
)

const snapshotCacheTTL = 5 * time.Minute

// WardrobeQuerier is the subset of pgx the wardrobe store needs.
type WardrobeQuerier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// WardrobeService is the snapshot provider: it owns item persistence and
// hands the engine an immutable per-user snapshot.
type WardrobeService struct {
	db     WardrobeQuerier
	redis  *redis.Client // warm cache
	logger *logrus.Logger
}

func NewWardrobeService(db WardrobeQuerier, redis *redis.Client, logger *logrus.Logger) *WardrobeService {
	return &WardrobeService{
		db:     db,
		redis:  redis,
		logger: logger,
	}
}

// GetSnapshot returns the user's wardrobe as a fresh slice. Colors are
// normalized on the way out so the engine sees canonical lowercase names.
func (s *WardrobeService) GetSnapshot(ctx context.Context, userID uuid.UUID) ([]models.ClothingItem, error) {
	cacheKey := snapshotKey(userID)

	if s.redis != nil {
		if cached := s.redis.Get(ctx, cacheKey).Val(); cached != "" {
			var items []models.ClothingItem
			if err := json.Unmarshal([]byte(cached), &items); err == nil {
				s.logger.WithField("user_id", userID).Debug("Wardrobe snapshot cache hit")
				return items, nil
			}
		}
	}

	query := `
		SELECT id, name, clothing_type, color, tags, usage_count, last_worn, created_at
		FROM clothing_items
		WHERE user_id = $1
		ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("wardrobe snapshot query failed: %w", err)
	}
	defer rows.Close()

	var items []models.ClothingItem
	for rows.Next() {
		var item models.ClothingItem
		if err := rows.Scan(
			&item.ID, &item.Name, &item.Type, &item.Color,
			&item.Tags, &item.UsageCount, &item.LastWorn, &item.CreatedAt,
		); err != nil {
			s.logger.WithError(err).Warn("Skipping unreadable wardrobe row")
			continue
		}
		item.Color = engine.NormalizeColor(item.Color)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("wardrobe snapshot scan failed: %w", err)
	}

	if s.redis != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.redis.Set(ctx, cacheKey, data, snapshotCacheTTL).Err(); err != nil {
				s.logger.WithError(err).Warn("Failed to cache wardrobe snapshot")
			}
		}
	}

	return items, nil
}

// AddItem persists a new clothing item and invalidates the user's caches.
func (s *WardrobeService) AddItem(ctx context.Context, userID uuid.UUID, req models.ClothingItemRequest) (*models.ClothingItem, error) {
	item := models.ClothingItem{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Type:      req.Type,
		Color:     engine.NormalizeColor(req.Color),
		Tags:      req.Tags,
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO clothing_items (id, user_id, name, clothing_type, color, tags, usage_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)`

	if _, err := s.db.Exec(ctx, query,
		item.ID, userID, item.Name, item.Type, item.Color, item.Tags, item.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("failed to insert clothing item: %w", err)
	}

	s.invalidateCaches(ctx, userID)

	s.logger.WithFields(logrus.Fields{
		"user_id": userID,
		"item_id": item.ID,
		"type":    item.Type,
	}).Info("Clothing item added")

	return &item, nil
}

// ApplyWearEvent increments usage for a worn item. Invoked by the
// wear-event consumer, not by request handlers.
func (s *WardrobeService) ApplyWearEvent(ctx context.Context, event models.WearEvent) error {
	query := `
		UPDATE clothing_items
		SET usage_count = usage_count + 1, last_worn = $1
		WHERE id = $2 AND user_id = $3`

	tag, err := s.db.Exec(ctx, query, event.WornAt, event.ItemID, event.UserID)
	if err != nil {
		return fmt.Errorf("failed to apply wear event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wear event for unknown item %s", event.ItemID)
	}

	s.invalidateCaches(ctx, event.UserID)
	return nil
}

// invalidateCaches drops the snapshot and every response derived from it.
// A wear or a new item would otherwise serve stale recommendations and
// reports for up to the cache TTL.
func (s *WardrobeService) invalidateCaches(ctx context.Context, userID uuid.UUID) {
	if s.redis == nil {
		return
	}

	keys := []string{snapshotKey(userID), insightsKey(userID)}

	iter := s.redis.Scan(ctx, 0, recommendationKeyPrefix(userID)+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to scan cached recommendation keys")
	}

	if err := s.redis.Del(ctx, keys...).Err(); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate wardrobe caches")
	}
}

func snapshotKey(userID uuid.UUID) string {
	return fmt.Sprintf("wardrobe:%s", userID.String())
}
