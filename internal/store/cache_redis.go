package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-form-keeper/internal/config"
	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "report:"

// redisReportCache stores report results under a per-form version number.
// Invalidate bumps the version so older entries are never read again and
// expire on their own.
type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewReportCache connects to Redis when cfg.Address is set. Without an
// address a cache that never hits is returned.
func NewReportCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (ReportCache, error) {
	if cfg.Address == "" {
		log.Info().Str("func", "NewReportCache").Msg("report cache is disabled")
		return nopReportCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewReportCache").Str("address", cfg.Address).Msg("error connecting redis")
		_ = client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewReportCache").Msg("connected to redis successfully")

	return &redisReportCache{client: client, ttl: cfg.TTL, logger: log}, nil
}

// Get looks the report up under the current form version. The returned key
// stays bound to that version, so a result computed after the miss and
// stored with Set is unreachable once the form is invalidated in between.
func (c *redisReportCache) Get(ctx context.Context, formID int64, req models.ReportRequest) (models.ReportResult, ReportCacheKey, bool, error) {
	key, err := c.key(ctx, formID, req)
	if err != nil {
		return models.ReportResult{}, "", false, err
	}

	payload, err := c.client.Get(ctx, string(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ReportResult{}, key, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisReportCache.Get").Int64("form_id", formID).Msg("error reading cached report")
		return models.ReportResult{}, key, false, err
	}

	var result models.ReportResult
	if err = json.Unmarshal(payload, &result); err != nil {
		return models.ReportResult{}, key, false, fmt.Errorf("%w: %w", ErrDecodingJSON, err)
	}

	return result, key, true, nil
}

func (c *redisReportCache) Set(ctx context.Context, key ReportCacheKey, result models.ReportResult) error {
	if key == "" {
		return nil
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}

	if err = c.client.Set(ctx, string(key), payload, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisReportCache.Set").Str("key", string(key)).Msg("error caching report")
		return err
	}

	return nil
}

func (c *redisReportCache) Invalidate(ctx context.Context, formID int64) error {
	if err := c.client.Incr(ctx, versionKey(formID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisReportCache.Invalidate").Int64("form_id", formID).Msg("error invalidating reports")
		return err
	}

	return nil
}

func (c *redisReportCache) Close() error {
	return c.client.Close()
}

func (c *redisReportCache) key(ctx context.Context, formID int64, req models.ReportRequest) (ReportCacheKey, error) {
	version, err := c.client.Get(ctx, versionKey(formID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	// ChartType is part of the key: the cached result carries the chart URL.
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingJSON, err)
	}
	sum := sha256.Sum256(payload)

	return ReportCacheKey(reportKeyPrefix + strconv.FormatInt(formID, 10) +
		":v" + strconv.FormatInt(version, 10) +
		":" + hex.EncodeToString(sum[:])), nil
}

func versionKey(formID int64) string {
	return reportKeyPrefix + "ver:" + strconv.FormatInt(formID, 10)
}

type nopReportCache struct{}

func (nopReportCache) Get(context.Context, int64, models.ReportRequest) (models.ReportResult, ReportCacheKey, bool, error) {
	return models.ReportResult{}, "", false, nil
}

func (nopReportCache) Set(context.Context, ReportCacheKey, models.ReportResult) error {
	return nil
}

func (nopReportCache) Invalidate(context.Context, int64) error { return nil }

func (nopReportCache) Close() error { return nil }
