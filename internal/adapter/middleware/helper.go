package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bursary-portal/pkg/id"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func bodyHash(b []byte) string { s := sha256.Sum256(b); return hex.EncodeToString(s[:]) }

func nowUTC() time.Time { return time.Now().UTC() }

func buildKey(method, path, userID, requestID string) string {
	return "idemp:bursary:" + strings.ToLower(method) + ":" + path + ":" + userID + ":" + requestID
}

// validReqID accepts a lowercase 32-hex id or a lowercase dashed RFC 4122 UUID (v1-v5).
func validReqID(s string) bool {
	s = strings.TrimSpace(s)
	if id.Valid(s) {
		return true
	}
	if len(s) != 36 || s != strings.ToLower(s) {
		return false
	}
	u, err := uuid.Parse(s)
	if err != nil || u.Variant() != uuid.RFC4122 {
		return false
	}
	return u.Version() >= 1 && u.Version() <= 5
}

// parseAxRequestAt accepts epoch seconds, epoch milliseconds, or RFC3339 with a zone.
// Timestamps without a zone are rejected.
func parseAxRequestAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("missing Ax-Request-At")
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n > 1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("Ax-Request-At must be epoch (s/ms) or RFC3339 with timezone")
}

func provisionalSet(ctx context.Context, rdb *redis.Client, key string, entry idempEntry) (bool, error) {
	payload, _ := json.Marshal(entry)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

// loadEntry treats an unreadable payload as an error so the caller does not replay garbage.
func loadEntry(ctx context.Context, rdb *redis.Client, key string) (idempEntry, error) {
	var e idempEntry
	v, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}
	if err := json.Unmarshal(v, &e); err != nil {
		return idempEntry{}, fmt.Errorf("decode idempotency entry %s: %w", key, err)
	}
	return e, nil
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, entry idempEntry, ttl time.Duration) error {
	payload, _ := json.Marshal(entry)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
