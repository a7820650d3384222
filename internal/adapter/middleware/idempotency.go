package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"bursary-portal/internal/infrastructure/logger"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// provisionalLockTTL bounds how long a crashed handler can block its request id.
	provisionalLockTTL = 60 * time.Second
	// maxClockSkew is the allowed distance between Ax-Request-At and server time.
	maxClockSkew = 10 * time.Minute
	// maxBufferedBody caps what the middleware reads to hash; uploads above it are refused.
	maxBufferedBody = 64 << 20

	storeTimeout = 2 * time.Second

	// HeaderReplayed marks a response served from the idempotency store.
	HeaderReplayed = "Idempotent-Replayed"
)

type idempEntry struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	ContentType string    `json:"content_type,omitempty"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	RequestID   string    `json:"request_id"`
	RequestAtMS int64     `json:"request_at_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e idempEntry) replayable() bool { return !e.InProgress && e.Code != 0 && len(e.Body) > 0 }

// respRecorder tees the handler's response so it can be stored after the fact.
type respRecorder struct {
	w    http.ResponseWriter
	buf  bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }

func (r *respRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.w.Write(b)
}

func (r *respRecorder) WriteHeader(statusCode int) {
	r.code = statusCode
	r.w.WriteHeader(statusCode)
}

func jsonError(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

// requestHeaders validates Ax-Request-Id and Ax-Request-At.
func requestHeaders(req *http.Request) (string, time.Time, string) {
	reqID := strings.TrimSpace(req.Header.Get("Ax-Request-Id"))
	if reqID == "" {
		return "", time.Time{}, "missing Ax-Request-Id"
	}
	if !validReqID(reqID) {
		return "", time.Time{}, "invalid Ax-Request-Id format"
	}
	reqAt, err := parseAxRequestAt(req.Header.Get("Ax-Request-At"))
	if err != nil {
		return "", time.Time{}, err.Error()
	}
	now := nowUTC()
	if reqAt.Before(now.Add(-maxClockSkew)) || reqAt.After(now.Add(maxClockSkew)) {
		return "", time.Time{}, "Ax-Request-At too skewed"
	}
	return reqID, reqAt, ""
}

// bufferBody reads the request body once, restores it for the handler, and reports
// false when it exceeds maxBufferedBody.
func bufferBody(req *http.Request) ([]byte, bool, error) {
	if req.Body == nil {
		req.Body = http.NoBody
		return nil, true, nil
	}
	body, err := io.ReadAll(io.LimitReader(req.Body, maxBufferedBody+1))
	if err != nil {
		return nil, false, err
	}
	if len(body) > maxBufferedBody {
		return nil, false, nil
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	return body, true, nil
}

// IdempotencyMiddleware makes mutating requests safe to retry. The key is method, route,
// principal user id and Ax-Request-Id, so it has to run after Auth. A repeated request with
// the same body gets the stored response; a different body or a still-running original
// gets 409. Server errors are not stored so the client can retry with the same id.
func IdempotencyMiddleware(rdb *redis.Client, ttl time.Duration, log *zap.Logger) echo.MiddlewareFunc {
	log = logger.OrNop(log)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			reqID, reqAt, problem := requestHeaders(req)
			if problem != "" {
				return jsonError(c, http.StatusBadRequest, problem)
			}
			p := PrincipalFrom(c)
			if p == nil || p.UserID == "" {
				return jsonError(c, http.StatusUnauthorized, "authentication required")
			}

			body, fits, err := bufferBody(req)
			if err != nil {
				return jsonError(c, http.StatusBadRequest, "unreadable request body")
			}
			if !fits {
				return jsonError(c, http.StatusRequestEntityTooLarge, "request body too large")
			}
			bhash := bodyHash(body)

			key := buildKey(req.Method, c.Path(), p.UserID, reqID)
			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			won, err := provisionalSet(ctx, rdb, key, idempEntry{
				InProgress:  true,
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   nowUTC(),
			})
			if err != nil {
				log.Error("idempotency store unavailable", zap.String("key", key), zap.Error(err))
				return jsonError(c, http.StatusServiceUnavailable, "idempotency store unavailable")
			}
			if !won {
				cur, err := loadEntry(ctx, rdb, key)
				if err != nil {
					log.Warn("idempotency entry unreadable", zap.String("key", key), zap.Error(err))
				}
				switch {
				case cur.BodySHA256 != "" && cur.BodySHA256 != bhash:
					return jsonError(c, http.StatusConflict, "Ax-Request-Id reused with different body")
				case cur.replayable():
					ct := cur.ContentType
					if ct == "" {
						ct = echo.MIMEApplicationJSONCharsetUTF8
					}
					c.Response().Header().Set(HeaderReplayed, "true")
					return c.Blob(cur.Code, ct, cur.Body)
				default:
					return jsonError(c, http.StatusConflict, "request is already in progress")
				}
			}

			rec := &respRecorder{w: c.Response().Writer, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			// The request context may already be done; the outcome still has to be recorded.
			storeCtx, storeCancel := context.WithTimeout(context.WithoutCancel(req.Context()), storeTimeout)
			defer storeCancel()

			if rec.code >= http.StatusInternalServerError {
				if err := rdb.Del(storeCtx, key).Err(); err != nil {
					log.Warn("idempotency release failed", zap.String("key", key), zap.Error(err))
				}
				return nil
			}
			final := idempEntry{
				Code:        rec.code,
				ContentType: rec.Header().Get(echo.HeaderContentType),
				Body:        rec.buf.Bytes(),
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   nowUTC(),
			}
			if err := saveFinal(storeCtx, rdb, key, final, ttl); err != nil {
				log.Warn("idempotency save failed", zap.String("key", key), zap.Error(err))
			}
			return nil
		}
	}
}
