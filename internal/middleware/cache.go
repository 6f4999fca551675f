package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	gocache "github.com/patrickmn/go-cache"
)

const HeaderXCache = "X-Cache"

type cachedResponse struct {
	contentType string
	body        []byte
}

// ResponseCache keeps successful GET responses keyed by request URI.
type ResponseCache struct {
	store *gocache.Cache
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{store: gocache.New(ttl, 2*ttl)}
}

// Middleware serves cached bodies for GET requests. Admin requests bypass
// the cache since their listings may include drafts.
func (rc *ResponseCache) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Method != http.MethodGet || req.Header.Get(HeaderAdminToken) != "" {
				return next(c)
			}

			key := req.RequestURI
			if v, ok := rc.store.Get(key); ok {
				hit := v.(cachedResponse)
				c.Response().Header().Set(HeaderXCache, "HIT")
				return c.Blob(http.StatusOK, hit.contentType, hit.body)
			}

			c.Response().Header().Set(HeaderXCache, "MISS")
			rec := &bodyRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			if c.Response().Status == http.StatusOK {
				rc.store.SetDefault(key, cachedResponse{
					contentType: c.Response().Header().Get(echo.HeaderContentType),
					body:        rec.buf.Bytes(),
				})
			}
			return nil
		}
	}
}

// InvalidatePrefix drops every entry whose URI starts with prefix and
// returns how many were removed.
func (rc *ResponseCache) InvalidatePrefix(prefix string) int {
	n := 0
	for key := range rc.store.Items() {
		if strings.HasPrefix(key, prefix) {
			rc.store.Delete(key)
			n++
		}
	}
	return n
}

func (rc *ResponseCache) Flush() {
	rc.store.Flush()
}

func (rc *ResponseCache) Len() int {
	return rc.store.ItemCount()
}

type bodyRecorder struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}
