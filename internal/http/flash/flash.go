// Package flash implements one-shot status notices that survive exactly one
// redirect.
//
// A handler queues a notice with Add before redirecting; the notice travels
// to the browser in a short-lived cookie holding an HS256-signed JWT, and the
// next page render retrieves it with Pop, which also clears the cookie. No
// server-side state is kept. Cookies that fail verification (bad signature,
// expired, malformed) are ignored as if absent.
//
// Usage:
//
//	r.Use(flash.Middleware(flash.NewCodec(cfg.SecretKey, flash.DefaultTTL)))
//
//	// in a POST handler
//	flash.Add(c, flash.CategorySuccess, "Saved.")
//	c.Redirect(http.StatusSeeOther, "/")
//
//	// in a GET handler
//	notices := flash.Pop(c)
package flash

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/spencergreen21/cafeWebsite/internal/http/middleware"
)

const (
	// CookieName is the cookie carrying pending notices.
	CookieName = "flash"
	// DefaultTTL bounds how long an unread notice stays valid.
	DefaultTTL = 5 * time.Minute

	// CategorySuccess marks confirmation notices.
	CategorySuccess = "success"
	// CategoryError marks warnings such as a rejected API key.
	CategoryError = "error"

	ctxKey = "flash.state"
	issuer = "cafe-website"
)

// ErrNoSecret is returned by Encode when the codec has no signing key.
var ErrNoSecret = errors.New("flash: empty signing secret")

// Notice is a single status message.
type Notice struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type claims struct {
	Notices []Notice `json:"notices"`
	jwt.RegisteredClaims
}

// Codec signs and verifies notice cookies.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	// Secure marks the cookie Secure (HTTPS only).
	Secure bool
}

// NewCodec returns a Codec signing with secret. A non-positive ttl falls back
// to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Encode signs notices into a compact token.
func (c *Codec) Encode(notices []Notice) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrNoSecret
	}
	now := c.now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Notices: notices,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	return tok.SignedString(c.secret)
}

// Decode verifies token and returns the notices it carries.
func (c *Codec) Decode(token string) ([]Notice, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, err
	}
	cl, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("flash: invalid token claims")
	}
	return cl.Notices, nil
}

type state struct {
	codec     *Codec
	incoming  []Notice
	hadCookie bool
	popped    bool
	pending   []Notice
}

// Middleware decodes any incoming notice cookie and makes Add and Pop
// available to downstream handlers.
func Middleware(codec *Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := &state{codec: codec}
		if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
			st.hadCookie = true
			if ns, err := codec.Decode(raw); err == nil {
				st.incoming = ns
			}
		}
		c.Set(ctxKey, st)
		c.Next()
	}
}

// Add queues a notice for the next rendered page. It must be called before
// the response headers are written. Without Middleware it is a no-op. Repeated
// calls replace the cookie so it always carries every pending notice.
func Add(c *gin.Context, category, message string) {
	st := from(c)
	if st == nil {
		return
	}
	st.pending = append(st.pending, Notice{Category: category, Message: message})
	tok, err := st.codec.Encode(st.pending)
	if err != nil {
		middleware.LoggerFrom(c).Error().Err(err).
			Str("category", category).
			Int("pending", len(st.pending)).
			Msg("flash_encode_failed")
		return
	}
	setCookie(c, st.codec, tok, int(st.codec.ttl.Seconds()))
}

// Pop returns the notices delivered with this request and clears the cookie.
// Subsequent calls in the same request return nil.
func Pop(c *gin.Context) []Notice {
	st := from(c)
	if st == nil || st.popped {
		return nil
	}
	st.popped = true
	if st.hadCookie && len(st.pending) == 0 {
		setCookie(c, st.codec, "", -1)
	}
	out := st.incoming
	st.incoming = nil
	return out
}

func from(c *gin.Context) *state {
	v, ok := c.Get(ctxKey)
	if !ok {
		return nil
	}
	st, _ := v.(*state)
	return st
}

// setCookie writes the notice cookie, dropping any flash cookie queued
// earlier in the same response.
func setCookie(c *gin.Context, codec *Codec, value string, maxAge int) {
	h := c.Writer.Header()
	prefix := CookieName + "="
	var kept []string
	for _, v := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(v, prefix) {
			kept = append(kept, v)
		}
	}
	h.Del("Set-Cookie")
	for _, v := range kept {
		h.Add("Set-Cookie", v)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", codec.Secure, true)
}
