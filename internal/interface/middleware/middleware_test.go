package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-contact-management/internal/application"
	"github.com/oksasatya/go-contact-management/internal/domain/entity"
)

func init() { gin.SetMode(gin.TestMode) }

type fakeAuth struct {
	users map[string]*entity.User
	err   error
}

func (f fakeAuth) Authenticate(_ context.Context, token string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[token]
	if !ok {
		return nil, application.ErrUnauthenticated
	}
	return u, nil
}

func newAuthRouter(a Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/protected", Auth(a), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUser(c).Username+"|"+c.GetString(CtxUsernameKey))
	})
	return r
}

func TestAuth(t *testing.T) {
	a := fakeAuth{users: map[string]*entity.User{"tok": {Username: "test"}}}
	r := newAuthRouter(a)

	tests := []struct {
		name     string
		token    string
		wantCode int
		wantBody string
	}{
		{"valid token", "tok", http.StatusOK, "test|test"},
		{"missing token", "", http.StatusUnauthorized, `{"errors":"Unauthorized"}`},
		{"unknown token", "nope", http.StatusUnauthorized, `{"errors":"Unauthorized"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			if rec.Body.String() != tt.wantBody {
				t.Fatalf("expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAuth_StoreFailureIs500(t *testing.T) {
	r := newAuthRouter(fakeAuth{err: errors.New("db down")})
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, "tok")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCurrentUser_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if CurrentUser(c) != nil {
		t.Fatal("expected nil user")
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRequestIDKey)) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if _, err := uuid.Parse(rec.Body.String()); err != nil {
		t.Fatalf("expected generated uuid, got %q", rec.Body.String())
	}
	if rec.Header().Get(RequestIDHeader) != rec.Body.String() {
		t.Fatal("expected request id echoed in header")
	}

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Body.String() != incoming {
		t.Fatalf("expected incoming id reused, got %q", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Body.String() == "not-a-uuid" {
		t.Fatal("malformed incoming id must be replaced")
	}
}

func TestRealIP(t *testing.T) {
	r := gin.New()
	r.Use(RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(CtxRealIPKey)) })

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare", map[string]string{"CF-Connecting-IP": "1.2.3.4", "X-Forwarded-For": "5.6.7.8"}, "1.2.3.4"},
		{"forwarded left-most", map[string]string{"X-Forwarded-For": "5.6.7.8, 9.9.9.9"}, "5.6.7.8"},
		{"x-real-ip", map[string]string{"X-Real-IP": "8.8.8.8"}, "8.8.8.8"},
		{"invalid cloudflare falls through", map[string]string{"CF-Connecting-IP": "garbage", "X-Real-IP": "8.8.4.4"}, "8.8.4.4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Body.String() != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, rec.Body.String())
			}
		})
	}
}

func TestRateLimit_NilClientPassesThrough(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}
}

func TestKeyFuncs(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/api/contacts", nil)
	c.Set(CtxRealIPKey, "1.2.3.4")

	if got := KeyByIP()(c); got != "rl:ip:1.2.3.4" {
		t.Errorf("KeyByIP = %q", got)
	}
	if got := KeyByIPAndPath()(c); got != "rl:path:/api/contacts:ip:1.2.3.4" {
		t.Errorf("KeyByIPAndPath = %q", got)
	}
	if got := KeyByUsername()(c); got != "rl:user:anon:ip:1.2.3.4" {
		t.Errorf("KeyByUsername anon = %q", got)
	}
	c.Set(CtxUsernameKey, "test")
	if got := KeyByUsername()(c); got != "rl:user:test" {
		t.Errorf("KeyByUsername = %q", got)
	}
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()
	for ip, want := range map[string]bool{
		"127.0.0.1":   true,
		"10.1.2.3":    true,
		"192.168.1.1": true,
		"8.8.8.8":     false,
		"bogus":       false,
	} {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Set(CtxRealIPKey, ip)
		if got := allow(c); got != want {
			t.Errorf("AllowPrivateIP(%s) = %v, want %v", ip, got, want)
		}
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	r := gin.New()
	r.Use(RequestIDMiddleware(), AccessLog(logger))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	line := buf.String()
	for _, want := range []string{`"status":404`, `"method":"GET"`, `"path":"/missing"`, `"level":"warning"`, `"request_id":"`} {
		if !strings.Contains(line, want) {
			t.Errorf("access log missing %s: %s", want, line)
		}
	}
}
