package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func newJWT(clock *fakeClock) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:     "middleware-secret",
		TTL:           time.Hour,
		RefreshWindow: 24 * time.Hour,
		TokenIssuer:   "test",
		Now:           clock.Now,
	})
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestJWTAuth(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	jwtService := newJWT(clock)

	valid, _, err := jwtService.GenerateToken(5, "a@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	expiredClock := &fakeClock{now: clock.now.Add(-2 * time.Hour)}
	expired, _, err := newJWT(expiredClock).GenerateToken(5, "a@x.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", http.StatusUnauthorized, MessageTokenNotFound},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, MessageTokenNotFound},
		{"garbage token", "Bearer abc.def.ghi", http.StatusUnauthorized, MessageTokenInvalid},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, MessageTokenExpired},
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerRan := false
			router := gin.New()
			router.GET("/protected", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
				handlerRan = true
				userID, _ := CurrentUserID(c)
				c.JSON(http.StatusOK, gin.H{"userID": userID, "email": c.GetString(ContextEmail)})
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			body := decode(t, w)
			if tt.wantStatus != http.StatusOK {
				if handlerRan {
					t.Error("handler must not run for rejected requests")
				}
				if body["status"] != float64(0) || body["message"] != tt.wantMessage {
					t.Errorf("unexpected body: %v", body)
				}
				return
			}

			if body["userID"] != float64(5) || body["email"] != "a@x.com" {
				t.Errorf("expected identity in context, got %v", body)
			}
		})
	}
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKey    string
		wantMsg    string
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, "status", MessageInvalidCredentials},
		{"expired", apperrors.ErrTokenExpired, 401, "status", MessageTokenExpired},
		{"invalid token", fmt.Errorf("%w: bad", apperrors.ErrTokenInvalid), 401, "status", MessageTokenInvalid},
		{"student not found", apperrors.ErrStudentNotFound, 404, "status", MessageStudentNotFound},
		{"user not found", apperrors.ErrUserNotFound, 404, "success", MessageUserNotFound},
		{"validation", apperrors.NewValidationError("name cannot be empty"), 400, "status", "name cannot be empty"},
		{"duplicate email", fmt.Errorf("wrapped: %w", apperrors.ErrEmailAlreadyExists), 409, "status", MessageEmailExists},
		{"unknown", errors.New("boom"), 500, "status", MessageInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			body := decode(t, w)
			if body[tt.wantKey] != float64(0) || body["message"] != tt.wantMsg {
				t.Errorf("unexpected body: %v", body)
			}
		})
	}
}

func TestBindingErrorMessage(t *testing.T) {
	RegisterJSONFieldNames()

	type payload struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required"`
	}

	tests := []struct {
		body string
		want string
	}{
		{``, "Request body is required"},
		{`{"email":`, "Malformed JSON body"},
		{`{"email":5}`, "email has an invalid type"},
		{`{"name":"x"}`, "email is required"},
		{`{"email":"nope","name":"x"}`, "email must be a valid email address"},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
		c.Request.Header.Set("Content-Type", "application/json")

		var p payload
		err := c.ShouldBindJSON(&p)
		if err == nil {
			t.Errorf("body %q: expected binding error", tt.body)
			continue
		}
		if got := BindingErrorMessage(err); got != tt.want {
			t.Errorf("body %q: expected %q, got %q", tt.body, tt.want, got)
		}
	}
}

func TestMetrics(t *testing.T) {
	metrics := NewMetrics()

	router := gin.New()
	router.Use(metrics.Middleware())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `http_requests_total{method="GET",route="/ping",status="200"} 1`) {
		t.Errorf("expected request counter for /ping, got:\n%s", w.Body.String())
	}
}

func TestCORS(t *testing.T) {
	router := gin.New()
	router.Use(CORS([]string{"http://allowed.test"}))
	router.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://allowed.test")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.test" {
		t.Errorf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403 for foreign origin, got %d", w.Code)
	}
}
