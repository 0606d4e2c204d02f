package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/jwt"
	"github.com/caredent/caredent/internal/pkg/uid"
)

func newTestRouter(t *testing.T) (*Router, jwt.JWT) {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  maintenance:\n    endpoints: \"\"\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	testJWT, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(strings.Repeat("k", 64)),
		Issuer:    "caredent-test",
		Audiences: []string{"caredent-test"},
		TTL:       time.Hour,
		Clock:     realClock{},
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	return NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        testJWT,
		Instrument: instrument.NewNoop(),
	}), testJWT
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

type createdResponse struct {
	Name string `json:"name"`
}

func (createdResponse) StatusCode() int { return http.StatusCreated }
func (createdResponse) Message() string { return "resource created" }

type acceptedResponse struct {
	EmptyBody
}

func (acceptedResponse) Message() string { return "accepted" }

func TestRouterSuccessEnvelope(t *testing.T) {
	r, _ := newTestRouter(t)
	r.POST("/api/v1/identity/login", func(_ *Request) (any, error) {
		return createdResponse{Name: "thing"}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/identity/login", nil))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}

	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if !env.Success {
		t.Error("success = false, want true")
	}
	if env.Message != "resource created" {
		t.Errorf("message = %q, want %q", env.Message, "resource created")
	}
	if !strings.Contains(string(env.Data), `"thing"`) {
		t.Errorf("data = %s, want to contain %q", env.Data, "thing")
	}
}

func TestRouterEmptyBodySuppressesData(t *testing.T) {
	r, _ := newTestRouter(t)
	r.POST("/api/v1/identity/password/reset", func(_ *Request) (any, error) {
		return acceptedResponse{}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/identity/password/reset", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"data"`) {
		t.Errorf("body = %s, want no data field", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"accepted"`) {
		t.Errorf("body = %s, want message %q", rec.Body.String(), "accepted")
	}
}

func TestRouterErrorEnvelope(t *testing.T) {
	r, _ := newTestRouter(t)
	r.POST("/api/v1/identity/password/verify-otp", func(_ *Request) (any, error) {
		return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeInvalidInput)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/identity/password/verify-otp", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Success {
		t.Error("success = true, want false")
	}
	if env.Message != "Invalid or expired OTP" {
		t.Errorf("message = %q, want %q", env.Message, "Invalid or expired OTP")
	}
}

func TestRouterNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouterProtectedRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)
	r.POST("/api/v1/identity/password/change", func(_ *Request) (any, error) {
		return acceptedResponse{}, nil
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/identity/password/change", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRouterProtectedAcceptsValidToken(t *testing.T) {
	r, j := newTestRouter(t)
	r.POST("/api/v1/identity/password/change", func(req *Request) (any, error) {
		if jwt.GetAuth(req.Context()) == nil {
			return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
		}
		return acceptedResponse{}, nil
	})

	token, err := j.Generate(7, "jane@clinic.test", "dentist")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/identity/password/change", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
}
