package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"filedrop-api/internal/application/services"
)

type FakeAuth struct {
	LoginFunc func(ctx context.Context, username, password string) (string, error)
}

func (f *FakeAuth) Login(ctx context.Context, username, password string) (string, error) {
	return f.LoginFunc(ctx, username, password)
}
func (f *FakeAuth) EnsureAdmin(ctx context.Context) error { return nil }

func newAuthRouter(fake *FakeAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthController(r, zap.NewNop(), fake)
	return r
}

func TestLoginHandler(t *testing.T) {
	type want struct {
		status int
		body   string
	}

	tests := []struct {
		name string
		body string
		fake *FakeAuth
		want want
	}{
		{
			name: "invalid json",
			body: `{"username": `,
			fake: &FakeAuth{},
			want: want{status: http.StatusBadRequest, body: "invalid json"},
		},
		{
			name: "missing fields",
			body: `{}`,
			fake: &FakeAuth{},
			want: want{status: http.StatusBadRequest, body: "invalid request body"},
		},
		{
			name: "password too short",
			body: `{"username":"admin","password":"short"}`,
			fake: &FakeAuth{},
			want: want{status: http.StatusBadRequest, body: "invalid request body"},
		},
		{
			name: "bad credentials",
			body: `{"username":"admin","password":"wrongpass"}`,
			fake: &FakeAuth{
				LoginFunc: func(ctx context.Context, username, password string) (string, error) {
					return "", services.ErrInvalidCredentials
				},
			},
			want: want{status: http.StatusUnauthorized, body: "invalid username or password"},
		},
		{
			name: "unknown user gets the same answer",
			body: `{"username":"nobody","password":"whatever123"}`,
			fake: &FakeAuth{
				LoginFunc: func(ctx context.Context, username, password string) (string, error) {
					return "", services.ErrInvalidCredentials
				},
			},
			want: want{status: http.StatusUnauthorized, body: "invalid username or password"},
		},
		{
			name: "infrastructure error",
			body: `{"username":"admin","password":"admin123"}`,
			fake: &FakeAuth{
				LoginFunc: func(ctx context.Context, username, password string) (string, error) {
					return "", errors.New("db down")
				},
			},
			want: want{status: http.StatusInternalServerError, body: "failed to log in"},
		},
		{
			name: "success",
			body: `{"username":"admin","password":"admin123"}`,
			fake: &FakeAuth{
				LoginFunc: func(ctx context.Context, username, password string) (string, error) {
					return "signed.jwt.token", nil
				},
			},
			want: want{status: http.StatusOK, body: "signed.jwt.token"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthRouter(tt.fake)

			req := httptest.NewRequest(http.MethodPost, RouteLogin, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want.body)

			if tt.want.status == http.StatusOK {
				var resp map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Bearer", resp["token_type"])
				assert.Equal(t, "signed.jwt.token", resp["access_token"])
			}
		})
	}
}
