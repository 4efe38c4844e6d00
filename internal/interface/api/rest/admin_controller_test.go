package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "filedrop-api/internal/domain/file"
	"filedrop-api/internal/infrastructure/jwt"
)

const adminTestSecret = "admin-test-secret"

func newAdminRouter(fake *FakeFileService, jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAdminController(r, fake, zap.NewNop(), jwtService)
	return r
}

func adminToken(t *testing.T, jwtService *jwt.Service, role string) string {
	t.Helper()
	token, err := jwtService.GenerateJWT("1", role, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAdminAuth(t *testing.T) {
	jwtService := jwt.New(adminTestSecret)

	type want struct {
		status int
		body   string
	}

	tests := []struct {
		name   string
		header string
		want   want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{status: http.StatusUnauthorized, body: "missing Authorization header"},
		},
		{
			name:   "not a bearer token",
			header: "Basic YWRtaW46YWRtaW4=",
			want:   want{status: http.StatusUnauthorized, body: "invalid token format"},
		},
		{
			name:   "garbage token",
			header: "Bearer not.a.jwt",
			want:   want{status: http.StatusUnauthorized, body: "invalid token"},
		},
		{
			name:   "wrong signing key",
			header: "Bearer " + adminToken(t, jwt.New("other-secret"), "admin"),
			want:   want{status: http.StatusUnauthorized, body: "invalid token"},
		},
		{
			name:   "valid token without the admin role",
			header: "Bearer " + adminToken(t, jwtService, "viewer"),
			want:   want{status: http.StatusForbidden, body: "admin role required"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAdminRouter(&FakeFileService{}, jwtService)

			req := httptest.NewRequest(http.MethodGet, RouteAdminFiles, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.want.body)
		})
	}
}

func TestListFilesHandler(t *testing.T) {
	jwtService := jwt.New(adminTestSecret)
	now := time.Now().UTC()

	fake := &FakeFileService{
		FindAllFunc: func(ctx context.Context) (domain.SharedFiles, error) {
			return domain.SharedFiles{
				{ID: 2, Code: "EFGH6789", OriginalName: "b.bin", ContentType: "application/octet-stream", SizeBytes: 9, UploadedAt: now},
				{ID: 1, Code: "ABCD2345", OriginalName: "a.txt", ContentType: "text/plain", SizeBytes: 5, UploadedAt: now.Add(-time.Hour), DownloadCount: 7},
			}, nil
		},
	}
	r := newAdminRouter(fake, jwtService)

	req := httptest.NewRequest(http.MethodGet, RouteAdminFiles, nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, jwtService, "admin"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)

	assert.Equal(t, float64(2), resp.Data[0]["id"])
	assert.Equal(t, "EFGH6789", resp.Data[0]["code"])
	assert.Equal(t, float64(7), resp.Data[1]["download_count"])

	for _, item := range resp.Data {
		assert.NotContains(t, item, "delete_token", "admin listing must not leak tokens")
	}
}

func TestDeleteFileHandler(t *testing.T) {
	jwtService := jwt.New(adminTestSecret)

	type want struct {
		status int
	}

	tests := []struct {
		name    string
		path    string
		deleted bool
		want    want
	}{
		{
			name:    "success",
			path:    "/api/v1/admin/files/42",
			deleted: true,
			want:    want{status: http.StatusNoContent},
		},
		{
			name:    "unknown id",
			path:    "/api/v1/admin/files/999",
			deleted: false,
			want:    want{status: http.StatusNotFound},
		},
		{
			name: "non-numeric id",
			path: "/api/v1/admin/files/abc",
			want: want{status: http.StatusBadRequest},
		},
		{
			name: "zero id",
			path: "/api/v1/admin/files/0",
			want: want{status: http.StatusBadRequest},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			fake := &FakeFileService{
				DeleteByIDFunc: func(ctx context.Context, id domain.ID) (bool, error) {
					return tt.deleted, nil
				},
			}
			r := newAdminRouter(fake, jwtService)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			req.Header.Set("Authorization", "Bearer "+adminToken(t, jwtService, "admin"))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want.status, w.Code)
		})
	}
}
