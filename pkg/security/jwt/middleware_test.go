package jwt

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(secret, issuer string) *fiber.App {
	app := fiber.New()
	app.Get("/", NewAuthMiddleware(secret, issuer), func(c *fiber.Ctx) error {
		sub, _ := c.Locals("subject").(string)
		client, _ := c.Locals("client").(string)
		return c.SendString(sub + "|" + client)
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestGenerate_Validation(t *testing.T) {
	_, err := NewGenerator("", "jobstats", time.Hour).Generate("svc", "")
	assert.Error(t, err)
	_, err = NewGenerator("s3cret", "jobstats", time.Hour).Generate(" ", "")
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	gen := NewGenerator("s3cret", "jobstats", time.Hour)
	good, err := gen.Generate("dashboard", "grafana")
	require.NoError(t, err)
	expired, err := NewGenerator("s3cret", "jobstats", -time.Minute).Generate("dashboard", "")
	require.NoError(t, err)
	foreign, err := NewGenerator("s3cret", "other", time.Hour).Generate("dashboard", "")
	require.NoError(t, err)
	wrongKey, err := NewGenerator("nope", "jobstats", time.Hour).Generate("dashboard", "")
	require.NoError(t, err)

	app := newApp("s3cret", "jobstats")
	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"bearer", "Bearer " + good, http.StatusOK, "dashboard|grafana"},
		{"bare token", good, http.StatusOK, "dashboard|grafana"},
		{"lowercase scheme", "bearer " + good, http.StatusOK, "dashboard|grafana"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, ""},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, ""},
		{"issuer", "Bearer " + foreign, http.StatusUnauthorized, ""},
		{"signature", "Bearer " + wrongKey, http.StatusUnauthorized, ""},
		{"garbage", "Bearer abc.def.ghi", http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := call(t, app, tt.header)
			assert.Equal(t, tt.status, status)
			if tt.body != "" {
				assert.Equal(t, tt.body, body)
			}
		})
	}
}
