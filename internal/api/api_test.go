package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/petmily/petmily/internal/db"
	"github.com/petmily/petmily/internal/models"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "petmily_test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler, err := NewHandler(database, testSecret, time.UTC)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database
}

func seedProfile(t *testing.T, database *gorm.DB, userID uint) models.Profile {
	t.Helper()

	profile := models.Profile{UserID: userID, Name: "콩이", Species: "dog"}
	if err := database.Create(&profile).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return profile
}

func signTestToken(t *testing.T, userID uint) string {
	t.Helper()

	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign test token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, app *fiber.App, method string, path string, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, target interface{}) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}
