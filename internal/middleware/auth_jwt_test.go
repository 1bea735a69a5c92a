package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shop/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func testConfig() config.Config {
	return config.Config{JWTSecret: "test-secret"}
}

func signToken(t *testing.T, secret string, sub interface{}) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": sub,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(15 * time.Minute).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func runAuthJWT(t *testing.T, mw echo.MiddlewareFunc, authz string) (*httptest.ResponseRecorder, interface{}) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID interface{}
	h := mw(func(c echo.Context) error {
		gotUserID = c.Get(CtxUserIDKey)
		return c.NoContent(http.StatusOK)
	})

	err := h(c)
	assert.NoError(t, err)
	return rec, gotUserID
}

func TestAuthJWT_ValidToken(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.JWTSecret, 7)

	rec, userID := runAuthJWT(t, AuthJWT(cfg), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), userID)
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	rec, _ := runAuthJWT(t, AuthJWT(testConfig()), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", 7)
	rec, _ := runAuthJWT(t, AuthJWT(testConfig()), "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MalformedHeader(t *testing.T) {
	rec, _ := runAuthJWT(t, AuthJWT(testConfig()), "NotBearer xyz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalAuthJWT_AnonymousPassesThrough(t *testing.T) {
	//ゲスト注文のため、トークンが無くても通す
	rec, userID := runAuthJWT(t, OptionalAuthJWT(testConfig()), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, userID)
}

func TestOptionalAuthJWT_ValidTokenSetsUserID(t *testing.T) {
	cfg := testConfig()
	token := signToken(t, cfg.JWTSecret, 7)

	rec, userID := runAuthJWT(t, OptionalAuthJWT(cfg), "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), userID)
}

func TestOptionalAuthJWT_InvalidTokenStaysAnonymous(t *testing.T) {
	token := signToken(t, "other-secret", 7)
	rec, userID := runAuthJWT(t, OptionalAuthJWT(testConfig()), "Bearer "+token)

	//無効なトークンは401にせず匿名として扱う
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, userID)
}
