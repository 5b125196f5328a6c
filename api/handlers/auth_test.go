package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/satlantas/laka-report-api/api/handlers"
	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/databases/mocks"
	"github.com/satlantas/laka-report-api/models"
)

func authMockUserDB(t *testing.T, password string, findErr error) databases.UserDatabase {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	srHelper := &mocks.SingleResultHelper{}
	srHelper.On("Decode", mock.Anything).Return(findErr).Run(func(args mock.Arguments) {
		if findErr != nil {
			return
		}
		arg := args.Get(0).(*models.User)
		arg.ID = "officer-1"
		arg.Details = models.UserDetails{
			Email:    "bripka.wisnu@polri.go.id",
			Name:     "WISNU ANTONI",
			Pangkat:  "BRIPKA",
			NRP:      "86031618",
			Password: string(hashed),
			Roles:    []string{"petugas"},
		}
	})

	uDB := &mocks.UserDatabase{}
	uDB.On("FindOne", mock.Anything, mock.Anything).Return(srHelper)
	return uDB
}

func TestAuth_LoginHandlerSuccess(t *testing.T) {
	body := `{"email": "bripka.wisnu@polri.go.id", "password": "rahasia123"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.Auth{UDB: authMockUserDB(t, "rahasia123", nil), JWTSecret: "test-secret"}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got struct {
		Token   string `json:"token"`
		Officer struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"officer"`
	}
	err = json.Unmarshal(rr.Body.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, "WISNU ANTONI", got.Officer.Name)

	parsed, err := jwt.Parse(got.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, "officer-1", claims["sub"])
	assert.Equal(t, "bripka.wisnu@polri.go.id", claims["email"])
}

func TestAuth_LoginHandlerWrongPassword(t *testing.T) {
	body := `{"email": "bripka.wisnu@polri.go.id", "password": "salah"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.Auth{UDB: authMockUserDB(t, "rahasia123", nil), JWTSecret: "test-secret"}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_LoginHandlerUnknownAccount(t *testing.T) {
	body := `{"email": "nobody@polri.go.id", "password": "rahasia123"}`
	req, err := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}

	u := handlers.Auth{UDB: authMockUserDB(t, "rahasia123", errors.New("mocked-error")), JWTSecret: "test-secret"}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
