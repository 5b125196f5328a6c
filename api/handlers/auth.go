package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/satlantas/laka-report-api/api"
	"github.com/satlantas/laka-report-api/databases"
	"github.com/satlantas/laka-report-api/models"
)

// Auth handles officer account logins
type Auth struct {
	UDB       databases.UserDatabase
	JWTSecret string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Officer struct {
		ID      string   `json:"id"`
		Email   string   `json:"email"`
		Name    string   `json:"name"`
		Pangkat string   `json:"pangkat"`
		NRP     string   `json:"nrp"`
		Roles   []string `json:"roles"`
	} `json:"officer"`
}

// LoginHandler verifies officer credentials and issues a signed JWT
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	var user models.User
	err := a.UDB.FindOne(ctx, bson.M{"user.email": req.Email}).Decode(&user)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Details.Password), []byte(req.Password)); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
		return
	}

	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Details.Email,
		"roles": user.Details.Roles,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(a.JWTSecret))
	if err != nil {
		zap.S().Errorw("failed to sign token", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "token generation failed"})
		return
	}

	var resp loginResponse
	resp.Token = signed
	resp.Officer.ID = user.ID
	resp.Officer.Email = user.Details.Email
	resp.Officer.Name = user.Details.Name
	resp.Officer.Pangkat = user.Details.Pangkat
	resp.Officer.NRP = user.Details.NRP
	resp.Officer.Roles = user.Details.Roles

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
