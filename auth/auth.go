package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"restring/config"
	"restring/globals"
	"restring/middleware"
	"restring/models"
	"restring/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 12 * time.Hour

var admin struct {
	id    string
	email string
	hash  []byte
}

// Init binds the single configured admin identity. There is no user
// collection; the credential lives outside the database.
func Init(cfg config.Config) {
	admin.id = cfg.AdminID
	admin.email = cfg.AdminEmail
	admin.hash = []byte(cfg.AdminPasswordHash)
}

func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	// One response for unknown email and wrong password.
	if input.Email != admin.email {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err := bcrypt.CompareHashAndPassword(admin.hash, []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	tokenString, err := issueToken()
	if err != nil {
		log.Printf("login: token generation failed: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token":   tokenString,
		"adminId": admin.id,
	})
}

func Verify(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Token == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing token")
		return
	}

	claims, err := middleware.ValidateToken(input.Token)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.Admin{
		ID:    claims.AdminID,
		Email: claims.Email,
	})
}

func issueToken() (string, error) {
	claims := &middleware.Claims{
		AdminID: admin.id,
		Email:   admin.email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}
