package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"goaltrack-server/src/config"
	db "goaltrack-server/src/db/sql"
	"goaltrack-server/src/models"
	"goaltrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func Signup(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode signup request body: %v", err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		if req.Name == "" || req.Email == "" || req.Password == "" {
			log.Printf("ERROR: Signup rejected, missing fields - Email: %s", req.Email)
			util.Message(w, http.StatusBadRequest, "name, email and password are required")
			return
		}

		if !util.ValidateEmail(req.Email) {
			log.Printf("ERROR: Email validation failed during signup - Email: %s", req.Email)
			util.Message(w, http.StatusBadRequest, "invalid email format")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", req.Email, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		userID, err := db.CreateUser(r.Context(), pool, req.Name, req.Email, string(hashedPassword))
		if err != nil {
			// The unique index on email is the duplicate check; no
			// racy pre-read.
			if strings.Contains(err.Error(), "duplicate key") {
				log.Printf("ERROR: Signup failed, email already exists - Email: %s", req.Email)
				util.Message(w, http.StatusBadRequest, "User already exists")
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
			util.Message(w, http.StatusInternalServerError, "internal error")
			return
		}

		log.Printf("INFO: Successful signup - Email: %s, ID: %d", req.Email, userID)
		util.Message(w, http.StatusOK, "User registered successfully")
	}
}

func Login(pool *pgxpool.Pool, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			util.Message(w, http.StatusBadRequest, "invalid request")
			return
		}

		req.Email = strings.ToLower(strings.TrimSpace(req.Email))

		// Unknown email and wrong password produce the same response
		// so the endpoint can't be used to enumerate accounts.
		user, err := db.GetUserByEmail(r.Context(), pool, req.Email)
		if err != nil {
			log.Printf("ERROR: Failed to find user during login - Email: %s: %v", req.Email, err)
			util.Message(w, http.StatusBadRequest, "Invalid email or password")
			return
		}

		if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for email %s from IP %s", req.Email, r.RemoteAddr)
			util.Message(w, http.StatusBadRequest, "Invalid email or password")
			return
		}

		tokenString, err := util.GenerateToken(cfg.JWTSecret, user.ID, cfg.TokenTTL)
		if err != nil {
			log.Printf("ERROR: Failed to generate token for user %d: %v", user.ID, err)
			util.Message(w, http.StatusInternalServerError, "Error generating token")
			return
		}

		log.Printf("INFO: Successful login - Email: %s, ID: %d", user.Email, user.ID)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Login successful",
			"token":   tokenString,
		})
	}
}
