package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"ayurchain/db"
	"ayurchain/globals"
	"ayurchain/middleware"
	"ayurchain/models"
	"ayurchain/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func issueToken(userID primitive.ObjectID, role models.Role) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.Hex(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret())
}

// Register creates a Profile. The role is fixed here for good: no operation
// ever changes it afterwards.
func Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please fill in all required fields")
		return
	}
	if len(req.Password) < 6 {
		utils.RespondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid role")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := db.ProfilesCollection.CountDocuments(ctx, bson.M{"email": req.Email})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register")
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	now := time.Now()
	profile := models.Profile{
		ID:           primitive.NewObjectID(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := db.ProfilesCollection.InsertOne(ctx, profile); err != nil {
		utils.RespondWithError(w, http.StatusConflict, "Email already registered")
		return
	}

	token, err := issueToken(profile.ID, profile.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "token": token, "profile": profile})
}

// Login verifies credentials and returns a bearer token carrying the
// profile's role, which the dashboards use to route the principal.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Please enter both email and password")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var profile models.Profile
	err := db.ProfilesCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)) != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := issueToken(profile.ID, profile.Role)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": token, "profile": profile})
}

// LogoutUser acknowledges logout. Tokens are stateless; the client drops its
// copy.
func LogoutUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// RefreshToken reissues a token for the already-authenticated principal.
func RefreshToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := primitive.ObjectIDFromHex(utils.GetUserIDFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	token, err := issueToken(userID, utils.GetRoleFromContext(r.Context()))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": token})
}
