package auth

import (
	"errors"
	"fmt"
	"time"

	"tournament/pkg/kvstore"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// JWTSecret signs session tokens. main overrides it from config.
var JWTSecret = []byte("your-secret-key")

type AuthService struct {
	KV kvstore.KVStore
	DB *gorm.DB
}

func New(kv kvstore.KVStore, db *gorm.DB) *AuthService {
	return &AuthService{
		KV: kv,
		DB: db,
	}
}

// Login looks a user up by the (username, role) pair, verifies the password
// against the stored bcrypt hash and on success issues a whitelisted session
// token. Missing user and wrong password are indistinguishable to the caller.
func (a *AuthService) Login(username, password, role string) (string, Session, error) {
	var user Users
	err := a.DB.Table("users").Where("user_name = ? AND role = ?", username, role).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", Session{}, ErrInvalidCredentials
	}

	session := Session{UserID: user.UserID, UserName: user.UserName, Role: user.Role}

	token, err := a.GenerateToken(session)
	if err != nil {
		return "", Session{}, err
	}

	// Insert the token into the KV store {List of tokens for a user: Multiple devices}
	err = a.KV.RPush("session_token_"+fmt.Sprintf("%d", user.UserID), token)
	if err != nil {
		return "", Session{}, err
	}

	return token, session, nil
}

func (a *AuthService) GenerateToken(session Session) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":   session.UserID,
		"user_name": session.UserName,
		"role":      session.Role,
		"exp":       time.Now().Add(time.Hour * 72).Unix(),
	})

	tokenString, err := token.SignedString(JWTSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses a session token and recovers the session it carries.
func (a *AuthService) ValidateToken(tokenString string) (Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return JWTSecret, nil
	})
	if err != nil {
		return Session{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Session{}, errors.New("invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return Session{}, errors.New("invalid token")
	}
	userName, _ := claims["user_name"].(string)
	role, _ := claims["role"].(string)

	return Session{UserID: int(userID), UserName: userName, Role: role}, nil
}

func (a *AuthService) RevokeToken(userID int, tokenString string) error {
	// Even if someone still holds this token, it fails the whitelist check
	// after removal.
	return a.KV.LRem("session_token_"+fmt.Sprintf("%d", userID), 1, tokenString)
}

func (a *AuthService) CheckIfTokenIsWhiteListed(userID int, tokenString string) bool {
	tokens, err := a.KV.LRange("session_token_"+fmt.Sprintf("%d", userID), 0, -1)
	if err != nil {
		return false
	}

	for _, t := range tokens {
		if t == tokenString {
			return true
		}
	}

	return false
}

func (a *AuthService) Logout(userID int, tokenString string) error {
	return a.RevokeToken(userID, tokenString)
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
