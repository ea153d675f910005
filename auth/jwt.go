package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Realm is an independent credential namespace. Customer and admin sessions
// use separate signing secrets and separate cookies, so a token from one
// realm can never be replayed against the other's routes.
type Realm string

const (
	RealmCustomer Realm = "customer"
	RealmAdmin    Realm = "admin"
)

const (
	CustomerCookie = "user_session"
	AdminCookie    = "admin_session"

	tokenTTL = 72 * time.Hour
)

var ErrInvalidToken = errors.New("invalid token")

func secretFor(realm Realm) []byte {
	var key string
	switch realm {
	case RealmAdmin:
		key = os.Getenv("JWT_ADMIN_SECRET")
	default:
		key = os.Getenv("JWT_USER_SECRET")
	}
	if key == "" {
		key = os.Getenv("JWT_SECRET")
	}
	return []byte(key)
}

// CookieFor returns the session cookie name for a realm.
func CookieFor(realm Realm) string {
	if realm == RealmAdmin {
		return AdminCookie
	}
	return CustomerCookie
}

// IssueToken signs a session token for the given realm and subject ID.
func IssueToken(realm Realm, subjectID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subjectID,
		"realm": string(realm),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretFor(realm))
}

// ParseToken validates a token against the given realm and returns the
// subject ID. Tokens signed for the other realm fail verification outright
// because each realm has its own secret; the realm claim is checked as well
// in case both secrets are configured identically.
func ParseToken(realm Realm, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretFor(realm), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if r, _ := claims["realm"].(string); r != string(realm) {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
