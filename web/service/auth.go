package service

import (
	"strconv"

	"movielist/database"
	"movielist/database/model"
	"movielist/logger"
	"movielist/util/common"
	"movielist/util/crypto"
)

// Login rejections. Both map to the same message in the UI, but callers can
// tell them apart; anything else returned by Authenticate is a store failure.
var (
	ErrUserNotFound       = common.NewErrorf("user not found")
	ErrInvalidCredentials = common.NewErrorf("invalid credentials")
)

// AuthService resolves credentials to a user identity and converts an
// identity to and from the durable session token. It is constructed once and
// handed to the controllers that need it.
type AuthService struct{}

func NewAuthService() *AuthService {
	return &AuthService{}
}

// Authenticate looks the user up by exact email match and verifies the
// password against the stored bcrypt hash.
func (s *AuthService) Authenticate(email string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ToToken reduces an identity to the durable session token: the user id.
func (s *AuthService) ToToken(user *model.User) string {
	return strconv.Itoa(user.Id)
}

// FromToken restores the identity behind a session token by re-reading the
// user. It returns nil when the token is malformed or the user is gone, so a
// stale cookie degrades to an anonymous request.
func (s *AuthService) FromToken(token string) *model.User {
	id, err := strconv.Atoi(token)
	if err != nil {
		return nil
	}

	db := database.GetDB()
	user := &model.User{}
	err = db.First(user, id).Error
	if database.IsNotFound(err) {
		return nil
	} else if err != nil {
		logger.Warning("restore session user err:", err)
		return nil
	}
	return user
}
