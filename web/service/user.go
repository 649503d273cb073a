package service

import (
	"movielist/database"
	"movielist/database/model"
	"movielist/util/common"
	"movielist/util/crypto"
	"movielist/web/entity"
)

// ErrEmailTaken is the duplicate-email registration failure. It is distinct
// from field validation errors: the fields were fine, the store was not.
var ErrEmailTaken = common.NewErrorf("email already registered")

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

// Register validates the whole form, rejects duplicate emails and stores the
// user with a salted bcrypt hash. The raw password is never persisted.
// A validation.Errors return carries every violated rule at once.
func (s *UserService) Register(form *entity.RegisterForm) (*model.User, error) {
	if errs := form.CheckValid(); errs != nil {
		return nil, errs
	}

	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("email = ?", form.Email).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         form.Name,
		Email:        form.Email,
		PasswordHash: hash,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser loads a user by id.
func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	if err := db.First(user, id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword replaces a user's password hash. Operator recovery path,
// reachable from the CLI only.
func (s *UserService) ResetPassword(email string, newPassword string) error {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return ErrUserNotFound
	} else if err != nil {
		return err
	}

	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}

	return db.Model(model.User{}).
		Where("id = ?", user.Id).
		Update("password_hash", hash).
		Error
}
