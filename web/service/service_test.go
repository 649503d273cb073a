package service

import (
	"os"
	"testing"

	"movielist/database"
	"movielist/database/model"
	"movielist/web/entity"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) {
	t.Helper()
	removeTestDB()
	if err := database.InitDB("test.db"); err != nil {
		t.Fatal(err)
	}
}

func teardown() {
	if err := database.CloseDB(); err == nil {
		removeTestDB()
	}
}

func removeTestDB() {
	os.Remove("test.db")
	os.Remove("test.db-wal")
	os.Remove("test.db-shm")
}

// registerUser creates an account through the real registration path.
func registerUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user, err := NewUserService().Register(&entity.RegisterForm{
		Name:            name,
		Email:           email,
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
	})
	assert.NoError(t, err)
	assert.NotNil(t, user)
	return user
}

func validMovieForm() *entity.MovieForm {
	return &entity.MovieForm{
		Name:        "Blade Runner",
		Description: "A blade runner must pursue and terminate four replicants.",
		Year:        "1982",
		Rating:      "8.1",
		Genres:      []string{"Science fiction", "Tragedy"},
	}
}
