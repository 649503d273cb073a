package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// User is an account able to post movies. Users are created on registration
// and never deleted; movies reference them through Movie.PostedBy.
type User struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
}

// Movie is a catalog entry owned by the user who posted it.
type Movie struct {
	Id          int       `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name        string    `json:"name" form:"name" gorm:"not null"`
	Description string    `json:"description" form:"description" gorm:"not null"`
	Year        int       `json:"year" form:"year"`
	Genres      GenreList `json:"genres" form:"genres" gorm:"type:text"`
	Rating      float64   `json:"rating" form:"rating"`
	PostedBy    int       `json:"postedBy" gorm:"index"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Genres is the fixed set a movie may be tagged with.
var Genres = []string{
	"Adventure",
	"Science fiction",
	"Tragedy",
	"Romance",
	"Horror",
	"Comedy",
}

// GenreList stores a movie's genres as a JSON array in a single TEXT column.
type GenreList []string

func (g GenreList) Value() (driver.Value, error) {
	if g == nil {
		g = GenreList{}
	}
	data, err := json.Marshal(g)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (g *GenreList) Scan(value any) error {
	if value == nil {
		*g = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, g)
	case string:
		return json.Unmarshal([]byte(v), g)
	default:
		return fmt.Errorf("unsupported genre column type %T", value)
	}
}
