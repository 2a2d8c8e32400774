package models

import (
	"time"
)

type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
}

// Token is the opaque bearer credential issued by /api-token/.
// One active token per user, the key carries no structure.
type Token struct {
	Key       string    `json:"token" db:"key"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Post struct {
	ID            int64      `json:"id" db:"id"`
	AuthorID      int64      `json:"author" db:"author_id"`
	Title         string     `json:"title" db:"title"`
	Text          string     `json:"text" db:"text"`
	PublishedDate *time.Time `json:"published_date" db:"published_date"`
}

// Comment.Author is a free-text display name, not a User reference.
type Comment struct {
	ID              int64  `json:"id" db:"id"`
	PostID          int64  `json:"post" db:"post_id"`
	Author          string `json:"author" db:"author"`
	Text            string `json:"text" db:"text"`
	ApprovedComment bool   `json:"approved_comment" db:"approved_comment"`
}
