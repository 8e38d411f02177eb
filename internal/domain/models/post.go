package models

import "time"

type Post struct {
	ID        int64     `db:"id" json:"id"`
	GalleryID int64     `db:"gallery_id" json:"gallery_id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	UserName  string    `db:"user_name" json:"user_name"`
	Title     string    `db:"title" json:"title"`
	Content   string    `db:"content" json:"content"`
	Views     int64     `db:"views" json:"views"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
