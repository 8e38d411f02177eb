package models

import "time"

// Gallery is a sub-forum inside a region. ManagerID owns it, the sub managers
// are informational only.
type Gallery struct {
	ID          int64     `db:"id" json:"id"`
	RegionID    int64     `db:"region_id" json:"region_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	ManagerID   int64     `db:"manager_id" json:"manager_id"`
	SubManager1 *int64    `db:"sub_manager_1" json:"sub_manager_1"`
	SubManager2 *int64    `db:"sub_manager_2" json:"sub_manager_2"`
	SubManager3 *int64    `db:"sub_manager_3" json:"sub_manager_3"`
	SubManager4 *int64    `db:"sub_manager_4" json:"sub_manager_4"`
	SubManager5 *int64    `db:"sub_manager_5" json:"sub_manager_5"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
