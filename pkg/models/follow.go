package models

import "time"

// Follow is a directed edge: follower follows following. The pair is the
// primary key, so duplicate edges are impossible at the schema level too.
type Follow struct {
	FollowerID  string    `json:"follower_id" gorm:"primaryKey;type:varchar(128)"`
	FollowingID string    `json:"following_id" gorm:"primaryKey;type:varchar(128)"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Follow) TableName() string {
	return "follows"
}
