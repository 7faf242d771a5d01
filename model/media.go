package model

import (
	"fmt"
	"time"
)

/*

Media is a data model for an uploaded file

Id: primary key, auto-assigned
FileType: file extension without the dot, e.g. "jpg"
UserId: foreign key of the uploading User, required
TweetId: foreign key of the Tweet this file is attached to. Null until the
file is claimed by a tweet; set exactly once, never reassigned.
CreatedAt: upload time, used by the janitor to find stale unattached rows

*/

type Media struct {
	Id        int    `gorm:"primaryKey"`
	FileType  string `gorm:"not null"`
	UserId    int    `gorm:"not null;index"`
	TweetId   *int   `gorm:"index"`
	CreatedAt time.Time
}

// FileName is the stored object name, "{id}.{file_type}".
func (m *Media) FileName() string {
	return fmt.Sprintf("%d.%s", m.Id, m.FileType)
}
