package model

/*

Subscribe is a directed "follows" relation between two users

FollowerId: the user who follows, part of the composite primary key
AuthorId: the user being followed, part of the composite primary key

The composite key rejects duplicate edges and the foreign keys reject edges
to nonexistent users; self-follow is rejected by the access layer before
storage is touched.

*/

type Subscribe struct {
	FollowerId int `gorm:"primaryKey;autoIncrement:false"`
	AuthorId   int `gorm:"primaryKey;autoIncrement:false"`

	Follower *User `gorm:"foreignKey:FollowerId"`
	Author   *User `gorm:"foreignKey:AuthorId"`
}
