package model

/*

Like is a "many-to-many" relation of a user liking a tweet

UserId: user id, part of the composite primary key
TweetId: tweet id, part of the composite primary key

The composite key makes a like unique per (user, tweet) pair; a duplicate
insert fails at the storage layer. TweetId is a real foreign key, so liking
a nonexistent tweet fails the same way.

*/

type Like struct {
	UserId  int `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	TweetId int `json:"tweet_id" gorm:"primaryKey;autoIncrement:false"`

	User  *User  `json:"-" gorm:"foreignKey:UserId"`
	Tweet *Tweet `json:"-" gorm:"foreignKey:TweetId;constraint:OnDelete:CASCADE"`
}
