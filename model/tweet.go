package model

/*

Tweet is a data model for a posted tweet

Id: primary key, auto-assigned
Content: text of the tweet, required
AuthorId: foreign key of the authoring User, required

Likes: likes placed on this tweet, removed with the tweet
Medias: files attached to this tweet, removed with the tweet

*/

type Tweet struct {
	Id       int    `json:"id" gorm:"primaryKey"`
	Content  string `json:"content" gorm:"not null"`
	AuthorId int    `json:"author_id" gorm:"not null;index"`

	Author *User    `json:"-" gorm:"foreignKey:AuthorId"`
	Likes  []*Like  `json:"-" gorm:"foreignKey:TweetId;constraint:OnDelete:CASCADE"`
	Medias []*Media `json:"-" gorm:"foreignKey:TweetId;constraint:OnDelete:CASCADE"`
}
