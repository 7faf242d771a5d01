package model

/*

User is a data model for a registered user

Id: primary key, auto-assigned
Name: display name of the user, required
KeyId: foreign key of the ApiKey used to authenticate this user, optional

ApiKey: the key record itself, "one-to-one" relation
Tweets: tweets authored by this user
Medias: files uploaded by this user
Likes: likes this user has placed

*/

type User struct {
	Id    int    `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	KeyId *int   `json:"-"`

	ApiKey *ApiKey  `json:"-" gorm:"foreignKey:KeyId"`
	Tweets []*Tweet `json:"-" gorm:"foreignKey:AuthorId"`
	Medias []*Media `json:"-" gorm:"foreignKey:UserId"`
	Likes  []*Like  `json:"-" gorm:"foreignKey:UserId"`
}
