package models

type Player struct {
	ID   int    `json:"id,omitempty" db:"id"`
	Name string `json:"name" db:"name"`

	AvatarKey *string `json:"-" db:"avatar_key"`
	AvatarURL *string `json:"avatar_url,omitempty" db:"-"`
}
