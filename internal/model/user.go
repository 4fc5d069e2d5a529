package model

import "time"

// User is a registered candidate account.
type User struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Name            string    `json:"name" bson:"name"`
	Email           string    `json:"email" bson:"email"`
	PasswordHash    string    `json:"-" bson:"passwordHash"`
	Profession      string    `json:"profession" bson:"profession"`
	ExperienceLevel string    `json:"experienceLevel" bson:"experienceLevel"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
}

// PublicUser is the user payload returned by auth endpoints.
type PublicUser struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Profession      string `json:"profession,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
}

// Public strips credentials from a User.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:              u.ID,
		Name:            u.Name,
		Email:           u.Email,
		Profession:      u.Profession,
		ExperienceLevel: u.ExperienceLevel,
	}
}
