//go:build unit || e2e

package builder

import (
	"time"

	"room-reservation/internal/domain/user"
	"room-reservation/internal/usecase/queries"
)

type UserBuilder struct {
	ID         int64
	ExternalID string
	Email      string
	Name       string
	AvatarURL  *string
	LoginAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:         1,
		ExternalID: "google-oauth2|100",
		Email:      "test@example.com",
		Name:       "Test User",
		LoginAt:    time.Date(2030, 1, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.NewUser(u.ExternalID, email, u.Name, u.AvatarURL, u.LoginAt)
}

func (u *UserBuilder) BuildStored() *user.User {
	email, _ := user.NewEmail(u.Email)
	loginAt := u.LoginAt
	return user.ReconstructUser(u.ID, u.ExternalID, email, u.Name, u.AvatarURL, &loginAt, u.LoginAt, u.LoginAt)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	loginAt := u.LoginAt
	return &queries.UserView{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		AvatarURL:   u.AvatarURL,
		LastLoginAt: &loginAt,
		CreatedAt:   u.LoginAt,
	}
}

func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithExternalID(id string) *UserBuilder {
	u.ExternalID = id
	return u
}
