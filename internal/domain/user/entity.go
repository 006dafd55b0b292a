package user

import (
	"strings"
	"time"
	"unicode/utf8"
)

const maxNameLength = 64

// Profile is the chat identity a front end registers. Names are display data
// only; nothing keys on them.
type Profile struct {
	id        ID
	username  string
	firstName string
	joinedAt  time.Time
}

func NewProfile(id ID, username, firstName string, joinedAt time.Time) (*Profile, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	firstName = strings.TrimSpace(firstName)
	if utf8.RuneCountInString(username) > maxNameLength || utf8.RuneCountInString(firstName) > maxNameLength {
		return nil, ErrInvalidUsername
	}
	return &Profile{
		id:        id,
		username:  username,
		firstName: firstName,
		joinedAt:  joinedAt,
	}, nil
}

func (p *Profile) ID() ID              { return p.id }
func (p *Profile) Username() string    { return p.username }
func (p *Profile) FirstName() string   { return p.firstName }
func (p *Profile) JoinedAt() time.Time { return p.joinedAt }
