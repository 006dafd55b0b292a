package user

import (
	"errors"
	"strconv"
)

var (
	ErrInvalidID       = errors.New("invalid user id")
	ErrInvalidUsername = errors.New("invalid username")
)

// ID is the messaging platform's numeric account id.
type ID int64

func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, ErrInvalidID
	}
	return ID(v), nil
}

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return NewID(v)
}

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
