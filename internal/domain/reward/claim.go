package reward

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrZeroDelta     = errors.New("points delta must be non-zero")
	ErrInvalidPoints = errors.New("claim points must be positive")
)

const (
	ReasonDailyClaim  = "daily_claim"
	ReasonAdminGrant  = "admin_grant"
	maxReasonLength   = 200
	claimDayKeyFormat = "20060102"
)

// Day is a UTC calendar day; one claim per owner per Day.
type Day struct {
	t time.Time
}

func DayOf(now time.Time) Day {
	u := now.UTC()
	return Day{t: time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Day) Time() time.Time { return d.t }
func (d Day) Key() string     { return d.t.Format(claimDayKeyFormat) }

// Adjustment is one signed change to an owner's points balance.
type Adjustment struct {
	delta   int64
	reason  string
	byAdmin bool
}

func NewClaimAdjustment(points int64) (Adjustment, error) {
	if points <= 0 {
		return Adjustment{}, ErrInvalidPoints
	}
	return Adjustment{delta: points, reason: ReasonDailyClaim}, nil
}

func NewAdminAdjustment(delta int64, reason string) (Adjustment, error) {
	if delta == 0 {
		return Adjustment{}, ErrZeroDelta
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = ReasonAdminGrant
	}
	return Adjustment{delta: delta, reason: truncate(reason, maxReasonLength), byAdmin: true}, nil
}

func (a Adjustment) Delta() int64   { return a.delta }
func (a Adjustment) Reason() string { return a.reason }
func (a Adjustment) ByAdmin() bool  { return a.byAdmin }

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
