//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"premium-reconciler/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in    string
		want  user.ID
		errIs error
	}{
		{in: "6993912434", want: 6993912434},
		{in: "0", errIs: user.ErrInvalidID},
		{in: "-5", errIs: user.ErrInvalidID},
		{in: "@someone", errIs: user.ErrInvalidID},
		{in: "", errIs: user.ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := user.ParseID(tt.in)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestNewProfile(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("normalizes handle", func(t *testing.T) {
		p, err := user.NewProfile(7, " @bhek_fan ", " Endi ", now)
		require.NoError(t, err)
		assert.Equal(t, "bhek_fan", p.Username())
		assert.Equal(t, "Endi", p.FirstName())
		assert.Equal(t, now, p.JoinedAt())
	})

	t.Run("empty names are allowed", func(t *testing.T) {
		_, err := user.NewProfile(7, "", "", now)
		assert.NoError(t, err)
	})

	t.Run("overlong name", func(t *testing.T) {
		_, err := user.NewProfile(7, strings.Repeat("x", 65), "", now)
		assert.ErrorIs(t, err, user.ErrInvalidUsername)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := user.NewProfile(0, "a", "b", now)
		assert.ErrorIs(t, err, user.ErrInvalidID)
	})
}
