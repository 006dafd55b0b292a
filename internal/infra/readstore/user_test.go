//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"premium-reconciler/internal/infra"
	sqlc "premium-reconciler/internal/infra/sqlc/generated"
	"premium-reconciler/internal/pkg/pgconv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUser(ctx context.Context, db sqlc.DBTX, userID int64) (sqlc.User, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(sqlc.User), args.Error(1)
}

func (m *MockUserReadQueries) ListLeaderboard(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListLeaderboardRow, error) {
	args := m.Called(ctx, db, limit)
	return args.Get(0).([]sqlc.ListLeaderboardRow), args.Error(1)
}

func TestUserReadStore_FindByID(t *testing.T) {
	until := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		row       sqlc.User
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{
			name: "premium user",
			row: sqlc.User{
				UserID:       7,
				Username:     "alice",
				PremiumUntil: pgconv.TimeToPgtype(until),
				Points:       30,
			},
		},
		{
			name: "never paid",
			row:  sqlc.User{UserID: 8, Username: "bob"},
		},
		{
			name:      "not found",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserReadQueries)
			q.On("GetUser", mock.Anything, mock.Anything, mock.Anything).Return(tt.row, tt.mockError)

			got, err := NewUserReadStore(q, nil).FindByID(context.Background(), 7)

			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.row.UserID, got.Owner)
			assert.Equal(t, tt.row.Points, got.Points)
			if tt.row.PremiumUntil.Valid {
				require.NotNil(t, got.PremiumUntil)
				assert.True(t, got.PremiumUntil.Equal(until))
			} else {
				assert.Nil(t, got.PremiumUntil)
			}
		})
	}
}

func TestUserReadStore_Leaderboard(t *testing.T) {
	rows := []sqlc.ListLeaderboardRow{
		{UserID: 3, Username: "c", Points: 50},
		{UserID: 1, Username: "a", Points: 20},
	}
	q := new(MockUserReadQueries)
	q.On("ListLeaderboard", mock.Anything, mock.Anything, int32(10)).Return(rows, nil)

	got, err := NewUserReadStore(q, nil).Leaderboard(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].Owner)
	assert.Equal(t, int64(20), got[1].Points)
}
