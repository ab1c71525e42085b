//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO users (external_id, email, name, last_login_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		"subject|"+email, email, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestLocation(t *testing.T, db DBLike, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO locations (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, locationID int64, name string, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (location_id, name, capacity) VALUES ($1, $2, $3) RETURNING id",
		locationID, name, capacity).Scan(&id)
	require.NoError(t, err)
	return id
}

// ReservationFixture inserts a booking directly, bypassing the validation rules.
type ReservationFixture struct {
	RoomID      int64
	Start       time.Time
	End         time.Time
	Responsible string
	CreatedBy   string
}

func CreateTestReservation(t *testing.T, db DBLike, f ReservationFixture) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO reservations (location_id, room_id, location_name, room_name, start_time, end_time, responsible, created_by)
		SELECT r.location_id, r.id, l.name, r.name, $2, $3, $4, $5
		FROM rooms r JOIN locations l ON l.id = r.location_id
		WHERE r.id = $1
		RETURNING id`,
		f.RoomID, f.Start, f.End, f.Responsible, f.CreatedBy).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and restarts identities
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
