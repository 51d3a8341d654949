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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateBranch(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO branches (name, location) VALUES ($1, $2) RETURNING id",
		name, name+" city").Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateGuest(t *testing.T, db DBLike, branchID uuid.UUID, name, email string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO guests (branch_id, name, email) VALUES ($1, $2, $3) RETURNING id",
		branchID, name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateRoom inserts a room priced at price, a decimal string such as "100.00".
func CreateRoom(t *testing.T, db DBLike, branchID uuid.UUID, number, price string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (branch_id, number, type, price) VALUES ($1, $2, 'deluxe', $3::numeric) RETURNING id",
		branchID, number, price).Scan(&id)
	require.NoError(t, err)
	return id
}

func RoomStatus(t *testing.T, db DBLike, roomID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM rooms WHERE id = $1", roomID).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountLiveBookings(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE room_id = $1 AND status IN ('upcoming', 'current')",
		roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountEvents(t *testing.T, db DBLike, bookingID uuid.UUID, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM booking_events WHERE booking_id = $1 AND topic = $2",
		bookingID, topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
