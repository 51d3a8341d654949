//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/repository"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	repositorymock "hotel-booking/internal/mock/repository"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/testutil/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errDBConnection = errors.New("database connection error")

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking row mirrors the aggregate",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
						assert.Equal(t, b.ID(), arg.ID)
						assert.Equal(t, b.RoomID(), arg.RoomID)
						assert.Equal(t, "upcoming", arg.Status)
						assert.Equal(t, "pending", arg.PaymentStatus)
						assert.False(t, arg.PaymentMethod.Valid)
						assert.Equal(t, b.Period().CheckIn(), pgconv.DateFromPgtype(arg.CheckIn))
						minor, err := pgconv.MinorUnitsFromNumeric(arg.TotalAmount)
						require.NoError(t, err)
						assert.Equal(t, int64(20000), minor)
						return sqlc.Bookings{ID: arg.ID}, nil
					})
			},
		},
		{
			name: "error: overlapping live booking rejected by the exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23P01", ConstraintName: "bookings_no_overlap"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindExclusionViolated,
		},
		{
			name: "error: unknown guest",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				pgErr := &pgconn.PgError{Code: "23503", ConstraintName: "bookings_guest_id_fkey"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, pgErr)
			},
			expectedError: true,
			expectKind:    infra.KindForeignKeyViolated,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, errDBConnection)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			b := builder.NewBookingBuilder().BuildDomain()
			tc.setupMock(mockQueries, b, mockDB)

			err := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// FindForUpdate Tests
// =============================================================================

func TestBookingRepository_FindForUpdate(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        func(*builder.BookingBuilder) sqlc.Bookings
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row converted to aggregate",
			row: func(b *builder.BookingBuilder) sqlc.Bookings {
				return b.BuildInfra()
			},
		},
		{
			name:       "error: booking not found",
			queryErr:   pgx.ErrNoRows,
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: corrupt stay in row",
			row: func(b *builder.BookingBuilder) sqlc.Bookings {
				row := b.BuildInfra()
				row.CheckOut = row.CheckIn
				return row
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: unknown status in row",
			row: func(b *builder.BookingBuilder) sqlc.Bookings {
				row := b.BuildInfra()
				row.Status = "archived"
				return row
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			bb := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				method := booking.PaymentMethodOnline
				b.PaymentMethod = &method
			})
			var row sqlc.Bookings
			if tc.row != nil {
				row = tc.row(bb)
			}
			mockQueries.EXPECT().GetBookingForUpdate(ctx, mockDB, bb.ID).Return(row, tc.queryErr)

			got, err := repo.FindForUpdate(ctx, mockDB, bb.ID)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bb.ID, got.ID())
			assert.Equal(t, bb.Period(), got.Period())
			assert.Equal(t, booking.StatusUpcoming, got.Status())
			require.NotNil(t, got.PaymentMethod())
			assert.Equal(t, booking.PaymentMethodOnline, *got.PaymentMethod())
			assert.Equal(t, "200.00", got.Total().String())
			assert.Equal(t, "late arrival", got.Notes().String())
		})
	}
}

// =============================================================================
// CountOverlapping Tests
// =============================================================================

func TestBookingRepository_CountOverlapping(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries)

	bb := builder.NewBookingBuilder()
	excluded := uuid.New()

	t.Run("success: passes the half-open range and excluded id", func(t *testing.T) {
		mockQueries.EXPECT().CountOverlappingBookings(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error) {
				assert.Equal(t, bb.RoomID, arg.RoomID)
				assert.Equal(t, bb.CheckIn, pgconv.DateFromPgtype(arg.CheckIn))
				assert.Equal(t, bb.CheckOut, pgconv.DateFromPgtype(arg.CheckOut))
				assert.True(t, arg.ExcludeID.Valid)
				assert.Equal(t, excluded, uuid.UUID(arg.ExcludeID.Bytes))
				return 2, nil
			})

		n, err := repo.CountOverlapping(ctx, mockDB, bb.RoomID, bb.Period(), &excluded)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})

	t.Run("success: no exclusion when creating", func(t *testing.T) {
		mockQueries.EXPECT().CountOverlappingBookings(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CountOverlappingBookingsParams) (int64, error) {
				assert.False(t, arg.ExcludeID.Valid)
				return 0, nil
			})

		n, err := repo.CountOverlapping(ctx, mockDB, bb.RoomID, bb.Period(), nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		mockQueries.EXPECT().CountOverlappingBookings(ctx, mockDB, gomock.Any()).Return(int64(0), errDBConnection)

		_, err := repo.CountOverlapping(ctx, mockDB, bb.RoomID, bb.Period(), nil)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

// =============================================================================
// Update / Delete Tests
// =============================================================================

func TestBookingRepository_Update(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries)
	b := builder.NewBookingBuilder().BuildDomain()

	t.Run("success: update carries the booking id", func(t *testing.T) {
		mockQueries.EXPECT().UpdateBooking(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateBookingParams) (sqlc.Bookings, error) {
				assert.Equal(t, b.ID(), arg.ID)
				return sqlc.Bookings{ID: arg.ID}, nil
			})
		assert.NoError(t, repo.Update(ctx, mockDB, b))
	})

	t.Run("error: moved onto an occupied range", func(t *testing.T) {
		mockQueries.EXPECT().UpdateBooking(ctx, mockDB, gomock.Any()).
			Return(sqlc.Bookings{}, &pgconn.PgError{Code: "23P01"})
		err := repo.Update(ctx, mockDB, b)
		assert.True(t, infra.IsKind(err, infra.KindExclusionViolated))
	})

	t.Run("error: row vanished", func(t *testing.T) {
		mockQueries.EXPECT().UpdateBooking(ctx, mockDB, gomock.Any()).Return(sqlc.Bookings{}, pgx.ErrNoRows)
		err := repo.Update(ctx, mockDB, b)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestBookingRepository_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name       string
		affected   int64
		queryErr   error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success: row deleted", affected: 1},
		{name: "error: booking not found", affected: 0, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", queryErr: errDBConnection, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			mockQueries.EXPECT().DeleteBooking(ctx, mockDB, id).Return(tc.affected, tc.queryErr)

			err := repo.Delete(ctx, mockDB, id)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Status Reconciliation Tests
// =============================================================================

func TestBookingRepository_ListToProgress(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)
	bb := builder.NewBookingBuilder()

	t.Run("success: rows converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		mockQueries.EXPECT().ListBookingsToProgress(ctx, mockDB, sqlc.ListBookingsToProgressParams{
			Today:    pgconv.DateToPgtype(today),
			RowLimit: 10,
		}).Return([]sqlc.ListBookingsToProgressRow{{
			ID:       bb.ID,
			Status:   "upcoming",
			CheckIn:  pgconv.DateToPgtype(bb.CheckIn),
			CheckOut: pgconv.DateToPgtype(bb.CheckOut),
		}}, nil)

		rows, err := repo.ListToProgress(ctx, mockDB, today, 10)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, bb.ID, rows[0].ID)
		assert.Equal(t, booking.StatusUpcoming, rows[0].Status)
		assert.Equal(t, int64(2), rows[0].Period.Nights())
	})

	t.Run("error: unknown stored status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries)

		mockQueries.EXPECT().ListBookingsToProgress(ctx, mockDB, gomock.Any()).
			Return([]sqlc.ListBookingsToProgressRow{{
				ID:       bb.ID,
				Status:   "archived",
				CheckIn:  pgconv.DateToPgtype(bb.CheckIn),
				CheckOut: pgconv.DateToPgtype(bb.CheckOut),
			}}, nil)

		_, err := repo.ListToProgress(ctx, mockDB, today, 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	testCases := []struct {
		name     string
		affected int64
		queryErr error
		want     bool
		wantErr  bool
	}{
		{name: "success: stored status advanced", affected: 1, want: true},
		{name: "success: another writer changed the row first", affected: 0, want: false},
		{name: "error: database error occurs", queryErr: errDBConnection, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries)

			mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, sqlc.UpdateBookingStatusParams{
				Status:         "current",
				ID:             id,
				ExpectedStatus: "upcoming",
			}).Return(tc.affected, tc.queryErr)

			ok, err := repo.UpdateStatus(ctx, mockDB, id, booking.StatusUpcoming, booking.StatusCurrent)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

// =============================================================================
// Mock DBTX Implementation
// =============================================================================

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
