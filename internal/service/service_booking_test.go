package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-turf-booking/internal/logger"
	"github.com/MKhiriev/go-turf-booking/internal/mock"
	"github.com/MKhiriev/go-turf-booking/internal/store"
	"github.com/MKhiriev/go-turf-booking/internal/utils"
	"github.com/MKhiriev/go-turf-booking/internal/validators"
	"github.com/MKhiriev/go-turf-booking/models"
)

// sequenceIDs hands out the given identifiers in order.
type sequenceIDs struct {
	ids []string
}

func (s *sequenceIDs) Generate() string {
	id := s.ids[0]
	s.ids = s.ids[1:]
	return id
}

func newTestBookingSvc(t *testing.T, ids utils.IDGenerator) (BookingService, *mock.MockBookingRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookingRepository(ctrl)
	svc := NewBookingValidationService().
		Wrap(NewBookingService(repo, ids, utils.FixedClock{T: testNow}, logger.Nop()))
	return svc, repo
}

func validNewBooking() models.NewBooking {
	return models.NewBooking{
		TurfName: "Court1",
		Location: "X",
		Price:    ptr(500.0),
		Date:     "2024-01-01",
		Time:     "10:00",
	}
}

func TestBookingService_CreateBooking_StampsOwnerIDAndTime(t *testing.T) {
	svc, repo := newTestBookingSvc(t, &sequenceIDs{ids: []string{"id-1"}})

	repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Booking) (models.Booking, error) {
			return b, nil
		})

	booking, err := svc.CreateBooking(context.Background(), 9, validNewBooking())
	require.NoError(t, err)
	assert.Equal(t, models.Booking{
		ID:        "id-1",
		TurfName:  "Court1",
		Location:  "X",
		Price:     500,
		Date:      "2024-01-01",
		Time:      "10:00",
		UserID:    9,
		CreatedAt: testNow,
	}, booking)
}

func TestBookingService_CreateBooking_RetriesIDCollision(t *testing.T) {
	svc, repo := newTestBookingSvc(t, &sequenceIDs{ids: []string{"taken", "fresh"}})

	gomock.InOrder(
		repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(models.Booking{}, store.ErrBookingIDConflict),
		repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b models.Booking) (models.Booking, error) {
				return b, nil
			}),
	)

	booking, err := svc.CreateBooking(context.Background(), 9, validNewBooking())
	require.NoError(t, err)
	assert.Equal(t, "fresh", booking.ID)
}

func TestBookingService_CreateBooking_GivesUpAfterRepeatedCollisions(t *testing.T) {
	svc, repo := newTestBookingSvc(t, &sequenceIDs{ids: []string{"a", "b", "c"}})

	repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
		Return(models.Booking{}, store.ErrBookingIDConflict).Times(maxIDAttempts)

	_, err := svc.CreateBooking(context.Background(), 9, validNewBooking())
	assert.ErrorIs(t, err, ErrBookingIDGenerationFailed)
}

func TestBookingService_CreateBooking_RealIDsAreUUIDs(t *testing.T) {
	svc, repo := newTestBookingSvc(t, utils.NewUUIDGenerator())

	repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b models.Booking) (models.Booking, error) {
			return b, nil
		})

	booking, err := svc.CreateBooking(context.Background(), 9, validNewBooking())
	require.NoError(t, err)
	assert.Len(t, booking.ID, 36)
}

func TestBookingService_CreateBooking_Invalid(t *testing.T) {
	svc, repo := newTestBookingSvc(t, utils.NewUUIDGenerator())
	repo.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

	missingDate := validNewBooking()
	missingDate.Date = ""
	_, err := svc.CreateBooking(context.Background(), 9, missingDate)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Contains(t, err.Error(), "date is required")

	_, err = svc.CreateBooking(context.Background(), 0, validNewBooking())
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
}

func TestBookingService_ListBookings_NeverNil(t *testing.T) {
	svc, repo := newTestBookingSvc(t, utils.NewUUIDGenerator())
	repo.EXPECT().ListBookings(gomock.Any(), int64(9)).Return(nil, nil)

	bookings, err := svc.ListBookings(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, bookings)
}

func TestBookingService_UpdateBooking_ScopedToOwner(t *testing.T) {
	svc, repo := newTestBookingSvc(t, utils.NewUUIDGenerator())
	upd := models.BookingUpdate{Time: ptr("11:00")}

	repo.EXPECT().UpdateBooking(gomock.Any(), int64(2), "b-1", upd).Return(models.Booking{}, store.ErrBookingNotFound)

	_, err := svc.UpdateBooking(context.Background(), 2, "b-1", upd)
	assert.ErrorIs(t, err, store.ErrBookingNotFound)
}

func TestBookingService_UpdateBooking_Invalid(t *testing.T) {
	svc, repo := newTestBookingSvc(t, utils.NewUUIDGenerator())
	repo.EXPECT().UpdateBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.UpdateBooking(context.Background(), 2, "b-1", models.BookingUpdate{Price: ptr(-5.0)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateBooking(context.Background(), 2, " ", models.BookingUpdate{})
	assert.ErrorIs(t, err, validators.ErrInvalidBookingID)
}

func TestBookingService_DeleteBooking(t *testing.T) {
	svc, repo := newTestBookingSvc(t, utils.NewUUIDGenerator())
	repo.EXPECT().DeleteBooking(gomock.Any(), int64(2), "b-1").Return(nil)
	repo.EXPECT().DeleteBooking(gomock.Any(), int64(3), "b-1").Return(store.ErrBookingNotFound)

	assert.NoError(t, svc.DeleteBooking(context.Background(), 2, "b-1"))
	assert.ErrorIs(t, svc.DeleteBooking(context.Background(), 3, "b-1"), store.ErrBookingNotFound)
}
