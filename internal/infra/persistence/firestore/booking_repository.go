package firestore

import (
	"context"
	"sort"

	"bitefeed/internal/domain/entity"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// bookingRepository implements the repository.BookingRepository interface.
type bookingRepository struct {
	client *firestore.Client
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &bookingRepository{client: client}
}

// Create persists a new booking and returns its storage ID.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) (string, error) {
	ref := repo.client.Collection(bookingsCollection).Doc(booking.ID)
	if booking.ID == "" {
		ref = repo.client.Collection(bookingsCollection).NewDoc()
	}

	if _, err := ref.Set(ctx, model.FromBookingDomain(booking)); err != nil {
		return "", errors.Wrap(err, "failed to create booking")
	}

	return ref.ID, nil
}

// ListForUser retrieves all bookings for a user, newest first. Ordering is
// done client-side to avoid a composite index on the bookings collection.
func (repo *bookingRepository) ListForUser(ctx context.Context, userID string) ([]*entity.Booking, error) {
	docs := repo.client.Collection(bookingsCollection).
		Where("userId", "==", userID).
		Documents(ctx)
	defer docs.Stop()

	bookings := make([]*entity.Booking, 0)
	for {
		doc, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list bookings")
		}

		var bookingM model.BookingModel
		if err := doc.DataTo(&bookingM); err != nil {
			return nil, errors.Wrap(err, "failed to decode booking document")
		}

		bookings = append(bookings, model.ToBookingDomain(doc.Ref.ID, &bookingM))
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}
