package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "bitefeed/internal/delivery/context"
	"bitefeed/internal/domain/entity"
	domainerrors "bitefeed/internal/domain/errors"
	"bitefeed/internal/domain/repository"
	"bitefeed/internal/usecase"

	"github.com/pkg/errors"
)

// savedService implements the SavedUsecase interface. The backing store
// keeps the whole saved list as one array per user, so every toggle is a
// read-modify-write serialized by a per-user lock.
type savedService struct {
	store  repository.SavedStore
	logger *slog.Logger
	now    func() time.Time

	locks sync.Map // userID -> *sync.Mutex

	mu    sync.RWMutex
	cache map[string]map[string]struct{} // userID -> saved restaurant IDs
}

// NewSavedService is the constructor for savedService.
func NewSavedService(store repository.SavedStore, logger *slog.Logger) usecase.SavedUsecase {
	return &savedService{
		store:  store,
		logger: logger,
		now:    time.Now,
		cache:  make(map[string]map[string]struct{}),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *savedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ToggleSave flips the saved state of a restaurant for a user. Removing
// drops the stored snapshot; saving freezes a new one. Returns the resulting
// state: true when the restaurant is now saved.
func (srv *savedService) ToggleSave(ctx context.Context, userID string, restaurant *entity.Restaurant) (bool, error) {
	if userID == "" {
		return false, domainerrors.ErrUnauthenticated
	}

	lock := srv.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	saved, err := srv.store.ReadAll(ctx, userID)
	if err != nil {
		// A brand-new user has no document yet; the write below creates it.
		if !errors.Is(err, repository.ErrSavedUserMissing) {
			return false, errors.Wrap(domainerrors.ErrSavedStoreFailed, err.Error())
		}
		saved = nil
	}

	next := make([]entity.SavedRestaurant, 0, len(saved)+1)
	removed := false
	for _, s := range saved {
		if s.ID == restaurant.ID {
			removed = true
			continue
		}
		next = append(next, s)
	}
	if !removed {
		next = append(next, entity.NewSavedSnapshot(restaurant, srv.now()))
	}

	if err := srv.store.Write(ctx, userID, next); err != nil {
		return false, errors.Wrap(domainerrors.ErrSavedStoreFailed, err.Error())
	}

	srv.primeCache(userID, next)
	srv.log(ctx).Debug("saved state toggled",
		slog.String("restaurant_id", restaurant.ID),
		slog.Bool("saved", !removed))

	return !removed, nil
}

// IsSaved reports membership against the last loaded state for the user.
// It never blocks on storage; an unloaded user reports false.
func (srv *savedService) IsSaved(userID, restaurantID string) bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	ids, ok := srv.cache[userID]
	if !ok {
		return false
	}
	_, saved := ids[restaurantID]

	return saved
}

// LoadSaved returns the user's saved restaurants, most recent first.
func (srv *savedService) LoadSaved(ctx context.Context, userID string) ([]entity.SavedRestaurant, error) {
	if userID == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	saved, err := srv.store.ReadAll(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSavedUserMissing) {
			srv.primeCache(userID, nil)

			return []entity.SavedRestaurant{}, nil
		}

		return nil, errors.Wrap(domainerrors.ErrSavedStoreFailed, err.Error())
	}

	srv.primeCache(userID, saved)

	return saved, nil
}

func (srv *savedService) userLock(userID string) *sync.Mutex {
	if v, ok := srv.locks.Load(userID); ok {
		return v.(*sync.Mutex)
	}

	actual, _ := srv.locks.LoadOrStore(userID, &sync.Mutex{})

	return actual.(*sync.Mutex)
}

func (srv *savedService) primeCache(userID string, saved []entity.SavedRestaurant) {
	ids := make(map[string]struct{}, len(saved))
	for _, s := range saved {
		ids[s.ID] = struct{}{}
	}

	srv.mu.Lock()
	srv.cache[userID] = ids
	srv.mu.Unlock()
}
