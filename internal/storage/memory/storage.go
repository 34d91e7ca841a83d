package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
	"github.com/adolfokaiser/precios-api/internal/domain/repository"
)

// Storage acts as repository facade backed by process-lifetime in-memory
// tables. Each table is guarded by its own mutex; price record ids are
// allocated under the price table lock so the sequence is never reused or
// observed out of order.
type Storage struct {
	logger *slog.Logger

	usersMu sync.RWMutex
	users   map[string]*model.User

	pricesMu sync.RWMutex
	prices   map[int64]model.PriceRecord
	lastID   int64
}

type userRepository struct {
	storage *Storage
}

type priceRepository struct {
	storage *Storage
}

// New creates empty in-memory storage.
func New(logger *slog.Logger) *Storage {
	return &Storage{
		logger: logger,
		users:  make(map[string]*model.User),
		prices: make(map[int64]model.PriceRecord),
	}
}

// Close exists for symmetry with lifecycle hooks; there is nothing to flush.
func (s *Storage) Close() {}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Prices() repository.PriceRepository {
	return &priceRepository{storage: s}
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	s := r.storage
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	if _, exists := s.users[email]; exists {
		return nil, domainErrors.ErrDuplicateEmail
	}

	user := &model.User{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[email] = user

	copied := *user
	return &copied, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s := r.storage
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *userRepository) UpdateName(ctx context.Context, email, name string) (*model.User, error) {
	s := r.storage
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.Name = name

	copied := *user
	return &copied, nil
}

// Rename moves the record to the new key in a single critical section, so
// readers never see it under neither or both keys.
func (r *userRepository) Rename(ctx context.Context, oldEmail, newEmail string) (*model.User, error) {
	s := r.storage
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	user, ok := s.users[oldEmail]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if oldEmail == newEmail {
		copied := *user
		return &copied, nil
	}
	if _, taken := s.users[newEmail]; taken {
		return nil, domainErrors.ErrDuplicateEmail
	}

	user.Email = newEmail
	s.users[newEmail] = user
	delete(s.users, oldEmail)

	copied := *user
	return &copied, nil
}

// --- PriceRepository implementation ---

func (r *priceRepository) Create(ctx context.Context, fields model.PriceFields, createdBy string) (*model.PriceRecord, error) {
	s := r.storage
	s.pricesMu.Lock()
	defer s.pricesMu.Unlock()

	s.lastID++
	record := model.PriceRecord{
		ID:        s.lastID,
		StationID: fields.StationID,
		Date:      fields.Date,
		Product:   fields.Product,
		Price:     fields.Price,
		Currency:  fields.Currency,
		Notes:     fields.Notes,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	s.prices[record.ID] = record

	return &record, nil
}

func (r *priceRepository) GetByID(ctx context.Context, id int64) (*model.PriceRecord, error) {
	s := r.storage
	s.pricesMu.RLock()
	defer s.pricesMu.RUnlock()

	record, ok := s.prices[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &record, nil
}

// Replace applies full-replace semantics: every field is taken from the
// update, including created_by and created_at, which are re-stamped to the
// updater and the current time.
func (r *priceRepository) Replace(ctx context.Context, id int64, fields model.PriceFields, updatedBy string) (*model.PriceRecord, error) {
	s := r.storage
	s.pricesMu.Lock()
	defer s.pricesMu.Unlock()

	if _, ok := s.prices[id]; !ok {
		return nil, domainErrors.ErrNotFound
	}

	record := model.PriceRecord{
		ID:        id,
		StationID: fields.StationID,
		Date:      fields.Date,
		Product:   fields.Product,
		Price:     fields.Price,
		Currency:  fields.Currency,
		Notes:     fields.Notes,
		CreatedBy: updatedBy,
		CreatedAt: time.Now().UTC(),
	}
	s.prices[id] = record

	return &record, nil
}

func (r *priceRepository) Delete(ctx context.Context, id int64) error {
	s := r.storage
	s.pricesMu.Lock()
	defer s.pricesMu.Unlock()

	if _, ok := s.prices[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.prices, id)
	return nil
}

// List applies conjunctive filters, then paginates. Records are ordered by
// ascending id, which equals insertion order, so repeated queries without
// intervening writes paginate deterministically.
func (r *priceRepository) List(ctx context.Context, filter model.PriceFilter, page, limit int) ([]model.PriceRecord, int, error) {
	s := r.storage
	s.pricesMu.RLock()
	defer s.pricesMu.RUnlock()

	matched := make([]model.PriceRecord, 0, len(s.prices))
	for _, record := range s.prices {
		if matches(record, filter) {
			matched = append(matched, record)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := len(matched)
	start := (page - 1) * limit
	if start >= total {
		return []model.PriceRecord{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func matches(record model.PriceRecord, filter model.PriceFilter) bool {
	if filter.StationID != "" && record.StationID != filter.StationID {
		return false
	}
	if filter.DateFrom != nil && record.Date.Before(*filter.DateFrom) {
		return false
	}
	if filter.DateTo != nil && record.Date.After(*filter.DateTo) {
		return false
	}
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		notes := ""
		if record.Notes != nil {
			notes = *record.Notes
		}
		if !strings.Contains(strings.ToLower(record.StationID), q) &&
			!strings.Contains(strings.ToLower(notes), q) {
			return false
		}
	}
	return true
}
