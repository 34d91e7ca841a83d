package test

import (
	"context"
	"sort"
	"strings"
	"time"

	domainErrors "github.com/adolfokaiser/precios-api/internal/domain/errors"
	"github.com/adolfokaiser/precios-api/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized map.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User)}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email, name, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrDuplicateEmail
	}
	user := &model.User{Email: email, Name: name, PasswordHash: passwordHash, CreatedAt: time.Now().UTC()}
	s.Users[email] = user
	copied := *user
	return &copied, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateName replaces the stored display name.
func (s *UserRepositoryStub) UpdateName(ctx context.Context, email, name string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[email]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	user.Name = name
	copied := *user
	return &copied, nil
}

// Rename re-keys the record like the real store.
func (s *UserRepositoryStub) Rename(ctx context.Context, oldEmail, newEmail string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	user, ok := s.Users[oldEmail]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if oldEmail == newEmail {
		copied := *user
		return &copied, nil
	}
	if _, taken := s.Users[newEmail]; taken {
		return nil, domainErrors.ErrDuplicateEmail
	}
	user.Email = newEmail
	s.Users[newEmail] = user
	delete(s.Users, oldEmail)
	copied := *user
	return &copied, nil
}

// PriceRepositoryStub backs price tests with a small in-memory table and
// optional per-method overrides.
type PriceRepositoryStub struct {
	CreateFn  func(context.Context, model.PriceFields, string) (*model.PriceRecord, error)
	GetFn     func(context.Context, int64) (*model.PriceRecord, error)
	ReplaceFn func(context.Context, int64, model.PriceFields, string) (*model.PriceRecord, error)
	DeleteFn  func(context.Context, int64) error
	ListFn    func(context.Context, model.PriceFilter, int, int) ([]model.PriceRecord, int, error)

	Records map[int64]model.PriceRecord
	NextID  int64
}

// NewPriceRepositoryStub constructs stub repository with initialized map.
func NewPriceRepositoryStub() *PriceRepositoryStub {
	return &PriceRepositoryStub{Records: make(map[int64]model.PriceRecord)}
}

// Create stores a record under the next id unless overridden.
func (s *PriceRepositoryStub) Create(ctx context.Context, fields model.PriceFields, createdBy string) (*model.PriceRecord, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, fields, createdBy)
	}
	if s.Records == nil {
		s.Records = make(map[int64]model.PriceRecord)
	}
	s.NextID++
	record := model.PriceRecord{
		ID:        s.NextID,
		StationID: fields.StationID,
		Date:      fields.Date,
		Product:   fields.Product,
		Price:     fields.Price,
		Currency:  fields.Currency,
		Notes:     fields.Notes,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}
	s.Records[record.ID] = record
	return &record, nil
}

// GetByID returns the stored record or not found.
func (s *PriceRepositoryStub) GetByID(ctx context.Context, id int64) (*model.PriceRecord, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	record, ok := s.Records[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &record, nil
}

// Replace overwrites all fields and provenance unless overridden.
func (s *PriceRepositoryStub) Replace(ctx context.Context, id int64, fields model.PriceFields, updatedBy string) (*model.PriceRecord, error) {
	if s.ReplaceFn != nil {
		return s.ReplaceFn(ctx, id, fields, updatedBy)
	}
	if _, ok := s.Records[id]; !ok {
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
	s.Records[id] = record
	return &record, nil
}

// Delete removes the record or reports not found.
func (s *PriceRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	if _, ok := s.Records[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Records, id)
	return nil
}

// List mirrors the real store: conjunctive filters, ascending id order.
func (s *PriceRepositoryStub) List(ctx context.Context, filter model.PriceFilter, page, limit int) ([]model.PriceRecord, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter, page, limit)
	}
	var matched []model.PriceRecord
	for _, record := range s.Records {
		if stubMatches(record, filter) {
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

func stubMatches(record model.PriceRecord, filter model.PriceFilter) bool {
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
		if !strings.Contains(strings.ToLower(record.StationID), q) && !strings.Contains(strings.ToLower(notes), q) {
			return false
		}
	}
	return true
}
