package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users    map[string]*domain.User
	countErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	r.users[u.ID] = cloneUser(u)
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.users[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.users)), nil
}

type stubPropertyRepo struct {
	byID map[string]*domain.Property
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{byID: make(map[string]*domain.Property)}
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) error {
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	delete(r.byID, id)
	return nil
}

type stubAppointmentRepo struct {
	byID      map[string]*domain.Appointment
	createErr error
	lastQuery ports.AppointmentQuery
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{byID: make(map[string]*domain.Appointment)}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubAppointmentRepo) DeleteByProperty(_ context.Context, propertyID string) (int64, error) {
	var n int64
	for id, a := range r.byID {
		if a.PropertyID == propertyID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}

func (r *stubAppointmentRepo) ListByProperty(_ context.Context, propertyID string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.byID {
		if a.PropertyID == propertyID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubAppointmentRepo) List(_ context.Context, q ports.AppointmentQuery) ([]*domain.Appointment, int64, error) {
	r.lastQuery = q

	var matched []*domain.Appointment
	for _, a := range r.byID {
		if q.PropertyID != "" && a.PropertyID != q.PropertyID {
			continue
		}
		if q.AgentID != "" && a.AgentID != q.AgentID {
			continue
		}
		if q.Status != "" && string(a.Status) != q.Status {
			continue
		}
		if q.ClientName != "" && a.ClientName != q.ClientName {
			continue
		}
		if q.ClientEmail != "" && a.ClientEmail != q.ClientEmail {
			continue
		}
		if q.ClientPhone != "" && a.ClientPhone != q.ClientPhone {
			continue
		}
		if !q.StartDate.IsZero() && a.AppointmentDate.Before(q.StartDate) {
			continue
		}
		if !q.EndDate.IsZero() && a.AppointmentDate.After(q.EndDate) {
			continue
		}
		if q.Search != "" {
			s := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(a.ClientName), s) && !strings.Contains(strings.ToLower(a.ClientEmail), s) {
				continue
			}
		}
		clone := *a
		matched = append(matched, &clone)
	}

	sort.Slice(matched, func(i, j int) bool {
		if q.SortOrder == ports.SortAsc {
			return matched[i].AppointmentDate.Before(matched[j].AppointmentDate)
		}
		return matched[i].AppointmentDate.After(matched[j].AppointmentDate)
	})

	total := int64(len(matched))
	skip := (q.Page - 1) * q.Limit
	if skip > len(matched) {
		return []*domain.Appointment{}, total, nil
	}
	end := skip + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

type stubLocker struct {
	locked   map[string]bool
	acquired []string
	err      error
	// onLock runs once the lock is held.
	onLock func(propertyID string)
}

func newStubLocker() *stubLocker {
	return &stubLocker{locked: make(map[string]bool)}
}

func (l *stubLocker) Lock(_ context.Context, propertyID string) (func(), error) {
	if l.err != nil {
		return nil, l.err
	}
	if l.locked[propertyID] {
		return nil, errors.New("stub locker: lock already held")
	}
	l.locked[propertyID] = true
	l.acquired = append(l.acquired, propertyID)
	if l.onLock != nil {
		l.onLock(propertyID)
	}
	return func() { delete(l.locked, propertyID) }, nil
}

type stubFeatureRepo struct {
	byID map[string]*domain.PropertyFeature
}

func newStubFeatureRepo() *stubFeatureRepo {
	return &stubFeatureRepo{byID: make(map[string]*domain.PropertyFeature)}
}

func (r *stubFeatureRepo) Create(_ context.Context, f *domain.PropertyFeature) error {
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFeatureRepo) FindByID(_ context.Context, id string) (*domain.PropertyFeature, error) {
	f, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrFeatureNotFound
	}
	clone := *f
	return &clone, nil
}

func (r *stubFeatureRepo) ListByProperty(_ context.Context, propertyID string) ([]*domain.PropertyFeature, error) {
	var out []*domain.PropertyFeature
	for _, f := range r.byID {
		if f.PropertyID == propertyID {
			clone := *f
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubFeatureRepo) Update(_ context.Context, f *domain.PropertyFeature) error {
	if _, ok := r.byID[f.ID]; !ok {
		return domain.ErrFeatureNotFound
	}
	clone := *f
	r.byID[f.ID] = &clone
	return nil
}

func (r *stubFeatureRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrFeatureNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubFeatureRepo) DeleteByProperty(_ context.Context, propertyID string) (int64, error) {
	var n int64
	for id, f := range r.byID {
		if f.PropertyID == propertyID {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}
