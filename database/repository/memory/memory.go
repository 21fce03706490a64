// Package memory holds map-backed repositories used by service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"rentwise/database"
	"rentwise/models"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
)

// LeaseStore implements leaseRepo.LeaseRepository.
type LeaseStore struct {
	mu     sync.Mutex
	leases map[string]models.Lease

	FailCreate error
	FailUpdate error
}

func NewLeaseStore(leases ...models.Lease) *LeaseStore {
	s := &LeaseStore{leases: map[string]models.Lease{}}
	for _, l := range leases {
		s.leases[l.ID] = l
	}
	return s
}

func (s *LeaseStore) Create(_ context.Context, lease *models.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreate != nil {
		return s.FailCreate
	}
	s.leases[lease.ID] = *lease
	return nil
}

func (s *LeaseStore) GetByID(_ context.Context, id string) (*models.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leases[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &l, nil
}

func (s *LeaseStore) Update(_ context.Context, lease *models.Lease) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailUpdate != nil {
		return s.FailUpdate
	}
	if _, ok := s.leases[lease.ID]; !ok {
		return database.ErrNotFound
	}
	s.leases[lease.ID] = *lease
	return nil
}

func (s *LeaseStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.leases, id)
	return nil
}

func (s *LeaseStore) GetActiveByLandlord(_ context.Context, landlordID string) ([]models.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Lease{}
	for _, l := range s.leases {
		if l.LandlordID == landlordID && l.Status == models.LeaseActive {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

func (s *LeaseStore) GetOpenByProperty(_ context.Context, propertyID string) (*models.Lease, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leases {
		if l.PropertyID == propertyID && l.IsOpen() {
			return &l, nil
		}
	}
	return nil, nil
}

// All returns every stored lease.
func (s *LeaseStore) All() []models.Lease {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Lease, 0, len(s.leases))
	for _, l := range s.leases {
		out = append(out, l)
	}
	return out
}

// BillStore implements billRepo.BillRepository.
type BillStore struct {
	mu    sync.Mutex
	bills map[string]models.Bill

	FailCreate error
}

func NewBillStore(bills ...models.Bill) *BillStore {
	s := &BillStore{bills: map[string]models.Bill{}}
	for _, b := range bills {
		s.bills[b.ID] = b
	}
	return s
}

func (s *BillStore) Create(_ context.Context, bill *models.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailCreate != nil {
		return s.FailCreate
	}
	s.bills[bill.ID] = *bill
	return nil
}

func (s *BillStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.bills, id)
	return nil
}

func (s *BillStore) GetByID(_ context.Context, id string) (*models.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &b, nil
}

func (s *BillStore) UpdateStatus(
	_ context.Context,
	id string,
	from, to models.BillStatus,
	paidAt *time.Time,
	amountPaid *decimal.Decimal,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bills[id]
	if !ok || b.Status != from {
		return database.ErrConflict
	}
	b.Status = to
	if paidAt != nil {
		b.PaidAt = paidAt
	}
	if amountPaid != nil {
		b.AmountPaid = amountPaid
	}
	s.bills[id] = b
	return nil
}

func (s *BillStore) ListByLease(_ context.Context, leaseID string) ([]models.Bill, error) {
	return s.filter(func(b models.Bill) bool { return b.LeaseID == leaseID }), nil
}

func (s *BillStore) ListByLandlord(_ context.Context, landlordID string) ([]models.Bill, error) {
	return s.filter(func(b models.Bill) bool { return b.LandlordID == landlordID }), nil
}

func (s *BillStore) filter(keep func(models.Bill) bool) []models.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Bill{}
	for _, b := range s.bills {
		if keep(b) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

// PropertyStore implements propertyRepo.PropertyRepository.
type PropertyStore struct {
	mu    sync.Mutex
	props map[string]models.Property

	FailSetStatus error
}

func NewPropertyStore(props ...models.Property) *PropertyStore {
	s := &PropertyStore{props: map[string]models.Property{}}
	for _, p := range props {
		s.props[p.ID] = p
	}
	return s
}

func (s *PropertyStore) GetByID(_ context.Context, id string) (*models.Property, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.props[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &p, nil
}

func (s *PropertyStore) SetStatus(_ context.Context, id string, from, to models.PropertyStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSetStatus != nil {
		return s.FailSetStatus
	}
	p, ok := s.props[id]
	if !ok || p.Status != from {
		return database.ErrConflict
	}
	p.Status = to
	s.props[id] = p
	return nil
}

// UserStore implements userRepo.UserRepository and notification.UserLookup.
type UserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewUserStore(users ...models.User) *UserStore {
	s := &UserStore{users: map[string]models.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *UserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) GetByIDWithProjection(ctx context.Context, id string, _ bson.M) (*models.User, error) {
	return s.GetByID(ctx, id)
}

// TenancyStore implements tenancyRepo.TenancyRepository by counting cascades.
type TenancyStore struct {
	mu        sync.Mutex
	Completed map[string]int

	FailComplete error
}

func NewTenancyStore() *TenancyStore {
	return &TenancyStore{Completed: map[string]int{}}
}

func (s *TenancyStore) CompleteForTenant(_ context.Context, tenantID, propertyID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailComplete != nil {
		return 0, s.FailComplete
	}
	s.Completed[tenantID+"/"+propertyID]++
	return 1, nil
}

// NotificationStore implements notificationRepo.NotificationRepository.
type NotificationStore struct {
	mu    sync.Mutex
	Items []models.Notification
}

func (s *NotificationStore) Create(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Items = append(s.Items, *n)
	return nil
}
