package billing

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"rentwise/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// LeaseReader lists the leases a schedule is built from.
type LeaseReader interface {
	GetActiveByLandlord(ctx context.Context, landlordID string) ([]models.Lease, error)
}

// BillReader lists a landlord's bills in due-date order.
type BillReader interface {
	ListByLandlord(ctx context.Context, landlordID string) ([]models.Bill, error)
}

// ScheduleCache stores built schedules per landlord.
type ScheduleCache interface {
	Get(ctx context.Context, landlordID string) ([]models.ScheduleEntry, bool)
	Set(ctx context.Context, landlordID string, entries []models.ScheduleEntry) error
	Invalidate(ctx context.Context, landlordID string) error
}

// ScheduleService builds a landlord's billing schedule. It never writes leases or bills.
type ScheduleService struct {
	Leases   LeaseReader
	Bills    BillReader
	Cache    ScheduleCache
	Location *time.Location
	Now      func() time.Time
	Logger   *zap.Logger
}

func NewScheduleService(leases LeaseReader, bills BillReader, cache ScheduleCache, loc *time.Location, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		Leases:   leases,
		Bills:    bills,
		Cache:    cache,
		Location: loc,
		Now:      time.Now,
		Logger:   logger,
	}
}

// Build returns one entry per active lease of the landlord ordered by next due date.
// A landlord without leases gets an empty, non-nil slice.
func (s *ScheduleService) Build(ctx context.Context, landlordID string) ([]models.ScheduleEntry, error) {
	if s.Cache != nil {
		if cached, ok := s.Cache.Get(ctx, landlordID); ok {
			return cached, nil
		}
	}

	leases, err := s.Leases.GetActiveByLandlord(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("ScheduleService.Build: fetch leases: %w", err)
	}
	if len(leases) == 0 {
		return []models.ScheduleEntry{}, nil
	}

	bills, err := s.Bills.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, fmt.Errorf("ScheduleService.Build: fetch bills: %w", err)
	}

	entries := BuildEntries(leases, bills, s.today())

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, landlordID, entries); err != nil {
			s.logger().Warn("schedule cache write failed", zap.String("landlordId", landlordID), zap.Error(err))
		}
	}
	return entries, nil
}

// Invalidate drops the cached schedule of a landlord.
func (s *ScheduleService) Invalidate(ctx context.Context, landlordID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, landlordID); err != nil {
		s.logger().Warn("schedule cache invalidation failed", zap.String("landlordId", landlordID), zap.Error(err))
	}
}

// BuildEntries groups bills by lease and computes every entry concurrently.
func BuildEntries(leases []models.Lease, bills []models.Bill, today time.Time) []models.ScheduleEntry {
	byLease := make(map[string][]models.Bill, len(leases))
	for _, b := range bills {
		byLease[b.LeaseID] = append(byLease[b.LeaseID], b)
	}

	entries := make([]models.ScheduleEntry, len(leases))
	var wg sync.WaitGroup
	for i := range leases {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			entries[i] = EntryFor(leases[i], byLease[leases[i].ID], today)
		}(i)
	}
	wg.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].NextDueDate.Before(entries[j].NextDueDate)
	})
	return entries
}

// EntryFor computes the schedule entry of a single lease.
func EntryFor(lease models.Lease, bills []models.Bill, today time.Time) models.ScheduleEntry {
	p := NextCycle(lease, bills, today)
	c := Classify(p, lease.ContractEndDate)

	entry := models.ScheduleEntry{
		LeaseID:       lease.ID,
		TenantID:      lease.TenantID,
		TenantName:    lease.TenantName,
		PropertyID:    lease.PropertyID,
		PropertyTitle: lease.PropertyTitle,
		NextDueDate:   p.NextDueDate,
		SendDate:      SendDate(p.NextDueDate),
		Status:        string(c.Status),
		Note:          c.Note,
		AmountDue:     amountDue(p),
		LateFee:       decimal.Zero,
	}
	if c.Status == StatusOverdue {
		entry.LateFee = lease.LatePaymentFee
	}

	if ordered := sortByDueDate(bills); len(ordered) > 0 {
		last := ordered[len(ordered)-1]
		entry.LatestBill = &models.BillRef{ID: last.ID, DueDate: last.DueDate, Status: last.Status}
	}
	return entry
}

func amountDue(p Projection) decimal.Decimal {
	switch {
	case p.SourceBill == nil:
		return decimal.Zero
	case p.Basis == BasisOutstanding:
		return p.SourceBill.Total()
	default:
		return p.SourceBill.RentAmount
	}
}

func (s *ScheduleService) today() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return DateOnly(now(), s.Location)
}

func (s *ScheduleService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
