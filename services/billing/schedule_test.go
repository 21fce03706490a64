package billing

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"rentwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type stubLeases struct {
	leases []models.Lease
	err    error
	calls  int
}

func (s *stubLeases) GetActiveByLandlord(_ context.Context, landlordID string) ([]models.Lease, error) {
	s.calls++
	var out []models.Lease
	for _, l := range s.leases {
		if l.LandlordID == landlordID && l.Status == models.LeaseActive {
			out = append(out, l)
		}
	}
	return out, s.err
}

type stubBills struct {
	bills []models.Bill
}

func (s *stubBills) ListByLandlord(_ context.Context, landlordID string) ([]models.Bill, error) {
	var out []models.Bill
	for _, b := range s.bills {
		if b.LandlordID == landlordID {
			out = append(out, b)
		}
	}
	return out, nil
}

type mapCache struct {
	entries map[string][]models.ScheduleEntry
}

func (c *mapCache) Get(_ context.Context, landlordID string) ([]models.ScheduleEntry, bool) {
	e, ok := c.entries[landlordID]
	return e, ok
}

func (c *mapCache) Set(_ context.Context, landlordID string, entries []models.ScheduleEntry) error {
	c.entries[landlordID] = entries
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, landlordID string) error {
	delete(c.entries, landlordID)
	return nil
}

func leaseWith(id string, start time.Time) models.Lease {
	l := testLease()
	l.ID = id
	l.TenantID = "tenant-" + id
	l.StartDate = start
	return l
}

func billFor(leaseID, id string, due time.Time, status models.BillStatus, rent, advance int64) models.Bill {
	b := bill(id, due, status, rent, advance)
	b.LeaseID = leaseID
	return b
}

func TestBuildEntries_OrderedByNextDueDate(t *testing.T) {
	leases := []models.Lease{
		leaseWith("a", date(2025, 1, 2)),
		leaseWith("b", date(2025, 2, 10)),
		leaseWith("c", date(2025, 1, 20)),
	}
	bills := []models.Bill{
		billFor("a", "a1", date(2025, 1, 2), models.BillPaid, 20000, 20000),
		billFor("b", "b1", date(2025, 2, 10), models.BillPending, 15000, 15000),
	}

	entries := BuildEntries(leases, bills, date(2025, 2, 15))

	require.Len(t, entries, 3)
	assert.Equal(t, "c", entries[0].LeaseID)
	assert.Equal(t, "Scheduled", entries[0].Status)
	assert.Nil(t, entries[0].LatestBill)

	assert.Equal(t, "b", entries[1].LeaseID)
	assert.Equal(t, "Overdue", entries[1].Status)
	assert.Equal(t, NoteUnpaidBills, entries[1].Note)
	assert.True(t, entries[1].AmountDue.Equal(peso(30000)))
	assert.True(t, entries[1].LateFee.Equal(peso(500)))

	assert.Equal(t, "a", entries[2].LeaseID)
	assert.Equal(t, date(2025, 3, 2), entries[2].NextDueDate)
	assert.Equal(t, date(2025, 2, 27), entries[2].SendDate)
	assert.True(t, entries[2].AmountDue.Equal(peso(20000)))
	assert.True(t, entries[2].LateFee.IsZero())
	require.NotNil(t, entries[2].LatestBill)
	assert.Equal(t, "a1", entries[2].LatestBill.ID)
}

func TestScheduleService_Build(t *testing.T) {
	leases := &stubLeases{leases: []models.Lease{
		leaseWith("a", date(2025, 1, 2)),
		func() models.Lease { l := leaseWith("ended", date(2024, 1, 2)); l.Status = models.LeaseEnded; return l }(),
	}}
	bills := &stubBills{bills: []models.Bill{billFor("a", "a1", date(2025, 1, 2), models.BillPaid, 20000, 20000)}}
	cache := &mapCache{entries: map[string][]models.ScheduleEntry{}}
	svc := NewScheduleService(leases, bills, cache, time.UTC, zap.NewNop())
	svc.Now = func() time.Time { return time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC) }

	entries, err := svc.Build(context.Background(), "landlord-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].LeaseID)

	_, err = svc.Build(context.Background(), "landlord-1")
	require.NoError(t, err)
	assert.Equal(t, 1, leases.calls, "second build is served from cache")

	svc.Invalidate(context.Background(), "landlord-1")
	_, err = svc.Build(context.Background(), "landlord-1")
	require.NoError(t, err)
	assert.Equal(t, 2, leases.calls)
}

func TestScheduleService_BuildWithoutLeases(t *testing.T) {
	svc := NewScheduleService(&stubLeases{}, &stubBills{}, nil, time.UTC, zap.NewNop())

	entries, err := svc.Build(context.Background(), "landlord-9")

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestScheduleService_BuildPropagatesErrors(t *testing.T) {
	svc := NewScheduleService(&stubLeases{err: errors.New("connection reset")}, &stubBills{}, nil, time.UTC, zap.NewNop())

	_, err := svc.Build(context.Background(), "landlord-1")

	assert.ErrorContains(t, err, "connection reset")
}

func TestWriteScheduleXLSX(t *testing.T) {
	entries := BuildEntries(
		[]models.Lease{leaseWith("a", date(2025, 1, 2))},
		[]models.Bill{billFor("a", "a1", date(2025, 1, 2), models.BillPaid, 20000, 20000)},
		date(2025, 2, 1),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteScheduleXLSX(&buf, entries))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(scheduleSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, scheduleHeaders, rows[0])
	assert.Equal(t, "Juan Dela Cruz", rows[1][0])
	assert.Equal(t, "2025-03-02", rows[1][2])
	assert.Equal(t, "2025-02-27", rows[1][3])
	assert.Equal(t, "Scheduled", rows[1][4])
	assert.Equal(t, "20000", rows[1][6])
}
