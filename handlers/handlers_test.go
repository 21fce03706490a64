package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentwise/config"
	"rentwise/database/repository/memory"
	"rentwise/database/repository/txn"
	"rentwise/middleware"
	"rentwise/models"
	"rentwise/services/billing"
	"rentwise/services/lease"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(models.Notification) {}

type nopScheduler struct{}

func (nopScheduler) Schedule(context.Context, models.ReminderRequest) error { return nil }

func testRouter(t *testing.T) *gin.Engine {
	r, _ := testRouterWithBills(t)
	return r
}

func testRouterWithBills(t *testing.T, seed ...models.Bill) (*gin.Engine, *memory.BillStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	leases := memory.NewLeaseStore()
	bills := memory.NewBillStore(seed...)
	props := memory.NewPropertyStore(models.Property{
		ID: "property-1", LandlordID: "landlord-1", Title: "Unit 4B",
		Price: decimal.NewFromInt(20000), Status: models.PropertyAvailable,
	})
	users := memory.NewUserStore(models.User{ID: "tenant-1", FullName: "Juan Dela Cruz", IdentityVerified: true})

	schedules := billing.NewScheduleService(leases, bills, nil, time.UTC, zap.NewNop())
	schedules.Now = func() time.Time { return time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC) }

	svc := lease.NewDefaultLeaseService(
		lease.Repositories{Leases: leases, Bills: bills, Properties: props, Users: users, Tenancy: memory.NewTenancyStore()},
		txn.Compensating{}, nopDispatcher{}, nopScheduler{}, schedules,
		config.LeasePolicy{MinContractMonths: 3, IncludeAdvanceOnAssign: true, Location: time.UTC},
		"", zap.NewNop(),
	)
	svc.Now = schedules.Now

	hb := NewHandlerBundle(NewLeaseHandler(svc), NewScheduleHandler(schedules), NewContractHandler(nil), HealthHandler)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ActorIDKey, c.GetHeader("X-Test-Actor"))
		c.Next()
	})
	r.POST("/api/leases", hb.AssignLeaseHandler)
	r.POST("/api/leases/:id/terminate", hb.TerminateLeaseHandler)
	r.GET("/api/schedule", hb.GetScheduleHandler)
	r.GET("/api/schedule/export", hb.ExportScheduleHandler)
	r.POST("/api/leases/:id/renewal/reject", hb.RejectRenewalHandler)
	r.POST("/api/bills/:id/submit", hb.SubmitPaymentHandler)
	r.POST("/api/bills/:id/confirm", hb.ConfirmPaymentHandler)
	return r, bills
}

func do(r *gin.Engine, method, path, actor string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Actor", actor)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doRaw(r *gin.Engine, method, path, actor, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Test-Actor", actor)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func assignBody() map[string]any {
	return map[string]any{
		"tenantId":        "tenant-1",
		"propertyId":      "property-1",
		"startDate":       "2025-01-02",
		"contractEndDate": "2025-07-02",
		"wifiDueDay":      15,
		"latePaymentFee":  "500",
		"contractUrl":     "https://res.cloudinary.com/demo/contract.pdf",
	}
}

func TestAssignLeaseHandler_CreatesLeaseAndShowsOnSchedule(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodPost, "/api/leases", "landlord-1", assignBody())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res lease.AssignResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Bill.Total().Equal(decimal.NewFromInt(60000)))
	assert.Equal(t, "2025-01-02", res.Bill.DueDate.Format(dateLayout))

	w = do(r, http.MethodGet, "/api/schedule", "landlord-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var schedule struct {
		Entries []models.ScheduleEntry `json:"entries"`
		Count   int                    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schedule))
	require.Equal(t, 1, schedule.Count)
	assert.Equal(t, "Pending", schedule.Entries[0].Status)
	assert.Equal(t, "2024-12-30", schedule.Entries[0].SendDate.Format(dateLayout))
}

func TestAssignLeaseHandler_BadDate(t *testing.T) {
	r := testRouter(t)
	body := assignBody()
	body["startDate"] = "01/02/2025"

	w := do(r, http.MethodPost, "/api/leases", "landlord-1", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"startDate"`)
}

func TestAssignLeaseHandler_ErrorMapping(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodPost, "/api/leases", "landlord-2", assignBody())
	assert.Equal(t, http.StatusForbidden, w.Code)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/leases", "landlord-1", assignBody()).Code)
	w = do(r, http.MethodPost, "/api/leases", "landlord-1", assignBody())
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(r, http.MethodPost, "/api/leases/missing/terminate", "landlord-1",
		map[string]string{"endDate": "2025-03-01", "reason": "Breach"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScheduleHandler_EmptyLandlord(t *testing.T) {
	r := testRouter(t)

	w := do(r, http.MethodGet, "/api/schedule", "landlord-9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"entries":[],"count":0}`, w.Body.String())
}

func TestExportScheduleHandler(t *testing.T) {
	r := testRouter(t)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/leases", "landlord-1", assignBody()).Code)

	w := do(r, http.MethodGet, "/api/schedule/export", "landlord-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	// xlsx files are zip archives.
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}

func pendingBill() models.Bill {
	return models.Bill{
		ID: "bill-1", LeaseID: "lease-1", LandlordID: "landlord-1", TenantID: "tenant-1", PropertyID: "property-1",
		DueDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), Status: models.BillPending,
		RentAmount: decimal.NewFromInt(20000), AdvanceAmount: decimal.NewFromInt(20000), SecurityDepositAmount: decimal.NewFromInt(20000),
	}
}

func storedBill(t *testing.T, bills *memory.BillStore) *models.Bill {
	t.Helper()
	b, err := bills.GetByID(context.Background(), "bill-1")
	require.NoError(t, err)
	return b
}

func TestPaymentHandlers_MalformedBodyChangesNothing(t *testing.T) {
	for _, path := range []string{"/api/bills/bill-1/submit", "/api/bills/bill-1/confirm"} {
		t.Run(path, func(t *testing.T) {
			r, bills := testRouterWithBills(t, pendingBill())
			actor := "tenant-1"
			if strings.HasSuffix(path, "/confirm") {
				actor = "landlord-1"
			}

			w := doRaw(r, http.MethodPost, path, actor, `{"amountPaid": 5000`)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			b := storedBill(t, bills)
			assert.Equal(t, models.BillPending, b.Status)
			assert.Nil(t, b.AmountPaid)
		})
	}
}

func TestSubmitPaymentHandler_EmptyBodyDefaultsToTotal(t *testing.T) {
	r, bills := testRouterWithBills(t, pendingBill())

	w := doRaw(r, http.MethodPost, "/api/bills/bill-1/submit", "tenant-1", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	b := storedBill(t, bills)
	assert.Equal(t, models.BillPendingConfirmation, b.Status)
	require.NotNil(t, b.AmountPaid)
	assert.True(t, b.AmountPaid.Equal(decimal.NewFromInt(60000)))
}

func TestSubmitPaymentHandler_OtherTenant(t *testing.T) {
	r, _ := testRouterWithBills(t, pendingBill())

	w := doRaw(r, http.MethodPost, "/api/bills/bill-1/submit", "tenant-2", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConfirmPaymentHandler_RecordsGivenAmount(t *testing.T) {
	r, bills := testRouterWithBills(t, pendingBill())

	w := doRaw(r, http.MethodPost, "/api/bills/bill-1/confirm", "landlord-1", `{"amountPaid": 5000}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	b := storedBill(t, bills)
	assert.Equal(t, models.BillPaid, b.Status)
	require.NotNil(t, b.AmountPaid)
	assert.True(t, b.AmountPaid.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, b.PaidAt)

	w = doRaw(r, http.MethodPost, "/api/bills/bill-1/confirm", "landlord-1", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRejectRenewalHandler_MalformedBody(t *testing.T) {
	r := testRouter(t)

	w := doRaw(r, http.MethodPost, "/api/leases/lease-1/renewal/reject", "landlord-1", `{"reason": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
