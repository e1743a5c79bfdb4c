package ledger_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/peydey/sdk-go/pkg/domain/withdrawal"
	"github.com/peydey/sdk-go/pkg/ledger"
	"github.com/peydey/sdk-go/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_Defaults(t *testing.T) {
	l := ledger.New()

	entry := l.Add(ledger.Entry{UserID: "user_001", Amount: 100})

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, withdrawal.StatusPending, entry.Status)
	assert.Equal(t, money.AED, entry.Currency)
}

func TestAdd_KeepsCallerFields(t *testing.T) {
	l := ledger.New()

	entry := l.Add(ledger.Entry{
		UserID:    "user_001",
		RequestID: "wd_1",
		Amount:    50,
		Type:      "salary",
		Status:    withdrawal.StatusCompleted,
		Currency:  money.USD,
	})

	assert.Equal(t, withdrawal.StatusCompleted, entry.Status)
	assert.Equal(t, money.USD, entry.Currency)
	assert.Equal(t, "wd_1", entry.RequestID)
	assert.Equal(t, "salary", entry.Type)
}

func TestHistory_MostRecentFirst(t *testing.T) {
	l := ledger.New()
	for i := 1; i <= 3; i++ {
		l.Add(ledger.Entry{UserID: "user_001", Amount: float64(i)})
	}

	history := l.History("user_001", 10)

	require.Len(t, history, 3)
	assert.InEpsilon(t, 3.0, history[0].Amount, 1e-9)
	assert.InEpsilon(t, 2.0, history[1].Amount, 1e-9)
	assert.InEpsilon(t, 1.0, history[2].Amount, 1e-9)
}

func TestHistory_FiltersByUser(t *testing.T) {
	l := ledger.New()
	l.Add(ledger.Entry{UserID: "user_001", Amount: 1})
	l.Add(ledger.Entry{UserID: "user_002", Amount: 2})

	history := l.History("user_001", 10)

	require.Len(t, history, 1)
	assert.Equal(t, "user_001", history[0].UserID)
}

func TestHistory_Truncates(t *testing.T) {
	l := ledger.New()
	for i := 0; i < 15; i++ {
		l.Add(ledger.Entry{UserID: "user_001", Amount: float64(i)})
	}

	assert.Len(t, l.History("user_001", 5), 5)
	// Non-positive limit falls back to the default of 10.
	assert.Len(t, l.History("user_001", 0), 10)
}

func TestUpdateStatus(t *testing.T) {
	l := ledger.New()
	entry := l.Add(ledger.Entry{UserID: "user_001", Amount: 100})

	updated, ok := l.UpdateStatus(entry.ID, withdrawal.StatusCompleted)
	require.True(t, ok)
	assert.Equal(t, withdrawal.StatusCompleted, updated.Status)
	assert.False(t, updated.UpdatedAt.IsZero())

	history := l.History("user_001", 1)
	require.Len(t, history, 1)
	assert.Equal(t, withdrawal.StatusCompleted, history[0].Status)
}

func TestUpdateStatus_UnknownID(t *testing.T) {
	l := ledger.New()
	_, ok := l.UpdateStatus("txn_missing", withdrawal.StatusFailed)
	assert.False(t, ok)
}

func TestUpdateStatusByRequest(t *testing.T) {
	l := ledger.New()
	l.Add(ledger.Entry{UserID: "user_001", RequestID: "wd_1", Amount: 100})

	updated, ok := l.UpdateStatusByRequest("wd_1", withdrawal.StatusFailed)
	require.True(t, ok)
	assert.Equal(t, withdrawal.StatusFailed, updated.Status)

	_, ok = l.UpdateStatusByRequest("wd_missing", withdrawal.StatusFailed)
	assert.False(t, ok)
}

func TestUniqueTransactionIDs(t *testing.T) {
	l := ledger.New()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		entry := l.Add(ledger.Entry{UserID: "user_001"})
		assert.False(t, seen[entry.ID], "duplicate transaction id %s", entry.ID)
		seen[entry.ID] = true
	}
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)

	got := ledger.FormatDate(ts)

	assert.Equal(t, "March 5, 2026, 2:30 PM", got)
	// Deterministic for a given timestamp.
	assert.Equal(t, got, ledger.FormatDate(ts))
}

func ExampleFormatDate() {
	ts := time.Date(2026, time.January, 2, 15, 4, 0, 0, time.UTC)
	fmt.Println(ledger.FormatDate(ts))
	// Output: January 2, 2026, 3:04 PM
}
