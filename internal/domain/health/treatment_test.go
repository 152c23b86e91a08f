package health

import (
	"testing"
	"time"

	"github.com/farmstead/backend/internal/domain/finance"
	"github.com/farmstead/backend/internal/domain/shared"
	"github.com/farmstead/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(s string) valueobject.Money {
	m, _ := valueobject.NewMoneyFromString(s, valueobject.USD)
	return m
}

func newTestTreatment(t *testing.T, farmID uuid.UUID, cost string) *Treatment {
	t.Helper()
	tr, err := NewTreatment(farmID, uuid.New(), uuid.New(), "Dr. Njoroge", time.Now(), decimal.NewFromInt(1), money(cost), nil, "")
	require.NoError(t, err)
	return tr
}

func TestNewTreatment(t *testing.T) {
	farmID := uuid.New()
	tr := newTestTreatment(t, farmID, "350")

	assert.Equal(t, farmID, tr.FarmID)
	assert.Equal(t, finance.PaymentStatusPending, tr.PaymentStatus)
	assert.True(t, tr.PendingAmount.Equal(decimal.NewFromInt(350)))
	assert.False(t, tr.IsPaid())
}

func TestNewTreatment_Validation(t *testing.T) {
	farmID := uuid.New()
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name     string
		animalID uuid.UUID
		date     time.Time
		quantity decimal.Decimal
		cost     string
	}{
		{"nil animal", uuid.Nil, now, decimal.NewFromInt(1), "100"},
		{"zero date", uuid.New(), time.Time{}, decimal.NewFromInt(1), "100"},
		{"negative quantity", uuid.New(), now, decimal.NewFromInt(-1), "100"},
		{"negative cost", uuid.New(), now, decimal.NewFromInt(1), "-100"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTreatment(farmID, userID, tc.animalID, "", tc.date, tc.quantity, money(tc.cost), nil, "")
			require.Error(t, err)
		})
	}
}

func TestTreatment_SettledByLinkedTransactions(t *testing.T) {
	farmID := uuid.New()
	tr := newTestTreatment(t, farmID, "350")

	tx, err := finance.NewTransaction(farmID, uuid.New(), finance.TransactionTypeOutgoing, money("150"), time.Now(), "vet deposit")
	require.NoError(t, err)
	require.NoError(t, tr.AddTransaction(tx))

	assert.Equal(t, finance.PaymentStatusPartial, tr.PaymentStatus)
	assert.True(t, tr.PendingAmount.Equal(decimal.NewFromInt(200)))
	assert.False(t, tr.IsPaid())

	tx2, err := finance.NewTransaction(farmID, uuid.New(), finance.TransactionTypeOutgoing, money("200"), time.Now(), "vet balance")
	require.NoError(t, err)
	require.NoError(t, tr.AddTransaction(tx2))

	assert.True(t, tr.IsPaid())
	assert.True(t, tr.PendingAmount.IsZero())
	require.NotNil(t, tr.PaymentDate)
}

func TestTreatment_CrossFarmTransactionRejected(t *testing.T) {
	tr := newTestTreatment(t, uuid.New(), "350")

	tx, err := finance.NewTransaction(uuid.New(), uuid.New(), finance.TransactionTypeOutgoing, money("350"), time.Now(), "")
	require.NoError(t, err)

	err = tr.AddTransaction(tx)
	require.ErrorIs(t, err, shared.ErrFarmMismatch)
	assert.Empty(t, tr.Transactions)
	assert.Equal(t, finance.PaymentStatusPending, tr.PaymentStatus)
}

func TestTreatment_RemoveTransactionRederives(t *testing.T) {
	farmID := uuid.New()
	tr := newTestTreatment(t, farmID, "100")

	tx, err := finance.NewTransaction(farmID, uuid.New(), finance.TransactionTypeOutgoing, money("100"), time.Now(), "")
	require.NoError(t, err)
	require.NoError(t, tr.AddTransaction(tx))
	require.True(t, tr.IsPaid())

	require.NoError(t, tr.RemoveTransaction(tx.ID))
	assert.Equal(t, finance.PaymentStatusPending, tr.PaymentStatus)
	assert.True(t, tr.PendingAmount.Equal(decimal.NewFromInt(100)))
}

func TestTreatment_ZeroCostStartsPaid(t *testing.T) {
	tr := newTestTreatment(t, uuid.New(), "0")

	assert.True(t, tr.IsPaid())
	assert.NotNil(t, tr.PaymentDate)
}
