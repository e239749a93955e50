package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/domain"
	"github.com/rub3nlh/cantinax-v0.03-sub001/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() *domain.Order {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Order{
		ID:          uuid.New(),
		Reference:   "XLACG-42",
		Amount:      2590,
		Currency:    "EUR",
		Concept:     "LaCantina meal pack",
		Description: "3 meals, weekly plan",
		Status:      domain.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func orderColumns() []string {
	return []string{"id", "reference", "amount", "currency", "concept", "description",
		"status", "gateway_hash", "gateway_order_code", "failure_reason", "created_at", "updated_at"}
}

func orderRow(o *domain.Order) *pgxmock.Rows {
	return pgxmock.NewRows(orderColumns()).AddRow(
		o.ID, o.Reference, o.Amount, o.Currency, o.Concept, o.Description,
		o.Status, o.GatewayHash, o.GatewayOrderCode, o.FailureReason,
		o.CreatedAt, o.UpdatedAt,
	)
}

func TestOrderRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.ID, o.Reference, o.Amount, o.Currency, o.Concept, o.Description,
			o.Status, o.GatewayHash, o.GatewayOrderCode, o.FailureReason,
			o.CreatedAt, o.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), o))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetByReference(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	o := newTestOrder()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE reference").
		WithArgs(o.Reference).
		WillReturnRows(orderRow(o))

	got, err := repo.GetByReference(context.Background(), o.Reference)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, o.Reference, got.Reference)
	assert.Equal(t, o.Status, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_GetByReference_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE reference").
		WithArgs("MISSING").
		WillReturnRows(pgxmock.NewRows(orderColumns()))

	got, err := repo.GetByReference(context.Background(), "MISSING")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepo_UpdateGatewayHash(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectExec("UPDATE orders SET gateway_hash").
		WithArgs("hash-1", pgxmock.AnyArg(), "XLACG-42").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.UpdateGatewayHash(context.Background(), "XLACG-42", "hash-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_UpdateGatewayHash_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectExec("UPDATE orders SET gateway_hash").
		WithArgs("hash-1", pgxmock.AnyArg(), "MISSING").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.Error(t, repo.UpdateGatewayHash(context.Background(), "MISSING", "hash-1"))
}

func TestOrderRepo_CompareAndSetStatus_Applied(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectExec("UPDATE orders").
		WithArgs(domain.OrderStatusSucceeded, "BANK-77", (*string)(nil),
			pgxmock.AnyArg(), "XLACG-42", []string{"PENDING"}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	applied, err := repo.CompareAndSetStatus(context.Background(), "XLACG-42",
		[]domain.OrderStatus{domain.OrderStatusPending}, domain.OrderStatusSucceeded,
		ports.StatusUpdate{GatewayOrderCode: "BANK-77"})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CompareAndSetStatus_PersistsCallerTimestamp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)
	ts := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)

	// The exact timestamp handed in must reach the UPDATE unchanged.
	mock.ExpectExec("UPDATE orders").
		WithArgs(domain.OrderStatusSucceeded, "BANK-77", (*string)(nil),
			ts, "XLACG-42", []string{"PENDING"}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	applied, err := repo.CompareAndSetStatus(context.Background(), "XLACG-42",
		[]domain.OrderStatus{domain.OrderStatusPending}, domain.OrderStatusSucceeded,
		ports.StatusUpdate{GatewayOrderCode: "BANK-77", UpdatedAt: ts})
	require.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_CompareAndSetStatus_AlreadyTerminal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	// Current status not in expected -> zero rows matched.
	mock.ExpectExec("UPDATE orders").
		WithArgs(domain.OrderStatusCancelled, "", (*string)(nil),
			pgxmock.AnyArg(), "XLACG-42", []string{"PENDING"}).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	applied, err := repo.CompareAndSetStatus(context.Background(), "XLACG-42",
		[]domain.OrderStatus{domain.OrderStatusPending}, domain.OrderStatusCancelled,
		ports.StatusUpdate{})
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestOrderRepo_CompareAndSetStatus_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOrderRepo(mock)

	mock.ExpectExec("UPDATE orders").
		WithArgs(domain.OrderStatusSucceeded, "", (*string)(nil),
			pgxmock.AnyArg(), "XLACG-42", []string{"PENDING"}).
		WillReturnError(errors.New("connection reset"))

	_, err = repo.CompareAndSetStatus(context.Background(), "XLACG-42",
		[]domain.OrderStatus{domain.OrderStatusPending}, domain.OrderStatusSucceeded,
		ports.StatusUpdate{})
	assert.Error(t, err)
}
