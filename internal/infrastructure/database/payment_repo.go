package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"venueadmin/internal/domain"
	"venueadmin/internal/domain/entities"
	"venueadmin/internal/domain/ledger"
	"venueadmin/internal/ports/output"
)

var _ output.PaymentRepository = (*PaymentRepository)(nil)

// PaymentRepository implements output.PaymentRepository on pgx.
type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Record inserts the payment and decrements the owning event's balance.
// The event row is locked with SELECT ... FOR UPDATE so two concurrent
// payments cannot both pass the sufficiency check against the same balance.
func (r *PaymentRepository) Record(ctx context.Context, payment *entities.Payment) (*entities.Event, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin record payment: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	row := tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`,
		int64(payment.EventID))
	event, err := scanEvent(row)
	if err != nil {
		return nil, err
	}

	if err = ledger.ApplyPayment(event, payment.Amount); err != nil {
		return nil, err
	}

	payment.ID = uuid.New().String()
	err = tx.QueryRow(ctx,
		`INSERT INTO payments (id, event_id, amount, payer_name, date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		payment.ID,
		int64(payment.EventID),
		payment.Amount,
		payment.PayerName,
		payment.Date,
	).Scan(&payment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE events
		 SET remaining_balance = $2, remaining_plates = $3, updated_at = now()
		 WHERE id = $1`,
		int64(event.ID),
		event.RemainingBalance,
		event.RemainingPlates,
	)
	if err != nil {
		return nil, fmt.Errorf("update event balance: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit record payment: %w", err)
	}
	return event, nil
}

func (r *PaymentRepository) FindByEventID(ctx context.Context, eventID uint) ([]entities.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, amount, payer_name, date, created_at
		 FROM payments WHERE event_id = $1 ORDER BY created_at ASC`,
		int64(eventID))
	if err != nil {
		return nil, fmt.Errorf("get payments by event id: %w", err)
	}
	defer rows.Close()

	out := []entities.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PaymentRepository) SumByEventID(ctx context.Context, eventID uint) (decimal.Decimal, error) {
	var sum decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE event_id = $1`,
		int64(eventID),
	).Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments by event id: %w", err)
	}
	return sum, nil
}

func scanPayment(row pgx.Row) (*entities.Payment, error) {
	var (
		p       entities.Payment
		eventID int64
	)
	err := row.Scan(&p.ID, &eventID, &p.Amount, &p.PayerName, &p.Date, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	p.EventID = uint(eventID)
	return &p, nil
}
