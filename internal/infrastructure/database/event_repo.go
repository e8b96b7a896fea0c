package database

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"venueadmin/internal/domain"
	"venueadmin/internal/domain/entities"
	"venueadmin/internal/domain/ledger"
	"venueadmin/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

const eventColumns = `id, name, date, guests, price_per_plate, total,
	remaining_balance, remaining_plates, currency, event_type_id, seller_id,
	observations, menu, file_urls, created_at, updated_at`

// EventRepository implements output.EventRepository on pgx.
type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts the event after verifying the date is free. The check and
// the insert share one transaction, and a unique index on date backstops
// the race where two requests both see the date as free.
func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create event: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var existing string
	err = tx.QueryRow(ctx,
		`SELECT name FROM events WHERE date = $1`,
		timeToPgtypeDate(event.Date),
	).Scan(&existing)
	if err == nil {
		err = &domain.DateConflictError{EventName: existing}
		return err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check date collision: %w", err)
	}

	fileURLs := event.FileURLs
	if fileURLs == nil {
		fileURLs = []string{}
	}
	var newID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO events (name, date, guests, price_per_plate, total,
			remaining_balance, remaining_plates, currency, event_type_id,
			seller_id, observations, menu, file_urls)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		event.Name,
		timeToPgtypeDate(event.Date),
		event.Guests,
		event.PricePerPlate,
		event.Total,
		event.RemainingBalance,
		event.RemainingPlates,
		string(event.Currency),
		int64(event.EventTypeID),
		int64(event.SellerID),
		ptrToPgtypeText(event.Observations),
		ptrToPgtypeText(event.Menu),
		fileURLs,
	).Scan(&newID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			// Lost the race against a concurrent insert on the same date.
			_ = tx.Rollback(ctx)
			name, _ := r.nameByDate(ctx, event.Date)
			err = &domain.DateConflictError{EventName: name}
			return err
		}
		return fmt.Errorf("insert event: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create event: %w", err)
	}
	event.ID = uint(newID)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (*entities.Event, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, int64(id))
	event, err := scanEvent(row)
	if err != nil {
		return nil, err
	}
	if err := r.attachPayments(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) List(ctx context.Context) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// UpdateTerms locks the event row, sums its payments and applies the
// balance recalculation rule, all inside one transaction.
func (r *EventRepository) UpdateTerms(ctx context.Context, id uint, newGuests int, newPrice decimal.Decimal, opts entities.TermsOptions) (*entities.Event, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin update terms: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	row := tx.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, int64(id))
	event, err := scanEvent(row)
	if err != nil {
		return nil, err
	}

	var totalPaid decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE event_id = $1`,
		int64(id),
	).Scan(&totalPaid)
	if err != nil {
		return nil, fmt.Errorf("sum payments: %w", err)
	}

	if err = ledger.Recalculate(event, totalPaid, newGuests, newPrice); err != nil {
		return nil, err
	}
	if opts.Observations != nil {
		event.Observations = opts.Observations
	}
	if opts.Menu != nil {
		event.Menu = opts.Menu
	}
	if opts.FileURLs != nil {
		event.FileURLs = opts.FileURLs
	}
	fileURLs := event.FileURLs
	if fileURLs == nil {
		fileURLs = []string{}
	}

	err = tx.QueryRow(ctx,
		`UPDATE events
		 SET guests = $2, price_per_plate = $3, total = $4,
		     remaining_balance = $5, remaining_plates = $6,
		     observations = $7, menu = $8, file_urls = $9, updated_at = now()
		 WHERE id = $1
		 RETURNING updated_at`,
		int64(id),
		event.Guests,
		event.PricePerPlate,
		event.Total,
		event.RemainingBalance,
		event.RemainingPlates,
		ptrToPgtypeText(event.Observations),
		ptrToPgtypeText(event.Menu),
		fileURLs,
	).Scan(&event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update event terms: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update terms: %w", err)
	}

	if err := r.attachPayments(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event; payments go with it via ON DELETE CASCADE.
func (r *EventRepository) Delete(ctx context.Context, id uint) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, int64(id))
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) FindUnsettledBetween(ctx context.Context, from, to time.Time) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+eventColumns+`
		 FROM events
		 WHERE date BETWEEN $1 AND $2 AND remaining_balance > 0
		 ORDER BY date ASC`,
		timeToPgtypeDate(from), timeToPgtypeDate(to))
	if err != nil {
		return nil, fmt.Errorf("find unsettled events: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

// MetricsByCurrency aggregates events per currency, then payment amounts
// through each payment's owning event. Events stored without a currency
// bucket under the default.
func (r *EventRepository) MetricsByCurrency(ctx context.Context) ([]entities.CurrencyMetrics, error) {
	groups := map[domain.Currency]*entities.CurrencyMetrics{}

	rows, err := r.db.Query(ctx,
		`SELECT COALESCE(NULLIF(currency, ''), $1),
		        COUNT(*), COALESCE(SUM(guests), 0), COALESCE(SUM(remaining_balance), 0)
		 FROM events GROUP BY 1`,
		string(domain.DefaultCurrency))
	if err != nil {
		return nil, fmt.Errorf("aggregate events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			currency            string
			totalEvents, guests int64
			pending             decimal.Decimal
		)
		if err := rows.Scan(&currency, &totalEvents, &guests, &pending); err != nil {
			return nil, fmt.Errorf("scan event metrics: %w", err)
		}
		groups[domain.Currency(currency)] = &entities.CurrencyMetrics{
			Currency:            domain.Currency(currency),
			TotalEvents:         int(totalEvents),
			TotalGuests:         int(guests),
			TotalPendingBalance: pending,
			TotalPayments:       decimal.Zero,
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate events: %w", err)
	}

	payRows, err := r.db.Query(ctx,
		`SELECT COALESCE(NULLIF(e.currency, ''), $1), COALESCE(SUM(p.amount), 0)
		 FROM payments p
		 JOIN events e ON e.id = p.event_id
		 GROUP BY 1`,
		string(domain.DefaultCurrency))
	if err != nil {
		return nil, fmt.Errorf("aggregate payments: %w", err)
	}
	defer payRows.Close()
	for payRows.Next() {
		var (
			currency string
			total    decimal.Decimal
		)
		if err := payRows.Scan(&currency, &total); err != nil {
			return nil, fmt.Errorf("scan payment metrics: %w", err)
		}
		g, ok := groups[domain.Currency(currency)]
		if !ok {
			g = &entities.CurrencyMetrics{
				Currency:            domain.Currency(currency),
				TotalPendingBalance: decimal.Zero,
			}
			groups[domain.Currency(currency)] = g
		}
		g.TotalPayments = total
	}
	if err := payRows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate payments: %w", err)
	}

	out := make([]entities.CurrencyMetrics, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Currency < out[j].Currency })
	return out, nil
}

func (r *EventRepository) attachPayments(ctx context.Context, event *entities.Event) error {
	rows, err := r.db.Query(ctx,
		`SELECT id, event_id, amount, payer_name, date, created_at
		 FROM payments WHERE event_id = $1 ORDER BY created_at ASC`,
		int64(event.ID))
	if err != nil {
		return fmt.Errorf("get payments: %w", err)
	}
	defer rows.Close()

	event.Payments = event.Payments[:0]
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return err
		}
		event.Payments = append(event.Payments, *p)
	}
	return rows.Err()
}

func (r *EventRepository) nameByDate(ctx context.Context, date time.Time) (string, error) {
	var name string
	err := r.db.QueryRow(ctx,
		`SELECT name FROM events WHERE date = $1`, timeToPgtypeDate(date)).Scan(&name)
	return name, err
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e           entities.Event
		id          int64
		date        pgtype.Date
		currency    string
		eventTypeID int64
		sellerID    int64
		obs, menu   pgtype.Text
	)
	err := row.Scan(
		&id, &e.Name, &date, &e.Guests, &e.PricePerPlate, &e.Total,
		&e.RemainingBalance, &e.RemainingPlates, &currency, &eventTypeID,
		&sellerID, &obs, &menu, &e.FileURLs, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.ID = uint(id)
	e.Date = pgtypeDateToTime(date)
	e.Currency = domain.Currency(currency)
	e.EventTypeID = uint(eventTypeID)
	e.SellerID = uint(sellerID)
	e.Observations = pgtypeTextToPtr(obs)
	e.Menu = pgtypeTextToPtr(menu)
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	var out []entities.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
