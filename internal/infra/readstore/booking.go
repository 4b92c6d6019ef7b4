package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coach-flow/internal/infra"
	"coach-flow/internal/infra/db"
	"coach-flow/internal/pkg/pgconv"
	"coach-flow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

const findBookingByIDSQL = `
SELECT b.id, b.client_id, c.email, b.trainer_id, t.email, b.service_id, s.name,
       lower(b.slot), upper(b.slot), b.status, b.reminder_sent_at,
       b.created_at, b.updated_at
FROM bookings b
JOIN users c ON c.id = b.client_id
JOIN users t ON t.id = b.trainer_id
JOIN services s ON s.id = b.service_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var (
		view     queries.BookingView
		reminder pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findBookingByIDSQL, id).Scan(
		&view.ID, &view.ClientID, &view.ClientEmail,
		&view.TrainerID, &view.TrainerEmail,
		&view.ServiceID, &view.ServiceName,
		&view.StartTime, &view.EndTime, &view.Status, &reminder,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	view.ReminderSentAt = pgconv.TimePtrFromPgtype(reminder)
	return &view, nil
}

// Search builds the listing query from the criteria. Ordering is by slot
// start, newest first, with id as the tiebreaker.
func (r *BookingReadStore) Search(ctx context.Context, criteria queries.BookingSearchCriteria) ([]*queries.BookingListItem, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`
SELECT b.id, b.client_id, b.trainer_id, b.service_id, s.name,
       lower(b.slot), upper(b.slot), b.status, b.created_at
FROM bookings b
JOIN services s ON s.id = b.service_id
WHERE `)

	args = append(args, criteria.ActorID)
	switch {
	case criteria.AsClient && criteria.AsTrainer:
		sb.WriteString("(b.client_id = $1 OR b.trainer_id = $1)")
	case criteria.AsClient:
		sb.WriteString("b.client_id = $1")
	case criteria.AsTrainer:
		sb.WriteString("b.trainer_id = $1")
	default:
		return []*queries.BookingListItem{}, nil
	}

	if criteria.Status != nil {
		args = append(args, *criteria.Status)
		fmt.Fprintf(&sb, " AND b.status = $%d", len(args))
	}
	if criteria.StartsAfter != nil {
		args = append(args, *criteria.StartsAfter)
		fmt.Fprintf(&sb, " AND lower(b.slot) >= $%d", len(args))
	}
	if criteria.EndsBefore != nil {
		args = append(args, *criteria.EndsBefore)
		fmt.Fprintf(&sb, " AND upper(b.slot) <= $%d", len(args))
	}

	args = append(args, criteria.Limit)
	fmt.Fprintf(&sb, " ORDER BY lower(b.slot) DESC, b.id LIMIT $%d", len(args))
	args = append(args, criteria.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		if err := rows.Scan(
			&item.ID, &item.ClientID, &item.TrainerID, &item.ServiceID,
			&item.ServiceName, &item.StartTime, &item.EndTime,
			&item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

const blockingBookingExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE trainer_id = $1
      AND status IN ('pending', 'accepted')
      AND slot && tstzrange($2, $3, '[)')
)`

// BlockingExists reports whether a PENDING or ACCEPTED booking overlaps the
// half-open window. The && operator on tstzrange carries the same half-open
// semantics as the domain predicate.
func (r *BookingReadStore) BlockingExists(ctx context.Context, trainerID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, blockingBookingExistsSQL, trainerID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check blocking bookings", err)
	}
	return exists, nil
}

const acceptedBookingExistsSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE trainer_id = $1
      AND status = 'accepted'
      AND slot && tstzrange($2, $3, '[)')
)`

func (r *BookingReadStore) AcceptedExists(ctx context.Context, trainerID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, acceptedBookingExistsSQL, trainerID, start, end).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check accepted bookings", err)
	}
	return exists, nil
}
