package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitta-app/vitta-api/internal/application/usecase"
	"github.com/vitta-app/vitta-api/internal/domain/repository"
)

var _ usecase.BookingTxRunner = (*BookingTxRunner)(nil)

// BookingTxRunner ejecuta callbacks de agenda dentro de una transacción
// PostgreSQL: el chequeo de solapamiento y la escritura ven el mismo snapshot.
type BookingTxRunner struct {
	pool *pgxpool.Pool
}

// NewBookingTxRunner construye el runner con el pool.
func NewBookingTxRunner(pool *pgxpool.Pool) *BookingTxRunner {
	return &BookingTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con un repo de citas atado a la tx y
// hace Commit o Rollback.
func (r *BookingTxRunner) Run(ctx context.Context, fn func(appts repository.AppointmentRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewAppointmentRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
