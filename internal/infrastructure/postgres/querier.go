package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/pos-crm-api/internal/domain"
)

// idQuerier envuelve el Querier de los repositorios. Todas las claves son
// UUID, así que un id con otro formato (22P02) no puede coincidir con ninguna
// fila: las lecturas lo ven como "sin filas" y las escrituras como ErrNotFound,
// igual que el almacén en memoria.
type idQuerier struct {
	q Querier
}

func withIDMapping(q Querier) Querier {
	if w, ok := q.(idQuerier); ok {
		return w
	}
	return idQuerier{q: q}
}

// isInvalidText detecta invalid_text_representation (22P02).
func isInvalidText(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22P02"
}

func (w idQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tag, err := w.q.Exec(ctx, sql, args...)
	if isInvalidText(err) {
		return tag, domain.ErrNotFound
	}
	return tag, err
}

func (w idQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	rows, err := w.q.Query(ctx, sql, args...)
	if isInvalidText(err) {
		return emptyRows{}, nil
	}
	if err != nil {
		return nil, err
	}
	return idRows{Rows: rows}, nil
}

func (w idQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return idRow{row: w.q.QueryRow(ctx, sql, args...)}
}

func (w idQuerier) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	return w.q.SendBatch(ctx, b)
}

type idRow struct {
	row pgx.Row
}

func (r idRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	if isInvalidText(err) {
		return pgx.ErrNoRows
	}
	return err
}

// idRows oculta el 22P02 que pgx entrega al terminar la iteración.
type idRows struct {
	pgx.Rows
}

func (r idRows) Err() error {
	err := r.Rows.Err()
	if isInvalidText(err) {
		return nil
	}
	return err
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, pgx.ErrNoRows }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }
