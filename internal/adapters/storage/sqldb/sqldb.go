// Package sqldb implementa los repos de clinic sobre database/sql.
// El mismo código sirve para Postgres (pgx) y SQLite (modernc); las diferencias
// de dialecto se limitan a placeholders y a la columna id autoincremental.
package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"petclinic/internal/domain/clinic"
)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// conn envuelve *sql.DB con el dialecto. Todas las queries se escriben con "?"
// y se reescriben a $1..$n para Postgres.
type conn struct {
	db      *sql.DB
	dialect Dialect
}

// queryer es lo común entre *sql.DB y *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func NewRepositories(db *sql.DB, dialect Dialect) clinic.Repositories {
	c := &conn{db: db, dialect: dialect}
	return clinic.Repositories{
		Owners:      &OwnerRepo{c: c},
		Pets:        &PetRepo{c: c},
		PetTypes:    &PetTypeRepo{c: c},
		Vets:        &VetRepo{c: c},
		Specialties: &SpecialtyRepo{c: c},
		Visits:      &VisitRepo{c: c},
	}
}

func (c *conn) rebind(query string) string {
	if c.dialect != Postgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteString("$" + strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (c *conn) exec(ctx context.Context, q queryer, query string, args ...any) (sql.Result, error) {
	return q.ExecContext(ctx, c.rebind(query), args...)
}

func (c *conn) query(ctx context.Context, q queryer, query string, args ...any) (*sql.Rows, error) {
	return q.QueryContext(ctx, c.rebind(query), args...)
}

func (c *conn) queryRow(ctx context.Context, q queryer, query string, args ...any) *sql.Row {
	return q.QueryRowContext(ctx, c.rebind(query), args...)
}

// insert ejecuta un INSERT ... RETURNING id (soportado por Postgres y SQLite >= 3.35).
func (c *conn) insert(ctx context.Context, q queryer, query string, args ...any) (int, error) {
	var id int
	if err := c.queryRow(ctx, q, query+" RETURNING id", args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// update devuelve clinic.ErrNotFound si no se tocó ninguna fila.
func (c *conn) update(ctx context.Context, q queryer, query string, args ...any) error {
	res, err := c.exec(ctx, q, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return clinic.ErrNotFound
	}
	return nil
}

// inTx corre fn en una transacción; rollback si fn devuelve error.
func (c *conn) inTx(ctx context.Context, fn func(tx *sql.Tx) error) (retErr error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// checkRef valida una foreign key antes de escribir, para que los tres storages
// respondan igual (clinic.ErrInvalidInput) ante una referencia colgada.
func (c *conn) checkRef(ctx context.Context, q queryer, table string, id int) error {
	var one int
	err := c.queryRow(ctx, q, "SELECT 1 FROM "+table+" WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: unknown %s id %d", clinic.ErrInvalidInput, table, id)
	}
	if err != nil {
		return fmt.Errorf("check %s reference: %w", table, err)
	}
	return nil
}

func nullInt(id int) any {
	if id == 0 {
		return nil
	}
	return id
}

// dateArg normaliza a medianoche UTC; fecha vacía => NULL.
func dateArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseDate acepta lo que devuelva cada driver para una columna DATE:
// time.Time (convertido a RFC3339 por database/sql) o texto "YYYY-MM-DD ...".
func parseDate(ns sql.NullString) time.Time {
	if !ns.Valid || len(ns.String) < len(clinic.DateLayout) {
		return time.Time{}
	}
	t, err := time.Parse(clinic.DateLayout, ns.String[:len(clinic.DateLayout)])
	if err != nil {
		return time.Time{}
	}
	return t
}

func likePrefix(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}
