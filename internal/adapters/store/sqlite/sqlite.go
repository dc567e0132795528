// Package sqlite is the SQLite-backed page tree. The schema is managed by
// embedded golang-migrate migrations.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlite3migrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jsamuelsen11/page-template-admin/internal/domain"
	"github.com/jsamuelsen11/page-template-admin/internal/domain/page"
	"github.com/jsamuelsen11/page-template-admin/internal/ports"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var _ ports.PageTree = (*Store)(nil)

// executor is implemented by both *sqlx.DB and *sqlx.Tx.
type executor interface {
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store implements ports.PageTree on SQLite.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// New opens the database at dsn, enables foreign keys and runs migrations.
func New(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite3", withForeignKeys(dsn))
	if err != nil {
		return nil, NewStoreError("New", "", 0, "failed to open database: "+err.Error(), ErrConnectionFailed)
	}
	if strings.Contains(dsn, ":memory:") {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, NewStoreError("New", "", 0, "failed to ping database: "+err.Error(), ErrConnectionFailed)
	}

	if err := runMigrations(db.DB); err != nil {
		_ = db.Close()
		return nil, NewStoreError("New", "", 0, err.Error(), ErrMigrationFailed)
	}

	return &Store{db: db, now: time.Now}, nil
}

func withForeignKeys(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite3migrate.WithInstance(db, &sqlite3migrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Name identifies the store in health reports.
func (s *Store) Name() string { return "sqlite" }

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// withTx runs fn in a transaction, rolling back when fn fails.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return NewStoreError(op, "", 0, "failed to begin transaction", ErrTxFailed)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return NewStoreError(op, "", 0, fmt.Sprintf("rollback failed after error: %v", err), ErrTxFailed)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return NewStoreError(op, "", 0, "failed to commit transaction", ErrTxFailed)
	}
	return nil
}

// pageRow represents a page row in the database.
type pageRow struct {
	ID          int64         `db:"id"`
	Title       string        `db:"title"`
	Slug        string        `db:"slug"`
	TemplateKey string        `db:"template_key"`
	ParentID    sql.NullInt64 `db:"parent_id"`
	SortOrder   int           `db:"sort_order"`
	CreatedAt   string        `db:"created_at"`
	UpdatedAt   string        `db:"updated_at"`
}

const pageColumns = `id, title, slug, template_key, parent_id, sort_order, created_at, updated_at`

func (r pageRow) toDomain() page.Page {
	p := page.Page{
		ID:          r.ID,
		Title:       r.Title,
		Slug:        r.Slug,
		TemplateKey: r.TemplateKey,
		SortOrder:   r.SortOrder,
	}
	if r.ParentID.Valid {
		parent := r.ParentID.Int64
		p.ParentID = &parent
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, r.CreatedAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, r.UpdatedAt)
	return p
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// =============================================================================
// Reads
// =============================================================================

func (s *Store) Page(ctx context.Context, id int64) (*page.Page, error) {
	return getPage(ctx, s.db, "Page", id)
}

func (s *Store) CountByTemplate(ctx context.Context, key string, excludeID int64) (int, error) {
	var n int
	err := s.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM pages WHERE template_key = ? AND id != ?`, key, excludeID)
	if err != nil {
		return 0, queryError("CountByTemplate", "page", 0, err)
	}
	return n, nil
}

func (s *Store) CountChildren(ctx context.Context, id int64) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM pages WHERE parent_id = ?`, id); err != nil {
		return 0, queryError("CountChildren", "page", id, err)
	}
	return n, nil
}

func (s *Store) ListPages(ctx context.Context) ([]page.Page, error) {
	var rows []pageRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT `+pageColumns+` FROM pages`); err != nil {
		return nil, queryError("ListPages", "page", 0, err)
	}

	pages := make([]page.Page, 0, len(rows))
	for _, r := range rows {
		pages = append(pages, r.toDomain())
	}
	return page.TreeOrder(pages), nil
}

// =============================================================================
// Writes
// =============================================================================

func (s *Store) CreatePage(ctx context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error) {
	var created *page.Page
	err := s.withTx(ctx, "CreatePage", func(tx *sqlx.Tx) error {
		if err := requireParent(ctx, tx, "CreatePage", p.ParentID); err != nil {
			return err
		}
		order, err := nextSortOrder(ctx, tx, p.ParentID)
		if err != nil {
			return queryError("CreatePage", "page", 0, err)
		}

		now := formatTime(s.now())
		res, err := tx.ExecContext(ctx, `
			INSERT INTO pages (title, slug, template_key, parent_id, sort_order, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.Title, p.Slug, p.TemplateKey, nullID(p.ParentID), order, now, now)
		if err != nil {
			return queryError("CreatePage", "page", 0, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return queryError("CreatePage", "page", 0, err)
		}

		if err := claimTemplate(ctx, tx, "CreatePage", id, p.TemplateKey, uniqueTemplate); err != nil {
			return err
		}

		created, err = getPage(ctx, tx, "CreatePage", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Store) UpdatePage(ctx context.Context, p *page.Page, uniqueTemplate bool) (*page.Page, error) {
	var updated *page.Page
	err := s.withTx(ctx, "UpdatePage", func(tx *sqlx.Tx) error {
		existing, err := getPage(ctx, tx, "UpdatePage", p.ID)
		if err != nil {
			return err
		}
		if err := requireParent(ctx, tx, "UpdatePage", p.ParentID); err != nil {
			return err
		}
		if p.ParentID != nil {
			inside, err := inSubtree(ctx, tx, *p.ParentID, p.ID)
			if err != nil {
				return queryError("UpdatePage", "page", p.ID, err)
			}
			if inside {
				return NewStoreError("UpdatePage", "page", p.ID, "cannot be placed inside its own subtree", domain.ErrValidation)
			}
		}

		order := existing.SortOrder
		if !sameParent(existing.ParentID, p.ParentID) {
			if order, err = nextSortOrder(ctx, tx, p.ParentID); err != nil {
				return queryError("UpdatePage", "page", p.ID, err)
			}
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE pages SET title = ?, slug = ?, template_key = ?, parent_id = ?, sort_order = ?, updated_at = ?
			WHERE id = ?`,
			p.Title, p.Slug, p.TemplateKey, nullID(p.ParentID), order, formatTime(s.now()), p.ID)
		if err != nil {
			return queryError("UpdatePage", "page", p.ID, err)
		}

		if err := claimTemplate(ctx, tx, "UpdatePage", p.ID, p.TemplateKey, uniqueTemplate); err != nil {
			return err
		}

		updated, err = getPage(ctx, tx, "UpdatePage", p.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Store) MovePage(ctx context.Context, id, targetID int64, pos page.Position) (*page.Page, error) {
	if !pos.IsValid() {
		return nil, NewStoreError("MovePage", "page", id, fmt.Sprintf("unknown position %q", pos), domain.ErrValidation)
	}

	var moved *page.Page
	err := s.withTx(ctx, "MovePage", func(tx *sqlx.Tx) error {
		if _, err := getPage(ctx, tx, "MovePage", id); err != nil {
			return err
		}
		target, err := getPage(ctx, tx, "MovePage", targetID)
		if err != nil {
			return err
		}

		newParent := pos.NewParent(target)
		if newParent != nil {
			inside, err := inSubtree(ctx, tx, *newParent, id)
			if err != nil {
				return queryError("MovePage", "page", id, err)
			}
			if inside {
				return NewStoreError("MovePage", "page", id, "cannot be moved inside its own subtree", domain.ErrValidation)
			}
		}

		var order int
		switch pos {
		case page.PositionLastChild:
			order, err = nextSortOrder(ctx, tx, newParent)
		case page.PositionLeft:
			order = target.SortOrder
			err = shiftSiblings(ctx, tx, newParent, id, order)
		case page.PositionRight:
			order = target.SortOrder + 1
			err = shiftSiblings(ctx, tx, newParent, id, order)
		}
		if err != nil {
			return queryError("MovePage", "page", id, err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE pages SET parent_id = ?, sort_order = ?, updated_at = ? WHERE id = ?`,
			nullID(newParent), order, formatTime(s.now()), id)
		if err != nil {
			return queryError("MovePage", "page", id, err)
		}

		moved, err = getPage(ctx, tx, "MovePage", id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return moved, nil
}

// DeletePage removes the page; descendants and template claims go with it
// through ON DELETE CASCADE.
func (s *Store) DeletePage(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	if err != nil {
		return queryError("DeletePage", "page", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return queryError("DeletePage", "page", id, err)
	}
	if n == 0 {
		return NewStoreError("DeletePage", "page", id, "page not found", domain.ErrNotFound)
	}
	return nil
}

// =============================================================================
// Shared Implementation Functions
// =============================================================================

func getPage(ctx context.Context, exec executor, op string, id int64) (*page.Page, error) {
	var row pageRow
	err := exec.GetContext(ctx, &row, `SELECT `+pageColumns+` FROM pages WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NewStoreError(op, "page", id, "page not found", domain.ErrNotFound)
		}
		return nil, queryError(op, "page", id, err)
	}
	p := row.toDomain()
	return &p, nil
}

func requireParent(ctx context.Context, exec executor, op string, parentID *int64) error {
	if parentID == nil {
		return nil
	}
	if _, err := getPage(ctx, exec, op, *parentID); err != nil {
		return err
	}
	return nil
}

func nextSortOrder(ctx context.Context, exec executor, parentID *int64) (int, error) {
	var next int
	err := exec.GetContext(ctx, &next,
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM pages WHERE parent_id IS ?`, nullID(parentID))
	return next, err
}

func shiftSiblings(ctx context.Context, exec executor, parentID *int64, skipID int64, from int) error {
	_, err := exec.ExecContext(ctx,
		`UPDATE pages SET sort_order = sort_order + 1 WHERE parent_id IS ? AND id != ? AND sort_order >= ?`,
		nullID(parentID), skipID, from)
	return err
}

// inSubtree reports whether candidateID is rootID or one of its descendants.
func inSubtree(ctx context.Context, exec executor, candidateID, rootID int64) (bool, error) {
	var n int
	err := exec.GetContext(ctx, &n, `
		WITH RECURSIVE ancestors(id, parent_id) AS (
			SELECT id, parent_id FROM pages WHERE id = ?
			UNION ALL
			SELECT p.id, p.parent_id FROM pages p JOIN ancestors a ON p.id = a.parent_id
		)
		SELECT COUNT(*) FROM ancestors WHERE id = ?`, candidateID, rootID)
	return n > 0, err
}

// claimTemplate drops any claim held by the page and, for unique templates,
// records a new one. The primary key on template_key turns a concurrent
// second claim into domain.ErrConflict.
func claimTemplate(ctx context.Context, exec executor, op string, id int64, key string, unique bool) error {
	if _, err := exec.ExecContext(ctx, `DELETE FROM unique_template_holders WHERE page_id = ?`, id); err != nil {
		return queryError(op, "page", id, err)
	}
	if !unique {
		return nil
	}

	_, err := exec.ExecContext(ctx,
		`INSERT INTO unique_template_holders (template_key, page_id) VALUES (?, ?)`, key, id)
	if err != nil {
		if isUniqueViolation(err, "unique_template_holders") {
			return NewStoreError(op, "page", id, fmt.Sprintf("template %q already held by another page", key), domain.ErrConflict)
		}
		return queryError(op, "page", id, err)
	}
	return nil
}

func nullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func sameParent(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
