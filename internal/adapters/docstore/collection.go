package docstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jsamuelsen11/todo-board/internal/domain"
)

var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Snapshot is a document read from the store.
type Snapshot struct {
	ID   string
	Data Document
}

// Collection is a named set of documents.
type Collection struct {
	store *Store
	name  string
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.name
}

// Add stores data under a new random ID and returns that ID.
func (c *Collection) Add(ctx context.Context, data Document) (string, error) {
	id := uuid.NewString()
	raw, err := encode(data, c.store.now())
	if err != nil {
		return "", err
	}
	_, err = c.store.db.ExecContext(ctx,
		"INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)",
		c.name, id, raw,
	)
	if err != nil {
		return "", fmt.Errorf("adding %s document: %w", c.name, err)
	}
	return id, nil
}

// Get returns a single document.
// Returns an error wrapping domain.ErrNotFound if it does not exist.
func (c *Collection) Get(ctx context.Context, id string) (*Snapshot, error) {
	data, err := getDoc(ctx, c.store.db, c.name, id)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%s/%s: %w", c.name, id, domain.ErrNotFound)
	}
	return &Snapshot{ID: id, Data: data}, nil
}

// Set writes data under id. With merge, top-level fields of data replace
// those of an existing document and all other fields are kept; without
// merge the document is replaced.
func (c *Collection) Set(ctx context.Context, id string, data Document, merge bool) error {
	return c.store.inTx(ctx, func(tx *sqlx.Tx) error {
		return setDoc(ctx, tx, c.name, id, data, merge, c.store.now())
	})
}

// Update merges data into an existing document.
// Returns an error wrapping domain.ErrNotFound if it does not exist.
func (c *Collection) Update(ctx context.Context, id string, data Document) error {
	return c.store.inTx(ctx, func(tx *sqlx.Tx) error {
		existing, err := getDoc(ctx, tx, c.name, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return fmt.Errorf("%s/%s: %w", c.name, id, domain.ErrNotFound)
		}
		maps.Copy(existing, data)
		return putDoc(ctx, tx, c.name, id, existing, c.store.now())
	})
}

// Delete removes a document. Deleting a missing document is a no-op.
func (c *Collection) Delete(ctx context.Context, id string) error {
	return deleteDoc(ctx, c.store.db, c.name, id)
}

// Documents returns every document in the collection ordered by ID.
func (c *Collection) Documents(ctx context.Context) ([]Snapshot, error) {
	return c.Query().Documents(ctx)
}

// Where starts a query matching documents whose top-level field equals value.
func (c *Collection) Where(field string, value any) *Query {
	return c.Query().Where(field, value)
}

// Query starts an unfiltered query on the collection.
func (c *Collection) Query() *Query {
	return &Query{coll: c}
}

// Query selects documents of one collection.
type Query struct {
	coll   *Collection
	wheres []clause
	orders []clause
	err    error
}

type clause struct {
	field string
	value any
	desc  bool
}

// Where adds an equality condition on a top-level field.
func (q *Query) Where(field string, value any) *Query {
	q.check(field)
	q.wheres = append(q.wheres, clause{field: field, value: value})
	return q
}

// OrderBy adds a sort key on a top-level field. Documents missing the field
// sort first in ascending order. Ties are always broken by document ID.
func (q *Query) OrderBy(field string, desc bool) *Query {
	q.check(field)
	q.orders = append(q.orders, clause{field: field, desc: desc})
	return q
}

func (q *Query) check(field string) {
	if q.err == nil && !fieldPattern.MatchString(field) {
		q.err = fmt.Errorf("docstore: invalid field name %q", field)
	}
}

// Documents runs the query.
func (q *Query) Documents(ctx context.Context) ([]Snapshot, error) {
	if q.err != nil {
		return nil, q.err
	}

	var b strings.Builder
	args := []any{q.coll.name}
	b.WriteString("SELECT id, data FROM documents WHERE collection = ?")
	for _, w := range q.wheres {
		fmt.Fprintf(&b, " AND json_extract(data, '$.%s') = ?", w.field)
		args = append(args, w.value)
	}
	b.WriteString(" ORDER BY ")
	for _, o := range q.orders {
		dir := "ASC"
		if o.desc {
			dir = "DESC"
		}
		fmt.Fprintf(&b, "json_extract(data, '$.%s') %s, ", o.field, dir)
	}
	b.WriteString("id ASC")

	rows, err := q.coll.store.db.QueryxContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", q.coll.name, err)
	}
	defer func() { _ = rows.Close() }()

	var out []Snapshot
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", q.coll.name, err)
		}
		data, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", q.coll.name, id, err)
		}
		out = append(out, Snapshot{ID: id, Data: data})
	}
	return out, rows.Err()
}

func getDoc(ctx context.Context, q sqlx.QueryerContext, coll, id string) (Document, error) {
	var raw string
	err := q.QueryRowxContext(ctx,
		"SELECT data FROM documents WHERE collection = ? AND id = ?", coll, id,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting %s/%s: %w", coll, id, err)
	}
	return decode(raw)
}

func setDoc(ctx context.Context, tx sqlx.ExtContext, coll, id string, data Document, merge bool, now time.Time) error {
	if merge {
		existing, err := getDoc(ctx, tx, coll, id)
		if err != nil {
			return err
		}
		if existing != nil {
			maps.Copy(existing, data)
			data = existing
		}
	}
	return putDoc(ctx, tx, coll, id, data, now)
}

func putDoc(ctx context.Context, ex sqlx.ExecerContext, coll, id string, data Document, now time.Time) error {
	raw, err := encode(data, now)
	if err != nil {
		return err
	}
	_, err = ex.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data) VALUES (?, ?, ?)
		 ON CONFLICT (collection, id) DO UPDATE SET data = excluded.data`,
		coll, id, raw,
	)
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", coll, id, err)
	}
	return nil
}

func deleteDoc(ctx context.Context, ex sqlx.ExecerContext, coll, id string) error {
	_, err := ex.ExecContext(ctx, "DELETE FROM documents WHERE collection = ? AND id = ?", coll, id)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", coll, id, err)
	}
	return nil
}
