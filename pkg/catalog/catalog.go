// Package catalog keeps a local SQLite index of parsed luminaires.
//
// Each entry stores the source name, detected format, content hash and the
// summary numbers of the web, plus the web itself as a JSON document so it
// can be re-opened without the original file. Entries are keyed by a random
// UUID; adding the same bytes in the same format twice returns the existing
// entry.
//
// The schema is versioned by the embedded SQL migrations, applied on Open.
//
//	cat, err := catalog.Open("lidkit.db")
//	defer cat.Close()
//	e, err := cat.Add(ctx, catalog.Record{Name: "downlight", Format: "ies", Hash: h}, web)
package catalog

import (
	"bytes"
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/matzehuels/lidkit/pkg/errors"
	webio "github.com/matzehuels/lidkit/pkg/io"
	"github.com/matzehuels/lidkit/pkg/photweb"
)

// Record describes a web being added.
type Record struct {
	Name   string
	Source string
	Format string
	Hash   string
}

// Entry is one catalogued luminaire.
type Entry struct {
	ID             string    `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Source         string    `db:"source" json:"source,omitempty"`
	Format         string    `db:"format" json:"format"`
	Hash           string    `db:"content_hash" json:"content_hash"`
	Planes         int       `db:"planes" json:"planes"`
	TotalIntensity float64   `db:"total_intensity" json:"total_intensity"`
	MaxIntensity   float64   `db:"max_intensity" json:"max_intensity"`
	AddedUnix      int64     `db:"added_unix" json:"-"`
	Added          time.Time `db:"-" json:"added"`
}

const entryColumns = "id, name, source, format, content_hash, planes, total_intensity, max_intensity, added_unix"

// MemoryPath opens a private in-memory catalog.
const MemoryPath = ":memory:"

// Catalog wraps a SQLite connection.
type Catalog struct {
	conn *sqlx.DB
}

// Open opens or creates the catalog database at path.
func Open(path string) (*Catalog, error) {
	dsn := path
	if path != MemoryPath {
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "open catalog %s", path)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	conn.SetMaxOpenConns(1)

	c := &Catalog{conn: conn}
	if err := c.migrate(); err != nil {
		conn.Close()
		return nil, errors.Wrap(errors.ErrCodeIO, err, "migrate catalog")
	}
	return c, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.conn.Close()
}

// Add stores web under rec. When an entry with the same hash and format
// exists it is returned unchanged.
func (c *Catalog) Add(ctx context.Context, rec Record, web *photweb.Web) (Entry, error) {
	if rec.Hash == "" || rec.Format == "" {
		return Entry{}, errors.New(errors.ErrCodeInvalidInput, "catalog record needs a hash and a format")
	}
	if existing, err := c.byHash(ctx, rec.Hash, rec.Format); err == nil {
		return existing, nil
	} else if !errors.Is(err, errors.ErrCodeNotFound) {
		return Entry{}, err
	}

	var doc bytes.Buffer
	if err := webio.Write(webio.NewDocument(web, webio.Meta{Source: rec.Source, Format: rec.Format}), webio.JSON, &doc); err != nil {
		return Entry{}, err
	}

	name := rec.Name
	if name == "" {
		name = rec.Source
	}
	e := Entry{
		ID:             uuid.NewString(),
		Name:           name,
		Source:         rec.Source,
		Format:         rec.Format,
		Hash:           rec.Hash,
		Planes:         web.NPlanes(),
		TotalIntensity: web.TotalIntensity(),
		MaxIntensity:   web.MaxIntensity(),
		AddedUnix:      time.Now().Unix(),
	}

	_, err := c.conn.ExecContext(ctx, `INSERT INTO luminaires
		(`+entryColumns+`, web_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Source, e.Format, e.Hash, e.Planes, e.TotalIntensity, e.MaxIntensity, e.AddedUnix, doc.Bytes())
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeIO, err, "insert %s", name)
	}
	return e.withTime(), nil
}

// List returns entries, newest first. A limit of zero or less returns all.
func (c *Catalog) List(ctx context.Context, limit int) ([]Entry, error) {
	query := "SELECT " + entryColumns + " FROM luminaires ORDER BY added_unix DESC, name"
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var entries []Entry
	if err := c.conn.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "list catalog")
	}
	for i := range entries {
		entries[i] = entries[i].withTime()
	}
	return entries, nil
}

// Get returns the entry whose id is, or uniquely starts with, id.
func (c *Catalog) Get(ctx context.Context, id string) (Entry, error) {
	if id == "" {
		return Entry{}, errors.New(errors.ErrCodeInvalidInput, "empty catalog id")
	}
	var matches []Entry
	err := c.conn.SelectContext(ctx, &matches,
		"SELECT "+entryColumns+" FROM luminaires WHERE id LIKE ? ESCAPE '\\' LIMIT 2",
		escapeLike(id)+"%")
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeIO, err, "lookup %s", id)
	}
	switch len(matches) {
	case 0:
		return Entry{}, errors.New(errors.ErrCodeNotFound, "no catalog entry %q", id)
	case 1:
		return matches[0].withTime(), nil
	}
	return Entry{}, errors.New(errors.ErrCodeInvalidInput, "catalog id %q is ambiguous", id)
}

// Web loads the stored web of entry id.
func (c *Catalog) Web(ctx context.Context, id string) (*photweb.Web, error) {
	e, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	var blob []byte
	if err := c.conn.GetContext(ctx, &blob, "SELECT web_json FROM luminaires WHERE id = ?", e.ID); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "load web %s", e.ID)
	}
	doc, err := webio.Read(bytes.NewReader(blob), webio.JSON)
	if err != nil {
		return nil, err
	}
	return doc.Web()
}

// Remove deletes entry id and returns it.
func (c *Catalog) Remove(ctx context.Context, id string) (Entry, error) {
	e, err := c.Get(ctx, id)
	if err != nil {
		return Entry{}, err
	}
	if _, err := c.conn.ExecContext(ctx, "DELETE FROM luminaires WHERE id = ?", e.ID); err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeIO, err, "remove %s", e.ID)
	}
	return e, nil
}

// Count returns the number of entries.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	var n int
	if err := c.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM luminaires"); err != nil {
		return 0, errors.Wrap(errors.ErrCodeIO, err, "count catalog")
	}
	return n, nil
}

func (c *Catalog) byHash(ctx context.Context, hash, format string) (Entry, error) {
	var e Entry
	err := c.conn.GetContext(ctx, &e,
		"SELECT "+entryColumns+" FROM luminaires WHERE content_hash = ? AND format = ?", hash, format)
	if stderrors.Is(err, sql.ErrNoRows) {
		return Entry{}, errors.New(errors.ErrCodeNotFound, "no entry for %s", hash)
	}
	if err != nil {
		return Entry{}, errors.Wrap(errors.ErrCodeIO, err, "lookup hash %s", hash)
	}
	return e.withTime(), nil
}

func (e Entry) withTime() Entry {
	e.Added = time.Unix(e.AddedUnix, 0).UTC()
	return e
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }
