package catalog

import (
	"embed"
	stderrors "errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/matzehuels/lidkit/pkg/errors"
)

//go:embed migrations/*.sql
var migrations embed.FS

// migrate brings the schema up to the latest embedded version.
func (c *Catalog) migrate() error {
	m, err := c.newMigrate()
	if err != nil {
		return err
	}
	// m is not closed: closing it would close the catalog's connection.
	if err := m.Up(); err != nil && !stderrors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(errors.ErrCodeIO, err, "migration up failed")
	}
	return nil
}

// SchemaVersion returns the applied migration version and whether the last
// migration was left half-applied.
func (c *Catalog) SchemaVersion() (version uint, dirty bool, err error) {
	m, err := c.newMigrate()
	if err != nil {
		return 0, false, err
	}
	version, dirty, err = m.Version()
	if stderrors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (c *Catalog) newMigrate() (*migrate.Migrate, error) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open embedded migrations")
	}
	driver, err := sqlite.WithInstance(c.conn.DB, &sqlite.Config{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create sqlite migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create migrate instance")
	}
	return m, nil
}
