package snapshot

import (
	"context"
	"fmt"

	pkgdb "github.com/Skotchmaster/vape_shop/pkg/db"
)

const DriverBolt = "bolt"

// Open builds the storage backend named by driver: "sqlite" and "postgres"
// go through gorm, "bolt" uses a bbolt file at dsn.
func Open(ctx context.Context, driver, dsn string) (Storage, error) {
	switch driver {
	case DriverBolt:
		return OpenBolt(dsn)
	case pkgdb.DriverSQLite, pkgdb.DriverPostgres, "":
		gdb, err := pkgdb.Open(ctx, driver, dsn)
		if err != nil {
			return nil, err
		}
		repo, err := NewGormRepo(gdb)
		if err != nil {
			_ = pkgdb.Close(gdb)
			return nil, fmt.Errorf("migrate snapshots: %w", err)
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}
}
