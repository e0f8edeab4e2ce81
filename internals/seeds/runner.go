package seeds

import (
	"context"
	"path/filepath"

	"gorm.io/gorm"

	congregations "gerejaku_backend/internals/seeds/congregations"
	users "gerejaku_backend/internals/seeds/users/auth"
)

type Options struct {
	// Dir berisi data_users.json / data_congregations.json; kosong = data bawaan.
	Dir               string
	WithCongregations bool
}

func RunAllSeeds(ctx context.Context, db *gorm.DB, opt Options) error {
	//* Reference data
	if err := SeedSermonSessions(ctx, db); err != nil {
		return err
	}

	//* User
	if _, err := users.SeedUsersFromJSON(ctx, db, pathIn(opt.Dir, "data_users.json")); err != nil {
		return err
	}

	//* Jemaat (opsional, data contoh)
	if opt.WithCongregations {
		if _, err := congregations.SeedCongregationsFromJSON(ctx, db, pathIn(opt.Dir, "data_congregations.json")); err != nil {
			return err
		}
	}
	return nil
}

func pathIn(dir, name string) string {
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
