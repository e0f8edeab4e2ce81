package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	database "gerejaku_backend/internals/databases"
	authService "gerejaku_backend/internals/features/users/auth/service"
	userService "gerejaku_backend/internals/features/users/user/service"
	"gerejaku_backend/internals/seeds"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// error sudah dicetak cobra
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gerejactl",
		Short:         "Alat admin backend Gerejaku",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.InitLogger(configs.GetEnv("LOG_LEVEL", "info"))
		},
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newCreateUserCmd(), newDeleteUsersCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Jalankan / rollback migrasi SQL",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Jalankan semua migrasi yang belum diterapkan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configs.LoadEnv()
			return database.RunMigrations(cfg.DSN())
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Rollback N migrasi terakhir",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configs.LoadEnv()
			return database.RollbackMigrations(cfg.DSN(), steps)
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "Jumlah migrasi yang di-rollback")

	migrateCmd.AddCommand(up, down)
	return migrateCmd
}

func newSeedCmd() *cobra.Command {
	var opt seeds.Options
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed sesi ibadah, user, dan (opsional) contoh data jemaat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB) error {
				return seeds.RunAllSeeds(ctx, db, opt)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&opt.Dir, "dir", "", "Folder berisi data_users.json / data_congregations.json (default: data bawaan)")
	f.BoolVar(&opt.WithCongregations, "with-congregations", false, "Ikut seed contoh data jemaat")
	return cmd
}

func newCreateUserCmd() *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Buat user dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(password) < 8 {
				return fmt.Errorf("password minimal 8 karakter")
			}
			return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB) error {
				user, err := authService.CreateUser(ctx, db, name, email, password)
				if err != nil {
					return err
				}
				logrus.WithField("id", user.ID).Infof("✅ User dibuat: %s", user.Email)
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "Nama tampilan")
	f.StringVar(&email, "email", "", "Email login")
	f.StringVar(&password, "password", "", "Password awal")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newDeleteUsersCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete-users",
		Short: "Hapus semua user dashboard (dipakai sebelum seed ulang)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("tambahkan --yes untuk menghapus semua user")
			}
			return withDB(cmd.Context(), func(ctx context.Context, db *gorm.DB) error {
				n, err := userService.NewUserService(db).DeleteAll(ctx)
				if err != nil {
					return err
				}
				logrus.Infof("🗑️  %d user dihapus", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Konfirmasi hapus semua user")
	return cmd
}

// withDB: buka koneksi dari ENV, jalankan fn, lalu tutup pool.
func withDB(ctx context.Context, fn func(context.Context, *gorm.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := configs.LoadEnv()
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(ctx, db)
}
