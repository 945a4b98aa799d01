package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/rationshop-api/internal/application/auth"
	"github.com/jhoicas/rationshop-api/internal/bootstrap"
)

var (
	seedSamples         bool
	seedManagerPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load reference data and the first administrator",
	Long: `Seed the districts (Chennai, Coimbatore, Madurai), the product catalog
(Rice, Wheat, Sugar, Oil, Salt) and the administrator from SEED_ADMIN_*.
With --samples it also creates demo shops with stock; --manager-password adds
the demo manager "manager1" for the first of them.

Existing rows are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		repos, closeStorage, err := bootstrap.OpenStorage(ctx, cfg.DB, log)
		if err != nil {
			return err
		}
		defer closeStorage()

		opts := bootstrap.SeedOptions(cfg.Seed)
		if cmd.Flags().Changed("samples") {
			opts.SampleShops = seedSamples
		}
		if seedManagerPassword != "" {
			opts.ManagerPassword = seedManagerPassword
		}

		svc := bootstrap.NewServices(repos, auth.JWTConfig{}, nil, nil)
		rep, err := svc.Seeder(repos, log).Run(ctx, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(),
			"districts: %d, products: %d, admin created: %t, shops: %d, managers: %d, stock entries: %d\n",
			rep.Districts, rep.Products, rep.Admin, rep.Shops, rep.Managers, rep.Stock)
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedSamples, "samples", true, "create demo shops with stock")
	seedCmd.Flags().StringVar(&seedManagerPassword, "manager-password", "", "password of the demo manager (skipped when empty)")
}
