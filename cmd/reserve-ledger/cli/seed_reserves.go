package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/terracore-io/reserve-ledger/internal/config"
	"github.com/terracore-io/reserve-ledger/internal/db"
	dbmodel "github.com/terracore-io/reserve-ledger/internal/db/model"
)

// SeedReservesCmd writes an attested reserve snapshot directly into the
// database, bypassing the API. Intended for bootstrapping a fresh
// deployment before the server is exposed.
func SeedReservesCmd() *cobra.Command {
	var inferred, indicated, measured, probable, proven uint64

	cmd := &cobra.Command{
		Use:   "seed-reserves",
		Short: "Seeds the reserve snapshot with attested category quantities",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := config.New(GetConfigPath())
			if err != nil {
				return err
			}

			if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
				return err
			}

			dbClient, err := db.New(ctx, cfg.Db)
			if err != nil {
				return err
			}

			snapshot := &dbmodel.ReserveSnapshot{
				Inferred:  inferred,
				Indicated: indicated,
				Measured:  measured,
				Probable:  probable,
				Proven:    proven,
			}
			if err := dbClient.UpdateReserveSnapshot(ctx, snapshot); err != nil {
				return err
			}

			log.Info().
				Uint64("inferred", inferred).
				Uint64("indicated", indicated).
				Uint64("measured", measured).
				Uint64("probable", probable).
				Uint64("proven", proven).
				Msg("reserve snapshot seeded")
			return nil
		},
	}

	cmd.Flags().Uint64Var(&inferred, "inferred", 0, "inferred category quantity in grams")
	cmd.Flags().Uint64Var(&indicated, "indicated", 0, "indicated category quantity in grams")
	cmd.Flags().Uint64Var(&measured, "measured", 0, "measured category quantity in grams")
	cmd.Flags().Uint64Var(&probable, "probable", 0, "probable category quantity in grams")
	cmd.Flags().Uint64Var(&proven, "proven", 0, "proven category quantity in grams")

	return cmd
}
