package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/rowset-go/cli/internal/config"
	"github.com/satishbabariya/rowset-go/cli/internal/ui"
)

func newPingCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Verify the database connection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cfg)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}
			defer s.Close()

			ctx, cancel := queryContext(cfg)
			defer cancel()

			if err := s.Connect(ctx); err != nil {
				ui.PrintError("connection failed: %v", err)
				return err
			}
			ui.PrintSuccess("connected (%s)", cfg.Provider)
			return nil
		},
	}
}
