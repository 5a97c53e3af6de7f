package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/rowset-go/cli/internal/config"
	"github.com/satishbabariya/rowset-go/cli/internal/ui"
	"github.com/satishbabariya/rowset-go/runtime/result"
	"github.com/satishbabariya/rowset-go/runtime/session"
)

func newExecCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <sql>",
		Short: "Execute a data-modifying statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cfg)
			if err != nil {
				ui.PrintError("%v", err)
				return err
			}
			defer s.Close()

			ctx, cancel := queryContext(cfg)
			defer cancel()

			affected, err := session.Exec(ctx, s, args[0])
			if err != nil {
				if sqlErr, ok := result.AsSQLError(err); ok {
					ui.PrintError("%s: %s", sqlErr.Code, sqlErr.Message)
				} else {
					ui.PrintError("%v", err)
				}
				return err
			}

			if affected == nil {
				ui.PrintSuccess("done (no affected-row count reported)")
			} else {
				ui.PrintSuccess("done, %d row(s) affected", *affected)
			}
			return nil
		},
	}
}
