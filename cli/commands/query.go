package commands

import (
	"github.com/spf13/cobra"

	"github.com/satishbabariya/rowset-go/cli/internal/config"
	"github.com/satishbabariya/rowset-go/cli/internal/ui"
	"github.com/satishbabariya/rowset-go/runtime/driver"
	"github.com/satishbabariya/rowset-go/runtime/result"
)

func newQueryCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql>",
		Short: "Execute a row-producing statement and print the result",
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

			raw := s.Run(ctx, args[0])
			if err := result.Check(raw); err != nil {
				if sqlErr, ok := result.AsSQLError(err); ok {
					ui.PrintError("%s: %s", sqlErr.Code, sqlErr.Message)
				} else {
					ui.PrintError("%v", err)
				}
				return err
			}

			var columns []string
			if static, ok := raw.(*driver.StaticResult); ok {
				columns = static.Columns()
			}
			ui.PrintResult(raw, columns)

			if tag, ok := raw.CmdStatus(); ok {
				ui.PrintInfo("%s", string(tag))
			}
			return nil
		},
	}
}
