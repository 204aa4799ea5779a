package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newVersionCmd() *cobra.Command {
	var clientOnly bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprint(a.out, a.buildInfo); err != nil {
				return err
			}
			if clientOnly {
				return nil
			}

			serverVersion, err := a.adapter.ServerVersion(cmd.Context())
			if err != nil {
				return fmt.Errorf("server version: %w", err)
			}
			_, err = fmt.Fprintf(a.out, "Server version: %s\n", serverVersion)
			return err
		},
	}

	cmd.Flags().BoolVar(&clientOnly, "client", false, "skip the server request")

	return cmd
}
