package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-turf-booking/models"
)

func (a *App) newTurfsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "turfs",
		Aliases: []string{"turf"},
		Short:   "Manage the turf catalog",
	}

	cmd.AddCommand(
		a.newTurfsListCmd(),
		a.newTurfsCreateCmd(),
		a.newTurfsUpdateCmd(),
		a.newTurfsDeleteCmd(),
	)

	return cmd
}

func (a *App) newTurfsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all turfs",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			turfs, err := a.adapter.ListTurfs(cmd.Context())
			if err != nil {
				return err
			}
			return a.printTurfs(turfs)
		},
	}
}

func (a *App) newTurfsCreateCmd() *cobra.Command {
	var (
		turf  models.NewTurf
		price float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a turf to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			turf.Price = &price
			if err := a.adapter.CreateTurf(cmd.Context(), turf); err != nil {
				return err
			}
			return a.printMessage("Turf created successfully")
		},
	}

	cmd.Flags().StringVar(&turf.Name, "name", "", "turf name (required)")
	cmd.Flags().StringVar(&turf.Location, "location", "", "turf location (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "price per slot (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func (a *App) newTurfsUpdateCmd() *cobra.Command {
	var (
		name, location string
		price          float64
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a turf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			turfID, err := parseTurfID(args[0])
			if err != nil {
				return err
			}

			var upd models.TurfUpdate
			if cmd.Flags().Changed("name") {
				upd.Name = &name
			}
			if cmd.Flags().Changed("location") {
				upd.Location = &location
			}
			if cmd.Flags().Changed("price") {
				upd.Price = &price
			}
			if upd.IsEmpty() {
				return fmt.Errorf("nothing to update: set at least one of --name, --location, --price")
			}

			turf, err := a.adapter.UpdateTurf(cmd.Context(), turfID, upd)
			if err != nil {
				return err
			}
			return a.printTurfs([]models.Turf{turf})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&location, "location", "", "new location")
	cmd.Flags().Float64Var(&price, "price", 0, "new price")

	return cmd
}

func (a *App) newTurfsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Remove a turf from the catalog",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			turfID, err := parseTurfID(args[0])
			if err != nil {
				return err
			}
			if err = a.adapter.DeleteTurf(cmd.Context(), turfID); err != nil {
				return err
			}
			return a.printMessage("Turf deleted successfully")
		},
	}
}

func parseTurfID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid turf id %q", raw)
	}
	return id, nil
}
