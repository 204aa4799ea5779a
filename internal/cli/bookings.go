package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-turf-booking/models"
)

func (a *App) newBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookings",
		Aliases: []string{"booking"},
		Short:   "Manage your bookings (requires login)",
	}

	cmd.AddCommand(
		a.newBookingsListCmd(),
		a.newBookingsCreateCmd(),
		a.newBookingsUpdateCmd(),
		a.newBookingsDeleteCmd(),
	)

	return cmd
}

func (a *App) newBookingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List your bookings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := a.adapter.ListBookings(cmd.Context())
			if err != nil {
				return err
			}
			return a.printBookings(bookings)
		},
	}
}

func (a *App) newBookingsCreateCmd() *cobra.Command {
	var (
		booking models.NewBooking
		price   float64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Book a turf slot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			booking.Price = &price
			if err := a.adapter.CreateBooking(cmd.Context(), booking); err != nil {
				return err
			}
			return a.printMessage("Booking created successfully")
		},
	}

	cmd.Flags().StringVar(&booking.TurfName, "turf-name", "", "turf name (required)")
	cmd.Flags().StringVar(&booking.Location, "location", "", "turf location (required)")
	cmd.Flags().Float64Var(&price, "price", 0, "agreed price (required)")
	cmd.Flags().StringVar(&booking.Date, "date", "", "slot date, e.g. 2026-10-20 (required)")
	cmd.Flags().StringVar(&booking.Time, "time", "", "slot time, e.g. 18:00 (required)")
	for _, name := range []string{"turf-name", "location", "price", "date", "time"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (a *App) newBookingsUpdateCmd() *cobra.Command {
	var (
		turfName, location, date, slot string
		price                          float64
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of one of your bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := parseBookingID(args[0])
			if err != nil {
				return err
			}

			var upd models.BookingUpdate
			flags := cmd.Flags()
			if flags.Changed("turf-name") {
				upd.TurfName = &turfName
			}
			if flags.Changed("location") {
				upd.Location = &location
			}
			if flags.Changed("price") {
				upd.Price = &price
			}
			if flags.Changed("date") {
				upd.Date = &date
			}
			if flags.Changed("time") {
				upd.Time = &slot
			}
			if upd.IsEmpty() {
				return fmt.Errorf("nothing to update: set at least one of --turf-name, --location, --price, --date, --time")
			}

			booking, err := a.adapter.UpdateBooking(cmd.Context(), bookingID, upd)
			if err != nil {
				return err
			}
			return a.printBookings([]models.Booking{booking})
		},
	}

	cmd.Flags().StringVar(&turfName, "turf-name", "", "new turf name")
	cmd.Flags().StringVar(&location, "location", "", "new location")
	cmd.Flags().Float64Var(&price, "price", 0, "new price")
	cmd.Flags().StringVar(&date, "date", "", "new date")
	cmd.Flags().StringVar(&slot, "time", "", "new time")

	return cmd
}

func (a *App) newBookingsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm", "cancel"},
		Short:   "Cancel one of your bookings",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookingID, err := parseBookingID(args[0])
			if err != nil {
				return err
			}
			if err = a.adapter.DeleteBooking(cmd.Context(), bookingID); err != nil {
				return err
			}
			return a.printMessage("Booking deleted successfully")
		},
	}
}

// parseBookingID rejects ids that can never match, saving a round trip.
func parseBookingID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid booking id %q", raw)
	}
	return id.String(), nil
}
