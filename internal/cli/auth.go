package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-turf-booking/models"
)

func (a *App) newRegisterCmd() *cobra.Command {
	var credentials models.Credentials

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.adapter.Register(cmd.Context(), credentials); err != nil {
				return err
			}
			return a.printMessage("User registered successfully")
		},
	}

	cmd.Flags().StringVar(&credentials.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) newLoginCmd() *cobra.Command {
	var (
		credentials models.Credentials
		copyToken   bool
		printToken  bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.adapter.Login(cmd.Context(), credentials)
			if err != nil {
				return err
			}

			if err = saveToken(a.cfg.Session.TokenFile, token); err != nil {
				return fmt.Errorf("save token: %w", err)
			}
			a.logger.Debug().Str("func", "login").Str("token_file", a.cfg.Session.TokenFile).Msg("token saved")

			if copyToken {
				if err = copyToClipboard(token); err != nil {
					a.logger.Warn().Err(err).Str("func", "login").Msg("copy token to clipboard")
				}
			}

			if a.output == outputJSON {
				return a.printJSON(models.TokenResponse{Token: token})
			}
			if printToken {
				_, err = fmt.Fprintln(a.out, token)
				return err
			}
			return a.printMessage("Logged in")
		},
	}

	cmd.Flags().StringVar(&credentials.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&credentials.Password, "password", "", "account password (required)")
	cmd.Flags().BoolVar(&copyToken, "copy", false, "copy the token to the clipboard")
	cmd.Flags().BoolVar(&printToken, "print", false, "print the token instead of a confirmation")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func (a *App) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored bearer token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := removeToken(a.cfg.Session.TokenFile); err != nil {
				return fmt.Errorf("remove token: %w", err)
			}
			a.adapter.SetToken("")
			return a.printMessage("Logged out")
		},
	}
}
