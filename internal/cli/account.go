package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/foodcart/internal/shop"
	"github.com/MikeMC777/foodcart/internal/user"
)

type RegisterOptions struct {
	*RootOptions
	Password string
	Confirm  string
}

func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register <account> <email>",
		Short: "Create the device account",
		Long: `Create the account kept on this device. Registering again replaces it.

Example:
  shopctl register lan lan@gmail.com --password secret --confirm secret`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, opts.RootOptions, func(ctx context.Context, s *shop.Shop) error {
				u, err := s.Accounts.Register(ctx, args[0], args[1], opts.Password, opts.Confirm)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %s <%s>\n", u.Account, u.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password")
	cmd.Flags().StringVar(&opts.Confirm, "confirm", "", "password again")

	return cmd
}

type LoginOptions struct {
	*RootOptions
	Password string
}

func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "login <account-or-email>",
		Short:         "Check credentials against the device account",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, opts.RootOptions, func(ctx context.Context, s *shop.Shop) error {
				u, err := s.Accounts.Login(ctx, args[0], opts.Password)
				if err != nil {
					return err
				}
				printAccount(cmd, s.Accounts.ToResponse(u))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "password")

	return cmd
}

type ShipOptions struct {
	*RootOptions
	Phone   string
	Address string
}

func NewShipCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShipOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "ship",
		Short:         "Set the delivery phone and address",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, opts.RootOptions, func(ctx context.Context, s *shop.Shop) error {
				u, err := s.Accounts.UpdateShippingInfo(ctx, opts.Phone, opts.Address)
				if err != nil {
					return err
				}
				printAccount(cmd, s.Accounts.ToResponse(u))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&opts.Phone, "phone", "", "10 digits starting with 0")
	cmd.Flags().StringVar(&opts.Address, "address", "", "delivery address")

	return cmd
}

func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "logout",
		Short:         "Log out and empty the cart",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, rootOpts, func(ctx context.Context, s *shop.Shop) error {
				if err := s.Accounts.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

func printAccount(cmd *cobra.Command, u user.UserResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Account: %s\n", u.Account)
	fmt.Fprintf(out, "Email:   %s\n", u.Email)
	fmt.Fprintf(out, "Rank:    %s\n", u.Rank)
	if u.Phone != "" {
		fmt.Fprintf(out, "Phone:   %s\n", u.Phone)
	}
	if u.Address != "" {
		fmt.Fprintf(out, "Address: %s\n", u.Address)
	}
}
