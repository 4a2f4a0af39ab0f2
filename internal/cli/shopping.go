package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/order"
	"github.com/MikeMC777/foodcart/internal/product"
	"github.com/MikeMC777/foodcart/internal/shop"
	"github.com/MikeMC777/foodcart/internal/validate"
)

type CatalogOptions struct {
	*RootOptions
	Category string
	Query    string
}

func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CatalogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List products",
		Long: `List catalog products, optionally filtered by tab and name.

Example:
  shopctl catalog --category fruit --query xo`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := product.Category(strings.ToLower(opts.Category))
			if cat != "" && cat != product.Food && cat != product.Fruit {
				return validate.New("category", "must be food or fruit")
			}
			for _, p := range product.Default().List(product.Query{Category: cat, Q: opts.Query}) {
				fmt.Fprintf(cmd.OutOrStdout(), "%3s  %-6s %-20s %s\n", p.ID, p.Category, p.Name, order.VND(p.Price))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "food or fruit")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "case-insensitive name search")

	return cmd
}

func NewCartCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or change the cart",
	}

	cmd.AddCommand(&cobra.Command{
		Use:           "add <product-id>",
		Short:         "Add one unit of a product",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, rootOpts, func(ctx context.Context, s *shop.Shop) error {
				items, err := s.AddProduct(ctx, args[0])
				if err != nil {
					return err
				}
				writeCart(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "rm <product-id>",
		Short:         "Remove a product line",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, rootOpts, func(ctx context.Context, s *shop.Shop) error {
				items, err := s.Carts.Remove(ctx, args[0])
				if err != nil {
					return err
				}
				writeCart(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:           "show",
		Short:         "Print the cart and its total",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, rootOpts, func(ctx context.Context, s *shop.Shop) error {
				items, err := s.Carts.Items(ctx)
				if err != nil {
					return err
				}
				writeCart(cmd.OutOrStdout(), items)
				return nil
			})
		},
	})

	return cmd
}

func NewCheckoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "checkout",
		Short:         "Place the cart as an order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, rootOpts, func(ctx context.Context, s *shop.Shop) error {
				o, err := s.PlaceOrder(ctx)
				if err != nil {
					return err
				}
				return order.WriteReceipt(cmd.OutOrStdout(), *o, nil)
			})
		},
	}
}

func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "orders",
		Short:         "Order history, newest first",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withShop(cmd, rootOpts, func(ctx context.Context, s *shop.Shop) error {
				orders, err := s.Orders.List(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(orders) == 0 {
					fmt.Fprintln(out, "No orders yet")
					return nil
				}
				for i, o := range orders {
					if i > 0 {
						fmt.Fprintln(out)
					}
					if err := order.WriteReceipt(out, o, nil); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func writeCart(w io.Writer, items []cart.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Cart is empty")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "%3s  %-20s x%d  %s\n", it.ID, it.Name, it.Quantity, order.VND(it.Subtotal()))
	}
	fmt.Fprintf(w, "TOTAL: %s\n", order.VND(cart.Total(items)))
}
