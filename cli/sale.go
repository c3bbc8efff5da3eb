package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"copsis/domain"
	"copsis/pos"
)

var amounts = message.NewPrinter(language.English)

// naira renders an amount with thousands separators, e.g. ₦348,000.
func naira(v int64) string {
	return amounts.Sprintf("₦%d", v)
}

func addSaleCommands(root *cobra.Command) {
	// catalog
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List catalog products with their batches",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := session.Now()
			for _, p := range session.Catalog().Products() {
				printProduct(p, now)
			}
			return nil
		},
	}
	root.AddCommand(catalogCmd)

	// search
	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search products by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := session.Search(strings.Join(args, " "))
			if len(results) == 0 {
				fmt.Println("no matching products")
				return nil
			}
			now := session.Now()
			for _, p := range results {
				printProduct(p, now)
			}
			return nil
		},
	}
	root.AddCommand(searchCmd)

	// add
	addCmd := &cobra.Command{
		Use:   "add <product-id> <batch-id>",
		Short: "Add one unit of a batch to the cart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := session.AddBatch(args[0], args[1])
			if err != nil {
				var blocked *domain.BlockedBatchError
				if errors.As(err, &blocked) && blocked.Expired() {
					slog.Warn("expired batch blocked",
						"product_id", blocked.ProductID,
						"batch_id", blocked.BatchID,
						"expiry_date", blocked.ExpiryDate.String(),
					)
				}
				return err
			}
			slog.Debug("line added", "cart_id", line.CartID, "batch_id", line.BatchID, "quantity", line.Quantity)
			fmt.Printf("added %s (%s) x%d  [%s]\n", line.ProductName, line.BatchNumber, line.Quantity, line.CartID)
			return nil
		},
	}
	root.AddCommand(addCmd)

	// qty
	qtyCmd := &cobra.Command{
		Use:                "qty <cart-id> <quantity>",
		Short:              "Set the quantity of a cart line (clamped to the batch stock)",
		Args:               cobra.ExactArgs(2),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity: %w", err)
			}
			line, ok := session.SetQuantity(args[0], n)
			if !ok {
				fmt.Fprintf(os.Stderr, "no cart line %s\n", args[0])
				return nil
			}
			fmt.Printf("%s x%d\n", line.ProductName, line.Quantity)
			return nil
		},
	}
	root.AddCommand(qtyCmd)

	// remove
	removeCmd := &cobra.Command{
		Use:   "remove <cart-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session.RemoveLine(args[0])
			fmt.Println("removed")
			return nil
		},
	}
	root.AddCommand(removeCmd)

	// discount
	discountCmd := &cobra.Command{
		Use:                "discount <amount>",
		Short:              "Set the manual discount for the sale",
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("discount: %w", err)
			}
			fmt.Printf("discount %s\n", naira(session.SetDiscount(v)))
			return nil
		},
	}
	root.AddCommand(discountCmd)

	// pay
	payCmd := &cobra.Command{
		Use:   "pay <Cash|POS|Transfer>",
		Short: "Choose the payment method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := domain.ParsePaymentMethod(args[0])
			if err != nil {
				return err
			}
			if err := session.SetPaymentMethod(m); err != nil {
				return err
			}
			fmt.Printf("payment method %s\n", m)
			return nil
		},
	}
	root.AddCommand(payCmd)

	// cart
	var cartOutput string
	cartCmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := session.Lines()
			totals := session.Totals()
			if cartOutput == "json" {
				printJSON(struct {
					Lines  []domain.CartLine    `json:"lines"`
					Totals domain.Totals        `json:"totals"`
					Method domain.PaymentMethod `json:"paymentMethod"`
				}{lines, totals, session.PaymentMethod()})
				return nil
			}
			if len(lines) == 0 {
				fmt.Println("cart is empty")
			}
			for _, l := range lines {
				fmt.Printf("%s | %s | %s | exp %s | %s x %d = %s\n",
					l.CartID, l.ProductName, l.BatchNumber, l.ExpiryDate,
					naira(l.Price), l.Quantity, naira(l.LineTotal()))
			}
			fmt.Printf("subtotal %s\ndiscount %s\ntotal    %s\npayment  %s\n",
				naira(totals.Subtotal), naira(totals.Discount), naira(totals.Total), session.PaymentMethod())
			return nil
		},
	}
	cartCmd.Flags().StringVar(&cartOutput, "output", "", "output format")
	root.AddCommand(cartCmd)

	// checkout
	checkoutCmd := &cobra.Command{
		Use:   "checkout",
		Short: "Complete the sale",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			rec, err := session.Checkout()
			if err != nil {
				return err
			}
			slog.Info("sale completed",
				"sale_id", rec.ID,
				"total", rec.Total,
				"method", string(rec.Method),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			fmt.Printf("%s | %s | %d items | %s | %s\n",
				rec.ID, rec.Time.Format(time.DateTime), rec.ItemsCount, naira(rec.Total), rec.Method)
			return nil
		},
	}
	root.AddCommand(checkoutCmd)

	// history
	var historyOutput string
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent sales, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			recs := session.History()
			if historyOutput == "json" {
				printJSON(recs)
				return nil
			}
			if len(recs) == 0 {
				fmt.Println("no sales yet")
			}
			for _, r := range recs {
				fmt.Printf("%s | %s | %d items | %s | %s\n",
					r.ID, r.Time.Format(time.Kitchen), r.ItemsCount, naira(r.Total), r.Method)
			}
			return nil
		},
	}
	historyCmd.Flags().StringVar(&historyOutput, "output", "", "output format")
	root.AddCommand(historyCmd)
}

func printProduct(p domain.Product, now time.Time) {
	fmt.Printf("%s | %s | %s\n", p.ID, p.Name, naira(p.Price))
	for _, o := range pos.Options(p, now) {
		var tags []string
		if o.Recommended {
			tags = append(tags, "RECOMMENDED")
		}
		if o.Expired {
			tags = append(tags, "EXPIRED")
		}
		if o.Exhausted {
			tags = append(tags, "OUT OF STOCK")
		}
		fmt.Printf("  %s | %s | exp %s | stock %d", o.ID, o.BatchNumber, o.ExpiryDate, o.Stock)
		if len(tags) > 0 {
			fmt.Printf(" [%s]", strings.Join(tags, ", "))
		}
		fmt.Println()
	}
}
