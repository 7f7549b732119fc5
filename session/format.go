package session

import (
	"fmt"
	"io"
	"text/tabwriter"

	cart "github.com/LokeshReddy2201/FUTURE-FS-03/cart/logic"
	catalog "github.com/LokeshReddy2201/FUTURE-FS-03/catalog/logic"
)

// Rupees formats a whole-rupee amount.
func Rupees(amount int64) string {
	return fmt.Sprintf("₹%d", amount)
}

func writeProducts(w io.Writer, products []catalog.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products match your filters.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tWAS\tOFF\tRATING\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t%.1f (%d)\t%s\n",
			p.ID, p.Name, Rupees(p.Price), Rupees(p.OriginalPrice), p.Discount, p.Rating, p.Reviews, p.Category)
	}
	return tw.Flush()
}

func writeCategories(w io.Writer, categories []catalog.Category) error {
	for _, c := range categories {
		if _, err := fmt.Fprintf(w, "%s %s\n", c.Emoji, c.Name); err != nil {
			return err
		}
	}
	return nil
}

func writeCart(w io.Writer, store *cart.Store) error {
	if store.IsEmpty() {
		_, err := fmt.Fprintln(w, "Your cart is empty")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, l := range store.Snapshot() {
		fmt.Fprintf(tw, "%s\t%s\t%s\tx%d\t%s\n",
			l.Product.ID, l.Product.Name, Rupees(l.Product.Price), l.Quantity, Rupees(l.Subtotal()))
	}
	fmt.Fprintf(tw, "\t%d items\t\t\tTotal: %s\n", store.TotalCount(), Rupees(store.TotalPrice()))
	if saved := store.TotalSavings(); saved > 0 {
		fmt.Fprintf(tw, "\t\t\t\tYou save %s\n", Rupees(saved))
	}
	return tw.Flush()
}
