package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"staycation/internal/domain"
	"staycation/internal/pricing"
)

type quoteOptions struct {
	checkIn  string
	checkOut string
	taxRate  float64
}

func NewQuoteCommand(rootOpts *RootOptions) *cobra.Command {
	o := &quoteOptions{}
	cmd := &cobra.Command{
		Use:   "quote <hotel-id>",
		Short: "Preview the price of a stay",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid hotel id %q", args[0])
			}
			return runQuote(rootOpts, o, id, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&o.checkIn, "check-in", "", "check-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&o.checkOut, "check-out", "", "check-out date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&o.taxRate, "tax-rate", pricing.DefaultTaxRate, "tax rate applied to the base price")
	_ = cmd.MarkFlagRequired("check-in")
	_ = cmd.MarkFlagRequired("check-out")
	return cmd
}

func runQuote(rootOpts *RootOptions, o *quoteOptions, id int64, w io.Writer) error {
	checkIn, err := pricing.ParseDate(o.checkIn)
	if err != nil {
		return err
	}
	checkOut, err := pricing.ParseDate(o.checkOut)
	if err != nil {
		return err
	}
	hotels, err := rootOpts.loadCatalog()
	if err != nil {
		return err
	}
	var hotel *domain.Hotel
	for i := range hotels {
		if hotels[i].ID == id {
			hotel = &hotels[i]
			break
		}
	}
	if hotel == nil {
		return fmt.Errorf("hotel %d: %w", id, domain.ErrHotelNotFound)
	}

	b := pricing.New(o.taxRate).Quote(hotel.Price, checkIn, checkOut)
	if rootOpts.Format == "json" {
		return writeJSON(w, b)
	}
	fmt.Fprintf(w, "%s\n", hotel.Name)
	fmt.Fprintf(w, "  ₹%.0f x %d nights  ₹%.2f\n", hotel.Price, b.Nights, b.BasePrice)
	fmt.Fprintf(w, "  taxes             ₹%.2f\n", b.Taxes)
	fmt.Fprintf(w, "  total             ₹%.2f\n", b.Total)
	return nil
}
