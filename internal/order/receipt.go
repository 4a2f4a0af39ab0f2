package order

import (
	"bufio"
	"io"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// VND formats an amount the way the shop displays prices: dot-grouped
// thousands followed by the dong sign.
func VND(v int64) string {
	return message.NewPrinter(language.Vietnamese).Sprintf("%d đ", v)
}

// WriteReceipt renders o as the order-history card, with times shown in loc.
func WriteReceipt(w io.Writer, o Order, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}
	p := message.NewPrinter(language.Vietnamese)
	bw := bufio.NewWriter(w)

	p.Fprintf(bw, "Order #%s  %s\n", o.ShortCode(), o.PlacedAt.In(loc).Format("02/01/2006 15:04"))
	p.Fprintf(bw, "Customer: %s\n", o.Customer.Account)
	p.Fprintf(bw, "Address:  %s\n", o.Customer.Address)
	p.Fprintf(bw, "Phone:    %s\n", o.Customer.Phone)
	p.Fprintf(bw, "Items:\n")
	for _, it := range o.Items {
		p.Fprintf(bw, "  %s x%d  %d đ\n", it.Name, it.Quantity, it.Subtotal())
	}
	p.Fprintf(bw, "TOTAL: %d đ\n", o.Total)
	return bw.Flush()
}
