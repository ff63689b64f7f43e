package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/kasirpos/kasirpos/internal/config"
	"github.com/kasirpos/kasirpos/internal/model"
)

// receiptWidth matches an 80mm thermal printer.
const receiptWidth = 32

// Receipt renders a transaction as a plain-text receipt.
func Receipt(txn model.Transaction, store config.Store) string {
	var b strings.Builder
	divider := strings.Repeat("-", receiptWidth) + "\n"

	b.WriteString(center(strings.ToUpper(store.Name)))
	b.WriteString(center(store.Address))
	b.WriteString(center("Telp: " + store.Phone))
	b.WriteString(divider)

	b.WriteString(row("No. Transaksi:", shortID(txn.ID.String())))
	b.WriteString(row("Tanggal:", txn.CreatedAt.Format("02/01/2006 15:04:05")))
	b.WriteString(row("Kasir:", txn.CashierName))
	if txn.CustomerName != nil && *txn.CustomerName != "" {
		b.WriteString(row("Pelanggan:", *txn.CustomerName))
	}
	b.WriteString(divider)

	for _, item := range txn.Items {
		b.WriteString(clip(item.ProductName) + "\n")
		qty := fmt.Sprintf("  %d x %s", item.Quantity, FormatRupiah(item.Price))
		b.WriteString(row(qty, FormatRupiah(item.Total)))
	}
	b.WriteString(divider)

	b.WriteString(row("Subtotal:", FormatRupiah(txn.Subtotal)))
	b.WriteString(row("Pajak (10%):", FormatRupiah(txn.Tax)))
	b.WriteString(row("TOTAL:", FormatRupiah(txn.Total)))
	b.WriteString(divider)

	b.WriteString(row("Metode Bayar:", paymentMethodText(txn.PaymentMethod)))
	b.WriteString("\n")
	b.WriteString(center("Terima kasih atas"))
	b.WriteString(center("kunjungan Anda!"))
	b.WriteString(center("*** STRUK PEMBAYARAN ***"))

	return b.String()
}

// FormatRupiah formats an amount the way the id-ID currency formatter does:
// dot-grouped integer digits, comma before two decimal digits.
func FormatRupiah(amount float64) string {
	cents := int64(math.Round(amount * 100))
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	intPart := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", intPart)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return fmt.Sprintf("%sRp %s,%02d", sign, grouped.String(), frac)
}

// shortID keeps the last 8 characters, uppercased, like the receipt dialog.
func shortID(id string) string {
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

func paymentMethodText(method model.PaymentMethod) string {
	switch method {
	case model.PaymentMethodCash:
		return "Tunai"
	case model.PaymentMethodCard:
		return "Kartu"
	case model.PaymentMethodDigital:
		return "Digital"
	default:
		return string(method)
	}
}

func center(s string) string {
	s = clip(s)
	pad := (receiptWidth - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s + "\n"
}

// row left-aligns the label and right-aligns the value on one line, spilling
// the value to a second right-aligned line when both do not fit.
func row(label, value string) string {
	gap := receiptWidth - len(label) - len(value)
	if gap < 1 {
		return clip(label) + "\n" + fmt.Sprintf("%*s", receiptWidth, clip(value)) + "\n"
	}
	return label + strings.Repeat(" ", gap) + value + "\n"
}

func clip(s string) string {
	if len(s) > receiptWidth {
		return s[:receiptWidth]
	}
	return s
}
