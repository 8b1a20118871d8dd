package utils

import "fmt"

// FormatRupee renders a whole-rupee amount with the currency prefix,
// e.g. 500 -> "₹500". Amounts in this system are always whole rupees;
// the receipt layout depends on this exact form.
func FormatRupee(amount int) string {
	return fmt.Sprintf("₹%d", amount)
}
