package utils

import "strconv"

// FormatOneDecimal formata com exatamente uma casa decimal (4.567 -> "4.6")
func FormatOneDecimal(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// FormatNumber formata sem casas decimais forçadas, repassando o valor como
// recebido (62 -> "62", 61.5 -> "61.5")
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
