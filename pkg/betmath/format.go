package betmath

import "fmt"

// FormatAmerican formata odds americanas com sinal explícito: "+150", "-110".
func FormatAmerican(american int) string {
	if american > 0 {
		return fmt.Sprintf("+%d", american)
	}
	return fmt.Sprintf("%d", american)
}

// FormatUSD formata um valor em cents como moeda com duas casas: "$250.00".
func FormatUSD(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
