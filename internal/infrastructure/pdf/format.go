package pdf

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Impresora pt-BR: decimal con coma y agrupación con punto, como
// espera el lector del documento.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// formatMoney "R$ 1.234,56".
func formatMoney(d decimal.Decimal) string {
	return ptBR.Sprintf("R$ %.2f", d.InexactFloat64())
}

// formatPercent fracción → "12,34%".
func formatPercent(d decimal.Decimal) string {
	return ptBR.Sprintf("%.2f%%", d.Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// formatKM "1.234,5 km".
func formatKM(d decimal.Decimal) string {
	return ptBR.Sprintf("%.1f km", d.InexactFloat64())
}

// formatEconomy "8,75 km/L", o "-" cuando no hay cifra válida.
func formatEconomy(d decimal.Decimal) string {
	if !d.IsPositive() {
		return "-"
	}
	return ptBR.Sprintf("%.2f km/L", d.InexactFloat64())
}

// formatLiters "45,500 L".
func formatLiters(d decimal.Decimal) string {
	return ptBR.Sprintf("%.3f L", d.InexactFloat64())
}

// formatInt entero con agrupación pt-BR.
func formatInt(n int) string {
	return ptBR.Sprintf("%d", n)
}

// orDash reemplaza el texto vacío por el marcador "-".
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
