// Package money formata montantes em Kwanza (AOA) para documentos, emails e
// mensagens. A formatação numérica segue a convenção portuguesa (separador de
// milhares e vírgula decimal).
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pt-PT: espaço (NBSP) como separador de milhares, vírgula decimal.
var printer = message.NewPrinter(language.EuropeanPortuguese)

// FormatKz devolve o montante com duas casas decimais e o símbolo Kz.
// Ex.: 4500 -> "4 500,00 Kz".
func FormatKz(amount decimal.Decimal) string {
	return Format(amount) + " Kz"
}

// Format devolve só o número formatado, sem símbolo. Trabalha sobre a
// representação exacta do decimal; nunca passa por float64.
func Format(amount decimal.Decimal) string {
	fixed := amount.Round(2).StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac := fixed[:len(fixed)-3], fixed[len(fixed)-2:]
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = printer.Sprintf("%d", n)
	}
	return sign + intPart + "," + frac
}
