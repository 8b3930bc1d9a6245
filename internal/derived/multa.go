package derived

import (
	"github.com/shopspring/decimal"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/apierror"
)

// SaldoMulta is the derived balance of a fine.
type SaldoMulta struct {
	MontoPendiente   decimal.Decimal
	PorcentajePagado decimal.Decimal // 0–100; 0 cuando el monto emitido es 0
}

var cien = decimal.NewFromInt(100)

// ResolverSaldoMulta derives the outstanding amount and percent paid.
// A zero issued amount yields 0% — a business sentinel, not an error.
// Negative amounts are corruption and return a ValidationError.
func ResolverSaldoMulta(emitido, pagado decimal.Decimal) (SaldoMulta, error) {
	if emitido.IsNegative() || pagado.IsNegative() {
		return SaldoMulta{}, apierror.Validation("monto de multa negativo")
	}

	pct := decimal.Zero
	if !emitido.IsZero() {
		pct = pagado.Div(emitido).Mul(cien)
	}

	return SaldoMulta{
		MontoPendiente:   emitido.Sub(pagado),
		PorcentajePagado: pct,
	}, nil
}
