package pcquote

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used to format amounts that carry none.
var DefaultCurrency = "CNY"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// M creates a Money from a value. An empty currency is a weak currency that
// adopts the currency of the other operand in binary operations.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// Y creates a Money without currency, the way catalog amounts are stored.
func Y[T float64 | int | int64 | decimal.Decimal](value T) Money { return M(value, "") }

// quoteSymbols overrides the go-money graphemes where quotes use another sign.
var quoteSymbols = map[string]string{"CNY": "¥"}

// Symbol returns the symbol of a currency code, e.g. "¥" for CNY. An empty
// code is DefaultCurrency, an unknown code is returned as is.
func Symbol(code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	code = strings.ToUpper(code)
	if s, ok := quoteSymbols[code]; ok {
		return s
	}
	if c := money.GetCurrency(code); c != nil {
		return c.Grapheme
	}
	return code
}

// String returns the amount prefixed with the symbol of its currency,
// DefaultCurrency if it has none.
//
//	Y(1299).String() == "¥1299"
func (m Money) String() string { return Symbol(m.cur) + m.Plain() }

// Plain returns the amount without currency decoration, with no trailing zeros.
//
//	Y(1299).Plain() == "1299"
func (m Money) Plain() string { return m.value.String() }

func (m Money) Currency() string         { return m.cur }
func (m Money) Amount() decimal.Decimal  { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Mul(q int) Money          { return Money{value: m.value.Mul(decimal.NewFromInt(int64(q))), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.value.String()), nil
}

// UnmarshalJSON reads a JSON number or numeric string, malformed or negative
// amounts are read as 0.
func (m *Money) UnmarshalJSON(data []byte) error {
	*m = ParseAmount(strings.Trim(string(data), `"`))
	return nil
}

// ParseAmount coerces user input into a non-negative amount.
//
// Currency symbols and thousand separators are ignored. Anything that is not a
// number, and any negative number, is read as 0: numeric fields must always be
// displayable.
func ParseAmount(s string) Money {
	s = strings.TrimSpace(s)
	s = strings.NewReplacer("¥", "", "￥", "", ",", "", " ", "").Replace(s)
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return Money{}
	}
	return Money{value: d}
}

// MaxQuantity is the largest quantity a line can carry.
const MaxQuantity = math.MaxInt32

// ParseQuantity coerces user input into a non-negative quantity.
// Fractional quantities are truncated, malformed or negative input, and
// anything above MaxQuantity, is read as 0.
func ParseQuantity(s string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(MaxQuantity)) {
		return 0
	}
	return int(d.IntPart())
}

// estimatedCostRatio is the legacy margin assumed when a part has no cost.
var estimatedCostRatio = decimal.New(8, -1)

// EstimatedCost returns round(price * 0.8).
//
// It is only a fallback for catalog records and custom lines that carry no
// cost at all, an explicit cost always wins.
func EstimatedCost(price Money) Money {
	return Money{value: price.value.Mul(estimatedCostRatio).Round(0), cur: price.cur}
}
