package league

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value. The league operates in a single
// currency (US dollars), so Money carries only the amount.
type Money struct {
	value decimal.Decimal
}

// USD creates a money value from a dollar amount.
func USD(v float64) Money { return Money{value: decimal.NewFromFloat(v)} }

// usdCurrency returns the full currency, for formatting.
func usdCurrency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, money.USD).Currency()
}

// String formats the value as US dollars, e.g. "$1,234.56".
func (m Money) String() string {
	cur := usdCurrency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation with an explicit sign.
// Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) }
func (m Money) IsZero() bool { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }
func (m Money) MulInt(n int) Money { return Money{value: m.value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) DivInt(n int) Money { return Money{value: m.value.Div(decimal.NewFromInt(int64(n)))} }

// AsFloat returns the amount as a float64, for display and for cells.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// ParseMoney coerces an arbitrary cell value into a money amount. It
// reports whether the value parsed exactly: a false report means the input
// was missing or malformed and the amount fell back to zero, so callers
// (especially tests) can tell a true zero from a silently dropped cell.
//
// Numbers pass through. Strings lose their currency symbol, thousands
// separators, and surrounding whitespace; accounting notation "(123.45)"
// is negative.
func ParseMoney(v any) (Money, bool) {
	switch x := v.(type) {
	case nil:
		return Money{}, false
	case Money:
		return x, true
	case decimal.Decimal:
		return Money{value: x}, true
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Money{}, false
		}
		return USD(x), true
	case float32:
		return ParseMoney(float64(x))
	case int:
		return Money{value: decimal.NewFromInt(int64(x))}, true
	case int64:
		return Money{value: decimal.NewFromInt(x)}, true
	case string:
		s := strings.ReplaceAll(x, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		if s == "" {
			return Money{}, false
		}
		neg := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
		if neg {
			s = s[1 : len(s)-1]
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return Money{}, false
		}
		if neg {
			d = d.Neg()
		}
		return Money{value: d}, true
	default:
		return Money{}, false
	}
}

// MoneyOf is ParseMoney without the exactness report: malformed currency
// never raises, it silently contributes zero to sums.
func MoneyOf(v any) Money {
	m, _ := ParseMoney(v)
	return m
}
