package model

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// TokenAmount is an integer count of token base units (raw on-chain units,
// not decimal-adjusted). It wraps big.Int so pool totals never overflow and
// so raw amounts cannot be mixed up with display values.
//
// The zero value is a valid zero amount. Arithmetic methods return new
// values and never mutate the receiver.
type TokenAmount struct {
	i *big.Int
}

// Amount builds a TokenAmount from a uint64 base-unit count.
func Amount(v uint64) TokenAmount {
	return TokenAmount{i: new(big.Int).SetUint64(v)}
}

// AmountFromString parses a base-10 base-unit count.
func AmountFromString(s string) (TokenAmount, error) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return TokenAmount{}, fmt.Errorf("invalid token amount %q", s)
	}
	if i.Sign() < 0 {
		return TokenAmount{}, fmt.Errorf("token amount %q is negative", s)
	}
	return TokenAmount{i: i}, nil
}

// AmountFromBig wraps an existing big.Int, copying it. Negative inputs are
// clamped to zero.
func AmountFromBig(v *big.Int) TokenAmount {
	if v == nil || v.Sign() < 0 {
		return Amount(0)
	}
	return TokenAmount{i: new(big.Int).Set(v)}
}

func (a TokenAmount) value() *big.Int {
	if a.i == nil {
		return new(big.Int)
	}
	return a.i
}

// BigInt returns a copy of the underlying integer.
func (a TokenAmount) BigInt() *big.Int {
	return new(big.Int).Set(a.value())
}

// IsZero reports whether the amount is zero.
func (a TokenAmount) IsZero() bool {
	return a.value().Sign() == 0
}

// Cmp compares a to b: -1 if a<b, 0 if equal, 1 if a>b.
func (a TokenAmount) Cmp(b TokenAmount) int {
	return a.value().Cmp(b.value())
}

// LessThan reports a < b.
func (a TokenAmount) LessThan(b TokenAmount) bool {
	return a.Cmp(b) < 0
}

// Add returns a+b.
func (a TokenAmount) Add(b TokenAmount) TokenAmount {
	return TokenAmount{i: new(big.Int).Add(a.value(), b.value())}
}

// Sub returns a-b. Subtracting below zero clamps to zero; callers enforce
// sufficiency checks before subtracting.
func (a TokenAmount) Sub(b TokenAmount) TokenAmount {
	r := new(big.Int).Sub(a.value(), b.value())
	if r.Sign() < 0 {
		r.SetUint64(0)
	}
	return TokenAmount{i: r}
}

// MulDivFloor returns floor(a*num/den). Panics if den is zero, which is a
// programming error, not a business condition.
func (a TokenAmount) MulDivFloor(num, den uint64) TokenAmount {
	r := new(big.Int).Mul(a.value(), new(big.Int).SetUint64(num))
	r.Quo(r, new(big.Int).SetUint64(den))
	return TokenAmount{i: r}
}

// DivFloor returns floor(a/den).
func (a TokenAmount) DivFloor(den uint64) TokenAmount {
	return TokenAmount{i: new(big.Int).Quo(a.value(), new(big.Int).SetUint64(den))}
}

// String renders the base-unit count in base 10.
func (a TokenAmount) String() string {
	return a.value().String()
}

// MarshalJSON encodes the amount as a JSON string to survive JavaScript
// number precision limits.
func (a TokenAmount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare base-10 integer.
func (a *TokenAmount) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := AmountFromString(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer; amounts persist as numeric strings.
func (a TokenAmount) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan implements sql.Scanner for numeric/text columns.
func (a *TokenAmount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Amount(0)
		return nil
	case int64:
		if v < 0 {
			return fmt.Errorf("negative token amount %d", v)
		}
		*a = Amount(uint64(v))
		return nil
	case string:
		parsed, err := AmountFromString(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		parsed, err := AmountFromString(string(v))
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TokenAmount", src)
	}
}

// GormDataType tells gorm to store amounts in an arbitrary-precision column.
func (TokenAmount) GormDataType() string {
	return "numeric(78,0)"
}
