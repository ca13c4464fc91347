package cmd

import (
	"strings"

	"github.com/shopspring/decimal"
)

// decimalValue is a flag holding an exact decimal
type decimalValue struct {
	d *decimal.Decimal
}

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string {
	return "decimal"
}

// decimalSliceValue is a repeatable decimal flag; each value may also be a
// comma separated list
type decimalSliceValue struct {
	ds *[]decimal.Decimal
}

func (v decimalSliceValue) String() string {
	if v.ds == nil {
		return "[]"
	}
	parts := make([]string, 0, len(*v.ds))
	for _, d := range *v.ds {
		parts = append(parts, d.String())
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func (v decimalSliceValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		d, err := decimal.NewFromString(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		*v.ds = append(*v.ds, d)
	}
	return nil
}

func (v decimalSliceValue) Type() string {
	return "decimals"
}
