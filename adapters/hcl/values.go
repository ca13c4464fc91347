package hcl

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

// Quote attributes are literals: unknown or null values are rejected rather
// than defaulted.
func evalKnown(attr *hcl.Attribute) (cty.Value, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, diags
	}
	if !val.IsKnown() || val.IsNull() {
		return cty.NilVal, attrDiag(attr, "Missing value", fmt.Sprintf("%q must be a literal value.", attr.Name))
	}
	return val, nil
}

func attrString(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	val, diags := evalKnown(attr)
	if diags.HasErrors() {
		return "", diags
	}
	if val.Type() != cty.String {
		return "", attrDiag(attr, "Incorrect attribute type", fmt.Sprintf("%q must be a string, got %s.", attr.Name, val.Type().FriendlyName()))
	}
	return val.AsString(), nil
}

func attrDecimal(attr *hcl.Attribute) (decimal.Decimal, hcl.Diagnostics) {
	val, diags := evalKnown(attr)
	if diags.HasErrors() {
		return decimal.Zero, diags
	}
	d, err := numberToDecimal(val)
	if err != nil {
		return decimal.Zero, attrDiag(attr, "Incorrect attribute type", fmt.Sprintf("%q %s.", attr.Name, err))
	}
	return d, nil
}

func attrInt(attr *hcl.Attribute) (int, hcl.Diagnostics) {
	val, diags := evalKnown(attr)
	if diags.HasErrors() {
		return 0, diags
	}
	n, err := numberToInt(val)
	if err != nil {
		return 0, attrDiag(attr, "Incorrect attribute type", fmt.Sprintf("%q %s.", attr.Name, err))
	}
	return n, nil
}

func attrDecimalList(attr *hcl.Attribute) ([]decimal.Decimal, hcl.Diagnostics) {
	elems, diags := listElements(attr)
	if diags.HasErrors() {
		return nil, diags
	}
	out := make([]decimal.Decimal, 0, len(elems))
	for i, v := range elems {
		d, err := numberToDecimal(v)
		if err != nil {
			return nil, attrDiag(attr, "Incorrect element type", fmt.Sprintf("%q element %d %s.", attr.Name, i, err))
		}
		out = append(out, d)
	}
	return out, nil
}

func attrIntList(attr *hcl.Attribute) ([]int, hcl.Diagnostics) {
	elems, diags := listElements(attr)
	if diags.HasErrors() {
		return nil, diags
	}
	out := make([]int, 0, len(elems))
	for i, v := range elems {
		n, err := numberToInt(v)
		if err != nil {
			return nil, attrDiag(attr, "Incorrect element type", fmt.Sprintf("%q element %d %s.", attr.Name, i, err))
		}
		out = append(out, n)
	}
	return out, nil
}

func listElements(attr *hcl.Attribute) ([]cty.Value, hcl.Diagnostics) {
	val, diags := evalKnown(attr)
	if diags.HasErrors() {
		return nil, diags
	}
	ty := val.Type()
	if !(ty.IsTupleType() || ty.IsListType() || ty.IsSetType()) {
		return nil, attrDiag(attr, "Incorrect attribute type", fmt.Sprintf("%q must be a list, got %s.", attr.Name, ty.FriendlyName()))
	}

	var elems []cty.Value
	iter := val.ElementIterator()
	for iter.Next() {
		_, v := iter.Element()
		elems = append(elems, v)
	}
	return elems, nil
}

func numberToDecimal(val cty.Value) (decimal.Decimal, error) {
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.Number {
		return decimal.Zero, fmt.Errorf("must be a number, got %s", val.Type().FriendlyName())
	}
	// Shortest decimal that round-trips the parsed literal, so 0.1 stays 0.1.
	return decimal.NewFromString(val.AsBigFloat().Text('f', -1))
}

func numberToInt(val cty.Value) (int, error) {
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.Number {
		return 0, fmt.Errorf("must be a whole number, got %s", val.Type().FriendlyName())
	}
	bf := val.AsBigFloat()
	if !bf.IsInt() {
		return 0, fmt.Errorf("must be a whole number, got %s", bf.Text('f', -1))
	}
	n, acc := bf.Int64()
	if acc != big.Exact || n != int64(int(n)) {
		return 0, fmt.Errorf("is out of range")
	}
	return int(n), nil
}

func attrDiag(attr *hcl.Attribute, summary, detail string) hcl.Diagnostics {
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  attr.Expr.Range().Ptr(),
	}}
}
