package main

import (
	"fmt"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecs(t *testing.T) {
	specs, err := parseSpecs([]string{"Product:products", "Sale:sales"})
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "Product", specs[0].TypeName)
	assert.Equal(t, "products", specs[0].Table)

	for _, bad := range []string{"Product", ":products", "Product:"} {
		_, err := parseSpecs([]string{bad})
		assert.Error(t, err, bad)
	}
}

func TestColumnFields(t *testing.T) {
	str := types.Typ[types.String]
	vars := []*types.Var{
		types.NewField(token.NoPos, nil, "SKU", str, false),
		types.NewField(token.NoPos, nil, "Scenario", str, false),
		types.NewField(token.NoPos, nil, "Name", str, false),
		types.NewField(token.NoPos, nil, "Ignored", str, false),
	}
	tags := []string{`col:"sku"`, ``, `json:"name" col:"name"`, `col:"-"`}

	fields := columnFields(types.NewStruct(vars, tags))

	assert.Equal(t, []field{{Name: "SKU", Column: "sku"}, {Name: "Name", Column: "name"}}, fields)
}

func TestRender(t *testing.T) {
	f := render("domain", []tableSpec{{
		TypeName: "Sale",
		Table:    "sales",
		Fields:   []field{{Name: "SKU", Column: "sku"}, {Name: "Quantity", Column: "quantity"}},
	}})

	src := fmt.Sprintf("%#v", f)
	assert.Contains(t, src, "// Code generated by colgen. DO NOT EDIT.")
	assert.Contains(t, src, "package domain")
	assert.Contains(t, src, `return "sales"`)
	assert.Contains(t, src, `return []string{"sku", "quantity"}`)
	assert.Contains(t, src, "func (s Sale) ColumnValues() []interface{}")
	assert.Contains(t, src, "return []interface{}{s.SKU, s.Quantity}")
}

func TestReceiverName(t *testing.T) {
	assert.Equal(t, "p", receiverName("Product"))
	assert.Equal(t, "s", receiverName("StockSnapshot"))
	assert.Equal(t, "v", receiverName(""))
}
