package boards

import (
	"testing"

	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProduct_Halter(t *testing.T) {
	row := sheet.Row{Index: 5, Cells: []string{"Halter", "£25 ex", "http://x", "2"}}

	p := mapProduct(row, seqEmitter())

	assert.Equal(t, "OPT-0005", p.Code)
	assert.True(t, p.UnitPrice.Equal(decimal.NewFromFloat(25.0)), "price %s", p.UnitPrice)
	assert.True(t, p.QuantityPerUnit.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, core.ToPgText("Halter"), p.Name)
	assert.Equal(t, core.ToPgText("http://x"), p.SupplierLink)
	assert.Equal(t, "Horse Area Equipment", p.Category)
}

func TestImportProducts(t *testing.T) {
	tbl := table([]string{"Name", "Cost", "Link", "Qty"},
		[]string{"JTH Products"},
		[]string{"Horse Area"},
		[]string{"Horse Area", "Cost"},
		[]string{"Haynet", "POA", ""},
		[]string{"Tie ring", "£4.50 incl", "https://parts.example/ring", "4"},
		[]string{"", "£10"},
	)

	e := seqEmitter()
	require.NoError(t, importProducts(tbl, e))

	got := statements(t, e)
	require.Len(t, got, 2)

	assert.Equal(t,
		"INSERT INTO product_options (id, code, name, category, unit_price, supplier_link, quantity_per_unit)\n"+
			"VALUES ('00000000-0000-0000-0000-000000000001', 'OPT-0003', 'Haynet', 'Horse Area Equipment', 0, NULL, 1);",
		got[0].SQL())
	assert.Contains(t, got[1].SQL(), "'OPT-0004', 'Tie ring', 'Horse Area Equipment', 4.5, 'https://parts.example/ring', 4);")
}
