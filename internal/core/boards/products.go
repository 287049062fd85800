package boards

import (
	"fmt"

	"github.com/JonMunkholm/MondayImport/internal/core"
	"github.com/JonMunkholm/MondayImport/internal/sheet"
)

func init() {
	core.Register(core.BoardDefinition{
		Key:     "jth_products",
		Label:   "JTH Products",
		Section: "Import JTH Products (Parts/Accessories)",
		File:    "boards/2108529448_JTH Products.xlsx",
		Order:   orderProducts,
		Import:  importProducts,

		Description: "Product catalog",
	})
}

var productsLayout = struct {
	Name, Cost, Link, Quantity int
	Columns                    int
	Rule                       core.RowRule
}{
	Name:     0,
	Cost:     1,
	Link:     2,
	Quantity: 3,
	Columns:  4,
	Rule: core.RowRule{
		Offset:       2,
		EntityColumn: 0,
		HeaderLabels: []string{"Horse Area", "Name"},
		DetailColumn: -1,
	},
}

const productCategory = "Horse Area Equipment"

func importProducts(t *sheet.Table, e *core.Emitter) error {
	// Quantity is optional and often trimmed off the end of the row.
	if err := core.RequireColumns(t, productsLayout.Columns-1); err != nil {
		return err
	}

	for _, row := range t.Rows {
		if productsLayout.Rule.Classify(row, false) != core.RowEntity {
			continue
		}
		e.Emit(mapProduct(row, e).Statement())
	}
	return nil
}

func mapProduct(row sheet.Row, e *core.Emitter) core.ProductOption {
	return core.ProductOption{
		ID:              e.ID(),
		Code:            fmt.Sprintf("OPT-%04d", row.Index),
		Name:            core.ToPgText(row.Text(productsLayout.Name)),
		Category:        productCategory,
		UnitPrice:       core.ParsePrice(row.Text(productsLayout.Cost)),
		SupplierLink:    core.ToPgText(row.Text(productsLayout.Link)),
		QuantityPerUnit: core.ParseQuantity(row.Text(productsLayout.Quantity)),
	}
}
