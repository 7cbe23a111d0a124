package menu

import (
	"io"

	"github.com/tealeg/xlsx"
)

var exportHeaders = []string{
	"ID", "Name", "Category", "Price", "Quantity", "MaxQuantity",
	"SpiceLevel", "Ingredients", "Description", "Image",
	"Popular", "Limited", "Special", "UpdatedAt",
}

// WriteWorkbook writes the dishes as a single-sheet Excel workbook.
func WriteWorkbook(w io.Writer, dishes []Dish) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Menu")
	if err != nil {
		return err
	}

	header := sheet.AddRow()
	for _, h := range exportHeaders {
		header.AddCell().SetString(h)
	}

	for _, d := range dishes {
		row := sheet.AddRow()

		row.AddCell().SetString(d.ID)
		row.AddCell().SetString(d.Name)
		row.AddCell().SetString(d.Category)
		row.AddCell().SetString(d.Price.StringFixed(2))
		row.AddCell().SetString(d.Quantity)
		row.AddCell().SetString(d.MaxQuantity)
		row.AddCell().SetInt(d.SpiceLevel)
		row.AddCell().SetString(d.Ingredients)
		row.AddCell().SetString(d.Description)
		row.AddCell().SetString(d.Image)
		row.AddCell().SetValue(d.IsPopular)
		row.AddCell().SetValue(d.IsLimited)
		row.AddCell().SetValue(d.IsSpecial)
		row.AddCell().SetString(d.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}
