// Package sheet reads catalogs from and writes quotes to xlsx workbooks, the
// format the shop keeps its price lists in.
package sheet

import (
	"fmt"
	"strings"

	"github.com/etnz/pcquote"
	"github.com/xuri/excelize/v2"
)

// column identifies a catalog column.
type column int

const (
	colSlot column = iota
	colName
	colCost
	colPrice
	colBrand
	colSocket
	colWattage
)

func (c column) String() string {
	return [...]string{"slot", "name", "cost", "price", "brand", "socket", "wattage"}[c]
}

// headers lists the accepted header names, lower cased, for each column.
var headers = map[string]column{
	"类型":        colSlot,
	"type":      colSlot,
	"slot":      colSlot,
	"category":  colSlot,
	"名称":        colName,
	"name":      colName,
	"成本":        colCost,
	"cost":      colCost,
	"价格":        colPrice,
	"售价":        colPrice,
	"price":     colPrice,
	"baseprice": colPrice,
	"品牌":        colBrand,
	"brand":     colBrand,
	"插槽":        colSocket,
	"socket":    colSocket,
	"功率":        colWattage,
	"wattage":   colWattage,
}

// ImportCatalog reads a catalog from the first sheet of a workbook.
//
// The first row is the header, columns are found by name so their order does
// not matter. Rows with an unknown slot or no name are skipped, malformed
// numbers read as 0 and a missing or empty cost is estimated from the price.
func ImportCatalog(path string) (*pcquote.Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("catalog workbook %q has no sheets", path)
	}
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return pcquote.NewCatalog(), nil
	}

	index := make(map[column]int)
	for i, h := range rows[0] {
		if c, ok := headers[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := index[c]; !dup {
				index[c] = i
			}
		}
	}
	for _, required := range []column{colSlot, colName, colPrice} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("catalog workbook %q: missing %s column", path, required)
		}
	}

	var entries []pcquote.CatalogEntry
	for _, row := range rows[1:] {
		cell := func(c column) string {
			i, ok := index[c]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		slot, err := pcquote.ParseSlot(cell(colSlot))
		if err != nil {
			continue
		}
		name := cell(colName)
		if name == "" {
			continue
		}
		e := pcquote.CatalogEntry{
			Slot:    slot,
			Name:    name,
			Price:   pcquote.ParseAmount(cell(colPrice)),
			Brand:   cell(colBrand),
			Socket:  cell(colSocket),
			Wattage: pcquote.ParseQuantity(cell(colWattage)),
		}
		if cost := cell(colCost); cost != "" {
			e.Cost, e.HasCost = pcquote.ParseAmount(cost), true
		}
		entries = append(entries, e)
	}
	return pcquote.NewCatalog(entries...), nil
}

// ExportCatalog writes the catalog as a workbook that ImportCatalog reads back.
func ExportCatalog(path string, c *pcquote.Catalog) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "catalog"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := writeHeader(f, sheetName, []any{"type", "name", "cost", "price", "brand", "socket", "wattage"}); err != nil {
		return err
	}
	row := 2
	for e := range c.All() {
		values := []any{string(e.Slot), e.Name, nil, amount(e.Price), e.Brand, e.Socket, nil}
		if e.HasCost {
			values[2] = amount(e.Cost)
		}
		if e.Wattage > 0 {
			values[6] = e.Wattage
		}
		if err := setRow(f, sheetName, row, values); err != nil {
			return err
		}
		row++
	}
	if err := f.SetColWidth(sheetName, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save catalog workbook: %w", err)
	}
	return nil
}

// ExportQuote writes the quote as a workbook: one row per line and a total
// row. The profit column is only written for internal copies.
func ExportQuote(path string, q pcquote.Quote, includeProfit bool) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "配置单"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	header := []any{"配件", "名称", "数量", "单价", "小计"}
	if includeProfit {
		header = append(header, "利润")
	}
	if err := writeHeader(f, sheetName, header); err != nil {
		return err
	}

	row := 2
	for _, line := range q.Lines {
		values := []any{string(line.Slot), line.Name, line.Quantity, amount(line.UnitPrice), amount(line.Subtotal)}
		if includeProfit {
			values = append(values, amount(line.Profit))
		}
		if err := setRow(f, sheetName, row, values); err != nil {
			return err
		}
		row++
	}
	total := []any{"总计", nil, nil, nil, amount(q.Totals.Price)}
	if includeProfit {
		total = append(total, amount(q.Totals.Profit))
	}
	if err := setRow(f, sheetName, row+1, total); err != nil {
		return err
	}
	if err := setRow(f, sheetName, row+3, []any{"生成时间", q.Created.Format("2006-01-02 15:04:05")}); err != nil {
		return err
	}

	if err := f.SetColWidth(sheetName, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save quote workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheetName string, header []any) error {
	if err := setRow(f, sheetName, 1, header); err != nil {
		return err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, "A1", last, style)
}

func setRow(f *excelize.File, sheetName string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &values)
}

// amount returns a cell value for the amount.
func amount(m pcquote.Money) float64 {
	return m.Amount().InexactFloat64()
}
