// Package export builds the XLSX workbooks behind the "export filtered
// rows" buttons: one sheet, a header row, one row per record.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"github.com/waterbiz/waterbiz-api/internal/application/dto"
)

// ContentType is the MIME type for generated workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const sheet = "Sheet1"

// Customers builds a workbook of customer rows.
func Customers(rows []*dto.CustomerResponse) (*excelize.File, error) {
	return workbook("Customers",
		[]string{"Name", "Primary Mobile", "Secondary Mobile", "Address", "Map Location", "Created At"},
		len(rows), func(i int) []any {
			c := rows[i]
			return []any{c.Name, c.PrimaryMobile, c.SecondaryMobile, c.Address, c.MapLocation, c.CreatedAt.Format(dto.DateLayout)}
		})
}

// Inventory builds a workbook of inventory rows.
func Inventory(rows []*dto.InventoryItemResponse) (*excelize.File, error) {
	return workbook("Inventory",
		[]string{"Product Name", "Type", "Make", "Quantity", "Purchase Price", "Sale Price", "Description", "Updated By"},
		len(rows), func(i int) []any {
			it := rows[i]
			return []any{it.ProductName, it.ProductType, it.ProductMake, it.Quantity,
				it.PurchasePrice.String(), it.SalePrice.String(), it.Description, it.UpdatedBy}
		})
}

// Employees builds a workbook of employee rows.
func Employees(rows []*dto.EmployeeResponse) (*excelize.File, error) {
	return workbook("Employees",
		[]string{"Name", "Mobile", "Address", "ID Proof Type", "ID Proof Number", "Branch", "Designation", "Joining Date"},
		len(rows), func(i int) []any {
			e := rows[i]
			return []any{e.Name, e.Mobile, e.Address, e.IDProofType, e.IDProofNumber,
				e.BranchName, e.Designation, deref(e.JoiningDate)}
		})
}

// CustomerProducts builds a workbook of ownership rows.
func CustomerProducts(rows []*dto.CustomerProductResponse) (*excelize.File, error) {
	return workbook("CustomerProducts",
		[]string{"Customer", "Product", "Serial Number", "Installed", "Last Service", "Next Service", "Remarks"},
		len(rows), func(i int) []any {
			p := rows[i]
			return []any{p.CustomerName, deref(p.ProductName), p.SerialNumber, p.InstallationDate,
				deref(p.LastServiceDate), deref(p.NextServiceDate), p.Remarks}
		})
}

// workbook renames the default sheet, writes the header row, then one row
// per record from the cells callback.
func workbook(name string, headers []string, n int, cells func(i int) []any) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(sheet, name); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	for col, h := range headers {
		if err := setCell(f, name, col+1, 1, h); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		for col, v := range cells(i) {
			if err := setCell(f, name, col+1, i+2, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func setCell(f *excelize.File, sheetName string, col, row int, v any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(sheetName, cell, v); err != nil {
		return fmt.Errorf("set cell %s: %w", cell, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
