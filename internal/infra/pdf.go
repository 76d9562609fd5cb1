package infra

// pdf.go — printable bill generation using go-pdf/fpdf.
// Produces an A5 invoice with the bill header, an item table
// (GSM number, quantity, unit price, line total) and a bold grand total.

import (
	"bytes"
	"fmt"

	"partsdesk/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateBillPDF renders a bill (header + items) as a PDF document and
// returns the raw bytes for streaming to the client.
func GenerateBillPDF(bill *model.Bill) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, "Spare Parts Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 5, "Bill No: "+bill.BillNumber, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Customer: "+bill.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 5, bill.CreatedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Item table ───────────────────────────────────────────────────────────
	col1 := contentW * 0.38 // GSM number
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.22 // unit price
	col4 := contentW * 0.26 // line total

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 6, "GSM", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Qty", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range bill.Items {
		gsm := item.GSMNumber
		if len(gsm) > 24 {
			gsm = gsm[:23] + "…"
		}
		pdf.CellFormat(col1, 5, gsm, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, fmt.Sprintf("x%d", item.Quantity), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 5, item.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 5, item.Total.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(2)

	// ── Total and payment details ────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3+col4, 6, bill.TotalAmount.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	if bill.PaymentMode != nil && *bill.PaymentMode != "" {
		pdf.CellFormat(contentW, 5, "Payment mode: "+*bill.PaymentMode, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 5, "Status: "+bill.Status, "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render bill %s: %w", bill.BillNumber, err)
	}
	return buf.Bytes(), nil
}
