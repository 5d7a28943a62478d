// Package pdfgen renders quote documents as PDF files for download and
// email delivery.
package pdfgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/opsdesk-inc/opsdesk/internal/domain/billing"
	"github.com/opsdesk-inc/opsdesk/internal/domain/client"
	"github.com/opsdesk-inc/opsdesk/internal/shared/config"
	"github.com/opsdesk-inc/opsdesk/internal/shared/constants"
)

type QuotePDFGenerator struct {
	company config.CompanyConfig
}

func NewQuotePDFGenerator(company config.CompanyConfig) *QuotePDFGenerator {
	return &QuotePDFGenerator{company: company}
}

// Generate renders the quote with a letterhead, the client block, an
// itemized table and the totals. Long item tables flow across pages.
func (g *QuotePDFGenerator) Generate(q *billing.Quote, c *client.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	g.writeLetterhead(pdf)
	g.writeHeader(pdf, q)
	g.writeClientBlock(pdf, c)
	g.writeItemTable(pdf, q)
	g.writeTotals(pdf, q)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *QuotePDFGenerator) writeLetterhead(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 8, g.company.Name)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.Cell(0, 5, g.company.Address)
	pdf.Ln(4)
	pdf.Cell(0, 5, fmt.Sprintf("%s  |  %s", g.company.Email, g.company.Phone))
	pdf.Ln(10)
	pdf.SetTextColor(0, 0, 0)
}

func (g *QuotePDFGenerator) writeHeader(pdf *gofpdf.Fpdf, q *billing.Quote) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Quote %s", q.Number()))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Date: %s", q.CreatedAt().Format(constants.DateFormat)))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Valid until: %s", q.ValidUntil().Format(constants.DateFormat)))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Status: %s", q.Status().String()))
	pdf.Ln(9)
}

func (g *QuotePDFGenerator) writeClientBlock(pdf *gofpdf.Fpdf, c *client.Client) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 5, "Prepared for")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, c.Name())
	pdf.Ln(5)
	if c.Company() != "" {
		pdf.Cell(0, 5, c.Company())
		pdf.Ln(5)
	}
	if c.Address() != "" {
		pdf.MultiCell(0, 5, c.Address(), "", "L", false)
	}
	pdf.Cell(0, 5, c.Email())
	pdf.Ln(10)
}

func (g *QuotePDFGenerator) writeItemTable(pdf *gofpdf.Fpdf, q *billing.Quote) {
	const (
		descWidth  = 100.0
		qtyWidth   = 25.0
		totalWidth = 40.0
		rowHeight  = 6.0
	)

	writeTableHead := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		pdf.CellFormat(descWidth, rowHeight, "Description", "1", 0, "L", true, 0, "")
		pdf.CellFormat(qtyWidth, rowHeight, "Qty", "1", 0, "R", true, 0, "")
		pdf.CellFormat(totalWidth, rowHeight, "Total", "1", 1, "R", true, 0, "")
	}

	writeTableHead()
	pdf.SetFont("Helvetica", "", 9)

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottomMargin := pdf.GetMargins()

	for _, item := range q.Items() {
		lines := pdf.SplitText(item.Description, descWidth-2)
		cellHeight := rowHeight * float64(len(lines))
		if len(lines) == 0 {
			cellHeight = rowHeight
		}

		if pdf.GetY()+cellHeight > pageHeight-bottomMargin {
			pdf.AddPage()
			writeTableHead()
			pdf.SetFont("Helvetica", "", 9)
		}

		x, y := pdf.GetXY()
		pdf.MultiCell(descWidth, rowHeight, item.Description, "1", "L", false)
		endY := pdf.GetY()

		pdf.SetXY(x+descWidth, y)
		pdf.CellFormat(qtyWidth, endY-y, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(totalWidth, endY-y, fmt.Sprintf("%.2f", item.Total), "1", 0, "R", false, 0, "")
		pdf.SetXY(x, endY)
	}
	pdf.Ln(4)
}

func (g *QuotePDFGenerator) writeTotals(pdf *gofpdf.Fpdf, q *billing.Quote) {
	const (
		labelWidth = 125.0
		valueWidth = 40.0
		rowHeight  = 6.0
	)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(labelWidth, rowHeight, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(valueWidth, rowHeight, fmt.Sprintf("%.2f", q.Subtotal()), "", 1, "R", false, 0, "")

	pdf.CellFormat(labelWidth, rowHeight, fmt.Sprintf("Tax (%.1f%%)", q.TaxRate()), "", 0, "R", false, 0, "")
	pdf.CellFormat(valueWidth, rowHeight, fmt.Sprintf("%.2f", q.Tax()), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(labelWidth, rowHeight+1, "Total", "T", 0, "R", false, 0, "")
	pdf.CellFormat(valueWidth, rowHeight+1, fmt.Sprintf("%.2f", q.Total()), "T", 1, "R", false, 0, "")
}
