package invoices

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/jung-kurt/gofpdf"
)

func renderInvoicePDF(doc InvoiceDocument) ([]byte, error) {
	number := strings.TrimSpace(doc.Number)
	if number == "" {
		return nil, fmt.Errorf("invoice number is required")
	}
	barcodePNG, err := renderCode128PNG(number, 1200, 220)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+number, false)
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	margin := 18.0
	contentW := pageW - 2*margin

	pdf.SetFont("Helvetica", "B", 28)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(contentW/2, 14, "INVOICE", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW/2, 14, tr(number), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.SetX(margin)
	pdf.CellFormat(contentW, 6, "Printed: "+doc.Printed.Format("02-01-2006"), "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetLineWidth(0.35)
	y := pdf.GetY() + 4
	pdf.Line(margin, y, margin+contentW, y)
	pdf.SetY(y + 6)

	customer := strings.TrimSpace(doc.Customer)
	if customer == "" {
		customer = "Unknown Customer"
	}
	rows := [][2]string{
		{"Customer", customer},
		{"Email", doc.Email},
		{"Period", doc.Period},
		{"Status", doc.Status},
		{"Tags", strings.Join(doc.Tags, ", ")},
	}
	for _, row := range rows {
		pdf.SetX(margin)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 8, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(contentW-40, 8, tr(row[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetX(margin)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW/2, 9, "Amount", "1", 0, "L", true, 0, "")
	pdf.CellFormat(contentW/2, 9, "Total Tax", "1", 1, "L", true, 0, "")
	pdf.SetX(margin)
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(contentW/2, 10, tr(doc.Amount), "1", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 10, tr(doc.TotalTax), "1", 1, "L", false, 0, "")

	opt := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	imageName := "invoice-barcode-" + number
	pdf.RegisterImageOptionsReader(imageName, opt, bytes.NewReader(barcodePNG))
	imgW := 120.0
	imgH := 24.0
	by := pdf.GetY() + 16
	pdf.ImageOptions(imageName, (pageW-imgW)/2, by, imgW, imgH, false, opt, 0, "")
	pdf.SetY(by + imgH + 3)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(number), "", 1, "C", false, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func renderCode128PNG(value string, width, height int) ([]byte, error) {
	code, err := code128.Encode(value)
	if err != nil {
		return nil, err
	}
	scaled, err := barcode.Scale(code, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, toNRGBA(scaled)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toNRGBA(src image.Image) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(bounds)
	draw.Draw(dst, bounds, src, bounds.Min, draw.Src)
	return dst
}
