package service

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"playvault/internal/domain/entity"
)

// FileUploader is the subset of the storage client the invoice service needs.
type FileUploader interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string, isPublic bool) (string, error)
}

type InvoiceService interface {
	GenerateInvoice(ctx context.Context, order *entity.Order, buyer, seller *entity.User) (string, error)
}

type invoiceService struct {
	uploader FileUploader
}

func NewInvoiceService(uploader FileUploader) InvoiceService {
	return &invoiceService{uploader: uploader}
}

// GenerateInvoice renders an order invoice as PDF, uploads it and returns
// the public URL.
func (s *invoiceService) GenerateInvoice(ctx context.Context, order *entity.Order, buyer, seller *entity.User) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "PlayVault Invoice")
	pdf.Ln(16)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Invoice for order %s", order.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", order.CreatedAt.Format("2006-01-02 15:04 MST")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(95, 7, "Buyer")
	pdf.Cell(95, 7, "Seller")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(95, 6, buyer.FullName())
	pdf.Cell(95, 6, seller.FullName())
	pdf.Ln(6)
	pdf.Cell(95, 6, buyer.Email)
	pdf.Cell(95, 6, seller.Email)
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(120, 8, "Description")
	pdf.CellFormat(70, 8, "Amount", "", 0, "R", false, 0, "")
	pdf.Ln(8)
	pdf.SetDrawColor(180, 180, 180)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(120, 7, fmt.Sprintf("%s order (content %s)", order.OrderType, order.ContentID))
	pdf.CellFormat(70, 7, fmt.Sprintf("$%.2f", order.Amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
	pdf.Cell(120, 7, "Platform fee")
	pdf.CellFormat(70, 7, fmt.Sprintf("-$%.2f", order.PlatformFee), "", 0, "R", false, 0, "")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 8, "Seller earnings")
	pdf.CellFormat(70, 8, fmt.Sprintf("$%.2f", order.SellerEarnings), "", 0, "R", false, 0, "")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Thank you for training with PlayVault.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("failed to render invoice: %w", err)
	}

	url, err := s.uploader.UploadFile(ctx, &buf, "application/pdf", "invoices", true)
	if err != nil {
		return "", fmt.Errorf("failed to upload invoice: %w", err)
	}
	return url, nil
}
