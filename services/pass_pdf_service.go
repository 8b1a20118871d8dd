package services

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/models"
)

// BuildPassPDF renders the digital pass card as a downloadable PDF,
// replacing the print button of the mobile app. Returns the PDF bytes and
// the suggested filename.
func BuildPassPDF(user *models.User, pass *models.BusPass) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SmartBus Digital Pass", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SMARTBUS DIGITAL PASS")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Pass ID    : %s", pass.ID),
		fmt.Sprintf("Name       : %s", user.Name),
		fmt.Sprintf("Student ID : %s", user.StudentID),
		fmt.Sprintf("College    : %s", user.College),
		fmt.Sprintf("Department : %s", user.Dept),
		fmt.Sprintf("Route      : %s -> %s", pass.RouteFrom, pass.RouteTo),
		fmt.Sprintf("Issued     : %s", pass.IssueDate),
		fmt.Sprintf("Expires    : %s", pass.ExpiryDate),
		fmt.Sprintf("Status     : %s", pass.Status),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Courier", "", 11)
	pdf.Cell(0, 7, pass.QRCode)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Carry this pass while travelling. Valid only together with a student ID card.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("SmartPass_%s.pdf", pass.ID), nil
}
