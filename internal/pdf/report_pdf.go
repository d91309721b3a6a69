package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"salescrm/internal/models"
)

// Generator is the interface the report service renders through (easy to
// fake in tests). GenerateMonthlyReport returns the on-disk path of the
// written file.
type Generator interface {
	GenerateMonthlyReport(report models.MonthlyReport) (string, error)
}

// ReportGenerator renders monthly sales reports as PDF files under RootDir.
// FontPath may point at a TTF for UTF-8 output; when empty the built-in
// Helvetica is used.
type ReportGenerator struct {
	RootDir  string
	FontPath string
	fontName string
}

func NewReportGenerator(rootDir, fontPath string) *ReportGenerator {
	name := "Helvetica"
	if fontPath != "" {
		name = "Report"
	}
	return &ReportGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: name,
	}
}

func (g *ReportGenerator) GenerateMonthlyReport(report models.MonthlyReport) (string, error) {
	filename := fmt.Sprintf("monthly_report_%s.pdf", report.Label)
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Monthly Sales Report %s", report.Label), false)
	pdf.SetAuthor("SalesCRM", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	g.addFonts(pdf)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "MONTHLY SALES REPORT", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  |  generated %s", report.Label, time.Now().UTC().Format("2006-01-02"))
	pdf.CellFormat(0, 7, sub, "", 1, "C", false, 0, "")
	g.hr(pdf)

	pdf.Ln(3)

	g.sectionTitle(pdf, "Closed deals")
	g.kvLine(pdf, "Won", fmt.Sprintf("%d", report.WonCount))
	g.kvLine(pdf, "Lost", fmt.Sprintf("%d", report.LostCount))
	g.kvLine(pdf, "Cancelled", fmt.Sprintf("%d", report.CancelledCount))
	g.kvLine(pdf, "Total closed", fmt.Sprintf("%d", report.TotalClosed))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Rates")
	g.kvLine(pdf, "Win rate", fmt.Sprintf("%.2f%%", report.WinRate))
	g.kvLine(pdf, "Cancellation rate", fmt.Sprintf("%.2f%%", report.CancellationRate))
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Revenue")
	g.kvLine(pdf, "Won deal revenue", fmt.Sprintf("%.2f", report.Revenue))

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 10)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("Page %d/{nb}", pdf.PageNo()),
			"", 0, "C", false, 0, "",
		)
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return absPath, nil
}

// ===== helpers =====

func (g *ReportGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}
	filename = filepath.Base(filename)
	return filepath.Join(g.RootDir, filename), nil
}

func (g *ReportGenerator) addFonts(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

func (g *ReportGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *ReportGenerator) kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func (g *ReportGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}
