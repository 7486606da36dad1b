package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"wecare/internal/triage"
)

// TelegramClient pushes critical-case alerts to the supervising staff chat.
type TelegramClient interface {
	SendMessage(chatID int64, text string) error
	SendDocument(chatID int64, fileData []byte, fileName string) error
}

// Service sends alerts for critical consultations. A nil telegram client or
// zero chat ID disables alerting; the pipeline treats failures as
// best-effort either way.
type Service struct {
	tgClient TelegramClient
	chatID   int64
}

func NewService(tg TelegramClient, chatID int64) *Service {
	return &Service{tgClient: tg, chatID: chatID}
}

// NotifyCriticalCase implements triage.AlertNotifier. The alert carries a
// short text summary plus the PDF case report.
func (s *Service) NotifyCriticalCase(ctx context.Context, c triage.Consultation) error {
	if s.tgClient == nil || s.chatID == 0 {
		return nil
	}

	text := fmt.Sprintf("CRITICAL case %s\nSymptoms: %s\nSpecialization: %s",
		c.ID, c.Symptoms, c.Specialization)
	if err := s.tgClient.SendMessage(s.chatID, text); err != nil {
		return fmt.Errorf("failed to send alert message: %w", err)
	}

	pdf, err := Generate(c)
	if err != nil {
		return fmt.Errorf("failed to build case report: %w", err)
	}
	fileName := fmt.Sprintf("case_%s.pdf", c.ID)
	if err := s.tgClient.SendDocument(s.chatID, pdf, fileName); err != nil {
		return fmt.Errorf("failed to send case report: %w", err)
	}
	return nil
}

// Candidate font paths, tried in order. Noto Sans Bengali covers the
// Bengali summaries; DejaVu is the Latin-only fallback.
var fontPaths = []string{
	"/usr/share/fonts/truetype/noto/NotoSansBengali-Regular.ttf",
	"/usr/share/fonts/noto/NotoSansBengali-Regular.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
}

// Generate renders one consultation as a PDF case report.
func Generate(c triage.Consultation) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("body", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load report font: %w", fontErr)
	}

	if err := pdf.SetFont("body", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "WeCare Case Report")
	pdf.Br(30)

	if err := pdf.SetFont("body", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Case: %s", c.ID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Patient: %s", c.UserID))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Created: %s", c.CreatedAt.Format(time.RFC1123)))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Priority: %s    Status: %s", c.Priority, c.Status))
	pdf.Br(15)
	if c.Specialization != "" {
		pdf.Cell(nil, fmt.Sprintf("Recommended specialization: %s", c.Specialization))
		pdf.Br(15)
	}
	pdf.Br(10)

	writeSection(&pdf, "Symptoms", c.Symptoms)
	if c.FirstAid != "" {
		writeSection(&pdf, "First Aid", c.FirstAid)
	}
	writeSection(&pdf, "Assessment Summary", c.Response)
	if c.SupervisionNotes != "" {
		writeSection(&pdf, "Supervision Notes", c.SupervisionNotes)
	}

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSection(pdf *gopdf.GoPdf, title, body string) {
	if err := pdf.SetFont("body", "", 14); err != nil {
		return
	}
	pdf.Cell(nil, title+":")
	pdf.Br(15)

	if err := pdf.SetFont("body", "", 11); err != nil {
		return
	}
	lines, _ := pdf.SplitText(body, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(12)
	}
	pdf.Br(10)
}
