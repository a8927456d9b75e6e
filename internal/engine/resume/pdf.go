package resume

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// ExtractPDFText pulls plain UTF-8 text from a PDF resume on disk.
// A malformed document yields an error, which callers treat as
// upstream-unavailable: analyse nothing rather than crash.
func ExtractPDFText(path string) (string, error) {
	engine.IncrPDFExtracts()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		slog.Warn("pdf produced no text", slog.String("path", path))
	}
	return text, nil
}
