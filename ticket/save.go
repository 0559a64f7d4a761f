package ticket

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kino-cli/model"
)

// FileName is the name a booking's ticket is saved under.
func FileName(bookingID int64) string {
	return fmt.Sprintf("booking-%d.pdf", bookingID)
}

// SaveTicket writes the PDF ticket into dir and returns the file path.
func SaveTicket(dir string, bookingID int64, blob model.Blob) (string, error) {
	if len(blob.Data) == 0 {
		return "", errors.New("ticket is empty")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, FileName(bookingID))
	if err := os.WriteFile(path, blob.Data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
