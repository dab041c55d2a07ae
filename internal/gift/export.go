package gift

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/quizgift/internal/question"
)

// Export renders bank and writes it to path, creating parent directories.
// Nothing is written when any question fails to render.
func Export(path string, bank *question.Bank) error {
	rendered, err := RenderBank(bank)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(rendered+"\n"), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
