package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"
)

// CurrentVersion is the bank format written by Save.
const CurrentVersion = "v1.0.0"

// ErrUnsupportedVersion is returned for banks written by an incompatible
// major format version.
var ErrUnsupportedVersion = errors.New("unsupported question bank version")

// Bank is an ordered collection of questions, exported as one GIFT file.
type Bank struct {
	Version   string     `json:"version"`
	Questions []Question `json:"questions"`
}

// NewBank returns an empty bank at the current format version.
func NewBank() *Bank {
	return &Bank{Version: CurrentVersion, Questions: []Question{}}
}

// Add appends q, assigning an ID when it has none.
func (b *Bank) Add(q Question) {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	b.Questions = append(b.Questions, q)
}

// Remove deletes the question with the given ID. Returns false if not found.
func (b *Bank) Remove(id string) bool {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			b.Questions = append(b.Questions[:i], b.Questions[i+1:]...)
			return true
		}
	}
	return false
}

// Find returns a pointer to the question with the given ID, or nil.
func (b *Bank) Find(id string) *Question {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i]
		}
	}
	return nil
}

// Replace overwrites the question with q's ID. Returns false if not found.
func (b *Bank) Replace(q Question) bool {
	if p := b.Find(q.ID); p != nil {
		*p = q
		return true
	}
	return false
}

// Decode validates and parses a bank document. Missing question IDs are
// generated and a missing version is read as CurrentVersion.
func Decode(data []byte) (*Bank, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}

	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	if b.Version == "" {
		b.Version = CurrentVersion
	}
	if err := checkVersion(b.Version); err != nil {
		return nil, err
	}

	for i := range b.Questions {
		if b.Questions[i].ID == "" {
			b.Questions[i].ID = uuid.NewString()
		}
	}
	if b.Questions == nil {
		b.Questions = []Question{}
	}
	return &b, nil
}

// Encode serialises b as indented JSON.
func Encode(b *Bank) ([]byte, error) {
	if b.Version == "" {
		b.Version = CurrentVersion
	}
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode question bank: %w", err)
	}
	return append(data, '\n'), nil
}

// Load reads a bank from path.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	b, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Save writes b to path, creating parent directories. The file is written to
// a temporary sibling first and renamed into place.
func Save(path string, b *Bank) error {
	data, err := Encode(b)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create bank directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write question bank: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace question bank: %w", err)
	}
	return nil
}

// checkVersion accepts any version with the same major as CurrentVersion.
func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(CurrentVersion) {
		return fmt.Errorf("%w: %s (this build reads %s.x)", ErrUnsupportedVersion, v, semver.Major(CurrentVersion))
	}
	return nil
}
