package services

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alimgiray/coolpeople/internal/apperrors"
)

const (
	StartMarker = "<!--START_SECTION:cool-people-->"
	EndMarker   = "<!--END_SECTION:cool-people-->"
)

// ResolvePath joins a relative path onto the working directory.
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindFilesystem, "resolve path", err)
	}
	return filepath.Join(cwd, path), nil
}

// LoadTemplate reads the whole template as text.
func LoadTemplate(path string) (string, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return "", err
	}
	content, err := os.ReadFile(resolved)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindFilesystem, "load template", err)
	}
	return string(content), nil
}

// Splice replaces everything between the first StartMarker and the last
// EndMarker that follows it with fragment. The markers stay in place. When
// either marker is missing the template is returned unchanged with false.
func Splice(template, fragment string) (string, bool) {
	start := strings.Index(template, StartMarker)
	if start < 0 {
		return template, false
	}
	regionStart := start + len(StartMarker)

	end := strings.LastIndex(template[regionStart:], EndMarker)
	if end < 0 {
		return template, false
	}
	regionEnd := regionStart + end

	return template[:regionStart] + fragment + template[regionEnd:], true
}

// SaveDocument writes content to path, replacing any existing file.
func SaveDocument(path, content string) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(resolved, []byte(content), 0644); err != nil {
		return apperrors.Wrap(apperrors.KindFilesystem, "save document", err)
	}
	return nil
}
