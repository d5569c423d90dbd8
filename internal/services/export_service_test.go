package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/alimgiray/coolpeople/internal/apperrors"
	"github.com/alimgiray/coolpeople/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportStargazers(t *testing.T) {
	bee := "Bee"
	users := []*models.Stargazer{stargazer("a", nil), stargazer("b", &bee)}
	path := filepath.Join(t.TempDir(), "stargazers.xlsx")

	require.NoError(t, ExportStargazers(users, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Login", "Name", "Profile", "Avatar"}, rows[0])
	assert.Equal(t, []string{"a", "", "https://github.com/a", "https://avatars.example/a"}, rows[1])
	assert.Equal(t, []string{"b", "Bee", "https://github.com/b", "https://avatars.example/b"}, rows[2])
}

func TestExportStargazersUnwritable(t *testing.T) {
	err := ExportStargazers(nil, filepath.Join(t.TempDir(), "missing", "out.xlsx"))
	assert.True(t, errors.Is(err, apperrors.ErrFilesystem))
}
