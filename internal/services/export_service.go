package services

import (
	"fmt"

	"github.com/alimgiray/coolpeople/internal/apperrors"
	"github.com/alimgiray/coolpeople/internal/models"
	"github.com/xuri/excelize/v2"
)

const exportSheetName = "Stargazers"

var exportHeaders = []string{"Login", "Name", "Profile", "Avatar"}

// ExportStargazers writes the stargazers to an XLSX workbook at path, one row
// per user in fetch order below a header row.
func ExportStargazers(stargazers []*models.Stargazer, path string) error {
	const op = "export stargazers"

	resolved, err := ResolvePath(path)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return apperrors.Wrap(apperrors.KindFilesystem, op, err)
	}

	if err := f.SetSheetRow(exportSheetName, "A1", &exportHeaders); err != nil {
		return apperrors.Wrap(apperrors.KindFilesystem, op, err)
	}

	for i, s := range stargazers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return apperrors.Wrap(apperrors.KindFilesystem, op, err)
		}
		row := []interface{}{s.Login, s.DisplayName(), s.ProfileURL, s.AvatarURL}
		if err := f.SetSheetRow(exportSheetName, cell, &row); err != nil {
			return apperrors.Wrap(apperrors.KindFilesystem, op, fmt.Errorf("row %d: %w", i+2, err))
		}
	}

	if err := f.SaveAs(resolved); err != nil {
		return apperrors.Wrap(apperrors.KindFilesystem, op, err)
	}
	return nil
}
