package services

import (
	"html"
	"strconv"
	"strings"

	"github.com/alimgiray/coolpeople/internal/apperrors"
	"github.com/alimgiray/coolpeople/internal/models"
)

// RowCount returns ceil(total / usersPerRow).
func RowCount(total, usersPerRow int) int {
	if usersPerRow <= 0 || total <= 0 {
		return 0
	}
	return (total + usersPerRow - 1) / usersPerRow
}

// RenderTable lays the stargazers out in rows of usersPerRow cells and returns
// the HTML table fragment. An empty list renders an empty table.
func RenderTable(stargazers []*models.Stargazer, usersPerRow int) (string, error) {
	if usersPerRow <= 0 {
		return "", apperrors.Configuration("render table",
			"usersPerRow must be a positive integer, got "+strconv.Itoa(usersPerRow))
	}

	cells := make([]string, len(stargazers))
	for i, s := range stargazers {
		cells[i] = renderCell(s)
	}

	rows := make([]string, 0, RowCount(len(cells), usersPerRow))
	for start := 0; start < len(cells); start += usersPerRow {
		end := min(start+usersPerRow, len(cells))
		rows = append(rows, "<tr>"+strings.Join(cells[start:end], "\n")+"</tr>")
	}

	return "\n<table>" + strings.Join(rows, "\n") + "</table>\n", nil
}

func renderCell(s *models.Stargazer) string {
	var b strings.Builder
	b.WriteString("\n  <td align=\"center\">")
	b.WriteString("\n    <a href=\"" + html.EscapeString(s.ProfileURL) + "\">")
	b.WriteString("\n      <img src=\"" + html.EscapeString(s.AvatarURL) + "\" />")
	b.WriteString("\n      <br />")
	b.WriteString("\n      " + html.EscapeString(s.Caption()))
	b.WriteString("\n    </a>")
	b.WriteString("\n  </td>")
	return b.String()
}
