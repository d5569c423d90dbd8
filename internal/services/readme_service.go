package services

import (
	"context"

	"github.com/alimgiray/coolpeople/internal/apperrors"
	"github.com/alimgiray/coolpeople/internal/models"
	"github.com/alimgiray/coolpeople/pkg/config"
	"github.com/alimgiray/coolpeople/pkg/logger"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StargazerFetcher lists the stargazers of a repository.
type StargazerFetcher interface {
	FetchStargazers(ctx context.Context, repo string) ([]*models.Stargazer, error)
}

type ReadmeService struct {
	fetcher StargazerFetcher
}

func NewReadmeService(fetcher StargazerFetcher) *ReadmeService {
	return &ReadmeService{fetcher: fetcher}
}

// Generate fetches the stargazers, renders them and splices the table into
// the template. Nothing is written unless every earlier step succeeded.
func (s *ReadmeService) Generate(ctx context.Context, cfg config.RunConfig) error {
	log := logger.WithFields(logrus.Fields{
		"run_id": uuid.New().String(),
		"repo":   cfg.Repo,
	})

	stargazers, err := s.fetcher.FetchStargazers(ctx, cfg.Repo)
	if err != nil {
		return err
	}
	log.WithField("stargazers", len(stargazers)).Info("Fetched stargazers")

	table, err := RenderTable(stargazers, cfg.UsersPerRow)
	if err != nil {
		return err
	}

	template, err := LoadTemplate(cfg.TemplatePath)
	if err != nil {
		return err
	}

	readme, replaced := Splice(template, table)
	if !replaced {
		if cfg.StrictMarkers {
			return apperrors.Configuration("splice template",
				"template "+cfg.TemplatePath+" is missing "+StartMarker+" or "+EndMarker)
		}
		log.WithField("template", cfg.TemplatePath).Warn("Section markers not found, writing template unchanged")
	}

	if err := SaveDocument(cfg.OutputPath, readme); err != nil {
		return err
	}
	log.WithField("output", cfg.OutputPath).Info("README written")

	if cfg.ExportPath != "" {
		if err := ExportStargazers(stargazers, cfg.ExportPath); err != nil {
			return err
		}
		log.WithField("export", cfg.ExportPath).Info("Stargazer report written")
	}

	return nil
}
