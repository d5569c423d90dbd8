package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/alimgiray/coolpeople/internal/apperrors"
	"github.com/alimgiray/coolpeople/internal/models"
	"github.com/alimgiray/coolpeople/pkg/config"
	"github.com/alimgiray/coolpeople/pkg/logger"
	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// StargazersPerPage is the page size requested from the API.
const StargazersPerPage = 100

var nextLinkPattern = regexp.MustCompile(`<([^>]+)>\s*;\s*rel="next"`)

type StargazerService struct {
	githubClient *github.Client
}

// NewStargazerService creates a service that lists stargazers with the given credentials
func NewStargazerService(cfg config.GitHubConfig) (*StargazerService, error) {
	client := github.NewClient(&http.Client{Transport: newAuthTransport(cfg, http.DefaultTransport)})
	client.UserAgent = cfg.UserAgent

	if cfg.APIBaseURL != "" {
		baseURL := cfg.APIBaseURL
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.KindConfiguration, "parse API base URL", err)
		}
		client.BaseURL = u
	}

	return &StargazerService{githubClient: client}, nil
}

// newAuthTransport sends the token verbatim, or through oauth2 when a scheme is configured
func newAuthTransport(cfg config.GitHubConfig, base http.RoundTripper) http.RoundTripper {
	if cfg.AuthScheme != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: cfg.Token, TokenType: cfg.AuthScheme},
		)
		return &oauth2.Transport{Source: ts, Base: base}
	}
	return &verbatimAuthTransport{token: cfg.Token, base: base}
}

type verbatimAuthTransport struct {
	token string
	base  http.RoundTripper
}

func (t *verbatimAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", t.token)
	return t.base.RoundTrip(clone)
}

// FetchStargazers lists every stargazer of repo ("owner/name"), following the
// Link header page by page until no next page is advertised.
func (s *StargazerService) FetchStargazers(ctx context.Context, repo string) ([]*models.Stargazer, error) {
	if !config.ValidRepo(repo) {
		return nil, apperrors.Configuration("fetch stargazers", "invalid repo "+strconv.Quote(repo))
	}

	nextURL := fmt.Sprintf("repos/%s/stargazers?per_page=%d", repo, StargazersPerPage)
	stargazers := []*models.Stargazer{}

	for page := 1; ; page++ {
		users, link, err := s.fetchPage(ctx, nextURL)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			stargazers = append(stargazers, models.NewStargazerFromAPI(user))
		}

		logger.WithFields(logrus.Fields{
			"repo":  repo,
			"page":  page,
			"count": len(users),
		}).Debug("Fetched stargazers page")

		next, ok := ParseNextLink(link)
		if !ok {
			break
		}
		nextURL = next
	}

	return stargazers, nil
}

// fetchPage issues a single GET and returns the decoded users and the Link header
func (s *StargazerService) fetchPage(ctx context.Context, pageURL string) ([]*github.User, string, error) {
	const op = "fetch stargazers"

	req, err := s.githubClient.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindConfiguration, op, err)
	}

	resp, err := s.githubClient.BareDo(ctx, req)
	if err != nil {
		return nil, "", classifyError(op, resp, err)
	}
	defer resp.Body.Close()

	// A body cut off by the connection is a transport failure; a complete
	// body that is not a user array is a parse failure.
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindTransport, op, err)
	}

	users, err := decodeUsers(body)
	if err != nil {
		return nil, "", apperrors.Wrap(apperrors.KindParse, op, err)
	}

	return users, resp.Header.Get("Link"), nil
}

// decodeUsers parses one page body. Every page must be a JSON array of user
// objects; an empty body, null or a null entry is rejected.
func decodeUsers(body []byte) ([]*github.User, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty response body")
	}
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, errors.New("response body is null, expected an array")
	}

	var users []*github.User
	if err := json.Unmarshal(trimmed, &users); err != nil {
		return nil, err
	}
	for i, user := range users {
		if user == nil {
			return nil, fmt.Errorf("user record %d is null", i)
		}
	}
	return users, nil
}

// ParseNextLink extracts the URL tagged rel="next" from a Link header.
func ParseNextLink(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	match := nextLinkPattern.FindStringSubmatch(header)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(match[1]), true
}

// classifyError maps go-github and transport failures onto apperrors kinds
func classifyError(op string, resp *github.Response, err error) error {
	var errResp *github.ErrorResponse
	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError

	switch {
	case errors.As(err, &errResp) && errResp.Response != nil:
		return httpError(op, errResp.Response, err)
	case errors.As(err, &rateErr) && rateErr.Response != nil:
		return httpError(op, rateErr.Response, err)
	case errors.As(err, &abuseErr) && abuseErr.Response != nil:
		return httpError(op, abuseErr.Response, err)
	case resp != nil && resp.Response != nil && resp.StatusCode >= http.StatusBadRequest:
		return httpError(op, resp.Response, err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return apperrors.Wrap(apperrors.KindParse, op, err)
	}

	return apperrors.Wrap(apperrors.KindTransport, op, err)
}

func httpError(op string, r *http.Response, err error) error {
	status := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if status == "" {
		status = http.StatusText(r.StatusCode)
	}
	appErr := apperrors.HTTP(op, r.StatusCode, status)
	appErr.Err = err
	return appErr
}
