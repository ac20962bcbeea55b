package bitbucket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitbucket/internal/domain/entities"
	"github.com/rios0rios0/gitbucket/internal/domain/repositories"
)

const (
	reposEndpoint      = "/rest/api/latest/repos"
	normalProjectType  = "NORMAL"
	cloneLinksName     = "clone"
	sshCloneLinkName   = "ssh"
	requestTimeout     = 30 * time.Second
	maxErrorBodyLength = 512
)

// CatalogRepository implements repositories.CatalogRepository against the
// Bitbucket Server REST API.
type CatalogRepository struct {
	httpClient *http.Client
}

var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a CatalogRepository with a pooled HTTP client.
func NewCatalogRepository() *CatalogRepository {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = requestTimeout
	return NewCatalogRepositoryWithClient(client)
}

// NewCatalogRepositoryWithClient creates a CatalogRepository using the given client.
func NewCatalogRepositoryWithClient(client *http.Client) *CatalogRepository {
	return &CatalogRepository{httpClient: client}
}

// pageEnvelope is one page of the repos listing.
type pageEnvelope struct {
	IsLastPage    bool               `json:"isLastPage"`
	NextPageStart *int               `json:"nextPageStart"`
	Values        []remoteRepository `json:"values"`
}

type remoteRepository struct {
	Name    string                  `json:"name"`
	Project remoteProject           `json:"project"`
	Links   map[string][]remoteLink `json:"links"`
}

type remoteProject struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

type remoteLink struct {
	Href string `json:"href"`
	Name string `json:"name"`
}

// sshURL returns the href of the "ssh" entry of the "clone" links.
func (r remoteRepository) sshURL() (string, bool) {
	for _, link := range r.Links[cloneLinksName] {
		if link.Name == sshCloneLinkName {
			return link.Href, true
		}
	}
	return "", false
}

// DiscoverRepositories pages through /rest/api/latest/repos and groups the
// NORMAL-project repositories by project key.
func (r *CatalogRepository) DiscoverRepositories(
	ctx context.Context,
	rootURL string,
	credentials entities.Credentials,
	pageSize int,
) (entities.Catalog, error) {
	catalog := entities.Catalog{}
	seen := make(map[string]struct{})
	authorization := credentials.AuthorizationHeader()
	baseURL := strings.TrimSuffix(rootURL, "/") + reposEndpoint

	start := 0
	pages := 0
	for {
		page, err := r.fetchPage(ctx, baseURL, authorization, start, pageSize)
		if err != nil {
			return nil, err
		}
		pages++

		for _, value := range page.Values {
			if value.Project.Type != normalProjectType {
				continue
			}
			gitURL, ok := value.sshURL()
			if !ok {
				return nil, fmt.Errorf("%w: repository %s/%s", entities.ErrCloneEndpointMissing, value.Project.Key, value.Name)
			}
			key := value.Project.Key + "/" + value.Name
			if _, dup := seen[key]; dup {
				logger.Debugf("Skipping duplicate repository %s", key)
				continue
			}
			seen[key] = struct{}{}
			catalog[value.Project.Key] = append(catalog[value.Project.Key], entities.RemoteRepository{
				Name:   value.Name,
				GitURL: gitURL,
			})
		}

		if page.IsLastPage {
			break
		}
		if page.NextPageStart == nil {
			return nil, fmt.Errorf("%w: page at start=%d is not the last page but has no nextPageStart", entities.ErrPaginationViolation, start)
		}
		if *page.NextPageStart <= start {
			return nil, fmt.Errorf("%w: nextPageStart %d does not advance past start=%d", entities.ErrPaginationViolation, *page.NextPageStart, start)
		}
		start = *page.NextPageStart
	}

	logger.Debugf("Read %d pages, %d repositories in %d projects", pages, catalog.Len(), len(catalog))
	return catalog, nil
}

func (r *CatalogRepository) fetchPage(
	ctx context.Context,
	baseURL, authorization string,
	start, limit int,
) (*pageEnvelope, error) {
	query := url.Values{}
	query.Set("start", strconv.Itoa(start))
	query.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", entities.ErrTransport, err)
	}
	req.Header.Set("Authorization", authorization)
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, entities.ErrInvalidCredentials
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		return nil, fmt.Errorf("%w: API error (status %d): %s", entities.ErrTransport, resp.StatusCode, string(body))
	}

	var page pageEnvelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&page); decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrMalformedResponse, decodeErr)
	}
	return &page, nil
}
