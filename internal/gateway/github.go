// Package gateway holds clients for upstream services.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/observability"
)

// GithubClient fetches a user's public repositories from the GitHub API.
// Responses are relayed as received, without reshaping.
type GithubClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewGithubClient(baseURL, token string) *GithubClient {
	return &GithubClient{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Repos returns the five most recently listed repositories for a GitHub
// username. Successful responses are cached briefly to keep repeated profile
// views off the upstream rate limit.
func (g *GithubClient) Repos(ctx context.Context, username string) (json.RawMessage, error) {
	span, ctx := observability.NewSpan(ctx, "github.repos")
	defer span.End()
	span.AddAttributes(attribute.String("github.username", username))

	var repos json.RawMessage
	err := cache.Aside(ctx, cache.GithubReposKey(username), &repos, cache.GithubReposTTL, func() error {
		body, err := g.fetch(ctx, username)
		if err != nil {
			return err
		}
		repos = body
		return nil
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	return repos, nil
}

func (g *GithubClient) fetch(ctx context.Context, username string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		g.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	req.Header.Set("User-Agent", "devconnect")
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if g.token != "" {
		req.Header.Set("Authorization", "Bearer "+g.token)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		observability.GithubRequests.WithLabelValues("error").Inc()
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Unable to reach Github")
	}
	defer resp.Body.Close()
	observability.GithubRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusNotFound {
		return nil, models.NewUpstreamError(http.StatusNotFound, "No Github profile found")
	}
	if resp.StatusCode != http.StatusOK {
		observability.Logger.Warn("github request failed",
			"username", username, "status", resp.StatusCode)
		return nil, models.NewUpstreamError(resp.StatusCode, "Unable to fetch Github repos")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return json.RawMessage(body), nil
}
