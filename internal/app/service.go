package app

import (
	"context"
	"fmt"
	"time"
)

// GithubClient returns contributors of github repositories.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/m-zajac/contributorgallery/internal/app GithubClient
type GithubClient interface {
	Contributors(ctx context.Context, owner string, repo string) (*ContributorList, error)
}

// Service is main apps entry point. Provides all app functionality.
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
}

// NewService creates new Service instance.
// timeout limits single call duration, 0 means no limit.
func NewService(githubClient GithubClient, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
	}
}

// Contributors returns contributors of repository owner/repo.
//
// Owner and repo are not validated here; upstream answers with 404 for anything it doesn't know.
// Errors keep their app type (NotFoundError, RateLimitedError, *UpstreamError, *NetworkError)
// in the wrapped chain.
func (s *Service) Contributors(ctx context.Context, owner string, repo string) (*ContributorList, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	list, err := s.githubClient.Contributors(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("retrieving contributors for %s/%s: %w", owner, repo, err)
	}

	return list, nil
}
