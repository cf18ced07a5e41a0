package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// GithubClient returns github organization members and their repositories.
//go:generate mockgen -destination mock/githubcli.go -package mock github.com/m-zajac/orgrepos/internal/app GithubClient
type GithubClient interface {
	OrgMembers(ctx context.Context, org string) ([]Member, error)
	UserRepositories(ctx context.Context, login string) ([]Repository, error)
}

// BundleFetcher fetches complete list of members with their repositories.
type BundleFetcher func(ctx context.Context) ([]UserRepositories, error)

// BundleCache keeps fetched bundles under a storage key.
//go:generate mockgen -destination mock/bundlecache.go -package mock github.com/m-zajac/orgrepos/internal/app BundleCache
type BundleCache interface {
	GetOrFetch(ctx context.Context, key string, fetch BundleFetcher) ([]UserRepositories, error)
	Invalidate(key string) error
}

// Progress is notified about fetched users.
// Calls are never concurrent.
type Progress interface {
	Start(total int)
	Increment()
}

type noProgress struct{}

func (noProgress) Start(int)  {}
func (noProgress) Increment() {}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	cache        BundleCache
	org          string
	bundleKey    string
	timeout      time.Duration
	l            logrus.FieldLogger
}

// NewService creates new Service instance.
// Bundle of org members and their repositories is cached under bundleKey.
// If timeout is 0, service calls are limited only by the callers context.
func NewService(
	githubClient GithubClient,
	cache BundleCache,
	org string,
	bundleKey string,
	timeout time.Duration,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient: githubClient,
		cache:        cache,
		org:          org,
		bundleKey:    bundleKey,
		timeout:      timeout,
		l:            l,
	}
}

// Members returns all members of the organization.
func (s *Service) Members(ctx context.Context) ([]Member, error) {
	if s.org == "" {
		return nil, InvalidRequestError("organization cannot be empty")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	members, err := s.githubClient.OrgMembers(ctx, s.org)
	if err != nil {
		return nil, &OrgMembersError{Org: s.org, Err: err}
	}

	return members, nil
}

// UserRepositories returns members with their repositories.
// Data is read from cache if available, fetched from github otherwise.
// progress may be nil.
func (s *Service) UserRepositories(ctx context.Context, progress Progress) ([]UserRepositories, error) {
	if s.org == "" {
		return nil, InvalidRequestError("organization cannot be empty")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	bundle, err := s.cache.GetOrFetch(ctx, s.bundleKey, func(ctx context.Context) ([]UserRepositories, error) {
		return s.FetchUserRepositories(ctx, progress)
	})
	if err != nil {
		var persistErr *CachePersistError
		if errors.As(err, &persistErr) && bundle != nil {
			s.l.WithError(err).Warn("fetched data not cached")
			return bundle, nil
		}
		return nil, err
	}

	return bundle, nil
}

// UserLanguages returns per user language counts, filtered with search.
// See FilterByLanguage.
func (s *Service) UserLanguages(ctx context.Context, search string, progress Progress) ([]UserLanguages, error) {
	bundle, err := s.UserRepositories(ctx, progress)
	if err != nil {
		return nil, err
	}

	return FilterByLanguage(ProjectLanguages(bundle), search), nil
}

// ClearCache removes cached bundle. Next UserRepositories call fetches data from github.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.cache.Invalidate(s.bundleKey); err != nil {
		return fmt.Errorf("invalidating cache: %w", err)
	}
	s.l.Infof("cache entry %s cleared", s.bundleKey)

	return nil
}

// FetchUserRepositories fetches all org members, then repositories of every member concurrently, bypassing cache.
//
// Failing org members fetch fails the whole operation.
// Users whose repositories can't be fetched are logged and left out of the result. Error is returned only if every user failed.
// Result order is undefined.
func (s *Service) FetchUserRepositories(ctx context.Context, progress Progress) ([]UserRepositories, error) {
	if progress == nil {
		progress = noProgress{}
	}

	members, err := s.githubClient.OrgMembers(ctx, s.org)
	if err != nil {
		return nil, &OrgMembersError{Org: s.org, Err: err}
	}
	s.l.Infof("fetching repositories of %d %s members", len(members), s.org)
	progress.Start(len(members))

	outcomes := SettleAll(ctx, members, func(ctx context.Context, m Member) ([]Repository, error) {
		return s.githubClient.UserRepositories(ctx, m.Login)
	})

	result := make([]UserRepositories, 0, len(members))
	var lastErr error
	for o := range outcomes {
		if o.Err != nil {
			lastErr = o.Err
			s.l.WithField("user", o.Input.Login).WithError(o.Err).Warn("failed to fetch user repositories, skipping user")
			continue
		}

		progress.Increment()
		result = append(result, UserRepositories{
			Member:       o.Input,
			Repositories: o.Value,
		})
	}

	if len(members) > 0 && len(result) == 0 {
		return nil, fmt.Errorf("fetching repositories: all %d users failed, last error: %w", len(members), lastErr)
	}
	s.l.Infof("fetched repositories of %d/%d %s members", len(result), len(members), s.org)

	return result, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
