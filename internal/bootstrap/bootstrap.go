// Package bootstrap builds app.Service from configuration. It's shared by server and cli commands.
package bootstrap

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m-zajac/orgrepos/internal/adapter/github"
	"github.com/m-zajac/orgrepos/internal/adapter/limiter"
	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/m-zajac/orgrepos/internal/cache"
	"github.com/m-zajac/orgrepos/internal/database"
	"github.com/sirupsen/logrus"
)

// Config is the container for github and storage configuration.
type Config struct {
	// GithubOrganization - organization which members are listed
	GithubOrganization string `default:""`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api. If empty, token saved in db is used. If there's none, requests are anonymous
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls, per second. 0 disables limit
	GithubAPIRateLimit float64 `default:"10"`

	// GithubAPIBurst - max number of github rest api calls made at once
	GithubAPIBurst int `default:"4"`

	// GithubHTTPTimeout - timeout for a single github api http call
	GithubHTTPTimeout time.Duration `default:"30s"`

	// DBPath - filepath for bolt db data
	DBPath string `default:"./orgrepos.db"`

	// DBBucketName - bolt db bucket name
	DBBucketName string `default:"orgrepos"`

	// DBOpenTimeout - maximum time to wait for db file lock
	DBOpenTimeout time.Duration `default:"1s"`

	// BundleStorageKey - db key of cached members with repositories
	BundleStorageKey string `default:"orgrepos-user-repositories"`

	// TokenStorageKey - db key of saved github api token
	TokenStorageKey string `default:"orgrepos-api-token"`

	// MemoSize - maximum number of cached bundles kept in memory
	MemoSize int `default:"4"`

	// CacheLoadTimeout - max duration of a single fetch-and-store run of the cache, shared by all waiting callers
	CacheLoadTimeout time.Duration `default:"10m"`
}

// Closer releases resources held by the service.
type Closer func() error

// NewService wires github client, bolt store and cache into app.Service.
// Returned Closer must be called when the service is no longer used.
func NewService(conf Config, timeout time.Duration, l logrus.FieldLogger) (*app.Service, Closer, error) {
	kvStore, err := database.NewBoltKVStore(conf.DBPath, conf.DBBucketName, conf.DBOpenTimeout)
	if err != nil {
		return nil, nil, fmt.Errorf("creating bolt kv store: %w", err)
	}

	token, err := ResolveToken(cache.NewTokenStore(kvStore, conf.TokenStorageKey), conf.GithubAPIToken)
	if err != nil {
		kvStore.Close()
		return nil, nil, err
	}
	if token == "" {
		l.Warn("no github api token, using anonymous requests with lower rate limit")
	}

	httpClient := &http.Client{
		Timeout: conf.GithubHTTPTimeout,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
		conf.GithubAPIBurst,
	)
	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		token,
		l.WithField("component", "githubClient"),
	)

	bundles, err := cache.NewBundles(kvStore, conf.MemoSize, conf.CacheLoadTimeout, l.WithField("component", "cache"))
	if err != nil {
		kvStore.Close()
		return nil, nil, fmt.Errorf("creating bundles cache: %w", err)
	}

	service := app.NewService(
		githubClient,
		bundles,
		conf.GithubOrganization,
		conf.BundleStorageKey,
		timeout,
		l.WithField("component", "service"),
	)

	return service, kvStore.Close, nil
}

// ResolveToken returns github api token to use.
// Non empty configured token is saved for later runs. Otherwise previously saved token is returned, if any.
func ResolveToken(store *cache.TokenStore, configured string) (string, error) {
	if configured != "" {
		if err := store.Save(configured); err != nil {
			return "", err
		}
		return configured, nil
	}

	token, _, err := store.Load()
	if err != nil {
		return "", err
	}

	return token, nil
}
