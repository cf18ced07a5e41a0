package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/m-zajac/orgrepos/internal/bootstrap"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Service provides github organization data.
type Service interface {
	Members(ctx context.Context) ([]app.Member, error)
	UserLanguages(ctx context.Context, search string, progress app.Progress) ([]app.UserLanguages, error)
	ClearCache(ctx context.Context) error
}

type serviceFactory func(conf bootstrap.Config, l logrus.FieldLogger) (Service, bootstrap.Closer, error)

type rootOptions struct {
	envFile  string
	org      string
	token    string
	logLevel string
	noBar    bool
}

func newRootCmd(newService serviceFactory, l *logrus.Logger) *cobra.Command {
	var (
		opts    rootOptions
		closeFn bootstrap.Closer
	)

	cmd := &cobra.Command{
		Use:          "orgreposcli",
		Short:        "Lists github organization members and languages of their repositories",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(opts.envFile, cmd.Flags().Changed("env-file")); err != nil {
				return err
			}

			level, err := logrus.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			l.Level = level

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeFn != nil {
				return closeFn()
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.envFile, "env-file", ".env", "file with environment variables")
	flags.StringVarP(&opts.org, "org", "o", "", "github organization, overrides GITHUBORGANIZATION")
	flags.StringVarP(&opts.token, "token", "t", "", "github api token, saved for next runs")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level")
	flags.BoolVar(&opts.noBar, "no-progress", false, "don't show progress bar")

	getService := func() (Service, error) {
		var conf bootstrap.Config
		if err := envconfig.Process("", &conf); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		if opts.org != "" {
			conf.GithubOrganization = opts.org
		}
		if opts.token != "" {
			conf.GithubAPIToken = opts.token
		}
		if conf.GithubOrganization == "" {
			return nil, errors.New("organization not set, use --org flag or GITHUBORGANIZATION env variable")
		}

		service, c, err := newService(conf, l)
		if err != nil {
			return nil, err
		}
		closeFn = c

		return service, nil
	}
	cmd.AddCommand(
		newMembersCmd(getService),
		newLanguagesCmd(getService, &opts),
		newClearCacheCmd(getService),
	)

	return cmd
}

func newMembersCmd(service func() (Service, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List organization members",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			members, err := s.Members(cmd.Context())
			if err != nil {
				return err
			}

			renderMembers(cmd.OutOrStdout(), members)
			return nil
		},
	}
}

func newLanguagesCmd(service func() (Service, error), opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "languages [search]",
		Short: "List members with languages of their repositories",
		Long: "List members with languages of their repositories.\n" +
			"With search, only members having a matching language are listed, best matches first.\n" +
			"Data is fetched from github on first run, then read from local cache until clear-cache is called.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}

			var search string
			if len(args) > 0 {
				search = args[0]
			}

			var progress app.Progress
			if !opts.noBar {
				bar := &progressBar{out: cmd.ErrOrStderr()}
				defer bar.Finish()
				progress = bar
			}

			users, err := s.UserLanguages(cmd.Context(), search, progress)
			if err != nil {
				return err
			}

			renderLanguages(cmd.OutOrStdout(), users)
			return nil
		},
	}
}

func newClearCacheCmd(service func() (Service, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-cache",
		Short: "Remove cached github data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := service()
			if err != nil {
				return err
			}
			if err := s.ClearCache(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "cache cleared")
			return nil
		},
	}
}

// loadEnvFile loads variables from env file. Missing file is an error only if it was explicitly requested.
func loadEnvFile(path string, explicit bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}

	return fmt.Errorf("loading env file %s: %w", path, err)
}
