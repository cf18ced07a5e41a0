package app_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/m-zajac/orgrepos/internal/app/mock"
	"github.com/m-zajac/orgrepos/internal/cache"
	kvmock "github.com/m-zajac/orgrepos/internal/mock"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBundleKey = "bundle"

func lang(s string) *string {
	return &s
}

type countingProgress struct {
	total      int
	increments int
}

func (p *countingProgress) Start(total int) { p.total = total }
func (p *countingProgress) Increment()      { p.increments++ }

func newTestService(t *testing.T, gc app.GithubClient, store cache.KVStore, l logrus.FieldLogger) *app.Service {
	bundles, err := cache.NewBundles(store, 4, time.Second, l)
	require.NoError(t, err)

	return app.NewService(gc, bundles, "acme", testBundleKey, time.Second, l)
}

func TestServiceMembers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		org       string
		setupMock func(*mock.MockGithubClient)
		want      []app.Member
		checkErr  func(*testing.T, error)
	}{
		{
			name:      "empty org",
			org:       "",
			setupMock: func(m *mock.MockGithubClient) {},
			checkErr: func(t *testing.T, err error) {
				assert.True(t, app.IsInvalidRequestError(err))
			},
		},
		{
			name: "client error",
			org:  "acme",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					OrgMembers(gomock.Any(), "acme").
					Return(nil, &app.HTTPStatusError{StatusCode: http.StatusNotFound})
			},
			checkErr: func(t *testing.T, err error) {
				var orgErr *app.OrgMembersError
				require.True(t, errors.As(err, &orgErr))
				assert.Equal(t, "acme", orgErr.Org)

				var statusErr *app.HTTPStatusError
				assert.True(t, errors.As(err, &statusErr))
			},
		},
		{
			name: "ok",
			org:  "acme",
			setupMock: func(m *mock.MockGithubClient) {
				m.EXPECT().
					OrgMembers(gomock.Any(), "acme").
					Return([]app.Member{{Login: "alice"}}, nil)
			},
			want: []app.Member{{Login: "alice"}},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			gc := mock.NewMockGithubClient(ctrl)
			tt.setupMock(gc)
			cacheMock := mock.NewMockBundleCache(ctrl)

			l, _ := test.NewNullLogger()
			s := app.NewService(gc, cacheMock, tt.org, testBundleKey, 0, l)

			got, err := s.Members(context.Background())
			if tt.checkErr != nil {
				assert.Nil(t, got)
				tt.checkErr(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceUserRepositoriesPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gc := mock.NewMockGithubClient(ctrl)
	gc.EXPECT().
		OrgMembers(gomock.Any(), "acme").
		Return([]app.Member{{Login: "A"}, {Login: "B"}, {Login: "C"}}, nil)
	gc.EXPECT().
		UserRepositories(gomock.Any(), "A").
		Return([]app.Repository{{Name: "a1", Language: lang("Go")}}, nil)
	gc.EXPECT().
		UserRepositories(gomock.Any(), "B").
		Return(nil, &app.HTTPStatusError{StatusCode: http.StatusInternalServerError})
	gc.EXPECT().
		UserRepositories(gomock.Any(), "C").
		Return([]app.Repository{}, nil)

	l, hook := test.NewNullLogger()
	s := newTestService(t, gc, kvmock.NewKVStore(nil), l)
	progress := &countingProgress{}

	got, err := s.UserRepositories(context.Background(), progress)
	require.NoError(t, err)
	assert.ElementsMatch(t, []app.UserRepositories{
		{Member: app.Member{Login: "A"}, Repositories: []app.Repository{{Name: "a1", Language: lang("Go")}}},
		{Member: app.Member{Login: "C"}, Repositories: []app.Repository{}},
	}, got)

	assert.Equal(t, 3, progress.total)
	assert.Equal(t, 2, progress.increments)

	var warnings []*logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings = append(warnings, e)
		}
	}
	require.Len(t, warnings, 1)
	assert.Equal(t, "B", warnings[0].Data["user"])
}

func TestServiceUserRepositoriesCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gc := mock.NewMockGithubClient(ctrl)
	gc.EXPECT().
		OrgMembers(gomock.Any(), "acme").
		Return([]app.Member{{Login: "A"}}, nil).
		Times(1)
	gc.EXPECT().
		UserRepositories(gomock.Any(), "A").
		Return([]app.Repository{{Name: "a1"}}, nil).
		Times(1)

	store := kvmock.NewKVStore(nil)
	l, _ := test.NewNullLogger()

	first, err := newTestService(t, gc, store, l).UserRepositories(context.Background(), nil)
	require.NoError(t, err)

	// Fresh service instance reads persisted data, without network calls.
	second, err := newTestService(t, gc, store, l).UserRepositories(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.Updates())
}

func TestServiceUserRepositoriesErrors(t *testing.T) {
	t.Run("org members failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gc := mock.NewMockGithubClient(ctrl)
		gc.EXPECT().
			OrgMembers(gomock.Any(), "acme").
			Return(nil, errors.New("connection refused"))

		store := kvmock.NewKVStore(nil)
		l, _ := test.NewNullLogger()

		_, err := newTestService(t, gc, store, l).UserRepositories(context.Background(), nil)
		var orgErr *app.OrgMembersError
		assert.True(t, errors.As(err, &orgErr))
		assert.Equal(t, 0, store.Updates())
	})

	t.Run("every user failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gc := mock.NewMockGithubClient(ctrl)
		gc.EXPECT().
			OrgMembers(gomock.Any(), "acme").
			Return([]app.Member{{Login: "A"}, {Login: "B"}}, nil)
		gc.EXPECT().
			UserRepositories(gomock.Any(), gomock.Any()).
			Return(nil, &app.DecodeError{Err: errors.New("bad json")}).
			Times(2)

		store := kvmock.NewKVStore(nil)
		l, _ := test.NewNullLogger()

		got, err := newTestService(t, gc, store, l).UserRepositories(context.Background(), nil)
		assert.Nil(t, got)
		var decodeErr *app.DecodeError
		assert.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, 0, store.Updates())
	})

	t.Run("empty org is not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gc := mock.NewMockGithubClient(ctrl)
		gc.EXPECT().
			OrgMembers(gomock.Any(), "acme").
			Return([]app.Member{}, nil)

		l, _ := test.NewNullLogger()

		got, err := newTestService(t, gc, kvmock.NewKVStore(nil), l).UserRepositories(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("persist failure is logged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gc := mock.NewMockGithubClient(ctrl)
		gc.EXPECT().
			OrgMembers(gomock.Any(), "acme").
			Return([]app.Member{{Login: "A"}}, nil)
		gc.EXPECT().
			UserRepositories(gomock.Any(), "A").
			Return([]app.Repository{{Name: "a1"}}, nil)

		store := kvmock.NewKVStore(nil)
		store.UpdateErr = errors.New("disk full")
		l, hook := test.NewNullLogger()

		got, err := newTestService(t, gc, store, l).UserRepositories(context.Background(), nil)
		require.NoError(t, err)
		assert.Len(t, got, 1)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})

	t.Run("corrupt cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		gc := mock.NewMockGithubClient(ctrl)
		store := kvmock.NewKVStore(map[string][]byte{
			testBundleKey: []byte(`{"not":"a bundle"}`),
		})
		l, _ := test.NewNullLogger()

		_, err := newTestService(t, gc, store, l).UserRepositories(context.Background(), nil)
		var corruptErr *app.CacheCorruptError
		assert.True(t, errors.As(err, &corruptErr))
	})
}

func TestServiceUserLanguages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gc := mock.NewMockGithubClient(ctrl)
	gc.EXPECT().
		OrgMembers(gomock.Any(), "acme").
		Return([]app.Member{{Login: "alice"}, {Login: "bob"}}, nil)
	gc.EXPECT().
		UserRepositories(gomock.Any(), "alice").
		Return([]app.Repository{{Name: "a", Language: lang("Go")}, {Name: "b", Language: lang("Go")}}, nil)
	gc.EXPECT().
		UserRepositories(gomock.Any(), "bob").
		Return([]app.Repository{{Name: "c", Language: lang("Python")}}, nil)

	l, _ := test.NewNullLogger()
	s := newTestService(t, gc, kvmock.NewKVStore(nil), l)

	got, err := s.UserLanguages(context.Background(), "go", nil)
	require.NoError(t, err)
	assert.Equal(t, []app.UserLanguages{
		{Member: app.Member{Login: "alice"}, Languages: app.LanguageCount{"Go": 2}},
	}, got)
}

func TestServiceClearCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gc := mock.NewMockGithubClient(ctrl)
	gc.EXPECT().
		OrgMembers(gomock.Any(), "acme").
		Return([]app.Member{{Login: "A"}}, nil).
		Times(2)
	gc.EXPECT().
		UserRepositories(gomock.Any(), "A").
		Return([]app.Repository{}, nil).
		Times(2)

	store := kvmock.NewKVStore(nil)
	l, _ := test.NewNullLogger()
	s := newTestService(t, gc, store, l)

	_, err := s.UserRepositories(context.Background(), nil)
	require.NoError(t, err)

	require.NoError(t, s.ClearCache(context.Background()))
	_, ok := store.Data(testBundleKey)
	assert.False(t, ok)

	_, err = s.UserRepositories(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Updates())
}

func TestServiceClearCacheError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mock.NewMockBundleCache(ctrl)
	cacheMock.EXPECT().
		Invalidate(testBundleKey).
		Return(errors.New("db closed"))

	l, _ := test.NewNullLogger()
	s := app.NewService(mock.NewMockGithubClient(ctrl), cacheMock, "acme", testBundleKey, 0, l)

	assert.Error(t, s.ClearCache(context.Background()))
}
