package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/m-zajac/orgrepos/internal/api/http/mock"
	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := 5 * time.Millisecond

	tests := []struct {
		name           string
		method         string
		path           string
		muxTimeout     time.Duration
		wantStatusCode int
	}{
		{
			name:           "valid languages request",
			method:         http.MethodGet,
			path:           "/languages?search=go",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "service exceeding handler timeout",
			method:         http.MethodGet,
			path:           "/languages",
			muxTimeout:     time.Microsecond,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "members",
			method:         http.MethodGet,
			path:           "/members",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "clear cache",
			method:         http.MethodDelete,
			path:           "/cache",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:           "invalid method",
			method:         http.MethodPost,
			path:           "/languages",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusMethodNotAllowed,
		},
		{
			name:           "invalid path",
			method:         http.MethodGet,
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mock.NewMockService(ctrl)
			service.EXPECT().
				UserLanguages(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, search string, progress app.Progress) ([]app.UserLanguages, error) {
					time.Sleep(serviceDelay)

					select {
					case <-ctx.Done():
						return nil, errors.New("context timeout")
					default:
						return nil, nil
					}
				}).
				MaxTimes(1)
			service.EXPECT().Members(gomock.Any()).Return(nil, nil).MaxTimes(1)
			service.EXPECT().ClearCache(gomock.Any()).Return(nil).MaxTimes(1)

			mux := NewMux(service, tt.muxTimeout, logrus.New())

			server := httptest.NewServer(mux)
			defer server.Close()

			req, err := http.NewRequest(tt.method, server.URL+tt.path, nil)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
