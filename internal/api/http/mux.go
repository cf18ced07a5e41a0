package http

import (
	"context"
	"net/http"
	"time"

	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/sirupsen/logrus"
)

// Service provides github organization data.
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/orgrepos/internal/api/http Service
type Service interface {
	Members(ctx context.Context) ([]app.Member, error)
	UserLanguages(ctx context.Context, search string, progress app.Progress) ([]app.UserLanguages, error)
	ClearCache(ctx context.Context) error
}

// NewMux creates router for app's http server
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	requestIDMiddleware := NewRequestIDMiddleware(l)
	wrap := func(method string, h http.HandlerFunc) http.HandlerFunc {
		return requestIDMiddleware(allowMethod(method, timeoutMiddleware(h)))
	}

	m := http.NewServeMux()
	m.HandleFunc("/members", wrap(http.MethodGet, NewMembersHandler(service, l)))
	m.HandleFunc("/languages", wrap(http.MethodGet, NewLanguagesHandler(service, l)))
	m.HandleFunc("/cache", wrap(http.MethodDelete, NewClearCacheHandler(service, l)))

	return m
}

func allowMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}
