package http

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/orgrepos/internal/app"
	"github.com/sirupsen/logrus"
)

type memberResponse struct {
	Login     string `json:"login"`
	ID        int    `json:"id"`
	AvatarURL string `json:"avatarUrl"`
}

func newMembersResponse(members []app.Member) []memberResponse {
	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, memberResponse{
			Login:     m.Login,
			ID:        m.ID,
			AvatarURL: m.AvatarURL,
		})
	}

	return resp
}

type userLanguagesResponse struct {
	Login     string         `json:"login"`
	AvatarURL string         `json:"avatarUrl"`
	Languages map[string]int `json:"languages"`
}

func newLanguagesResponse(users []app.UserLanguages) []userLanguagesResponse {
	resp := make([]userLanguagesResponse, 0, len(users))
	for _, u := range users {
		langs := u.Languages
		if langs == nil {
			langs = app.LanguageCount{}
		}
		resp = append(resp, userLanguagesResponse{
			Login:     u.Member.Login,
			AvatarURL: u.Member.AvatarURL,
			Languages: langs,
		})
	}

	return resp
}

// NewMembersHandler creates handlerfunc returning organization members.
func NewMembersHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := service.Members(r.Context())
		if err != nil {
			writeError(w, err, requestLogger(r, l))
			return
		}

		writeJSON(w, newMembersResponse(members), requestLogger(r, l))
	}
}

// NewLanguagesHandler creates handlerfunc returning members language stats.
// Users are filtered with "search" query param.
func NewLanguagesHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")

		users, err := service.UserLanguages(r.Context(), search, nil)
		if err != nil {
			writeError(w, err, requestLogger(r, l))
			return
		}

		writeJSON(w, newLanguagesResponse(users), requestLogger(r, l))
	}
}

// NewClearCacheHandler creates handlerfunc removing cached github data.
func NewClearCacheHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.ClearCache(r.Context()); err != nil {
			writeError(w, err, requestLogger(r, l))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}, l logrus.FieldLogger) {
	w.Header().Set("Content-type", "application/json; charset=utf-8")
	if err := jsoniter.ConfigFastest.NewEncoder(w).Encode(v); err != nil {
		l.Errorf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error, l logrus.FieldLogger) {
	var (
		corruptErr *app.CacheCorruptError
		orgErr     *app.OrgMembersError
	)
	switch {
	case app.IsInvalidRequestError(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &corruptErr):
		l.WithError(err).Error("cache corrupt")
		http.Error(w, "cached data is corrupt, clear the cache and retry", http.StatusConflict)
	case errors.As(err, &orgErr):
		l.WithError(err).Error("github request failed")
		http.Error(w, orgErr.Error(), http.StatusBadGateway)
	default:
		l.WithError(err).Error("service error")
		http.Error(w, "", http.StatusInternalServerError)
	}
}
