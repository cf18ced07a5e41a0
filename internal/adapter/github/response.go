package github

import (
	"errors"

	"github.com/m-zajac/orgrepos/internal/app"
)

// record is a single element of paginated github response.
type record interface {
	validate() error
}

type memberResponse struct {
	Login     string `json:"login"`
	ID        int    `json:"id"`
	ReposURL  string `json:"repos_url"`
	AvatarURL string `json:"avatar_url"`
}

func (m memberResponse) validate() error {
	if m.Login == "" {
		return errors.New("member without login")
	}
	return nil
}

type membersResponse []memberResponse

func (r membersResponse) ToMembers() []app.Member {
	ms := make([]app.Member, 0, len(r))
	for _, m := range r {
		ms = append(ms, app.Member{
			Login:     m.Login,
			ID:        m.ID,
			ReposURL:  m.ReposURL,
			AvatarURL: m.AvatarURL,
		})
	}

	return ms
}

type repositoryResponse struct {
	Name     string  `json:"name"`
	Language *string `json:"language"`
}

func (r repositoryResponse) validate() error {
	if r.Name == "" {
		return errors.New("repository without name")
	}
	return nil
}

type repositoriesResponse []repositoryResponse

func (r repositoriesResponse) ToRepositories() []app.Repository {
	rs := make([]app.Repository, 0, len(r))
	for _, repo := range r {
		rs = append(rs, app.Repository{
			Name:     repo.Name,
			Language: repo.Language,
		})
	}

	return rs
}
