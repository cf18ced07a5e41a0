package app

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Member entity.
type Member struct {
	Login     string `json:"login"`
	ID        int    `json:"id"`
	ReposURL  string `json:"repos_url"`
	AvatarURL string `json:"avatar_url"`
}

// Repository entity. Language is nil when github reports none.
type Repository struct {
	Name     string  `json:"name"`
	Language *string `json:"language"`
}

// UserRepositories pairs a member with all of its repositories.
//
// Serialized as a two element json array: [member, [repository, ...]].
type UserRepositories struct {
	Member       Member
	Repositories []Repository
}

// MarshalJSON implements json.Marshaler.
func (u UserRepositories) MarshalJSON() ([]byte, error) {
	repos := u.Repositories
	if repos == nil {
		repos = []Repository{}
	}

	return json.Marshal([]interface{}{u.Member, repos})
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *UserRepositories) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [member, repositories] pair, got %d elements", len(pair))
	}

	var member Member
	if err := json.Unmarshal(pair[0], &member); err != nil {
		return fmt.Errorf("member: %w", err)
	}
	if member.Login == "" {
		return errors.New("member: missing login")
	}

	var repos []Repository
	if err := json.Unmarshal(pair[1], &repos); err != nil {
		return fmt.Errorf("repositories: %w", err)
	}
	if repos == nil {
		return errors.New("repositories: expected array")
	}

	u.Member = member
	u.Repositories = repos

	return nil
}

// LanguageCount maps language name to number of repositories using it.
type LanguageCount map[string]int

// UserLanguages is a per user projection of repositories grouped by language.
type UserLanguages struct {
	Member    Member
	Languages LanguageCount
}
