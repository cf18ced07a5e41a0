package grpc

import (
	"context"
	"errors"

	"github.com/m-zajac/orgrepos/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// AppService provides organization members and their languages.
type AppService interface {
	Members(ctx context.Context) ([]app.Member, error)
	UserLanguages(ctx context.Context, search string, progress app.Progress) ([]app.UserLanguages, error)
}

// Service implements LanguagesServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ LanguagesServer = &Service{}

// NewService returns new Service instance
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// Members returns list of organization members.
// Every element is a struct with "login", "id" and "avatarUrl" fields.
func (s *Service) Members(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	members, err := s.appService.Members(ctx)
	if err != nil {
		return nil, statusError(err)
	}

	items := make([]interface{}, 0, len(members))
	for _, m := range members {
		items = append(items, map[string]interface{}{
			"login":     m.Login,
			"id":        m.ID,
			"avatarUrl": m.AvatarURL,
		})
	}

	return newList(items)
}

// UserLanguages returns members language stats, filtered with search.
// Every element is a struct with "login", "avatarUrl" and "languages" fields.
func (s *Service) UserLanguages(ctx context.Context, search *wrapperspb.StringValue) (*structpb.ListValue, error) {
	users, err := s.appService.UserLanguages(ctx, search.GetValue(), nil)
	if err != nil {
		return nil, statusError(err)
	}

	items := make([]interface{}, 0, len(users))
	for _, u := range users {
		langs := make(map[string]interface{}, len(u.Languages))
		for lang, count := range u.Languages {
			langs[lang] = count
		}
		items = append(items, map[string]interface{}{
			"login":     u.Member.Login,
			"avatarUrl": u.Member.AvatarURL,
			"languages": langs,
		})
	}

	return newList(items)
}

func newList(items []interface{}) (*structpb.ListValue, error) {
	l, err := structpb.NewList(items)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding reply: %v", err)
	}
	return l, nil
}

func statusError(err error) error {
	var (
		corruptErr *app.CacheCorruptError
		orgErr     *app.OrgMembersError
	)
	switch {
	case app.IsInvalidRequestError(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &corruptErr):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.As(err, &orgErr):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
