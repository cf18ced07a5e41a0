package grpc

import (
	"context"

	"github.com/m-zajac/orgrepos/internal/app"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client calls orgrepos.Languages service and decodes replies into app types.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates new Client instance.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// Members returns organization members.
func (c *Client) Members(ctx context.Context, opts ...grpc.CallOption) ([]app.Member, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, membersMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}

	members := make([]app.Member, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		fields := v.GetStructValue().GetFields()
		members = append(members, app.Member{
			Login:     fields["login"].GetStringValue(),
			ID:        int(fields["id"].GetNumberValue()),
			AvatarURL: fields["avatarUrl"].GetStringValue(),
		})
	}

	return members, nil
}

// UserLanguages returns language stats of members, filtered with search.
func (c *Client) UserLanguages(ctx context.Context, search string, opts ...grpc.CallOption) ([]app.UserLanguages, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, userLanguagesMethod, wrapperspb.String(search), out, opts...); err != nil {
		return nil, err
	}

	users := make([]app.UserLanguages, 0, len(out.GetValues()))
	for _, v := range out.GetValues() {
		fields := v.GetStructValue().GetFields()
		langs := make(app.LanguageCount)
		for lang, count := range fields["languages"].GetStructValue().GetFields() {
			langs[lang] = int(count.GetNumberValue())
		}
		users = append(users, app.UserLanguages{
			Member: app.Member{
				Login:     fields["login"].GetStringValue(),
				AvatarURL: fields["avatarUrl"].GetStringValue(),
			},
			Languages: langs,
		})
	}

	return users, nil
}
