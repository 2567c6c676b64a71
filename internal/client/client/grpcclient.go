package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/careerhub/internal/client/models"
	"github.com/dmitrijs2005/careerhub/internal/common"
	pb "github.com/dmitrijs2005/careerhub/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthServiceClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    func(accessToken, refreshToken string)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken, s.refreshToken
}

func (s *GRPCClient) SetTokens(accessToken, refreshToken string) {
	s.mu.Lock()
	s.accessToken, s.refreshToken = accessToken, refreshToken
	s.mu.Unlock()
}

func (s *GRPCClient) OnTokensRefreshed(fn func(accessToken, refreshToken string)) {
	s.mu.Lock()
	s.onRefresh = fn
	s.mu.Unlock()
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	access, refresh := s.tokens()
	err := invoker(withAccessToken(ctx, access), method, req, reply, cc, opts...)
	if err == nil || method == pb.AuthService_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if refresh == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: refresh})
	if rerr != nil {
		return rerr
	}

	s.mu.Lock()
	s.accessToken = resp.GetAccessToken()
	s.refreshToken = resp.GetRefreshToken()
	onRefresh := s.onRefresh
	s.mu.Unlock()

	if onRefresh != nil {
		onRefresh(resp.GetAccessToken(), resp.GetRefreshToken())
	}

	return invoker(withAccessToken(ctx, resp.GetAccessToken()), method, req, reply, cc, opts...)
}

func NewAuthClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, p RegisterParams) (*models.Session, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{
		Name:     p.Name,
		Email:    p.Email,
		Password: p.Password,
		Role:     p.Role,
	})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.adopt(resp), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, s.mapError(err)
	}
	return s.adopt(resp), nil
}

// adopt stores the issued tokens for subsequent calls and converts the
// response into a Session.
func (s *GRPCClient) adopt(resp *pb.AuthResponse) *models.Session {
	s.SetTokens(resp.GetAccessToken(), resp.GetRefreshToken())
	return &models.Session{
		AccessToken:  resp.GetAccessToken(),
		RefreshToken: resp.GetRefreshToken(),
		Identity:     toIdentity(resp.GetUser()),
	}
}

func (s *GRPCClient) GetCurrentUser(ctx context.Context) (*models.Profile, error) {
	resp, err := s.client.GetCurrentUser(ctx, &pb.GetCurrentUserRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	u := resp.GetUser()
	return &models.Profile{
		Identity:  toIdentity(u),
		Expertise: u.GetExpertise(),
		Bio:       u.GetBio(),
		CreatedAt: time.UnixMilli(u.GetCreatedAt()).UTC(),
		UpdatedAt: time.UnixMilli(u.GetUpdatedAt()).UTC(),
	}, nil
}

// Logout revokes the refresh token on the server and forgets both tokens
// locally. The local tokens are dropped even when the call fails.
func (s *GRPCClient) Logout(ctx context.Context) error {
	_, refresh := s.tokens()
	s.SetTokens("", "")
	if refresh == "" {
		return nil
	}
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{RefreshToken: refresh}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func toIdentity(u *pb.UserInfo) models.Identity {
	return models.Identity{ID: u.GetId(), Name: u.GetName(), Email: u.GetEmail(), Role: u.GetRole()}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	st, _ := status.FromError(err)
	var sentinel error
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		sentinel = ErrUnauthorized
	case codes.AlreadyExists:
		sentinel = ErrConflict
	case codes.InvalidArgument:
		sentinel = ErrValidation
	case codes.NotFound:
		sentinel = ErrNotFound
	case codes.ResourceExhausted:
		sentinel = ErrTooManyAttempts
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
	return fmt.Errorf("%w: %s", sentinel, st.Message())
}
