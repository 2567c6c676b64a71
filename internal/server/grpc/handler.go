package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/careerhub/internal/proto"
	"github.com/dmitrijs2005/careerhub/internal/server/models"
	"github.com/dmitrijs2005/careerhub/internal/server/services"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.AuthResponse, error) {

	result, err := s.users.Register(ctx, services.RegisterInput{
		Name:     req.GetName(),
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
		Role:     req.GetRole(),
	})
	if err != nil {
		return nil, toStatus(err)
	}

	return toAuthResponse(result), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.AuthResponse, error) {

	result, err := s.users.Login(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}

	return toAuthResponse(result), nil
}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, req *pb.GetCurrentUserRequest) (*pb.GetCurrentUserResponse, error) {

	user, err := s.users.GetCurrentUser(ctx, accessTokenFromContext(ctx))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GetCurrentUserResponse{User: toUserInfo(user)}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	if err := s.users.Logout(ctx, req.GetRefreshToken()); err != nil {
		return nil, toStatus(err)
	}

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

// toAuthResponse carries only id, name, email and role of the account.
func toAuthResponse(r *services.AuthResult) *pb.AuthResponse {
	return &pb.AuthResponse{
		AccessToken:  r.Tokens.AccessToken,
		RefreshToken: r.Tokens.RefreshToken,
		User: &pb.UserInfo{
			Id:    r.User.ID,
			Name:  r.User.Name,
			Email: r.User.Email,
			Role:  r.User.Role.String(),
		},
	}
}

func toUserInfo(u *models.PublicUser) *pb.UserInfo {
	return &pb.UserInfo{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role.String(),
		Expertise: u.Expertise,
		Bio:       u.Bio,
		CreatedAt: u.CreatedAt.UnixMilli(),
		UpdatedAt: u.UpdatedAt.UnixMilli(),
	}
}
