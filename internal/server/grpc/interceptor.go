package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// AccessTokenMetadataKey is the metadata key carrying the access JWT.
const AccessTokenMetadataKey = common.AccessTokenHeaderName

var publicMethods = map[string]bool{
	rpc.FullMethod(rpc.MethodPing):         true,
	rpc.FullMethod(rpc.MethodRegister):     true,
	rpc.FullMethod(rpc.MethodLogin):        true,
	rpc.FullMethod(rpc.MethodRefreshToken): true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(AccessTokenMetadataKey)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := s.users.UserIDFromToken(accessToken)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	ctx = context.WithValue(ctx, userIDKey, userID)

	return handler(ctx, req)
}

func userIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "unauthenticated")
	}
	return userID, nil
}
