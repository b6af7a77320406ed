package grpc

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func withToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(AccessTokenMetadataKey, token))
}

func TestInterceptor_PublicMethodsSkipToken(t *testing.T) {
	s := newFakes().server("")

	for _, m := range []string{rpc.MethodPing, rpc.MethodRegister, rpc.MethodLogin, rpc.MethodRefreshToken} {
		called := false
		h := func(ctx context.Context, req any) (any, error) {
			called = true
			return "ok", nil
		}
		resp, err := s.accessTokenInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(m)}, h)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", m, err)
		}
		if !called || resp != "ok" {
			t.Fatalf("%s: handler was not called", m)
		}
	}
}

func TestInterceptor_MissingToken(t *testing.T) {
	s := newFakes().server("")
	info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(rpc.MethodLogTime)}

	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called when token missing")
		return nil, nil
	}

	_, err := s.accessTokenInterceptor(context.Background(), nil, info, h)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestInterceptor_TokenErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		message string
	}{
		{"expired", common.ErrTokenExpired, "token expired"},
		{"invalid", fmt.Errorf("%w: bad signature", common.ErrInvalidToken), "invalid token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakes()
			f.users.tokenErr = tc.err
			s := f.server("")
			info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(rpc.MethodProfile)}

			_, err := s.accessTokenInterceptor(withToken("tok"), nil, info, func(ctx context.Context, req any) (any, error) {
				t.Fatal("handler should not be called")
				return nil, nil
			})
			st, _ := status.FromError(err)
			if st.Code() != codes.Unauthenticated || st.Message() != tc.message {
				t.Fatalf("got %v, want Unauthenticated %q", err, tc.message)
			}
		})
	}
}

func TestInterceptor_ValidTokenStoresUserID(t *testing.T) {
	f := newFakes()
	f.users.tokenUser = "user-42"
	s := f.server("")
	info := &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(rpc.MethodListSkills)}

	var got string
	_, err := s.accessTokenInterceptor(withToken("tok"), nil, info, func(ctx context.Context, req any) (any, error) {
		got, _ = userIDFromContext(ctx)
		return nil, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "user-42" {
		t.Fatalf("user id = %q, want user-42", got)
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	if _, err := userIDFromContext(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}
