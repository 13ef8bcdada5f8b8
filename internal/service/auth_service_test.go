package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/mmynk/commonspace/pkg/proto"
)

func TestRegister_And_GetCurrentUser(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	resp, err := server.clients("", "").auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "  Anna@Flat.Test ",
		DisplayName: " Anna ",
		Password:    testPassword,
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if resp.Msg.Token == "" {
		t.Fatal("expected a token")
	}
	if !resp.Msg.ExpiresAt.AsTime().After(time.Now()) {
		t.Errorf("expected ExpiresAt in the future, got %v", resp.Msg.ExpiresAt.AsTime())
	}
	if resp.Msg.User.Email != "anna@flat.test" {
		t.Errorf("email: expected normalized 'anna@flat.test', got '%s'", resp.Msg.User.Email)
	}
	if resp.Msg.User.DisplayName != "Anna" {
		t.Errorf("display name: expected 'Anna', got '%s'", resp.Msg.User.DisplayName)
	}

	me, err := server.clients("", resp.Msg.Token).auth.GetCurrentUser(ctx, connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.Id != resp.Msg.User.Id {
		t.Errorf("user id: expected %s, got %s", resp.Msg.User.Id, me.Msg.User.Id)
	}
	if me.Msg.User.DisplayName != "Anna" {
		t.Errorf("display name: expected 'Anna', got '%s'", me.Msg.User.DisplayName)
	}
	if me.Msg.User.FlatCode != "" {
		t.Errorf("expected no flat code, got '%s'", me.Msg.User.FlatCode)
	}
}

func TestRegister_Invalid(t *testing.T) {
	server := setupTestServer(t)
	client := server.clients("", "").auth
	server.register(t, "anna@flat.test")

	tests := []struct {
		name string
		req  *pb.RegisterRequest
		want connect.Code
	}{
		{"bad email", &pb.RegisterRequest{Email: "anna", DisplayName: "Anna", Password: testPassword}, connect.CodeInvalidArgument},
		{"blank name", &pb.RegisterRequest{Email: "bo@flat.test", DisplayName: "   ", Password: testPassword}, connect.CodeInvalidArgument},
		{"short password", &pb.RegisterRequest{Email: "bo@flat.test", DisplayName: "Bo", Password: "12345"}, connect.CodeInvalidArgument},
		{"taken email", &pb.RegisterRequest{Email: "ANNA@flat.test", DisplayName: "Anna", Password: testPassword}, connect.CodeAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Register(context.Background(), connect.NewRequest(tt.req))
			assertCode(t, err, tt.want)
		})
	}
}

func TestLogin(t *testing.T) {
	server := setupTestServer(t)
	server.register(t, "anna@flat.test")
	client := server.clients("", "").auth
	ctx := context.Background()

	resp, err := client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "Anna@flat.test", Password: testPassword}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.Token == "" {
		t.Error("expected a token")
	}

	_, err = client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "anna@flat.test", Password: "wrong-password"}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "nobody@flat.test", Password: testPassword}))
	assertCode(t, err, connect.CodeUnauthenticated)

	_, err = client.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "anna@flat.test"}))
	assertCode(t, err, connect.CodeInvalidArgument)
}

func TestLogin_StorageFailure(t *testing.T) {
	server := setupTestServer(t)
	server.register(t, "anna@flat.test")
	client := server.clients("", "").auth

	// A broken database is a server fault, not a wrong password
	if err := server.store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	_, err := client.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{Email: "anna@flat.test", Password: testPassword}))
	assertCode(t, err, connect.CodeInternal)
}

func TestGetCurrentUser_Unauthenticated(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, err := server.clients("", "").auth.GetCurrentUser(ctx, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeUnauthenticated)

	// A bad token is ignored on the auth service, so the call is still anonymous
	_, err = server.clients("", "not-a-jwt").auth.GetCurrentUser(ctx, connect.NewRequest(&emptypb.Empty{}))
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestLogout(t *testing.T) {
	server := setupTestServer(t)
	anna := server.register(t, "anna@flat.test")

	if _, err := anna.auth.Logout(context.Background(), connect.NewRequest(&emptypb.Empty{})); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
}
