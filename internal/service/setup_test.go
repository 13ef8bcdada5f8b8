package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/commonspace/internal/auth"
	"github.com/mmynk/commonspace/internal/metrics"
	"github.com/mmynk/commonspace/internal/middleware"
	"github.com/mmynk/commonspace/internal/storage/sqlite"
	pb "github.com/mmynk/commonspace/pkg/proto"
	"github.com/mmynk/commonspace/pkg/proto/protoconnect"
)

const testPassword = "hunter22"

// testServer runs all three services over HTTP against a temporary SQLite database.
type testServer struct {
	url   string
	store *sqlite.SQLiteStore
}

// testUser holds clients that authenticate as one registered user.
type testUser struct {
	email      string
	token      string
	auth       protoconnect.AuthServiceClient
	households protoconnect.HouseholdServiceClient
	expenses   protoconnect.ExpenseServiceClient
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := slog.New(slog.DiscardHandler)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
	m := metrics.New(prometheus.NewRegistry())

	public := connect.WithInterceptors(
		middleware.OptionalAuth(jwtManager),
		middleware.MetricsInterceptor(m),
		middleware.LoggingInterceptor(logger),
	)
	protected := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager),
		middleware.MetricsInterceptor(m),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), public))
	mux.Handle(protoconnect.NewHouseholdServiceHandler(NewHouseholdService(store, logger), protected))
	mux.Handle(protoconnect.NewExpenseServiceHandler(NewExpenseService(store, m, logger), protected))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{url: server.URL, store: store}
}

func bearer(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}

// clients returns service clients that send the given token.
func (s *testServer) clients(email, token string) *testUser {
	opt := connect.WithInterceptors(bearer(token))
	return &testUser{
		email:      email,
		token:      token,
		auth:       protoconnect.NewAuthServiceClient(http.DefaultClient, s.url, opt),
		households: protoconnect.NewHouseholdServiceClient(http.DefaultClient, s.url, opt),
		expenses:   protoconnect.NewExpenseServiceClient(http.DefaultClient, s.url, opt),
	}
}

func (s *testServer) register(t *testing.T, email string) *testUser {
	t.Helper()

	resp, err := s.clients("", "").auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       email,
		DisplayName: email,
		Password:    testPassword,
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}
	return s.clients(resp.Msg.User.Email, resp.Msg.Token)
}

// household registers the given users and puts them all in one new household.
func (s *testServer) household(t *testing.T, emails ...string) (string, []*testUser) {
	t.Helper()

	users := make([]*testUser, len(emails))
	for i, email := range emails {
		users[i] = s.register(t, email)
	}

	created, err := users[0].households.CreateHousehold(context.Background(), connect.NewRequest(&pb.CreateHouseholdRequest{Name: "Flat"}))
	if err != nil {
		t.Fatalf("CreateHousehold failed: %v", err)
	}
	code := created.Msg.Household.FlatCode

	for _, u := range users[1:] {
		if _, err := u.households.JoinHousehold(context.Background(), connect.NewRequest(&pb.JoinHouseholdRequest{FlatCode: code})); err != nil {
			t.Fatalf("JoinHousehold(%s) failed: %v", u.email, err)
		}
	}
	return code, users
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected code %v, got %v (%v)", want, connectErr.Code(), err)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
