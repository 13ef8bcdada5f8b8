package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/mmynk/commonspace/internal/config"
	"github.com/mmynk/commonspace/internal/models"
	"github.com/mmynk/commonspace/internal/storage/sqlite"
	pb "github.com/mmynk/commonspace/pkg/proto"
	"github.com/mmynk/commonspace/pkg/proto/protoconnect"
)

// seedDatabase creates a household where a@flat.test paid 90 split three ways.
func seedDatabase(t *testing.T) (string, string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "commonspace.db")
	store, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	household := &models.Household{Name: "Storgatan 5"}
	require.NoError(t, store.CreateHousehold(ctx, household))

	for _, email := range []string{"a@flat.test", "b@flat.test", "c@flat.test"} {
		user := models.NewUser(email, email, "x")
		require.NoError(t, store.CreateUser(ctx, user))
		require.NoError(t, store.SetUserFlatCode(ctx, user.ID, household.Code))
	}

	require.NoError(t, store.CreateExpense(ctx, &models.Expense{
		FlatCode:     household.Code,
		Description:  "Groceries",
		Amount:       decimal.NewFromInt(90),
		PaidBy:       "a@flat.test",
		SplitBetween: []string{"a@flat.test", "b@flat.test", "c@flat.test"},
	}))

	return dbPath, household.Code
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("JWT_SECRET", "cli-test-secret")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestBalancesCommand(t *testing.T) {
	dbPath, code := seedDatabase(t)

	out, err := runCLI(t, "balances", "--db", dbPath, "--flat-code", strings.ToLower(code))
	require.NoError(t, err)

	assert.Contains(t, out, "Storgatan 5")
	assert.Regexp(t, `a@flat\.test\s+60\.00`, out)
	assert.Regexp(t, `b@flat\.test\s+-30\.00`, out)
	assert.Regexp(t, `b@flat\.test\s+a@flat\.test\s+30\.00`, out)
	assert.Regexp(t, `c@flat\.test\s+a@flat\.test\s+30\.00`, out)
}

func TestBalancesCommand_JSON(t *testing.T) {
	dbPath, code := seedDatabase(t)

	out, err := runCLI(t, "balances", "--db", dbPath, "--flat-code", code, "--json")
	require.NoError(t, err)

	var report pb.GetBalancesResponse
	require.NoError(t, protojson.Unmarshal([]byte(out), &report))
	assert.False(t, report.Settled)
	require.Len(t, report.Debts, 2)
	assert.Equal(t, "b@flat.test", report.Debts[0].From)
	assert.Equal(t, "30.00", report.Debts[0].Amount)
	require.Len(t, report.Balances, 3)
	assert.Equal(t, "60.00", report.Balances[0].NetBalance)
}

func TestBalancesCommand_Errors(t *testing.T) {
	dbPath, _ := seedDatabase(t)

	_, err := runCLI(t, "balances", "--db", dbPath)
	assert.Error(t, err, "missing --flat-code")

	_, err = runCLI(t, "balances", "--db", dbPath, "--flat-code", "bad")
	assert.Error(t, err)

	_, err = runCLI(t, "balances", "--db", dbPath, "--flat-code", "ZZZ-ZZZ-ZZZ")
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<h1>CommonSpace</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "app.js"), []byte("console.log(1)"), 0o644))

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	cfg := &config.Config{
		StaticPath:  static,
		JWTSecret:   "test-secret",
		TokenTTL:    time.Hour,
		CORSOrigins: []string{"https://flat.example"},
	}
	handler, err := newHandler(cfg, store, prometheus.NewRegistry(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	_, err = client.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{Email: "nobody@flat.test", Password: "whatever"}))
	assert.Error(t, err)

	body := get(t, server.URL+"/metrics")
	assert.Contains(t, body, `commonspace_rpc_requests_total{code="unauthenticated",procedure="/commonspace.v1.AuthService/Login"} 1`)

	assert.Contains(t, get(t, server.URL+"/"), "CommonSpace")
	assert.Contains(t, get(t, server.URL+"/app.js"), "console.log")
	assert.Contains(t, get(t, server.URL+"/households/join"), "CommonSpace")

	resp, err := http.Get(server.URL + "/commonspace.v1.Unknown/Method")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req, err := http.NewRequest(http.MethodOptions, server.URL+protoconnect.ExpenseServiceGetBalancesProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://flat.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "authorization,content-type")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "https://flat.example", resp.Header.Get("Access-Control-Allow-Origin"))
}

func get(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
