package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unidash/internal/bootstrap"
	"github.com/yigit/unidash/internal/client"
	"github.com/yigit/unidash/internal/config"
	"github.com/yigit/unidash/internal/pkg/kvstore"
	"github.com/yigit/unidash/internal/testutil"
	"github.com/yigit/unidash/internal/ui"
)

type cliHarness struct {
	t      *testing.T
	api    string
	kv     *kvstore.MemoryStore
	out    bytes.Buffer
	errOut bytes.Buffer
}

func newHarness(t *testing.T) *cliHarness {
	t.Helper()
	cfg := config.Default()
	cfg.Server.Mode = "test"
	cfg.Mock.Latency = "0s"

	deps, err := bootstrap.BuildDependencies(cfg, testutil.Dataset(), zerolog.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(bootstrap.SetupRouter(cfg, deps, zerolog.Nop()))
	t.Cleanup(srv.Close)

	return &cliHarness{t: t, api: srv.URL + "/api/v1", kv: kvstore.NewMemoryStore()}
}

func (h *cliHarness) run(args ...string) error {
	h.out.Reset()
	h.errOut.Reset()
	app := newApp(&h.out, &h.errOut, func(string) (kvstore.Store, error) { return h.kv, nil })
	return app.RunContext(context.Background(), append([]string{"unidash", "--api", h.api}, args...))
}

func (h *cliHarness) login(email string) {
	h.t.Helper()
	require.NoError(h.t, h.run("login", "--email", email, "--password", testutil.Password), h.errOut.String())
}

func TestLoginAndLogout(t *testing.T) {
	h := newHarness(t)

	h.login("kwame.mensah@test.edu")
	assert.Contains(t, h.errOut.String(), "Signed in as kwame mensah (student)")

	id, _ := h.kv.Get(userIDKey)
	assert.Equal(t, "student-1", id)
	token, ok := h.kv.Get(client.TokenKey)
	assert.True(t, ok)
	assert.NotEmpty(t, token)

	require.NoError(t, h.run("logout"))
	_, ok = h.kv.Get(client.TokenKey)
	assert.False(t, ok)
}

func TestLoginTrimsTypedEmail(t *testing.T) {
	h := newHarness(t)

	h.login("  kwame.mensah@test.edu ")
	id, _ := h.kv.Get(userIDKey)
	assert.Equal(t, "student-1", id)
}

func TestLoginFailureIsReported(t *testing.T) {
	h := newHarness(t)

	err := h.run("login", "--email", "kwame.mensah@test.edu", "--password", "nope")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, h.errOut.String(), "Invalid email or password")
	assert.NotContains(t, h.errOut.String(), "session has expired")
}

func TestExpiredSessionClearsState(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.kv.Set(client.TokenKey, "expired"))
	require.NoError(t, h.kv.Set(userIDKey, "student-1"))

	err := h.run("courses")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, h.errOut.String(), "unidash login")

	_, ok := h.kv.Get(userIDKey)
	assert.False(t, ok)
}

func TestStudentCommands(t *testing.T) {
	h := newHarness(t)
	h.login("kwame.mensah@test.edu")

	require.NoError(t, h.run("statement"))
	assert.Contains(t, h.out.String(), "Tuition")
	assert.Contains(t, h.out.String(), "GH₵ 7000.00")

	require.NoError(t, h.run("enrollments"))
	assert.Contains(t, h.out.String(), "enrollment-1")

	require.NoError(t, h.run("courses", "--limit", "1"))
	assert.Contains(t, h.out.String(), "page 1 of 2 (2 total)")

	require.NoError(t, h.run("enroll", "course-1"))
	assert.Contains(t, h.errOut.String(), "CS101")

	assert.ErrorIs(t, h.run("enroll", "course-2"), errReported)
	assert.Contains(t, h.errOut.String(), "Course is full")

	require.NoError(t, h.run("menu"))
	assert.Contains(t, h.out.String(), "/student")

	assert.ErrorIs(t, h.run("students"), errReported)
}

func TestPayRefreshesStatement(t *testing.T) {
	h := newHarness(t)
	h.login("ama.owusu@test.edu")

	require.NoError(t, h.run("pay", "--amount", "500", "--type", "library", "--refresh", "10ms"))
	assert.Contains(t, h.errOut.String(), "Payment initiated")
	assert.Contains(t, h.out.String(), "pending")
	assert.Contains(t, h.out.String(), "Balance")
}

func TestPayRefreshStopsWhenCancelled(t *testing.T) {
	h := newHarness(t)
	h.login("ama.owusu@test.edu")

	app := newApp(&h.out, &h.errOut, func(string) (kvstore.Store, error) { return h.kv, nil })
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := app.RunContext(ctx, []string{"unidash", "--api", h.api, "pay", "--amount", "500", "--refresh", "1h"})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)
	assert.NotContains(t, h.out.String(), "Balance")
}

func TestStaffNeedsStudentFlag(t *testing.T) {
	h := newHarness(t)
	h.login("abena.asante@test.edu")

	assert.EqualError(t, h.run("statement"), "--student is required")

	require.NoError(t, h.run("statement", "--student", "student-3"))
	assert.Contains(t, h.out.String(), "GH₵ 0.00")

	require.NoError(t, h.run("students", "--limit", "5"))
	assert.Contains(t, h.out.String(), "student-1")
}

func TestWatchRequiresLogin(t *testing.T) {
	h := newHarness(t)

	err := h.run("watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unidash login")
}

func TestSidebarCommand(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.run("sidebar"))
	assert.Equal(t, "sidebar: open\n", h.out.String())

	require.NoError(t, h.run("sidebar", "toggle"))
	assert.Equal(t, "sidebar: closed\n", h.out.String())

	v, _ := h.kv.Get(ui.SidebarKey)
	assert.Equal(t, "false", v)

	require.NoError(t, h.run("sidebar"))
	assert.Equal(t, "sidebar: closed\n", h.out.String())

	assert.Error(t, h.run("sidebar", "sideways"))
}
