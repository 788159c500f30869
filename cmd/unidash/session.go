package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/yigit/unidash/internal/client"
	"github.com/yigit/unidash/internal/pkg/kvstore"
	"github.com/yigit/unidash/internal/pkg/logger"
	"github.com/yigit/unidash/internal/ui"
)

// Keys of the signed-in account, saved next to the token
const (
	userIDKey   = "user_id"
	userRoleKey = "user_role"
)

// errReported marks failures already shown to the user as a toast
var errReported = errors.New("reported")

type storeOpener func(path string) (kvstore.Store, error)

// session is what every command runs with
type session struct {
	client *client.Client
	kv     kvstore.Store
	ui     *ui.Store
	out    io.Writer
	errOut io.Writer
	logger zerolog.Logger
}

func newApp(out, errOut io.Writer, open storeOpener) *cli.App {
	var sess *session

	return &cli.App{
		Name:      "unidash",
		Usage:     "university dashboard from the command line",
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Value:   "http://localhost:8080/api/v1",
				Usage:   "base URL of the API",
				EnvVars: []string{"UNIDASH_API"},
			},
			&cli.StringFlag{
				Name:    "state",
				Usage:   "path of the local state file",
				EnvVars: []string{"UNIDASH_STATE"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "log level (debug, info, warn, error)",
				EnvVars: []string{"UNIDASH_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			lgr := logger.Configure(logger.Config{
				Level:  logger.LogLevel(c.String("log-level")),
				Pretty: true,
				Output: errOut,
			})

			kv, err := open(c.String("state"))
			if err != nil {
				return fmt.Errorf("failed to open state: %w", err)
			}

			sess = &session{kv: kv, out: out, errOut: errOut, logger: lgr}
			sess.ui = ui.NewStore(kv, lgr)
			sess.client = client.New(c.String("api"), kv, client.NavigatorFunc(sess.redirect))
			c.App.Metadata = map[string]interface{}{"session": sess}
			return nil
		},
		After: func(c *cli.Context) error {
			if sess != nil {
				sess.ui.Close()
			}
			return nil
		},
		Commands: commands(),
	}
}

func current(c *cli.Context) *session {
	return c.App.Metadata["session"].(*session)
}

// commandContext is cancelled when the user interrupts the command
func commandContext(c *cli.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
}

func (s *session) redirect(path string) {
	_ = s.kv.Remove(userIDKey)
	_ = s.kv.Remove(userRoleKey)
	s.logger.Debug().Str("path", path).Msg("Redirecting")
	fmt.Fprintln(s.errOut, "Your session has expired. Run `unidash login` to sign in again.")
}

// toast shows a toast and prints it
func (s *session) toast(in ui.ToastInput) {
	s.ui.Toast(in)
	if in.Message == "" {
		fmt.Fprintf(s.errOut, "[%s] %s\n", in.Type, in.Title)
		return
	}
	fmt.Fprintf(s.errOut, "[%s] %s: %s\n", in.Type, in.Title, in.Message)
}

// fail turns a failed call into an error toast
func (s *session) fail(title string, err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		s.toast(ui.ToastInput{Title: title, Message: apiErr.Message, Type: ui.TypeError})
	} else {
		s.logger.Debug().Err(err).Msg("Request failed")
		s.toast(ui.ToastInput{Title: title, Message: "Unable to reach the server. Please try again.", Type: ui.TypeError})
	}
	return errReported
}

// studentID returns the --student flag, or the signed-in student's own id
func (s *session) studentID(c *cli.Context) (string, error) {
	if id := c.String("student"); id != "" {
		return id, nil
	}
	if role, _ := s.kv.Get(userRoleKey); role == "student" {
		id, _ := s.kv.Get(userIDKey)
		return id, nil
	}
	return "", errors.New("--student is required")
}
