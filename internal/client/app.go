package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/user-management-api/internal/adapter"
	"github.com/MKhiriev/user-management-api/internal/logger"
	"github.com/MKhiriev/user-management-api/models"
)

// Usage is printed by cmd/client when no command can be run.
const Usage = `usage: client [-s address] [-k api-key] [-t timeout] <command> [arguments]

commands:
  list   [-page N] [-size N]
  get    <id>
  create -name NAME -email EMAIL
  update <id> -name NAME -email EMAIL
  delete <id>
  version`

type App struct {
	api    adapter.UsersAPI
	out    io.Writer
	errOut io.Writer
	logger *logger.Logger
}

// NewApp creates a client writing results to out and flag errors to errOut.
func NewApp(api adapter.UsersAPI, out, errOut io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, errOut: errOut, logger: logger}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running command")

	switch command {
	case "list":
		return a.list(ctx, rest)
	case "get":
		return a.get(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "version":
		return a.version(ctx)
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	var req models.PageRequest
	fs := a.newFlagSet("list")
	fs.IntVar(&req.Page, "page", 0, "page number, starting at 1")
	fs.IntVar(&req.PageSize, "size", 0, "page size, at most 100")
	if err := fs.Parse(args); err != nil {
		return err
	}

	page, err := a.api.ListUsers(ctx, req)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	if page.Users == nil {
		page.Users = []models.User{}
	}
	return a.print(page)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	return a.print(user)
}

func (a *App) create(ctx context.Context, args []string) error {
	req, err := a.parseUserRequest("create", args)
	if err != nil {
		return err
	}

	user, err := a.api.CreateUser(ctx, req)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return a.print(user)
}

func (a *App) update(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}
	req, err := a.parseUserRequest("update", args[1:])
	if err != nil {
		return err
	}

	if err = a.api.UpdateUser(ctx, id, req); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	a.logger.Info().Str("id", id).Msg("user updated")
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, err := requireID(args)
	if err != nil {
		return err
	}

	if err = a.api.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	a.logger.Info().Str("id", id).Msg("user deleted")
	return nil
}

func (a *App) version(ctx context.Context) error {
	version, err := a.api.Version(ctx)
	if err != nil {
		return fmt.Errorf("get version: %w", err)
	}
	_, err = fmt.Fprintln(a.out, version)
	return err
}

func (a *App) parseUserRequest(name string, args []string) (models.UserRequest, error) {
	var req models.UserRequest
	fs := a.newFlagSet(name)
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email address")
	if err := fs.Parse(args); err != nil {
		return models.UserRequest{}, err
	}
	return req, nil
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func requireID(args []string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", errMissingID
	}
	return args[0], nil
}
