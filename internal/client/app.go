package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/opeller/authgate/internal/logger"
	"github.com/opeller/authgate/models"
)

type App struct {
	api    SessionAPI
	logger *logger.Logger
}

func NewApp(api SessionAPI, logger *logger.Logger) *App {
	return &App{api: api, logger: logger}
}

// Run dispatches a single CLI command. Supported commands:
//
//	whoami                                 print the current session user
//	signup <username> <email> <password>   create an account and log in
//	login  <credential> <password>         log in by username or email
//	logout                                 drop the session
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: authgate-cli <whoami|signup|login|logout> [args]")
	}

	switch args[0] {
	case "whoami":
		return a.whoami(ctx)

	case "signup":
		if len(args) != 4 {
			return errors.New("usage: authgate-cli signup <username> <email> <password>")
		}
		return a.signup(ctx, models.SignupRequest{
			Username: args[1],
			Email:    args[2],
			Password: args[3],
		})

	case "login":
		if len(args) != 3 {
			return errors.New("usage: authgate-cli login <credential> <password>")
		}
		return a.login(ctx, args[1], args[2])

	case "logout":
		return a.logout(ctx)

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) whoami(ctx context.Context) error {
	user, err := a.api.RestoreSession(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	if user == nil {
		fmt.Println("not logged in")
		return nil
	}

	fmt.Printf("logged in as %s <%s> (id %d)\n", user.Username, user.Email, user.ID)
	return nil
}

func (a *App) signup(ctx context.Context, req models.SignupRequest) error {
	user, err := a.api.Signup(ctx, req)
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	fmt.Printf("account created, logged in as %s (id %d)\n", user.Username, user.ID)
	return nil
}

func (a *App) login(ctx context.Context, credential, password string) error {
	user, err := a.api.Login(ctx, credential, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	fmt.Printf("logged in as %s (id %d)\n", user.Username, user.ID)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	fmt.Println("logged out")
	return nil
}
