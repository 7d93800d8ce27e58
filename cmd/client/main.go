package main

import (
	"context"
	"fmt"
	"os"

	"github.com/opeller/authgate/internal/client"
	"github.com/opeller/authgate/internal/logger"
)

func main() {
	log := logger.Nop()
	if os.Getenv("AUTHGATE_CLI_DEBUG") != "" {
		log = logger.NewLogger("authgate-cli")
	}

	api, err := client.NewSessionAPI(client.ConfigFromEnv(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	app := client.NewApp(api, log)
	if err = app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
