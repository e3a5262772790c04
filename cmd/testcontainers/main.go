// Standalone runner that boots the full container stack (database,
// authorizer, API) for local development and keeps it up until interrupted.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/greenloop/plantcare/tests/helpers"
	"github.com/joho/godotenv"
)

const usage = `
Boot the plantcare container stack with environment variables from a .env file.

Usage:

  testcontainers [-h] [-f ENV_FILE_PATH]

The stack stays up until SIGINT or SIGTERM.
`

func main() {
	var showHelp bool
	var envFilename string
	flag.BoolVar(&showHelp, "h", false, "show help")
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	if showHelp {
		fmt.Print(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment from %s", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load %s: %v", envFilename, err)
		}
	} else {
		log.Print("No env file given, using the current environment")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	var stack *helpers.TestContainers
	go func() {
		var err error
		stack, err = helpers.CreateAllTestContainers(nil)
		if err != nil {
			log.Fatalf("Failed to create container stack: %v", err)
		}
	}()

	sig := <-sigs
	log.Printf("Received %v, terminating container stack...", sig)
	if stack != nil {
		stack.Terminate(nil)
	}
}
