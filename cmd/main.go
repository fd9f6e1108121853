package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PIG208/Airbook"
	"github.com/PIG208/Airbook/config"
	"github.com/PIG208/Airbook/database"
)

// Cli encapsulates the root Cobra command.
type Cli struct {
	cmd *cobra.Command
}

// appInstance holds the core instance and its configuration so commands
// share one initialized application.
type appInstance struct {
	airbook *airbook.Airbook
	cnf     *config.Configuration
}

func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the core before any
// command runs.
func preRun(app *appInstance) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig("airbook.json")
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newAirbook, err := setupAirbook(cnf)
		if err != nil {
			log.Fatal(err)
		}

		app.airbook = newAirbook
		app.cnf = cnf

		return nil
	}
}

func setupAirbook(cfg *config.Configuration) (*airbook.Airbook, error) {
	db, err := database.NewDataSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("error getting datasource: %v", err)
	}

	newAirbook, err := airbook.NewAirbook(db)
	if err != nil {
		return nil, fmt.Errorf("error creating airbook: %v", err)
	}
	return newAirbook, nil
}

// NewCLI creates the command-line interface for the Airbook server.
func NewCLI() *Cli {
	var configFile string
	b := &appInstance{}

	var rootCmd = &cobra.Command{
		Use:   "airbook",
		Short: "Airline booking backend",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./airbook.json", "Configuration file for the server")

	rootCmd.PersistentPreRunE = preRun(b)

	rootCmd.AddCommand(serverCommands(b))

	return &Cli{cmd: rootCmd}
}

func (w Cli) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
