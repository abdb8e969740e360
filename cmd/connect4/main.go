package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/nelhage/connect4/cmd/internal/cei"
	"github.com/nelhage/connect4/cmd/internal/config"
	"github.com/nelhage/connect4/cmd/internal/menu"
	"github.com/nelhage/connect4/cmd/internal/play"
	"github.com/nelhage/connect4/cmd/internal/selfplay"
	"github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "config file (default $XDG_CONFIG_HOME/connect4/config.yaml)")
	trace      = flag.Bool("trace", false, "log everything")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&menu.Command{}, "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&selfplay.Command{}, "")
	subcommands.Register(&cei.Command{}, "")

	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("reading .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.WithError(err).Fatal("config")
	}
	logrus.SetLevel(cfg.Level())
	if *trace {
		logrus.SetLevel(logrus.TraceLevel)
	}

	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int((&menu.Command{}).Run(cfg, nil)))
	}
	os.Exit(int(subcommands.Execute(ctx, cfg)))
}
