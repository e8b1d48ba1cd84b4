package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/aymaneallaoui/hello/server"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootCmd defines the base command for Cobra
var RootCmd = &cobra.Command{
	Use:           "hello",
	Short:         "hello serves Hello World on GET /",
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	addFlags(RootCmd.Flags())
}

func addFlags(fs *pflag.FlagSet) {
	fs.IntP("port", "p", server.DefaultPort, "TCP port to listen on (overrides $PORT)")
	fs.String("host", "", "interface to bind; empty binds all interfaces")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd.Flags(), os.Getenv)
	if err != nil {
		return err
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Binding %s", cfg.Addr())

	out := cmd.OutOrStdout()
	return server.Start(cfg, func(url string) {
		printBanner(out, url)
	})
}

// configFromFlags resolves the listen config. An explicit --port wins over
// $PORT, which wins over the default.
func configFromFlags(fs *pflag.FlagSet, getenv func(string) string) (server.Config, error) {
	cfg := server.DefaultConfig()

	host, err := fs.GetString("host")
	if err != nil {
		return cfg, err
	}
	cfg.Host = host

	port, err := fs.GetInt("port")
	if err != nil {
		return cfg, err
	}
	if !fs.Changed("port") {
		if env := getenv("PORT"); env != "" {
			port, err = strconv.Atoi(env)
			if err != nil {
				return cfg, fmt.Errorf("invalid PORT %q: %w", env, err)
			}
		}
	}
	cfg.Port = port
	return cfg, nil
}

func printBanner(w io.Writer, url string) {
	fmt.Fprintf(w, "Example app listening at %s\n", color.New(color.FgGreen).Sprint(url))
}
