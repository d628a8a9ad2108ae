package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alice-ws/aliceterm/infra/api"
	"github.com/alice-ws/aliceterm/infra/config"
	"github.com/alice-ws/aliceterm/infra/editor"
	"github.com/alice-ws/aliceterm/infra/frontdoor"
	"github.com/alice-ws/aliceterm/infra/logging"
	"github.com/alice-ws/aliceterm/tui"
	"github.com/alice-ws/aliceterm/tui/render"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func newRootCmd() *cobra.Command {
	var (
		threadNo uint64
		limit    int
	)

	root := &cobra.Command{
		Use:           "aliceterm",
		Short:         "Browse and post to an imageboard from the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cmd.Flags().Changed("limit") {
				if limit < 0 {
					return fmt.Errorf("--limit must not be negative")
				}
				cfg.ReplyLimit = limit
			}
			return runTUI(cfg, threadNo)
		},
	}
	root.Flags().Uint64Var(&threadNo, "thread", 0, "open this thread instead of the board listing")
	root.Flags().IntVar(&limit, "limit", 0, "replies shown in thread view (0 = all)")

	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve static assets and proxy /api to the board API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			// The front door is a plain server; log to stderr unless a file is configured.
			logPath := cfg.LogFile
			if logPath == "" {
				logPath = "stderr"
			}
			logger, err := logging.New(cfg.LogLevel, logPath)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return frontdoor.Serve(ctx, frontdoor.Options{
				Port:      cfg.Port,
				APIOrigin: cfg.APIOrigin,
				StaticDir: cfg.StaticDir,
			}, logger)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "listen port (default from PORT or 3000)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
			fmt.Fprintf(cmd.OutOrStdout(), "aliceterm %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		},
	}
}

func runTUI(cfg config.Config, threadNo uint64) error {
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	client := api.NewClient(cfg.APIBaseURL, logger.Named("api"))
	rootModel := tui.NewApp(tui.Deps{
		Board:  api.NewBoardService(client),
		Editor: editor.NewEnvEditor(),
		Logger: logger.Named("tui"),
		Render: render.Options{
			ImageContext:   cfg.ImageContext,
			Board:          cfg.Board,
			ObjectionAsset: cfg.ObjectionAsset,
		},
		ReplyLimit: cfg.ReplyLimit,
		ThreadNo:   threadNo,
	})

	logger.Info("starting", zap.String("api", cfg.APIBaseURL), zap.String("board", cfg.Board))
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("aliceterm: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
