package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/noh-jun/framepub/internal/adapters/tcp"
	"github.com/noh-jun/framepub/internal/cliconfig"
	"github.com/noh-jun/framepub/internal/domain"
	"github.com/noh-jun/framepub/internal/sample"
	"github.com/noh-jun/framepub/internal/session"
	"github.com/noh-jun/framepub/internal/sim"
)

const helpDescription = `
Interactive TCP traffic generator for exercising stream-framing parsers.

framepub connects to a receiver and replays the four delivery edge cases a
length/delimiter-based frame reader must survive:

  1  AtomicFrame      one message, one write
  2  FragmentedFrame  one message split across jittered partial writes
  3  IncompleteFrame  one message truncated mid-frame
  4  CoalescedFrames  two messages back-to-back in a single write

Commands are read from stdin (keys 1~4, one per line) or, on a terminal,
from an interactive menu. The response code cycles through [0,1,2,99] per
command. Ctrl+D exits.
`

var exampleUsage = strings.TrimSpace(`
  framepub --port 8051
  framepub --host 192.168.1.50 --terminator newline --min-chunk 3 --max-chunk 5
  echo 2 | framepub --seed 7 --jitter 0
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "framepub",
		Short:   "Interactive TCP traffic generator for stream-framing parsers",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags so file/env values never override
			// explicit command-line choices.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Debug {
				log = log.Level(zerolog.DebugLevel)
			}
			log.Info().Interface("config", cfg).Msg("configuration")

			return run(cmd.Context(), cfg, cfgFile, changed, log)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.framepub/config.toml)")
	root.Flags().StringVar(&cfg.Host, "host", cfg.Host, "receiver host")
	root.Flags().IntVar(&cfg.Port, "port", cfg.Port, "receiver TCP port")
	root.Flags().StringVar(&cfg.Terminator, "terminator", cfg.Terminator, "frame terminator mode (none|newline)")
	root.Flags().IntVar(&cfg.MinChunks, "min-chunk", cfg.MinChunks, "minimum chunk count for FragmentedFrame")
	root.Flags().IntVar(&cfg.MaxChunks, "max-chunk", cfg.MaxChunks, "maximum chunk count for FragmentedFrame")
	root.Flags().DurationVar(&cfg.Jitter, "jitter", cfg.Jitter, "upper bound of the random delay between chunk writes")
	root.Flags().IntVar(&cfg.DriverID, "driver-id", cfg.DriverID, "driver_instance_id stamped into sample messages")
	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible runs (0 = time-based)")
	root.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("framepub")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliconfig.Config, cfgFile string, changed map[string]bool, log zerolog.Logger) error {
	rng := sim.NewRand(cfg.Seed)
	gen := sample.NewGenerator(cfg.DriverID, sample.Terminator(cfg.Terminator), rng)
	simulator := sim.New(gen, rng, log)
	dialer := tcp.NewDialer(cfg.Addr(), log)

	tuning := sim.Tuning{
		MinChunks: cfg.MinChunks,
		MaxChunks: cfg.MaxChunks,
		Jitter:    cfg.Jitter,
	}
	sess := session.New(dialer, simulator, tuning, log)
	defer sess.Close()

	// Live-reload tuning values when the config file changes. Endpoint and
	// seed changes need a restart.
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		watcher := cliconfig.NewWatcher(cfgFile, log, func(fc cliconfig.FileConfig) {
			applyTuning(fc, changed, sess, gen, log)
		})
		go watcher.Run(ctx)
	}

	log.Info().Str("addr", cfg.Addr()).Msg("1=AtomicFrame 2=FragmentedFrame 3=IncompleteFrame 4=CoalescedFrames")
	log.Info().Msg("res cycles as [0,1,2,99] by input count; Ctrl+D to exit")

	if isatty.IsTerminal(os.Stdin.Fd()) {
		return runMenu(ctx, sess, log)
	}
	return sess.Run(ctx, os.Stdin)
}

// applyTuning folds reloaded file values into the running session, still
// honoring flags that were set explicitly on the command line.
func applyTuning(fc cliconfig.FileConfig, changed map[string]bool, sess *session.Session, gen *sample.Generator, log zerolog.Logger) {
	tun := sess.Tuning()
	if fc.MinChunks > 0 && !changed["min-chunk"] {
		tun.MinChunks = fc.MinChunks
	}
	if fc.MaxChunks > 0 && !changed["max-chunk"] {
		tun.MaxChunks = fc.MaxChunks
	}
	if fc.Jitter != "" && !changed["jitter"] {
		d, err := time.ParseDuration(fc.Jitter)
		if err != nil || d < 0 {
			log.Warn().Str("jitter", fc.Jitter).Msg("ignoring invalid jitter in config file")
		} else {
			tun.Jitter = d
		}
	}
	if err := tun.Validate(); err != nil {
		log.Warn().Err(err).Msg("ignoring invalid tuning in config file")
		return
	}
	sess.SetTuning(tun)

	if fc.Terminator != "" && !changed["terminator"] {
		term, err := sample.ParseTerminator(fc.Terminator)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring invalid terminator in config file")
		} else {
			gen.SetTerminator(term)
		}
	}

	log.Info().
		Int("min_chunk", tun.MinChunks).
		Int("max_chunk", tun.MaxChunks).
		Dur("jitter", tun.Jitter).
		Str("terminator", string(gen.Terminator())).
		Msg("tuning reloaded")
}

var menuEntries = []struct {
	label string
	sc    domain.Scenario
}{
	{"1  AtomicFrame (whole frame, one write)", domain.AtomicFrame},
	{"2  FragmentedFrame (jittered partial writes)", domain.FragmentedFrame},
	{"3  IncompleteFrame (truncated mid-frame)", domain.IncompleteFrame},
	{"4  CoalescedFrames (two frames in one write)", domain.CoalescedFrames},
}

const menuQuit = "q  Quit"

// runMenu drives the session from an interactive select menu when stdin is
// a terminal.
func runMenu(ctx context.Context, sess *session.Session, log zerolog.Logger) error {
	options := make([]string, 0, len(menuEntries)+1)
	scenarios := make(map[string]domain.Scenario, len(menuEntries))
	for _, e := range menuEntries {
		options = append(options, e.label)
		scenarios[e.label] = e.sc
	}
	options = append(options, menuQuit)

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		choice, err := pterm.DefaultInteractiveSelect.
			WithOptions(options).
			WithDefaultText("Scenario").
			Show()
		if err != nil {
			return err
		}
		if choice == menuQuit {
			return nil
		}

		sc, ok := scenarios[choice]
		if !ok {
			continue
		}
		if err := sess.Send(ctx, sc); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Error().Err(err).Stringer("scenario", sc).Msg("send failed")
		}
	}
}
