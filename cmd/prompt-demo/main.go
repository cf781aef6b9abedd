package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/vito/prompt/pkg/history"
	"github.com/vito/prompt/pkg/preset"
	"github.com/vito/prompt/pkg/prompt"
	"github.com/vito/prompt/pkg/widget"
)

// Config holds the demo's global flags.
type Config struct {
	Debug     bool
	ThemeFile string
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "prompt-demo",
		Short: "Interactive prompt showcase",
		Long:  `prompt-demo exercises each built-in prompt preset from the command line.`,
		Example: `  # Ask for a line of text
  prompt-demo readline

  # Pick an item with a custom theme
  prompt-demo select --theme theme.toml

  # Browse a JSON document
  prompt-demo json testdata/sample.json`,
	}

	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfg.ThemeFile, "theme", "", "Path to a TOML theme file")

	rootCmd.AddCommand(
		readlineCmd(&cfg),
		passwordCmd(&cfg),
		selectCmd(&cfg),
		multiSelectCmd(&cfg),
		treeCmd(&cfg),
		jsonCmd(&cfg),
	)

	if err := fang.Execute(context.Background(), rootCmd,
		fang.WithErrorHandler(func(w io.Writer, styles fang.Styles, err error) {
			_, _ = fmt.Fprintln(w, err.Error())
		}),
	); err != nil {
		os.Exit(1)
	}
}

// setup configures logging and loads the theme named by the flags.
func setup(cfg *Config) (*slog.Logger, *preset.Theme, error) {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	var theme *preset.Theme
	if cfg.ThemeFile != "" {
		th, err := preset.LoadTheme(cfg.ThemeFile)
		if err != nil {
			return nil, nil, err
		}
		theme = &th
	}
	return logger, theme, nil
}

// runPrompt executes a built prompt with the demo's logger attached and
// prints the result.
func runPrompt[T any](ctx context.Context, logger *slog.Logger, p *prompt.Prompt[T]) error {
	p.Logger = logger
	out, err := p.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", out)
	return nil
}

func readlineCmd(cfg *Config) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "readline",
		Short: "Ask for a line of text with history and completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, theme, err := setup(cfg)
			if err != nil {
				return err
			}
			return runPrompt(cmd.Context(), logger, preset.Readline{
				Title:       title,
				History:     history.New(),
				Suggestions: []string{"hello", "help", "helium"},
				Theme:       theme,
			}.Prompt())
		},
	}
	cmd.Flags().StringVar(&title, "title", "Type something:", "Prompt title")
	return cmd
}

func passwordCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "password",
		Short: "Ask for a masked secret of at least 8 characters",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, theme, err := setup(cfg)
			if err != nil {
				return err
			}
			return runPrompt(cmd.Context(), logger, preset.Password{
				Title: "Password:",
				Validator: func(s string) error {
					if len(s) < 8 {
						return fmt.Errorf("need at least 8 characters, got %d", len(s))
					}
					return nil
				},
				Theme: theme,
			}.Prompt())
		},
	}
}

func selectCmd(cfg *Config) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "select [item...]",
		Short: "Pick one item from a list",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, theme, err := setup(cfg)
			if err != nil {
				return err
			}
			items := args
			if len(items) == 0 {
				items = []string{"red", "green", "blue", "cyan", "magenta", "yellow"}
			}
			return runPrompt(cmd.Context(), logger, preset.Select{
				Title: "Pick a color:",
				Items: items,
				Lines: lines,
				Theme: theme,
			}.Prompt())
		},
	}
	cmd.Flags().IntVar(&lines, "lines", 0, "Cap the visible rows (0 shows all)")
	return cmd
}

func multiSelectCmd(cfg *Config) *cobra.Command {
	var lines int
	cmd := &cobra.Command{
		Use:   "multiselect [item...]",
		Short: "Pick any number of items; space toggles",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, theme, err := setup(cfg)
			if err != nil {
				return err
			}
			items := args
			if len(items) == 0 {
				items = []string{"linux", "darwin", "windows", "freebsd"}
			}
			return runPrompt(cmd.Context(), logger, preset.MultiSelect{
				Title: "Target platforms:",
				Items: items,
				Lines: lines,
				Theme: theme,
			}.Prompt())
		},
	}
	cmd.Flags().IntVar(&lines, "lines", 0, "Cap the visible rows (0 shows all)")
	return cmd
}

func treeCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Browse a tree; space folds, Enter picks",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, theme, err := setup(cfg)
			if err != nil {
				return err
			}
			return runPrompt(cmd.Context(), logger, preset.TreeSelect{
				Title: "Pick a file:",
				Roots: []*widget.TreeNode{
					widget.Node("project",
						widget.Node("cmd",
							widget.Node("main.go"),
						),
						widget.Node("pkg",
							widget.Node("server.go"),
							widget.Node("server_test.go"),
						),
						widget.Node("README.md"),
					),
				},
				Theme: theme,
			}.Prompt())
		},
	}
}

func jsonCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "json [file]",
		Short: "Browse a JSON document; space folds containers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, theme, err := setup(cfg)
			if err != nil {
				return err
			}

			raw := `{"service":"demo","replicas":3,"ready":true,"ports":[80,443],"meta":{"region":"eu-west-1","owner":null}}`
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read document: %w", err)
				}
				raw = string(data)
			}

			p, err := preset.JSONView{Title: "Document:", Raw: raw, Theme: theme}.Prompt()
			if err != nil {
				return err
			}
			return runPrompt(cmd.Context(), logger, p)
		},
	}
}
