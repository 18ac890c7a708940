package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-mcpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/anatolykoptev/go_ytsum/internal/engine"
	"github.com/anatolykoptev/go_ytsum/internal/engine/sources"
	"github.com/anatolykoptev/go_ytsum/internal/toolutil"
	"github.com/anatolykoptev/go_ytsum/internal/ytserver"
)

// app holds state shared by all commands.
type app struct {
	configPath string
	cfg        engine.Config
	logOut     io.Writer

	// newSummarizer wires the fetch and completion collaborators.
	newSummarizer func(engine.Config) *engine.Summarizer
}

func newApp() *app {
	return &app{
		logOut:        os.Stderr,
		newSummarizer: defaultSummarizer,
	}
}

func defaultSummarizer(c engine.Config) *engine.Summarizer {
	yt := sources.NewYouTube(c.HTTPClient)
	if c.BrowserTLS {
		bc, err := engine.NewBrowserClient(c.FetchTimeout)
		if err != nil {
			slog.Warn("browser client init failed, using plain HTTP", slog.Any("error", err))
		} else {
			yt.Browser = bc
		}
	}
	return engine.NewSummarizer(yt, engine.NewKitCompleter(c))
}

// setup loads configuration and installs the logger. level is the default
// log level for the command being run.
func (a *app) setup(level slog.Level) error {
	slog.SetDefault(newLogger(a.logOut, level))

	c, err := engine.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = c
	engine.Init(c)
	return nil
}

func newRootCommand(a *app) *cobra.Command {
	var (
		model       string
		idMode      bool
		template    string
		lang        string
		maxTokens   int
		temperature float64
	)

	rootCmd := &cobra.Command{
		Use:           "ytsum <youtube-url>",
		Short:         "Summarize a YouTube video from its transcript",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cmd.Name() == "serve" {
				level = slog.LevelInfo
			}
			return a.setup(level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := engine.ResolveVideoID(args[0], idMode)
			if err != nil {
				return err
			}

			var o toolutil.Overrides
			if cmd.Flags().Changed("model") {
				o.Model = &model
			}
			if cmd.Flags().Changed("template") {
				o.Template = template
			}
			if cmd.Flags().Changed("lang") {
				o.Language = lang
			}
			req, err := toolutil.NewRequest(a.cfg, id, o)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max-tokens") {
				req.MaxTokens = maxTokens
			}
			if cmd.Flags().Changed("temperature") {
				req.Temperature = temperature
			}
			if a.cfg.LLMAPIKey == "" {
				slog.Warn("no API key set (LLM_API_KEY or OPENAI_API_KEY)")
			}

			summary, err := a.newSummarizer(a.cfg).Summarize(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&model, "model", "m", engine.DefaultModel, "Chat model to use")
	flags.BoolVar(&idMode, "id", false, "Treat the argument as a bare video ID instead of a URL")
	flags.StringVarP(&template, "template", "t", string(engine.TemplateSummary), "Prompt template: summary or timeline")
	flags.StringVarP(&lang, "lang", "l", "en", "Comma-separated transcript language preference")
	flags.IntVar(&maxTokens, "max-tokens", engine.DefaultMaxTokens, "Maximum tokens to generate")
	flags.Float64Var(&temperature, "temperature", engine.DefaultTemperature, "Sampling temperature")

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Configuration file path (TOML)")

	rootCmd.AddCommand(newTranscriptCommand(a))
	rootCmd.AddCommand(newServeCommand(a))
	return rootCmd
}

func newTranscriptCommand(a *app) *cobra.Command {
	var (
		idMode bool
		lang   string
	)
	cmd := &cobra.Command{
		Use:   "transcript <youtube-url>",
		Short: "Print the timestamped transcript of a video",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := engine.ResolveVideoID(args[0], idMode)
			if err != nil {
				return err
			}
			langs := a.cfg.Languages
			if cmd.Flags().Changed("lang") {
				langs = toolutil.SplitLangs(lang, langs)
			}
			out, err := a.newSummarizer(a.cfg).Transcript(cmd.Context(), id, langs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Transcript)
			return nil
		},
	}
	cmd.Flags().BoolVar(&idMode, "id", false, "Treat the argument as a bare video ID instead of a URL")
	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "Comma-separated transcript language preference")
	return cmd
}

func newServeCommand(a *app) *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (youtube_summarize, youtube_transcript)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				a.cfg.MCPPort = port
				engine.Init(a.cfg)
			}

			slog.Info("starting go_ytsum", slog.String("port", a.cfg.MCPPort))

			server := mcp.NewServer(&mcp.Implementation{
				Name:    "go_ytsum",
				Version: version,
			}, nil)

			ytserver.RegisterTools(server, a.newSummarizer(a.cfg))
			slog.Info("tools registered", slog.Int("count", ytserver.ToolCount))

			return mcpserver.Run(server, mcpserver.Config{
				Name:         "go_ytsum",
				Version:      version,
				Port:         a.cfg.MCPPort,
				WriteTimeout: 600 * time.Second,
				Metrics:      engine.FormatMetrics,
			})
		},
	}
	cmd.Flags().StringVar(&port, "port", engine.DefaultMCPPort, "HTTP port for the MCP server")
	return cmd
}
