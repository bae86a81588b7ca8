package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/zalando/go-keyring"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/asiyani/lazyftp/pkg/api"
	"github.com/asiyani/lazyftp/pkg/app"
	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
	"github.com/asiyani/lazyftp/pkg/models"
	"github.com/asiyani/lazyftp/pkg/presentation"
	"github.com/asiyani/lazyftp/pkg/version"
)

var (
	buildVersion = "dev"
	commit       = "none"
	date         = "unknown"

	apiURL      string
	configPath  string
	debug       bool
	showHelp    bool
	showVersion bool
)

func init() {
	pflag.StringVar(&apiURL, "api-url", "", "Connections API base URL (default "+models.DefaultAPIURL+")")
	pflag.StringVar(&configPath, "config", "", "Path to config file")
	pflag.BoolVar(&debug, "debug", false, "Enable debug logging")
	pflag.BoolVarP(&showHelp, "help", "h", false, "Show help")
	pflag.BoolVarP(&showVersion, "version", "v", false, "Show version")
}

func main() {
	pflag.Parse()
	version.Current = buildVersion

	if showHelp {
		printHelp()
		return
	}

	if showVersion {
		fmt.Printf("lazyftp %s (commit: %s, built: %s)\n", buildVersion, commit, date)
		return
	}

	args := pflag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "update":
			handleUpdate()
			return
		case "uninstall":
			handleUninstall(args[1:])
			return
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := helpers.NewLogger(cfg.Log)
	defer func() { _ = logger.Sync() }()

	if len(args) > 0 {
		switch args[0] {
		case "list":
			code := handleList(cfg, logger, os.Stdout, os.Stderr, terminalWidth())
			_ = logger.Sync()
			os.Exit(code)
		case "token":
			code := handleToken(cfg, args[1:], readTokenFromTerminal, os.Stdout, os.Stderr)
			_ = logger.Sync()
			os.Exit(code)
		default:
			fmt.Fprintf(os.Stderr, "Unknown command %q\n\n", args[0])
			printHelp()
			os.Exit(2)
		}
	}

	client, err := newClient(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", zap.String("version", version.Current), zap.String("api_url", cfg.API.BaseURL))

	a := app.New(cfg, client, helpers.NewDiagnosticSink(logger))
	a.ConfigPath = configPath
	a.RenderView = presentation.Render
	if buildVersion != "dev" {
		a.UpdateCheck = app.CheckForUpdates()
	}

	p := tea.NewProgram(a, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig applies flags on top of the file and environment.
func loadConfig() (*models.Config, error) {
	cfg, err := helpers.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}
	if debug {
		cfg.Log.Debug = true
	}
	return cfg, nil
}

func newClient(cfg *models.Config, logger *zap.Logger) (*api.Client, error) {
	token := cfg.API.Token
	if token == "" {
		stored, err := helpers.GetToken(cfg.API.BaseURL)
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("keyring lookup failed", zap.Error(err))
		}
		token = stored
	}

	return api.NewClient(api.Options{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Token:   token,
	}, logger)
}

// handleList prints the cards once and returns the exit code.
func handleList(cfg *models.Config, logger *zap.Logger, out, errOut io.Writer, width int) int {
	client, err := newClient(cfg, logger)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout+time.Second)
	defer cancel()

	conns, err := client.ListConnections(ctx)
	if err != nil {
		helpers.NewDiagnosticSink(logger).Record("list connections", err)
		fmt.Fprintf(errOut, "Failed to list connections: %v\n", err)
		return 1
	}

	for _, card := range presentation.RenderCards(conns, -1, width) {
		fmt.Fprintln(out, card)
	}
	return 0
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return min(w, 80)
	}
	return 60
}

func readTokenFromTerminal() (string, error) {
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	return string(raw), err
}

func handleToken(cfg *models.Config, args []string, readToken func() (string, error), out, errOut io.Writer) int {
	usage := "Usage: lazyftp token <set|clear>"
	if len(args) < 1 {
		fmt.Fprintln(errOut, usage)
		return 2
	}

	switch args[0] {
	case "set":
		fmt.Fprintf(out, "API token for %s: ", cfg.API.BaseURL)
		raw, err := readToken()
		if err != nil {
			fmt.Fprintf(errOut, "Failed to read token: %v\n", err)
			return 1
		}
		token := strings.TrimSpace(raw)
		if token == "" {
			fmt.Fprintln(errOut, "Error: empty token")
			return 1
		}
		if err := helpers.SetToken(cfg.API.BaseURL, token); err != nil {
			fmt.Fprintf(errOut, "Failed to store token: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, "Token stored")

	case "clear":
		if err := helpers.RemoveToken(cfg.API.BaseURL); err != nil {
			fmt.Fprintf(errOut, "Failed to remove token: %v\n", err)
			return 1
		}
		fmt.Fprintln(out, "Token removed")

	default:
		fmt.Fprintln(errOut, usage)
		return 2
	}
	return 0
}

func printHelp() {
	fmt.Println(`lazyftp - TUI for managing FTP scheduler connections

Usage:
  lazyftp [flags]
  lazyftp [command]

Commands:
  list            Print all connections and exit
  token set       Store an API token in the system keyring
  token clear     Remove the stored API token
  update          Check for and install updates
  uninstall       Remove lazyftp

Flags:`)
	pflag.PrintDefaults()
}

func handleUpdate() {
	if helpers.IsHomebrewInstall() {
		fmt.Println("Installed via Homebrew.")
		fmt.Println("Update with: brew upgrade lazyftp")
		return
	}

	fmt.Println("Checking for updates...")

	info, err := helpers.CheckForUpdate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking for updates: %v\n", err)
		os.Exit(1)
	}

	if !info.Available {
		fmt.Printf("Already up to date (v%s)\n", info.Current)
		return
	}

	fmt.Printf("\nUpdate available: v%s -> v%s\n", info.Current, info.Latest)
	if !confirm("Do you want to update? [y/N]: ") {
		fmt.Println("Update cancelled")
		return
	}

	fmt.Println("Downloading update...")
	if err := helpers.PerformUpdate(); err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Update successful! Restart lazyftp to use the new version.")
}

func handleUninstall(args []string) {
	var purge, keepConfig bool

	for _, arg := range args {
		switch arg {
		case "--purge":
			purge = true
		case "--keep-config":
			keepConfig = true
		case "--help", "-h":
			fmt.Println("Usage: lazyftp uninstall [OPTIONS]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --purge        Remove config, keyring token, and PATH export without prompting")
			fmt.Println("  --keep-config  Only remove binary, keep config and keyring token")
			fmt.Println("  --help         Show this help message")
			return
		}
	}

	if purge && keepConfig {
		fmt.Fprintln(os.Stderr, "Error: --purge and --keep-config are mutually exclusive")
		os.Exit(1)
	}

	if helpers.IsHomebrewInstall() {
		fmt.Println("Installed via Homebrew.")
		fmt.Println("Uninstall with: brew uninstall lazyftp")
		return
	}

	binaryPath := helpers.GetInstallPath()
	if binaryPath == "" {
		fmt.Fprintln(os.Stderr, "Error: No installation found")
		os.Exit(1)
	}

	if !purge && !confirm(fmt.Sprintf("Uninstall lazyftp from %s? [y/N]: ", binaryPath)) {
		fmt.Println("Uninstall cancelled")
		return
	}

	// Read before the config dir goes away.
	cfg, cfgErr := loadConfig()

	if err := helpers.RemoveBinary(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if keepConfig {
		fmt.Println("Uninstall complete (config preserved)")
		return
	}

	removeData := purge || confirm("Remove config, keyring token, and PATH export? [y/N]: ")
	if removeData {
		if cfgErr == nil {
			_ = helpers.RemoveToken(cfg.API.BaseURL)
		}
		_ = helpers.RemoveConfigDir()
		_ = helpers.RemovePathExport()
	}

	fmt.Println("Uninstall complete")
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
