package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mprpic/commit-editor/internal/app"
	"github.com/mprpic/commit-editor/internal/config"
	"github.com/mprpic/commit-editor/internal/git"
	"github.com/mprpic/commit-editor/internal/log"
	"github.com/mprpic/commit-editor/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugMode bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:   "commit-editor <file>",
	Short: "A terminal editor for git commit messages",
	Long: `A terminal editor for git commit messages with automatic body wrapping
at 72 columns, title length highlighting, and Signed-off-by toggling.

Typically invoked by git itself:

  git config core.editor commit-editor`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runApp,
}

var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write a commented default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInitConfig,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/commit-editor/config.yaml)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false,
		"write a debug log next to the message file")
	rootCmd.Flags().Bool("no-watch", false,
		"disable the on-disk change warning for the message file")

	rootCmd.AddCommand(initConfigCmd)
}

func initConfig() {
	defaults := config.Default()
	viper.SetDefault("ui.show_line_numbers", defaults.UI.ShowLineNumbers)
	viper.SetDefault("ui.placeholder", defaults.UI.Placeholder)
	viper.SetDefault("ui.auto_wrap", defaults.UI.AutoWrap)
	viper.SetDefault("theme.mode", defaults.Theme.Mode)
	viper.SetDefault("watch_file", defaults.WatchFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "commit-editor"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine; defaults apply. Git runs the editor in
	// arbitrary repos, so config files are never written implicitly.
	_ = viper.ReadInConfig()

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	path := args[0]

	// Git creates COMMIT_EDITMSG before invoking the editor; a missing file
	// means we were called with the wrong argument.
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	if debugMode || os.Getenv("COMMIT_EDITOR_DEBUG") != "" {
		logPath := filepath.Join(filepath.Dir(path), "commit-editor-debug.log")
		cleanup, err := log.InitWithTeaLog(logPath, "commit-editor")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "starting", "path", path, "config", viper.ConfigFileUsed())
	}

	switch cfg.Theme.Mode {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
	if err := styles.ApplyTheme(cfg.Theme.Colors); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.WatchFile = false
	}

	signoff := git.NewSignOffProvider(git.NewRealExecutor(filepath.Dir(path)))

	model := app.New(app.Config{
		Path:    path,
		Content: string(content),
		Cfg:     cfg,
		SignOff: signoff,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "commit-editor", "config.yaml")
	}

	if err := config.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
