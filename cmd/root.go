package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/app"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/catalog"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/config"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/host/embedded"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/log"
	"github.com/jakubdeoniziak/olsztyn-geoportal/internal/plugin"
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
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "olsztyn-geoportal",
	Short:   "Dodawanie warstw OSM dla obszaru Olsztyna",
	Long:    `Wybiera jedno z predefiniowanych źródeł kafelków OpenStreetMap, dodaje je jako warstwę rastrową do projektu i ustawia widok mapy na obszar Olsztyna.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/olsztyn-geoportal/config.yaml)")
	rootCmd.Flags().BoolVar(&debug, "debug", false,
		"write a debug log file")
	rootCmd.Flags().StringP("project", "p", "",
		"path to the project file")
	rootCmd.Flags().StringP("sources", "s", "",
		"path to an additional tile sources file")

	// Bind flags to viper
	_ = viper.BindPFlag("project_file", rootCmd.Flags().Lookup("project"))
	_ = viper.BindPFlag("sources_file", rootCmd.Flags().Lookup("sources"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("project_file", defaults.ProjectFile)
	viper.SetDefault("sources_file", defaults.SourcesFile)
	viper.SetDefault("extent", defaults.Extent)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("log_file", defaults.LogFile)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .olsztyn-geoportal/config.yaml (current directory)
		// 2. ~/.config/olsztyn-geoportal/config.yaml (user config)
		if _, err := os.Stat(".olsztyn-geoportal/config.yaml"); err == nil {
			viper.SetConfigFile(".olsztyn-geoportal/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "olsztyn-geoportal"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .olsztyn-geoportal/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".olsztyn-geoportal/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if debug && cfg.LogFile != "" {
		cleanup, err := log.Init(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer cleanup()
		log.Info(log.CatConfig, "Starting", "version", version, "config", viper.ConfigFileUsed())
	}

	extent, err := cfg.ViewExtent()
	if err != nil {
		return fmt.Errorf("invalid extent in config: %w", err)
	}

	cat, err := catalog.LoadOrDefault(cfg.SourcesFile)
	if err != nil {
		return fmt.Errorf("loading tile sources: %w", err)
	}

	project, err := embedded.OpenProject(cfg.ProjectFile)
	if err != nil {
		return fmt.Errorf("opening project: %w", err)
	}
	engine := embedded.NewEngine()
	canvas := embedded.NewCanvas()

	menu := app.NewMenuBar()
	model := app.New(app.Services{
		Engine:  engine,
		Project: project,
		Canvas:  canvas,
		Catalog: cat,
		Config:  cfg,
		Extent:  extent,
		Persist: func() error {
			if !canvas.Extent().IsZero() {
				project.SetViewExtent(canvas.Extent().String())
			}
			return project.Save()
		},
	}, menu)

	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
	)

	shell := plugin.New(menu)
	shell.InitGUI(func() {
		p.Send(app.OpenDialogMsg{})
	})
	defer shell.Unload()

	_, err = p.Run()

	// Clean up watcher resources and save the project
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
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
