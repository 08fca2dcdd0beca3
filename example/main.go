// Example opens a window with a small sign-up form built from interact
// widgets: two text fields, a checkbox, two dropdowns and two buttons.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The same scene runs on every backend:
//
//	go run ./example/ --backend raylib
//	go run ./example/ --backend ebiten --theme night.yaml
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/go-theft-auto/interact"
	"github.com/go-theft-auto/interact/internal/logging"
)

const windowTitle = "interact example"

// Command flags
var (
	backendName string
	themePath   string
	presetName  string
	width       int
	height      int
	logLevel    string
)

func init() {
	rootCmd.Flags().StringVar(&backendName, "backend", "opengl", "Rendering backend: opengl, raylib or ebiten")
	rootCmd.Flags().StringVar(&themePath, "theme", "", "Path to a YAML theme file")
	rootCmd.Flags().StringVar(&presetName, "preset", "", "Built-in style preset used when no theme file is given")
	rootCmd.Flags().IntVar(&width, "width", 800, "Window width in pixels")
	rootCmd.Flags().IntVar(&height, "height", 600, "Window height in pixels")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); defaults to $"+logging.LevelEnvVar)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "example",
	Short: "Interactive widget demo",
	Long: `Opens a window with a sign-up form built from interact widgets.

Click a text field to type into it. Backspace deletes, Left/Right/Home/End
move the caret. Submit logs the form values; Clear resets the form.`,
	Example: `  # OpenGL/GLFW backend with the default style
  example

  # raylib backend with the dark preset
  example --backend raylib --preset dark

  # ebiten backend with a theme file and debug logging
  example --backend ebiten --theme night.yaml --log-level debug`,
	SilenceUsage: true,
	RunE:         runExample,
}

func runExample(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(logLevel)
	if err != nil {
		return err
	}
	defer logging.Sync(logger)

	theme, err := loadTheme()
	if err != nil {
		return err
	}

	run, ok := backends[backendName]
	if !ok {
		return fmt.Errorf("unknown backend %q (want opengl, raylib or ebiten)", backendName)
	}

	logger.Info("starting example",
		zap.String("backend", backendName),
		zap.String("theme", theme.Name),
		zap.Int("width", width),
		zap.Int("height", height),
	)

	opts := []interact.UIOption{
		interact.WithLogger(logger),
		interact.WithTheme(theme),
	}
	return run(opts, logger)
}

func loadTheme() (interact.Theme, error) {
	switch {
	case themePath != "":
		return interact.LoadThemeFile(themePath)
	case presetName != "":
		return interact.ThemeByName(presetName)
	default:
		return interact.DefaultTheme(), nil
	}
}
