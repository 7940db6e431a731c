// skyraid is a vertically scrolling shooter for the terminal.
//
// Usage:
//
//	skyraid                  - Start the mode picker menu
//	skyraid list             - List game modes
//	skyraid play [mode]      - Play a mode directly (default: skyraid)
//	skyraid menu             - Start the mode picker menu
//	skyraid serve            - Start SSH server for remote play
//	skyraid scores [mode]    - Show high scores
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set database path (default: ~/.skyraid/scores.db)
//	--config <path>         - YAML or TOML config layered over the defaults
//	--difficulty <preset>   - easy, normal, hard, fixed
//	--log <path>            - Log file, "-" for stderr
//	--no-backdrop           - Disable background images
//	--backdrop-dir <path>   - Read background images from a local directory
//	--mute                  - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the shooter to register its modes
	_ "github.com/vovakirdan/skyraid/internal/games/shooter"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfig      string
	flagDifficulty  string
	flagLogPath     string
	flagLogLevel    string
	flagNoBackdrop  bool
	flagBackdropDir string
	flagMute        bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyraid",
	Short: "Skyraid - a vertical shooter in your terminal",
	Long: `Skyraid is a 1942-style vertical shooter that runs in the terminal.
Enemy waves descend over a scrolling backdrop of space photographs.

Available commands:
  list     - Show the game modes
  play     - Fly a mode directly
  menu     - Interactive mode picker (default)
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  skyraid
  skyraid play
  skyraid play skyraid_assault --difficulty hard
  skyraid play --backdrop-dir ~/Pictures/space --mute
  skyraid serve --ssh :2222
  skyraid scores`,
	Run: runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.skyraid/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a YAML or TOML game config")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogPath, "log", "", "Log file (default ~/.skyraid/skyraid.log, \"-\" for stderr)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.BoolVar(&flagNoBackdrop, "no-backdrop", false, "Disable background images")
	pf.StringVar(&flagBackdropDir, "backdrop-dir", "", "Read background images from <dir>/<category> instead of the network")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects and music")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
