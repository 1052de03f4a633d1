package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/subedit/subedit/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "subedit",
	Short: "Subtitle timing and alignment toolkit",
	Long: `Subedit edits subtitle timing: it parses SRT/VTT files, splits and
re-aligns text against existing timing, generates timed subtitles from
audio via AI transcription, translates them, and exports text or
burned-in video.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// .env is optional; API keys may come from the environment directly
	_ = godotenv.Load()

	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringP("language", "l", "", "Language code (e.g., en, es, fr)")
}
