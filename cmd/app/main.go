// Command pdf-png-converter converts between documents and page images:
// point it at a folder of PDFs to render every page to PNG, or at a
// folder of PNGs to assemble them into a single PDF in natural page
// order.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crosscore/pdf-png-converter/internal/assemble"
	"github.com/crosscore/pdf-png-converter/internal/config"
	"github.com/crosscore/pdf-png-converter/internal/logger"
	"github.com/crosscore/pdf-png-converter/internal/pipeline"
	"github.com/crosscore/pdf-png-converter/internal/preflight"
	"github.com/crosscore/pdf-png-converter/internal/render"
)

// Exit codes: 0 full success, 1 ran with errors, 2 did not run.
const (
	exitOK      = 0
	exitPartial = 1
	exitNotRun  = 2
)

// version is set at build time via ldflags.
var version = "dev"

var exitCode = exitOK

var rootCmd = &cobra.Command{
	Use:   "pdf-png-converter FOLDER",
	Short: "Convert a folder of PDFs to PNGs, or a folder of PNGs to one PDF",
	Long: `pdf-png-converter inspects FOLDER and picks the conversion itself:

  only PDFs inside  -> every page of every PDF is rendered to PNG files
                       in a fresh <name>_png directory next to the source
  only PNGs inside  -> the images are assembled into a single PDF, pages
                       ordered naturally (page2 before page10), named
                       after the first image with its page index stripped

Mixed folders, a single image, or folders with nothing convertible are
rejected with a diagnostic. Failing pages or images are skipped and
reported; the exit status is 0 only when everything succeeded, 1 when
some units failed, 2 when nothing ran.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitCode = run(cmd, args[0])
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().String("output-dir", "", "write outputs here instead of alongside the input")
	rootCmd.Flags().Bool("dry-run", false, "scan and plan only; write nothing")
	rootCmd.Flags().Bool("pause", false, "wait for Enter before exiting")
	rootCmd.Flags().Float64("scale", 4.0, "render oversampling factor (1.0 = 72 DPI)")
	rootCmd.Flags().Bool("no-verify", false, "skip magic-byte content verification")

	viper.BindPFlag("run.output_dir", rootCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("run.dry_run", rootCmd.Flags().Lookup("dry-run"))
	viper.BindPFlag("run.pause", rootCmd.Flags().Lookup("pause"))
	viper.BindPFlag("render.scale", rootCmd.Flags().Lookup("scale"))
}

// initConfig wires environment variables into viper: PDFPNG_LOG_LEVEL
// overrides log.level, and so on.
func initConfig() {
	viper.SetEnvPrefix("PDFPNG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	config.SetDefaults(viper.GetViper())
}

func run(cmd *cobra.Command, dir string) int {
	cfg := config.Load(viper.GetViper())
	if noVerify, _ := cmd.Flags().GetBool("no-verify"); noVerify {
		cfg.Scan.VerifyContent = false
	}

	if err := logger.Init(logger.Options{
		Level:      cfg.Logging.Level,
		Pretty:     cfg.Logging.Pretty,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		return exitNotRun
	}

	// Stop between units on Ctrl-C; partially written files may remain.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := pipeline.New(cfg, pipeline.Dependencies{
		Preflight: preflight.New(cfg.Scan.VerifyContent),
		Opener:    render.FitzOpener{},
		Builder:   assemble.NewBuilder(),
	})

	code := exitOK
	sum, err := runner.Run(ctx, dir)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("nothing to do")
		code = exitNotRun
	case !sum.Clean():
		code = exitPartial
	}

	if cfg.Run.Pause {
		waitForEnter()
	}
	return code
}

// waitForEnter keeps the window open for launches from a file manager,
// where the terminal would close before the transcript can be read.
func waitForEnter() {
	fmt.Print("Press Enter to exit...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

func main() {
	// A .env next to the binary seeds PDFPNG_* variables before viper
	// reads them.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitNotRun)
	}
	os.Exit(exitCode)
}
