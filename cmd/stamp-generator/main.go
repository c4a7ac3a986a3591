package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/coloring-page-maker/stamptools/pkg/genimage"
	"github.com/coloring-page-maker/stamptools/pkg/imaging"
	"github.com/coloring-page-maker/stamptools/pkg/logging"
	"github.com/coloring-page-maker/stamptools/pkg/profile"
)

const version = "0.2.0"

// Stamps are normalized through 1024 before landing at the standard size.
const (
	generatedSize = 1024
	stampSize     = 512
)

var (
	stampsDir   string
	model       string
	prompt      string
	skipRebuild bool
	logLevel    string
	rootCmd     *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "stamp-generator <stamp-number>",
		Short: "Generate a new coloring-page stamp via the Gemini API",
		Long: `Generate a new coloring-page stamp using Gemini's image model, save it
into the stamps directory, and rebuild the downstream assets.`,
		Args: cobra.ExactArgs(1),
		Run:  generateStamp,
	}

	rootCmd.Flags().StringVar(&stampsDir, "stamps-dir", profile.DefaultStampsDir, "Directory to save the stamp into")
	rootCmd.Flags().StringVar(&model, "model", genimage.DefaultModel, "Gemini model to use")
	rootCmd.Flags().StringVar(&prompt, "prompt", "", "Image prompt (read from stdin when omitted)")
	rootCmd.Flags().BoolVar(&skipRebuild, "skip-rebuild", false, "Skip rebuilding the tilesheet and deck profile")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateStamp(cmd *cobra.Command, args []string) {
	logger := logging.NewToolLogger("stamp-generator", logLevel)

	stampNumber, err := strconv.Atoi(args[0])
	if err != nil || stampNumber < 1 {
		logger.Error("❌ Stamp number must be a positive integer", "got", args[0])
		os.Exit(1)
	}

	apiKey, err := genimage.LoadAPIKey()
	if err != nil {
		logger.Error("❌ Failed to load API key", "error", err)
		logger.Error("Please create a .env file with your API key: GEMINI_API_KEY=your_api_key_here")
		os.Exit(1)
	}

	userPrompt := strings.TrimSpace(prompt)
	if userPrompt == "" {
		userPrompt = readPrompt(stampNumber)
	}
	if userPrompt == "" {
		logger.Error("❌ Prompt cannot be empty")
		os.Exit(1)
	}

	ctx := context.Background()
	client, err := genimage.NewClient(ctx, apiKey, model, logger)
	if err != nil {
		logger.Error("❌ Failed to create Gemini client", "error", err)
		os.Exit(1)
	}

	data, err := client.GenerateStamp(ctx, userPrompt)
	if err != nil {
		logger.Error("❌ Failed to generate image", "error", err)
		os.Exit(1)
	}

	stampPath := filepath.Join(stampsDir, fmt.Sprintf("%d.png", stampNumber))
	if err := saveStamp(logger, data, stampPath); err != nil {
		logger.Error("❌ Failed to save stamp", "error", err)
		os.Exit(1)
	}
	logger.Info("✅ Saved stamp", "path", stampPath)

	if !skipRebuild {
		if err := rebuildAssets(logger); err != nil {
			logger.Error("❌ Failed to rebuild assets", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("[SUCCESS] Stamp #%d generated\n", stampNumber)
}

// readPrompt asks for a one-line prompt on stdin.
func readPrompt(stampNumber int) string {
	fmt.Printf("\n=== Stamp Generator for Stamp #%d ===\n", stampNumber)
	fmt.Println("Enter your prompt for the coloring page image.")
	fmt.Println("(The coloring book styling is applied automatically)")
	fmt.Print("\nPrompt: ")

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

// saveStamp normalizes the generated image to the stamp size and writes it
// as RGBA PNG.
func saveStamp(logger hclog.Logger, data []byte, stampPath string) error {
	img, err := imaging.Decode(data)
	if err != nil {
		return err
	}

	b := img.Bounds()
	if b.Dx() != generatedSize || b.Dy() != generatedSize {
		logger.Debug("Normalizing generated image",
			"from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()),
			"to", fmt.Sprintf("%dx%d", generatedSize, generatedSize))
		img = imaging.ResizeExact(img, generatedSize, generatedSize)
	}

	logger.Debug("Resizing to stamp size", "size", stampSize)
	img = imaging.ResizeExact(img, stampSize, stampSize)

	return imaging.SavePNG(stampPath, imaging.ToRGBA(img))
}

// rebuildAssets re-runs the downstream npm builds that consume the stamps.
// Those scripts are opaque collaborators; only their exit status matters
// here.
func rebuildAssets(logger hclog.Logger) error {
	scripts := []string{"generate-tilesheet", "generate-streamdeck"}
	for _, script := range scripts {
		logger.Info("🔧 Rebuilding assets", "script", script)
		out, err := exec.Command("npm", "run", script).CombinedOutput()
		if err != nil {
			fmt.Fprint(os.Stderr, string(out))
			return fmt.Errorf("npm run %s: %w", script, err)
		}
		logger.Debug("Rebuild output", "script", script, "output", strings.TrimSpace(string(out)))
	}
	logger.Info("✅ Assets rebuilt")
	return nil
}
