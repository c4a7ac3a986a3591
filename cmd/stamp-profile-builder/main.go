package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"

	"github.com/coloring-page-maker/stamptools/internal/scratch"
	"github.com/coloring-page-maker/stamptools/pkg/logging"
	"github.com/coloring-page-maker/stamptools/pkg/profile"
)

const version = "0.2.0"

var (
	stampsDir   string
	deviceModel string
	profileName string
	logLevel    string
	verify      bool
	rootCmd     *cobra.Command
	versionFlag bool
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func init() {
	rootCmd = &cobra.Command{
		Use:   "stamp-profile-builder [outputFile]",
		Short: "Build Ulanzi Studio profiles for the coloring-page stamps",
		Long: `Build a Ulanzi Studio profile that maps the coloring-page stamps onto
stream deck buttons bound to Ctrl+Shift+Alt hotkeys.`,
		Args: cobra.MaximumNArgs(1),
		Run:  buildProfile,
	}

	rootCmd.Flags().StringVar(&stampsDir, "stamps-dir", profile.DefaultStampsDir, "Directory containing {index}.png stamp images")
	rootCmd.Flags().StringVar(&deviceModel, "device", profile.DefaultDeviceModel, "Target device model")
	rootCmd.Flags().StringVar(&profileName, "name", profile.DefaultProfileName, "Profile display name")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&verify, "verify", true, "Verify the generated archive")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("stamp-profile-builder %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildProfile(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("stamp-profile-builder %s\n", version)
		fmt.Printf("Built: %s\n", getBuildTimestamp())
		return
	}

	logger := logging.NewToolLogger("stamp-profile-builder", logLevel)
	logger.Debug("Profile builder starting", "version", version)

	outputPath := profile.DefaultOutputFile
	if len(args) > 0 {
		outputPath = args[0]
	}

	if err := scratch.ValidateSourceDir(stampsDir); err != nil {
		logger.Error("❌ Invalid stamps directory", "error", err)
		logger.Error("Please ensure the stamps are located in " + profile.DefaultStampsDir)
		os.Exit(1)
	}

	out, err := profile.Build(logger, profile.Options{
		StampsDir:   stampsDir,
		OutputPath:  outputPath,
		DeviceModel: deviceModel,
		ProfileName: profileName,
	})
	if err != nil {
		logger.Error("❌ Failed to generate profile", "error", err)
		os.Exit(1)
	}

	if verify {
		if err := profile.Verify(out, logger); err != nil {
			logger.Error("❌ Generated profile failed verification", "error", err)
			os.Exit(1)
		}
	}

	fmt.Printf("[SUCCESS] Generated Ulanzi profile: %s\n", out)
}
