package pkg

import (
	"github.com/hashicorp/go-hclog"

	"github.com/coloring-page-maker/stamptools/pkg/profile"
)

// BuildProfile assembles a device profile from stampsDir with the default
// layout and thumbnailing, writing it to outputPath.
func BuildProfile(logger hclog.Logger, stampsDir, outputPath string) (string, error) {
	return profile.Build(logger, profile.Options{
		StampsDir:  stampsDir,
		OutputPath: outputPath,
	})
}

// BuildProfileForDevice is BuildProfile with an explicit device model.
func BuildProfileForDevice(logger hclog.Logger, stampsDir, outputPath, deviceModel string) (string, error) {
	return profile.Build(logger, profile.Options{
		StampsDir:   stampsDir,
		OutputPath:  outputPath,
		DeviceModel: deviceModel,
	})
}
