package commands

import (
	"github.com/spf13/cobra"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "hapticgen",
	Short: "Perception-level audio-to-vibration translator",
	Long: `hapticgen - translate audio clips into vibrotactile waveforms.

The generate command estimates the loudness and roughness a listener
would perceive in each block of the input, maps them onto target
vibrotactile intensity and roughness, and synthesizes a low-frequency
two-tone waveform (175 Hz + 210 Hz, 8 kHz output) that reproduces the
felt qualities of the sound on a haptic actuator.

Examples:
  # Game or movie sound effects
  hapticgen generate -i explosion.wav -o explosion_vib.wav --content game

  # Music (loudness follows bass energy)
  hapticgen generate -i song.wav -o song_vib.wav --content music

  # Override framing/normalization parameters from a YAML file
  hapticgen generate -i in.wav -o out.wav --params params.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}
