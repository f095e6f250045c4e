package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/audio"
	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (classic if omitted).

Modes:
  classic     - 20 x 10 board
  fullscreen  - board sized to fill the terminal

Controls:
  Left/A, Right/D   - Move
  Down/S            - Soft drop
  Up/W/Space        - Rotate
  Mouse             - Press left/right half to move, release to rotate,
                      drag in the lower half to drop
  Ctrl+S            - Save a text screenshot
  Q/Ctrl+C          - Quit

Examples:
  blockfall play
  blockfall play fullscreen
  blockfall play classic --difficulty easy --mute
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	modeID := string(blockfall.ModeClassic)
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available modes.")
		os.Exit(1)
	}

	stopAudio := startAudio()
	defer stopAudio()

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, runtimeConfig(), tui.WithLogger(logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// startAudio opens the speaker and hands the player to new games. Without a
// device, or with --mute or audio disabled, games run silently. The returned
// func releases the device.
func startAudio() func() {
	cfg, err := loadConfig()
	if err != nil {
		logger.Warn("config load failed, audio uses defaults", "error", err)
		cfg = config.DefaultBlockfallConfig()
	}
	if flagMute || !cfg.Audio.Enabled {
		blockfall.SetSoundPlayer(nil)
		return func() {}
	}

	player := audio.NewPlayer(audio.Options{
		EffectVolume: cfg.Audio.EffectVolume,
		MusicVolume:  cfg.Audio.MusicVolume,
		Logger:       logger,
	})
	if err := player.Initialize(); err != nil {
		blockfall.SetSoundPlayer(nil)
		return func() {}
	}

	blockfall.SetSoundPlayer(player)
	if cfg.Audio.Music {
		player.PlayMusic()
	}
	return func() {
		blockfall.SetSoundPlayer(nil)
		player.Cleanup()
	}
}
