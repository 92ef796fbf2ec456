package input

import (
	"fmt"
	"strings"

	gameinput "github.com/cbodonnell/kangaroo/pkg/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyName converts an ebiten key to the identifier used by key bindings.
// Letters are lower case, space is " " and every other key keeps its ebiten name
// (ArrowLeft, Enter, Digit1...).
func KeyName(key ebiten.Key) gameinput.Key {
	name := key.String()
	switch {
	case key == ebiten.KeySpace:
		return gameinput.KeySpace
	case len(name) == 1:
		return gameinput.Key(strings.ToLower(name))
	}
	return gameinput.Key(name)
}

// Feed pushes the key presses and releases of the current tick onto the event queue.
func Feed(events *gameinput.EventQueue) error {
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if err := events.KeyDown(KeyName(key)); err != nil {
			return fmt.Errorf("failed to push key down %s: %v", key, err)
		}
	}
	for _, key := range inpututil.AppendJustReleasedKeys(nil) {
		if err := events.KeyUp(KeyName(key)); err != nil {
			return fmt.Errorf("failed to push key up %s: %v", key, err)
		}
	}
	return nil
}

// IsRestartJustPressed returns a boolean value indicating whether the restart input is just pressed.
// This is used to handle both keyboard and gamepad inputs.
func IsRestartJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonCenterRight) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton9) {
			return true
		}
	}
	return false
}

func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

func IsQuitJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
