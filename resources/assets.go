package resources

import (
	"embed"
	"fmt"
	"sync"

	"pomodoro/internal/core/session"

	"fyne.io/fyne/v2"
)

const iconDir = "icons/"

// Icon file names.
const (
	AppIcon        = "tomato.svg"
	WorkIcon       = "tomato_work.svg"
	ShortBreakIcon = "tomato_short_break.svg"
	LongBreakIcon  = "tomato_long_break.svg"
	PausedIcon     = "tomato_paused.svg"
)

//go:embed icons/*.svg
var iconFS embed.FS

var iconCache sync.Map

// Icon returns a Fyne resource for the given icon file.
func Icon(fileName string) (fyne.Resource, error) {
	return loadResource(iconFS, iconDir+fileName, &iconCache)
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(fileName string) fyne.Resource {
	resource, err := Icon(fileName)
	if err != nil {
		panic(err)
	}
	return resource
}

// StatusIcon returns the tray icon for a session kind and running state.
func StatusIcon(kind session.Kind, running bool) fyne.Resource {
	if !running {
		return MustIcon(PausedIcon)
	}
	switch kind {
	case session.KindShortBreak:
		return MustIcon(ShortBreakIcon)
	case session.KindLongBreak:
		return MustIcon(LongBreakIcon)
	default:
		return MustIcon(WorkIcon)
	}
}

func loadResource(fs embed.FS, path string, cache *sync.Map) (fyne.Resource, error) {
	if cached, ok := cache.Load(path); ok {
		return cached.(fyne.Resource), nil
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load resource %s: %w", path, err)
	}

	resource := fyne.NewStaticResource(path, data)
	cache.Store(path, resource)
	return resource, nil
}
