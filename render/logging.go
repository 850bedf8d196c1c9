package render

import "log/slog"

// Logging is a renderer that writes zone states to a structured logger.
// Useful as a secondary widget backend and for observing broadcasts.
type Logging struct {
	log *slog.Logger
}

// NewLogging creates a logging renderer tagged with a widget name.
func NewLogging(logger *slog.Logger, name string) *Logging {
	return &Logging{log: logger.With("widget", name)}
}

func (l *Logging) DrawTop(z TopZone) {
	l.log.Debug("draw top",
		"battery", z.BatteryLevel,
		"charging", z.Charging,
		"connection", z.Connection,
		"lastKey", z.LastKey,
		"showLastKey", z.ShowLastKey)
}

func (l *Logging) DrawMiddle(z MiddleZone) {
	selected := -1
	for i, slot := range z.Slots {
		if slot.Selected {
			selected = i
		}
	}
	l.log.Debug("draw middle", "selected", selected)
}

func (l *Logging) DrawBottom(z BottomZone) {
	l.log.Debug("draw bottom", "text", z.Text)
}
