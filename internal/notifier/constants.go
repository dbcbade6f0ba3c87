package notifier

// Sink names, also used as the metrics label.
const (
	ConsoleSinkName = "console"
	EmailSinkName   = "email"
)
