package notice

// Notice is a short-lived, non-blocking message the client shows after
// an action (a toast).
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant,omitempty"` // "" | destructive
	DurationMS  int    `json:"duration_ms,omitempty"`
}

const defaultDuration = 2000

func Info(title, description string) *Notice {
	return &Notice{Title: title, Description: description, DurationMS: defaultDuration}
}

func Error(title, description string) *Notice {
	return &Notice{Title: title, Description: description, Variant: "destructive"}
}
