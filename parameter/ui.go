package parameter

// Window placement handed to the platform on startup
const (
	WindowTitle = "Pong 2"
	WindowX     = 100
	WindowY     = 100
)
