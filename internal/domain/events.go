package domain

// Event names published on the in-process bus.
const (
	// EventJobPosted fires after a job or a message has been created.
	EventJobPosted = "jobPosted"
	// EventModeSwitched carries the new DataSourceMode.
	EventModeSwitched = "modeSwitched"
	// EventChatMessage carries the appended ChatMessage.
	EventChatMessage = "chatMessage"
)
