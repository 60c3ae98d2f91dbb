package domain

// ActivityStat is one live stat shown on the tracking card and fed to the
// coach as context
type ActivityStat struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ChatSession identifies an open coach conversation
type ChatSession struct {
	ID      string `json:"chat_id"`
	Message string `json:"message,omitempty"`
}

// ChatReply is a single coach turn
type ChatReply struct {
	Reply string `json:"reply"`
}
