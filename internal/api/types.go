package api

// Tag is a server-side document tag. The ID is the stable reference; Name
// and Category are display data.
type Tag struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

type TagList struct {
	Items []Tag `json:"items"`
}

// ChannelType names a notification-channel variant.
type ChannelType string

const (
	ChannelMail   ChannelType = "mail"
	ChannelGotify ChannelType = "gotify"
	ChannelMatrix ChannelType = "matrix"
	ChannelHTTP   ChannelType = "http"
)

// Channel is the notification target of a reminder task. Type selects the
// variant; only the fields of the active variant are set.
type Channel struct {
	Type ChannelType `json:"type"`

	// mail
	Connection string   `json:"connection,omitempty"`
	Recipients []string `json:"recipients,omitempty"`

	// gotify / http
	URL    string `json:"url,omitempty"`
	AppKey string `json:"appKey,omitempty"`

	// matrix
	Homeserver  string `json:"homeserver,omitempty"`
	RoomID      string `json:"roomId,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// TaskSettings is a periodic due-items reminder task as the server stores
// it. An empty ID means the task has not been created yet; once persisted
// the ID never changes.
type TaskSettings struct {
	ID          string  `json:"id"`
	Enabled     bool    `json:"enabled"`
	Summary     string  `json:"summary,omitempty"`
	TagsInclude []Tag   `json:"tagsInclude"`
	TagsExclude []Tag   `json:"tagsExclude"`
	RemindDays  int     `json:"remindDays"`
	CapOverdue  bool    `json:"capOverdue"`
	Schedule    string  `json:"schedule"`
	Channel     Channel `json:"channel"`
}

// EmailSettings is the account's outgoing-mail configuration.
type EmailSettings struct {
	SenderName   string `json:"senderName"`
	SMTPHost     string `json:"smtpHost"`
	SMTPPort     int    `json:"smtpPort"`
	SMTPUser     string `json:"smtpUser,omitempty"`
	SMTPPassword string `json:"smtpPassword,omitempty"`
}
