package zapkey

// General Keys
const (
	Count    = "count"
	Data     = "data"
	ID       = "id"
	Name     = "name"
	Result   = "result"
	Type     = "type"
	UserID   = "user_id"
	UserName = "user"
)

// Titlecase Keys
const (
	Input    = "input"
	Output   = "output"
	Strategy = "strategy"
	Words    = "words"
)

// HTTP Request Keys
const (
	Method = "method"
	Path   = "path"
	Port   = "port"
	Status = "status"
	URL    = "url"
)

// Discord Interaction Keys
const (
	AppID     = "app_id"
	ChannelID = "channel_id"
	Command   = "command"
	Content   = "content"
	GuildID   = "guild_id"
	Handler   = "handler"
	Message   = "message"
	Reply     = "reply"
)

// Spotify Keys
const (
	TrackID   = "track_id"
	TrackIDs  = "track_ids"
	TrackURLs = "track_urls"
)
