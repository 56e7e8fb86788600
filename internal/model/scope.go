package model

// Channel identifies the transport a conversation arrived on.
type Channel string

const (
	ChannelWeb      Channel = "web"
	ChannelTelegram Channel = "telegram"
	ChannelAPI      Channel = "api"
)

// Scope is the explicit tenant context carried through every pipeline call.
type Scope struct {
	TenantID   string
	PropertyID string
	SessionID  string
	Channel    Channel
}
