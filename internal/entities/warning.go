package entities

// Warning - неблокирующая ошибка оповещения. Переход к этому моменту уже зафиксирован.
type Warning struct {
	Channel string
	Message string
}

const (
	ChannelWebhook   = "webhook"
	ChannelMessenger = "messenger"
	ChannelEvents    = "events"
	ChannelSettings  = "settings"
)
