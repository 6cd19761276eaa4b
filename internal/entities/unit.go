package entities

// UnitSettings - конфигурация юнита, которую ядро только читает.
// Пустой шаблон или URL означает, что соответствующий канал выключен.
type UnitSettings struct {
	UnitID     string
	Name       string
	WebhookURL string
	Templates  MessageTemplates
	Speech     SpeechTemplates
}

type MessageTemplates struct {
	Dispatch    string
	PreAlert    string
	Return      string
	Summon      string
	PaymentCall string
}

type SpeechTemplates struct {
	DeliveryCall string
	PaymentCall  string
}
