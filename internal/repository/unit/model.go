package unit

type UnitSettingsDB struct {
	UnitID              string
	Name                string
	WebhookURL          string
	DispatchTemplate    string
	PreAlertTemplate    string
	ReturnTemplate      string
	SummonTemplate      string
	PaymentCallTemplate string
	SpeechDeliveryCall  string
	SpeechPaymentCall   string
}

// cachedSettings - представление настроек в Redis.
type cachedSettings struct {
	UnitID              string `json:"unit_id"`
	Name                string `json:"name"`
	WebhookURL          string `json:"webhook_url"`
	DispatchTemplate    string `json:"dispatch_template"`
	PreAlertTemplate    string `json:"pre_alert_template"`
	ReturnTemplate      string `json:"return_template"`
	SummonTemplate      string `json:"summon_template"`
	PaymentCallTemplate string `json:"payment_call_template"`
	SpeechDeliveryCall  string `json:"speech_delivery_call"`
	SpeechPaymentCall   string `json:"speech_payment_call"`
}
