package webhook

// payload - формат, который ожидает внешний учет доставок. Все значения строковые.
type payload struct {
	Name          string `json:"name"`
	DepartureTime string `json:"horario_saida"`
	DeliveryCount string `json:"quantidade_entregas"`
	Courier       string `json:"motoboy"`
	Bag           string `json:"bag"`
	HasBeverage   string `json:"possui_bebida"`
}
