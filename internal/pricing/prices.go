package pricing

// Tabela de preços dos serviços, em centavos de euro
var ServicePrices = map[string]int{
	"Gel":                        2500,
	"Ricostruzione":              4500,
	"Semipermanente":             1500,
	"Semipermanente Piedi":       1500,
	"Gel + Semipermanente":       4000,
	"Semplicemente mani e piedi": 3000,
	"Unghia rotta":               200,
}

// custo fixo por unha quebrada apontada no pre-check
const BrokenNailCents = 200

func ServicePrice(service string) int {
	return ServicePrices[service]
}

func IsKnownService(service string) bool {
	_, ok := ServicePrices[service]
	return ok
}

// ReminderAmount calcula o valor a levar no atendimento:
// preço do serviço + unhas quebradas - anticipo já versado
func ReminderAmount(service string, brokenNails int, advanceBalanceCents int) int {
	total := ServicePrice(service) + brokenNails*BrokenNailCents - advanceBalanceCents
	if total < 0 {
		return 0
	}
	return total
}
