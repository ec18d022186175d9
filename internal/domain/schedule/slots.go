package schedule

// Os quatro horários diários do salão
var DailySlots = []string{"10:00", "11:30", "14:00", "16:00"}

func IsValidSlot(slot string) bool {
	for _, s := range DailySlots {
		if s == slot {
			return true
		}
	}
	return false
}
