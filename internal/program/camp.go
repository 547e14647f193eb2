package program

// Camp is the trek milestone paired with each week of the program.
type Camp struct {
	Name      string
	Elevation int // metres
	Theme     string
	Message   string
	Milestone string
}

var camps = [Weeks]Camp{
	{"Kathmandu", 1400, "The journey begins", "Your adventure starts in the bustling capital", "Your trek begins"},
	{"Lukla", 2860, "Gateway to Everest", "The famous mountain airstrip awaits", "Entered the Khumbu region"},
	{"Namche Bazaar", 3440, "Sherpa capital", "The heart of Sherpa culture", "First 3-minute run"},
	{"Tengboche", 3867, "Monastery in the clouds", "The famous monastery offers blessings for your journey", ""},
	{"Dingboche", 4410, "Acclimatization", "Your body adapts to the thin air", "First 20-minute run"},
	{"Lobuche", 4940, "Into thin air", "The landscape turns to ice and rock", ""},
	{"Gorak Shep", 5164, "Final settlement", "The last teahouse before base camp", "25 minutes non-stop"},
	{"Everest Base Camp", 5364, "The destination", "You stand where legends begin", ""},
	{"Kala Patthar", 5545, "The view of Everest", "The best view of the highest peak on Earth", "30 minutes - 5K runner"},
}

// CampFor returns the camp for a week. Out of range weeks get the first camp.
func CampFor(week int) Camp {
	if week < 1 || week > Weeks {
		return camps[0]
	}

	return camps[week-1]
}
