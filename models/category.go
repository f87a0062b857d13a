package models

type TimeCategory string

const (
	Morning     TimeCategory = "morning"
	Afternoon   TimeCategory = "afternoon"
	Evening     TimeCategory = "evening"
	LateNight   TimeCategory = "late_night"
	Unspecified TimeCategory = "unspecified"
)

// TimeCategories lists every category in display order.
var TimeCategories = []TimeCategory{Morning, Afternoon, Evening, LateNight, Unspecified}

var timeCategoryLabels = map[TimeCategory]string{
	Morning:     "Manhã",
	Afternoon:   "Tarde",
	Evening:     "Noite",
	LateNight:   "Madrugada",
	Unspecified: "Não informado",
}

func (c TimeCategory) Label() string {
	if label, ok := timeCategoryLabels[c]; ok {
		return label
	}
	return timeCategoryLabels[Unspecified]
}

func (c TimeCategory) Valid() bool {
	_, ok := timeCategoryLabels[c]
	return ok
}

// Rank orders categories from morning to unspecified.
func (c TimeCategory) Rank() int {
	for i, category := range TimeCategories {
		if category == c {
			return i
		}
	}
	return len(TimeCategories)
}

// CategorizeHour buckets an hour of the day.
func CategorizeHour(hour int) TimeCategory {
	switch {
	case hour >= 6 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	case hour >= 18 && hour < 24:
		return Evening
	default:
		return LateNight
	}
}

type SortKey string

const (
	SortByTime   SortKey = "time"
	SortByPrice  SortKey = "price"
	SortByArtist SortKey = "artist"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByTime, SortByPrice, SortByArtist:
		return true
	}
	return false
}
