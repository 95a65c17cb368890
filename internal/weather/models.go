package weather

import (
	"time"

	"github.com/yosefdabbas22/weather-app/internal/geo"
)

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionFog     Condition = "fog"
)

// Current is the current-conditions view for a location.
type Current struct {
	Timestamp   time.Time `json:"timestamp"` // always UTC
	Temperature float64   `json:"temperatureC"`
	WindSpeed   float64   `json:"windSpeedKmh"`
	Condition   Condition `json:"condition"`
}

// DailyForecast is one day of the short forecast.
type DailyForecast struct {
	Date      time.Time `json:"date"`
	TempMax   float64   `json:"tempMaxC"`
	TempMin   float64   `json:"tempMinC"`
	PrecipMM  float64   `json:"precipMm"`
	Condition Condition `json:"condition"`
}

// Report bundles everything the caller renders for one resolved location.
type Report struct {
	Location  geo.Resolved    `json:"location"`
	Current   Current         `json:"current"`
	Forecast  []DailyForecast `json:"forecast"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
