package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yosefdabbas22/weather-app/internal/geo"
	"github.com/yosefdabbas22/weather-app/internal/httpx"
)

const defaultForecastBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider fetches current conditions and the daily forecast from
// the Open-Meteo forecast API. No API key required.
type OpenMeteoProvider struct {
	name     string
	baseURL  string
	upstream httpx.Upstream
}

func NewOpenMeteoProvider(client *http.Client, baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = defaultForecastBaseURL
	}
	return &OpenMeteoProvider{
		name:     "openmeteo",
		baseURL:  baseURL,
		upstream: httpx.NewUpstream(client, "openmeteo-forecast"),
	}
}

func (p *OpenMeteoProvider) Name() string {
	return p.name
}

// Fetch returns a Report with current conditions and up to days daily
// forecast entries for the resolved location.
func (p *OpenMeteoProvider) Fetch(ctx context.Context, loc geo.Resolved, days int) (Report, error) {
	if days <= 0 {
		days = 1
	}

	values := url.Values{}
	values.Set("latitude", strconv.FormatFloat(loc.Latitude, 'f', -1, 64))
	values.Set("longitude", strconv.FormatFloat(loc.Longitude, 'f', -1, 64))
	values.Set("current_weather", "true")
	values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_sum,weathercode")
	values.Set("forecast_days", strconv.Itoa(days))
	values.Set("timezone", "UTC")

	var payload struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
			Time        string  `json:"time"`
		} `json:"current_weather"`
		Daily struct {
			Time             []string  `json:"time"`
			TempMax          []float64 `json:"temperature_2m_max"`
			TempMin          []float64 `json:"temperature_2m_min"`
			PrecipitationSum []float64 `json:"precipitation_sum"`
			WeatherCode      []int     `json:"weathercode"`
		} `json:"daily"`
	}

	u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
	if err := p.upstream.GetJSON(ctx, u, &payload); err != nil {
		return Report{}, err
	}

	ts, err := time.Parse("2006-01-02T15:04", payload.CurrentWeather.Time)
	if err != nil {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	report := Report{
		Location: loc,
		Current: Current{
			Timestamp:   ts,
			Temperature: payload.CurrentWeather.Temperature,
			WindSpeed:   payload.CurrentWeather.WindSpeed,
			Condition:   mapWeatherCode(payload.CurrentWeather.WeatherCode),
		},
		FetchedAt: time.Now().UTC(),
	}

	for i, day := range payload.Daily.Time {
		if i >= days {
			break
		}
		date, err := time.Parse("2006-01-02", day)
		if err != nil {
			continue
		}
		entry := DailyForecast{Date: date.UTC()}
		if i < len(payload.Daily.TempMax) {
			entry.TempMax = payload.Daily.TempMax[i]
		}
		if i < len(payload.Daily.TempMin) {
			entry.TempMin = payload.Daily.TempMin[i]
		}
		if i < len(payload.Daily.PrecipitationSum) {
			entry.PrecipMM = payload.Daily.PrecipitationSum[i]
		}
		if i < len(payload.Daily.WeatherCode) {
			entry.Condition = mapWeatherCode(payload.Daily.WeatherCode[i])
		}
		report.Forecast = append(report.Forecast, entry)
	}

	return report, nil
}

// mapWeatherCode folds WMO weather codes into the normalized conditions.
func mapWeatherCode(code int) Condition {
	switch {
	case code == 0:
		return ConditionClear
	case code >= 1 && code <= 3:
		return ConditionCloudy
	case code >= 45 && code <= 48:
		return ConditionFog
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return ConditionSnow
	case code >= 95:
		return ConditionStorm
	default:
		return ConditionUnknown
	}
}
