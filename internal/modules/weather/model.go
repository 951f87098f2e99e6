// README: Forecast types exposed by the weather module.
package weather

// DailyForecast is one day of the weekly outlook. Date uses yyyyMMdd, matching
// the upstream API.
type DailyForecast struct {
	Date    string `json:"date"`
	SkyAm   string `json:"skyAm"`
	SkyPm   string `json:"skyPm"`
	TempMin string `json:"tempMin"`
	TempMax string `json:"tempMax"`
	RainAm  string `json:"rainAm"`
	RainPm  string `json:"rainPm"`
}

// Report is the composed response for the region: current observations plus
// the cached weekly outlook.
type Report struct {
	CurrentTemperature string          `json:"currentTemperature"`
	Sky                string          `json:"sky"`
	Precipitation      string          `json:"precipitation"`
	TempMax            string          `json:"tempMax"`
	TempMin            string          `json:"tempMin"`
	WeeklyForecast     []DailyForecast `json:"weeklyForecast"`
}
