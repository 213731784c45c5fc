package weather

import "time"

// syntheticConditions cycles per-day in the generated forecast.
var syntheticConditions = [4]string{"Partly Cloudy", "Sunny", "Cloudy", "Light Rain"}

// maxSyntheticDays bounds how far ahead synthetic data is produced.
const maxSyntheticDays = 7

// Synthetic returns a deterministic forecast derived purely from the
// calendar: the same start date always yields the same data, so
// repeated offline generations are reproducible. At most seven days
// are produced.
func Synthetic(days int, start time.Time) []Day {
	if days > maxSyntheticDays {
		days = maxSyntheticDays
	}

	var forecast []Day
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		seed := date.Day() + int(date.Month())

		temp := 15 + (seed % 15) - 5
		condition := syntheticConditions[seed%len(syntheticConditions)]

		chance := 20
		if condition == "Light Rain" {
			chance = 60
		}

		forecast = append(forecast, Day{
			Date:         date.Format(displayDateFormat),
			Condition:    condition,
			TempC:        temp,
			MaxTempC:     temp + 5,
			MinTempC:     temp - 5,
			Humidity:     intPtr(40 + (seed % 40)),
			ChanceOfRain: chance,
			WindKph:      floatPtr(float64(10 + (seed % 20))),
			Icon:         Icon(condition, temp),
		})
	}

	return forecast
}
