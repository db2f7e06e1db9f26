package model

// WeatherRecord представляет прогноз на один день.
// Температуры хранятся текстом как на странице: там бывают нечисловые значения.
type WeatherRecord struct {
	date           Optional
	minTemperature Optional
	maxTemperature Optional
}

// NewWeatherRecord создает запись прогноза
func NewWeatherRecord(date, minTemperature, maxTemperature Optional) WeatherRecord {
	return WeatherRecord{
		date:           date,
		minTemperature: minTemperature,
		maxTemperature: maxTemperature,
	}
}

// Date возвращает дату в формате YYYY-MM-DD
func (r WeatherRecord) Date() Optional {
	return r.date
}

// MinTemperature возвращает минимальную температуру
func (r WeatherRecord) MinTemperature() Optional {
	return r.minTemperature
}

// MaxTemperature возвращает максимальную температуру
func (r WeatherRecord) MaxTemperature() Optional {
	return r.maxTemperature
}
