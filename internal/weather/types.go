package weather

// Report aggregates the result of one weather lookup. It is fully
// materialized by the transform stage and never mutated afterwards.
type Report struct {
	Info     LocationInfo           `json:"info"`
	Current  CurrentConditions      `json:"current"`
	Forecast map[string]DayForecast `json:"forecast"`
}

// LocationInfo describes the location the feed resolved the query to.
type LocationInfo struct {
	City       string     `json:"city"`
	Zip        string     `json:"zip"`
	UnitSystem UnitSystem `json:"unit_system"`
}

// CurrentConditions is the present-moment snapshot. Temperature is already
// converted into the caller's preferred unit.
type CurrentConditions struct {
	Condition     string `json:"condition"`
	Temperature   int    `json:"temperature"`
	Humidity      string `json:"humidity"`
	IconKey       string `json:"icon"`
	WindCondition string `json:"wind_condition"`
}

// DayForecast is one future day's entry, keyed in Report.Forecast by the
// day-of-week label the feed returned.
type DayForecast struct {
	Low       int    `json:"low"`
	High      int    `json:"high"`
	IconKey   string `json:"icon"`
	Condition string `json:"condition"`
}
