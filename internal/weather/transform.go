package weather

import (
	"math"
	"path"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// iconDirPrefix is the directory the feed prefixes every icon path with.
// Stripping it yields the stable icon key.
const iconDirPrefix = "/ig/images/weather/"

// transformSections extracts typed fields from the validated sections and
// converts temperatures into the caller's preferred unit.
//
// The feed reports current conditions in temp_f regardless of the
// document's unit_system tag, so the current temperature always converts
// from a Fahrenheit source. Forecast lows and highs convert from the
// unit_system source. The asymmetry is the feed's; tests pin it.
func transformSections(s *sections, settings Settings) *Report {
	settings = settings.normalized()

	info := LocationInfo{
		City:       dataValue(s.info, "city"),
		Zip:        dataValue(s.info, "postal_code"),
		UnitSystem: UnitSystem(dataValue(s.info, "unit_system")),
	}

	current := CurrentConditions{
		Condition:     dataValue(s.current, "condition"),
		Temperature:   convertTemp(numValue(s.current, "temp_f"), UnitSystemUS, settings.Unit),
		Humidity:      dataValue(s.current, "humidity"),
		IconKey:       iconKey(dataValue(s.current, "icon")),
		WindCondition: dataValue(s.current, "wind_condition"),
	}

	forecast := make(map[string]DayForecast, len(s.forecast))
	for _, el := range s.forecast {
		// Source order; a repeated day label overwrites the earlier entry.
		forecast[dataValue(el, "day_of_week")] = DayForecast{
			Low:       convertTemp(numValue(el, "low"), info.UnitSystem, settings.Unit),
			High:      convertTemp(numValue(el, "high"), info.UnitSystem, settings.Unit),
			IconKey:   iconKey(dataValue(el, "icon")),
			Condition: dataValue(el, "condition"),
		}
	}

	return &Report{Info: info, Current: current, Forecast: forecast}
}

// dataValue reads the data attribute of a named child element, the layout
// the feed uses for every field.
func dataValue(section *etree.Element, name string) string {
	child := section.FindElement(name)
	if child == nil {
		return ""
	}
	return child.SelectAttrValue("data", "")
}

// numValue parses a numeric field. Malformed or absent values read as 0;
// validation guards section presence only and field extraction fails soft.
func numValue(section *etree.Element, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(dataValue(section, name)), 64)
	if err != nil {
		return 0
	}
	return v
}

// convertTemp converts v from the source unit system into the target unit.
// Values already in the target unit pass through unchanged apart from
// integer rounding, which is half-away-from-zero.
func convertTemp(v float64, src UnitSystem, dst Unit) int {
	switch {
	case dst == Celsius && src == UnitSystemUS:
		v = (v - 32) * 5 / 9
	case dst == Fahrenheit && src == UnitSystemSI:
		v = v*9/5 + 32
	}
	return int(math.Round(v))
}

// iconKey derives the short icon identifier from a source icon path by
// stripping its directory prefix.
func iconKey(p string) string {
	if p == "" {
		return ""
	}
	if rest := strings.TrimPrefix(p, iconDirPrefix); rest != p {
		return rest
	}
	return path.Base(p)
}
