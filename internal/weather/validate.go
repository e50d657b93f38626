package weather

import "github.com/beevik/etree"

// Fixed structural paths inside the response document.
const (
	infoPath     = "//weather/forecast_information"
	currentPath  = "//weather/current_conditions"
	forecastPath = "//weather/forecast_conditions"
)

// sections is the validated view of a response document: only sections
// that are present and carry child elements survive.
type sections struct {
	info     *etree.Element
	current  *etree.Element
	forecast []*etree.Element
}

// validateDocument checks the document for the three expected sections.
// Forecast information and current conditions are required; the forecast
// list may legitimately be empty. A section that exists but has no child
// elements counts as absent.
func validateDocument(doc *etree.Document) (*sections, error) {
	s := &sections{
		info:    nonEmpty(doc.FindElement(infoPath)),
		current: nonEmpty(doc.FindElement(currentPath)),
	}
	for _, el := range doc.FindElements(forecastPath) {
		if nonEmpty(el) != nil {
			s.forecast = append(s.forecast, el)
		}
	}

	var missing []string
	if s.info == nil {
		missing = append(missing, "forecast_information")
	}
	if s.current == nil {
		missing = append(missing, "current_conditions")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing}
	}
	return s, nil
}

func nonEmpty(el *etree.Element) *etree.Element {
	if el == nil || len(el.ChildElements()) == 0 {
		return nil
	}
	return el
}
