package classify

import (
	"regexp"
	"strconv"
	"strings"
)

// The closed set of equipment category tags used across the catalog.
const (
	CategoryGrowTent       = "grow-tent"
	CategoryLEDLight       = "led-light"
	CategoryVentilation    = "ventilation"
	CategoryCarbonFilter   = "carbon-filter"
	CategoryNutrients      = "nutrients"
	CategoryPHMeter        = "ph-meter"
	CategoryTDSMeter       = "tds-meter"
	CategoryTimer          = "timer"
	CategoryThermometer    = "thermometer"
	CategoryHygrometer     = "hygrometer"
	CategoryCO2Controller  = "co2-controller"
	CategoryGrowMedium     = "grow-medium"
	CategoryPots           = "pots"
	CategoryDucting        = "ducting"
	CategoryOscillatingFan = "oscillating-fan"
	CategoryDehumidifier   = "dehumidifier"
	CategoryHumidifier     = "humidifier"
	CategoryArduinoKit     = "arduino-kit"
	CategorySensors        = "sensors"
	CategoryAccessories    = "accessories"
)

// Categories lists every valid tag, in rule-evaluation order with the
// fallback last.
var Categories = []string{
	CategoryGrowTent,
	CategoryLEDLight,
	CategoryVentilation,
	CategoryCarbonFilter,
	CategoryPHMeter,
	CategoryTDSMeter,
	CategoryTimer,
	CategoryThermometer,
	CategoryHygrometer,
	CategoryCO2Controller,
	CategoryGrowMedium,
	CategoryPots,
	CategoryDucting,
	CategoryOscillatingFan,
	CategoryDehumidifier,
	CategoryHumidifier,
	CategoryArduinoKit,
	CategorySensors,
	CategoryNutrients,
	CategoryAccessories,
}

// ValidCategory reports whether tag is one of the fixed category tags.
func ValidCategory(tag string) bool {
	for _, c := range Categories {
		if c == tag {
			return true
		}
	}
	return false
}

// rule maps a lower-cased name predicate to a category tag. Rules are
// evaluated top to bottom, first match wins, so the order of this table
// is authoritative: "led grow light with timer" is led-light, not timer.
type rule struct {
	tag   string
	match func(name string) bool
}

func anyOf(subs ...string) func(string) bool {
	return func(name string) bool {
		for _, s := range subs {
			if strings.Contains(name, s) {
				return true
			}
		}
		return false
	}
}

var rules = []rule{
	{CategoryGrowTent, anyOf("tent")},
	{CategoryLEDLight, anyOf("light", "led", "quantum")},
	{CategoryVentilation, anyOf("fan", "exhaust", "inline")},
	{CategoryCarbonFilter, anyOf("filter", "carbon")},
	{CategoryPHMeter, func(name string) bool {
		return strings.Contains(name, "ph") && strings.Contains(name, "meter")
	}},
	{CategoryTDSMeter, anyOf("tds", "ec")},
	{CategoryTimer, anyOf("timer")},
	{CategoryThermometer, anyOf("thermometer")},
	{CategoryHygrometer, anyOf("hygrometer", "humidity")},
	{CategoryCO2Controller, anyOf("co2")},
	{CategoryGrowMedium, anyOf("soil", "coco", "perlite")},
	{CategoryPots, anyOf("pot", "container")},
	{CategoryDucting, func(name string) bool {
		return strings.Contains(name, "duct") && !strings.Contains(name, "fan")
	}},
	{CategoryOscillatingFan, anyOf("oscillating", "clip")},
	{CategoryDehumidifier, anyOf("dehumidifier")},
	{CategoryHumidifier, anyOf("humidifier")},
	{CategoryArduinoKit, anyOf("arduino", "raspberry")},
	{CategorySensors, anyOf("sensor")},
	{CategoryNutrients, anyOf("nutrient")},
}

// Category maps a free-text product name to an equipment category tag.
// Matching is case-insensitive; accessories is the fallback when no
// rule matches. Never fails.
func Category(productName string) string {
	name := strings.ToLower(productName)
	for _, r := range rules {
		if r.match(name) {
			return r.tag
		}
	}
	return CategoryAccessories
}

var wattPattern = regexp.MustCompile(`(?i)(\d+)\s*w(att)?`)

// Common LED series wattages, checked in this order after the explicit
// "<n>W" pattern fails.
var ledWattages = []string{"1000", "600", "400", "300", "200", "100"}

// Watts estimates the power draw of a product from its name.
// Returns 0 when nothing can be inferred. Never fails.
func Watts(productName string) int {
	if m := wattPattern.FindStringSubmatch(productName); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n
		}
	}

	name := strings.ToLower(productName)
	if strings.Contains(name, "led") || strings.Contains(name, "light") {
		for _, w := range ledWattages {
			if strings.Contains(name, w) {
				n, _ := strconv.Atoi(w)
				return n
			}
		}
	}

	// typical draw of a small inline/exhaust fan
	if strings.Contains(name, "fan") || strings.Contains(name, "exhaust") {
		return 45
	}

	return 0
}
