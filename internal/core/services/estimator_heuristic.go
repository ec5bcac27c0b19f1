package services

import (
	"fmt"
	"strings"
)

// Детерминированный фолбэк на случай недоступности AI:
// базовая цена категории * серьезность * компонент * бренд.

var heuristicCategoryBase = map[string]float64{
	"Refrigerator":    2500,
	"Washing Machine": 2000,
	"Air Conditioner": 2800,
	"Television":      2600,
	"Electric Fan":    700,
	"Microwave Oven":  1500,
}

const heuristicDefaultBase = 1800

type severityRule struct {
	keywords   []string
	multiplier float64
	label      string
}

// Порядок важен: первое совпадение побеждает
var severityRules = []severityRule{
	{
		keywords:   []string{"not working", "won't turn on", "wont turn on", "dead", "no power", "burnt", "burning", "smoke", "sparking", "exploded"},
		multiplier: 1.5,
		label:      "severe",
	},
	{
		keywords:   []string{"leak", "noise", "noisy", "vibrat", "smell", "drip", "stuck", "slow", "weak"},
		multiplier: 1.0,
		label:      "moderate",
	},
}

const minorMultiplier = 0.8

var componentMultipliers = map[string]float64{
	"compressor": 1.6,
	"motor":      1.4,
	"board":      1.5,
	"pcb":        1.5,
	"panel":      1.5,
	"magnetron":  1.5,
	"pump":       1.3,
	"belt":       1.1,
	"fan":        1.1,
	"capacitor":  1.2,
	"thermostat": 1.2,
}

// heuristicSeverity классифицирует описание по ключевым словам
func heuristicSeverity(issue string) (string, float64) {
	lower := strings.ToLower(issue)
	for _, rule := range severityRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.label, rule.multiplier
			}
		}
	}
	return "minor", minorMultiplier
}

// heuristicComponent находит самый дорогой упомянутый компонент
func heuristicComponent(issue string) (string, float64) {
	lower := strings.ToLower(issue)
	bestComponent := ""
	bestMultiplier := 1.0
	for component, multiplier := range componentMultipliers {
		if strings.Contains(lower, component) && multiplier > bestMultiplier {
			bestComponent = component
			bestMultiplier = multiplier
		}
	}
	return bestComponent, bestMultiplier
}

// heuristicPrice - цена в PHP до джиттера и округления
func heuristicPrice(category, brand, issue string) float64 {
	base, ok := heuristicCategoryBase[category]
	if !ok {
		base = heuristicDefaultBase
	}

	_, severity := heuristicSeverity(issue)
	_, component := heuristicComponent(issue)

	return base * severity * component * BrandMultiplier(brand)
}

// heuristicDiagnosis - осторожный общий текст, когда AI недоступен
func heuristicDiagnosis(category, brand, issue string) string {
	severityLabel, _ := heuristicSeverity(issue)
	component, componentMult := heuristicComponent(issue)

	appliance := strings.ToLower(category)
	if brand != "" {
		appliance = brand + " " + appliance
	}

	if componentMult > 1.0 {
		return fmt.Sprintf("Based on your description, your %s likely has a %s problem involving the %s. A technician will confirm the exact fault on site before any parts are replaced.", appliance, severityLabel, component)
	}

	return fmt.Sprintf("Based on your description, your %s appears to have a %s issue. A technician will run a full diagnostic on site to pinpoint the fault.", appliance, severityLabel)
}
