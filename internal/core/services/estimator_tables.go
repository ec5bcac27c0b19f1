package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Статические таблицы диагностики и цен для предопределенных
// неисправностей. Цены в PHP, до применения множителей и джиттера.

var basePricing = map[string]map[string]float64{
	"Refrigerator": {
		"Not cooling":           4200,
		"Leaking water":         1800,
		"Unusual noise":         1500,
		"Ice maker not working": 2200,
		"Door not sealing":      1200,
	},
	"Washing Machine": {
		"Not spinning":        2500,
		"Not draining":        2000,
		"Leaking water":       1800,
		"Excessive vibration": 1500,
		"Won't turn on":       2200,
	},
	"Air Conditioner": {
		"Not cooling":      3500,
		"Water dripping":   1500,
		"Foul smell":       1200,
		"Compressor issue": 5500,
		"Won't turn on":    2500,
	},
	"Television": {
		"No display":      3800,
		"No sound":        2000,
		"Lines on screen": 3200,
		"Won't turn on":   2800,
		"HDMI port issue": 1500,
	},
	"Electric Fan": {
		"Not rotating":        800,
		"Unusual noise":       600,
		"Speed control issue": 700,
		"Won't turn on":       900,
	},
	"Microwave Oven": {
		"Not heating":            1800,
		"Turntable not spinning": 900,
		"Sparking inside":        2200,
		"Buttons not responding": 1200,
	},
}

var brandMultiplier = map[string]float64{
	"Samsung":   1.3,
	"LG":        1.25,
	"Sony":      1.35,
	"Panasonic": 1.2,
	"Sharp":     1.1,
	"Whirlpool": 1.15,
	"Carrier":   1.2,
	"Haier":     0.95,
	"Condura":   1.0,
	"Fujidenzo": 0.9,
}

var diagnosisTemplates = map[string]map[string]string{
	"Refrigerator": {
		"Not cooling":           "likely a refrigerant leak, failing compressor or a defective start relay; the cooling circuit needs to be pressure-tested before parts are replaced",
		"Leaking water":         "usually a clogged or frozen defrost drain, or a cracked drain pan",
		"Unusual noise":         "commonly a worn evaporator or condenser fan motor, sometimes a loose compressor mount",
		"Ice maker not working": "typically a failed water inlet valve or a faulty ice maker module",
		"Door not sealing":      "a deformed or torn door gasket; replacement restores proper sealing",
	},
	"Washing Machine": {
		"Not spinning":        "most often a worn drive belt, a failed lid switch or a defective motor coupling",
		"Not draining":        "a blocked drain pump filter or a burnt-out drain pump",
		"Leaking water":       "usually a perished door seal or a loose hose clamp on the tub",
		"Excessive vibration": "worn suspension rods or shock absorbers; can also be a failing drum bearing",
		"Won't turn on":       "a faulty main control board or a broken door interlock",
	},
	"Air Conditioner": {
		"Not cooling":      "low refrigerant charge or a dirty condenser coil; in older units the compressor valves may be worn",
		"Water dripping":   "a clogged condensate drain line or an improperly pitched drain pan",
		"Foul smell":       "mold buildup on the evaporator coil and blower wheel; requires chemical cleaning",
		"Compressor issue": "a failing compressor - often preceded by hard starting and tripping breakers",
		"Won't turn on":    "a blown capacitor or a defective control board",
	},
	"Television": {
		"No display":      "backlight failure or a defective T-CON board; the panel itself is usually intact",
		"No sound":        "a failed audio amplifier IC on the main board or blown speakers",
		"Lines on screen": "a loose or damaged ribbon cable between the T-CON board and the panel",
		"Won't turn on":   "a failed power supply board - most commonly swollen capacitors",
		"HDMI port issue": "a physically damaged HDMI connector or a failed HDMI switch IC",
	},
	"Electric Fan": {
		"Not rotating":        "dried-up bearing lubrication or a burnt stator winding",
		"Unusual noise":       "worn bushings or a bent blade assembly rubbing the guard",
		"Speed control issue": "a failing speed selector switch or capacitor",
		"Won't turn on":       "a broken thermal fuse in the motor winding or a faulty cord",
	},
	"Microwave Oven": {
		"Not heating":            "a failed magnetron, high-voltage diode or capacitor; requires discharge and testing",
		"Turntable not spinning": "a worn turntable motor or a damaged drive coupling",
		"Sparking inside":        "burnt waveguide cover or damaged interior paint exposing metal",
		"Buttons not responding": "a worn membrane keypad or a defective control board",
	},
}

// Ключевые слова премиальных технологий в строке модели
var premiumKeywords = []string{
	"inverter", "smart", "oled", "qled", "4k", "8k", "wifi", "digital",
}

var screenSizeRe = regexp.MustCompile(`(\d{2,3})\s*(?:"|inch|inches|in\b)`)

// BrandMultiplier - множитель бренда, 1.0 для неизвестных брендов
func BrandMultiplier(brand string) float64 {
	if m, ok := brandMultiplier[brand]; ok {
		return m
	}
	return 1.0
}

// modelMultiplier выводит множитель из свободного текста модели:
// размер экрана и премиальные технологии
func modelMultiplier(category, model string) float64 {
	if model == "" {
		return 1.0
	}

	multiplier := 1.0
	lower := strings.ToLower(model)

	// Размер экрана влияет только на телевизоры
	if category == "Television" {
		if match := screenSizeRe.FindStringSubmatch(lower); match != nil {
			if size, err := strconv.Atoi(match[1]); err == nil {
				switch {
				case size >= 55:
					multiplier *= 1.2
				case size >= 42:
					multiplier *= 1.1
				}
			}
		}
	}

	for _, keyword := range premiumKeywords {
		if strings.Contains(lower, keyword) {
			multiplier *= 1.15
			break
		}
	}

	return multiplier
}

// staticDiagnosis собирает текст диагноза из шаблона
func staticDiagnosis(category, issue, brand string) (string, bool) {
	issues, ok := diagnosisTemplates[category]
	if !ok {
		return "", false
	}
	template, ok := issues[issue]
	if !ok {
		return "", false
	}

	if brand == "" {
		brand = "this"
	}
	return fmt.Sprintf("For a %s %s with \"%s\": %s.", brand, strings.ToLower(category), strings.ToLower(issue), template), true
}

// PredefinedIssues - список неисправностей категории, для валидации запросов
func PredefinedIssues(category string) []string {
	issues, ok := basePricing[category]
	if !ok {
		return nil
	}

	result := make([]string, 0, len(issues))
	for issue := range issues {
		result = append(result, issue)
	}
	return result
}
