// Package tax resolves GST percentages for product categories.
package tax

import (
	"encoding/json"
	"log"
	"os"
	"strings"
)

// Default GST rates by category, in percent. The deployer can replace the whole
// table by pointing GST_RATES_FILE at a JSON object of {"category": percent}.
var rates = map[string]float64{
	"electronics": 18.0,
	"clothing":    12.0,
	"groceries":   5.0,
	"books":       0.0,
}

// Load replaces the rate table from the JSON file at path.
// Category keys are folded to lowercase, same as lookups.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	loaded := map[string]float64{}
	if err := json.Unmarshal(data, &loaded); err != nil {
		return err
	}

	rates = map[string]float64{}
	for category, pct := range loaded {
		rates[strings.ToLower(category)] = pct
	}

	log.Printf("✅ Loaded %d GST rates from %s", len(rates), path)
	return nil
}

// RateFor returns the GST rate for a category as a fraction (18%% -> 0.18).
// The category is lowercased before lookup; unknown categories are untaxed.
func RateFor(category string) float64 {
	return rates[strings.ToLower(category)] / 100.0
}
