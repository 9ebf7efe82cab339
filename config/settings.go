package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Settings are the operator-editable POS options read from config.ini.
// Unknown keys, blank lines and comment lines ('#' or ';') are ignored,
// and a missing file yields the defaults.
type Settings struct {
	BeepOnInsert        bool
	CurrencySymbol      string
	HideCurrencySymbol  bool
	CurrencyAfterAmount bool
}

func DefaultSettings() *Settings {
	return &Settings{CurrencySymbol: "$"}
}

func LoadSettings(path string) *Settings {
	s := DefaultSettings()
	file, err := os.Open(path)
	if err != nil {
		return s
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "beep_on_insert":
			s.BeepOnInsert = value == "1"
		case "currency_symbol":
			if value != "" {
				s.CurrencySymbol = value
			}
		case "hide_currency_symbol":
			s.HideCurrencySymbol = value == "1"
		case "currency_after_amount":
			s.CurrencyAfterAmount = value == "1"
		}
	}
	return s
}

// FormatAmount renders a monetary value according to the currency options.
func (s *Settings) FormatAmount(amount float64) string {
	formatted := fmt.Sprintf("%.2f", amount)
	if s.HideCurrencySymbol {
		return formatted
	}
	if s.CurrencyAfterAmount {
		return formatted + " " + s.CurrencySymbol
	}
	return s.CurrencySymbol + formatted
}
