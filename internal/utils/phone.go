package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhoneNumber normalizes a phone number to E.164 format.
// region is the default country used when the number has no country code.
func NormalizePhoneNumber(phone, region string) (string, error) {
	num, err := parsePhone(phone, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// FormatPhoneNumber renders a phone number in international format for
// display. Numbers that do not parse are returned trimmed but otherwise as given.
func FormatPhoneNumber(phone, region string) string {
	num, err := parsePhone(phone, region)
	if err != nil {
		return strings.TrimSpace(phone)
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

func parsePhone(phone, region string) (*phonenumbers.PhoneNumber, error) {
	phone = strings.TrimSpace(phone)

	num, err := phonenumbers.Parse(phone, strings.ToUpper(region))
	if err != nil {
		return nil, err
	}
	if !phonenumbers.IsValidNumber(num) {
		return nil, phonenumbers.ErrNotANumber
	}
	return num, nil
}
