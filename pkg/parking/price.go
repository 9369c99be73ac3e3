package parking

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	firstHourPrice  = regexp.MustCompile(`£(\d+\.?\d*)`)
	additionalPence = regexp.MustCompile(`(\d+)p`)
	hourlyPrice     = regexp.MustCompile(`£(\d+\.?\d*)\s*/\s*hour`)
	blockPrice      = regexp.MustCompile(`£(\d+\.?\d*)\s*/\s*(\d+)\s*hours?`)
	freeHours       = regexp.MustCompile(`(?i)(\d+)\s*hours?\s*free`)
)

// EstimateCost estimates the charge in pounds for parking the given number of
// hours under a free-text price label. Billing is per started hour.
// Unrecognised labels cost 0.
func EstimateCost(prices string, hours float64) float64 {
	s := strings.ToLower(prices)
	if strings.Contains(s, "free") {
		return 0
	}

	billable := math.Ceil(hours)

	if strings.Contains(s, "first hour") && strings.Contains(s, "additional hour") {
		first := firstHourPrice.FindStringSubmatch(s)
		extra := additionalPence.FindStringSubmatch(s)
		if first != nil && extra != nil {
			firstCost, _ := strconv.ParseFloat(first[1], 64)
			pence, _ := strconv.Atoi(extra[1])
			if billable <= 1 {
				return firstCost
			}
			return firstCost + float64(pence)/100*(billable-1)
		}
	}

	if m := hourlyPrice.FindStringSubmatch(s); m != nil {
		rate, _ := strconv.ParseFloat(m[1], 64)
		return rate * billable
	}

	if m := blockPrice.FindStringSubmatch(s); m != nil {
		cost, _ := strconv.ParseFloat(m[1], 64)
		block, _ := strconv.ParseFloat(m[2], 64)
		if block <= 0 {
			return 0
		}
		return cost * math.Ceil(hours/block)
	}

	return 0
}

// IsFree reports whether a price label advertises free parking.
func IsFree(prices string) bool {
	return strings.Contains(strings.ToLower(prices), "free")
}

// FreeHourLimit returns the stay limit advertised in a description such as
// "2 hour free parking". ok is false when no limit is given.
func FreeHourLimit(description string) (hours int, ok bool) {
	m := freeHours.FindStringSubmatch(description)
	if m == nil {
		return 0, false
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil || hours <= 0 {
		return 0, false
	}
	return hours, true
}
