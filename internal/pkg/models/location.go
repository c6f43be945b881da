package models

import "strconv"

// LocationSample is the most recent device position
type LocationSample struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LatString formats the latitude the way the realtime channel expects it
func (l LocationSample) LatString() string {
	return strconv.FormatFloat(l.Lat, 'f', -1, 64)
}

// LngString formats the longitude the way the realtime channel expects it
func (l LocationSample) LngString() string {
	return strconv.FormatFloat(l.Lng, 'f', -1, 64)
}

// Valid reports whether the sample is a plausible WGS84 coordinate
func (l LocationSample) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}
