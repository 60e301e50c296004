package domain

import "fmt"

// Coordinate is a (latitude, longitude) pair in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude" toml:"latitude"`
	Longitude float64 `json:"longitude" toml:"longitude"`
}

// Valid reports whether the coordinate lies within the WGS84 bounds.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// String formats the coordinate as "lat,lon".
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Latitude, c.Longitude)
}

// GeoReading is a location fix for the user. The latest reading replaces any
// earlier one; a nil *GeoReading means no fix has been obtained yet.
type GeoReading struct {
	Coordinate
}

// NewGeoReading returns a reading at the given position.
func NewGeoReading(lat, lon float64) GeoReading {
	return GeoReading{Coordinate: Coordinate{Latitude: lat, Longitude: lon}}
}

// waypoints maps each Location to its fixed position.
var waypoints = map[Location]Coordinate{
	LocationSchool:      {Latitude: 42.349449, Longitude: -71.101303},
	LocationHome:        {Latitude: 42.444890, Longitude: -71.056380},
	LocationSupermarket: {Latitude: 42.406971, Longitude: -71.083977},
}

// WaypointFor returns the waypoint of a location.
// ok is false for locations outside the enumeration.
func WaypointFor(l Location) (Coordinate, bool) {
	c, ok := waypoints[l]
	return c, ok
}

// Waypoints returns a copy of the waypoint table.
func Waypoints() map[Location]Coordinate {
	out := make(map[Location]Coordinate, len(waypoints))
	for k, v := range waypoints {
		out[k] = v
	}
	return out
}
