// Package show models a broadcast show: a named, uniquely identified time
// period on the station's schedule.
package show
