package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nathan-osman/go-sunrise"
	"github.com/wheelibin/huelib/resource"
)

// Bounds limits the sunrise and sunset used for a schedule. Values are
// clock times ("06:30"); empty values do not limit.
type Bounds struct {
	SunriseMin string
	SunriseMax string
	SunsetMin  string
	SunsetMax  string
}

// SunTimes are the sunrise and sunset of one day.
type SunTimes struct {
	Sunrise  time.Time
	Sunset   time.Time
	baseDate time.Time
}

type ScheduleService struct {
	logger *log.Logger
	lat    float64
	lng    float64
}

func NewScheduleService(logger *log.Logger, lat, lng float64) *ScheduleService {
	return &ScheduleService{logger: logger, lat: lat, lng: lng}
}

// SunTimes calculates sunrise and sunset for the day of baseDate, in
// baseDate's location.
func (s *ScheduleService) SunTimes(baseDate time.Time) SunTimes {
	rise, set := sunrise.SunriseSunset(
		s.lat, s.lng,
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
	)
	loc := baseDate.Location()
	s.logger.Debug("Calculated sunrise and sunset",
		"date", baseDate.Format("2006-01-02"),
		"sunrise", rise.In(loc).Format("15:04"),
		"sunset", set.In(loc).Format("15:04"),
	)
	return SunTimes{Sunrise: rise.In(loc), Sunset: set.In(loc), baseDate: baseDate}
}

// Next returns the first time at or after now matching pattern, trying
// today and then tomorrow.
func (s *ScheduleService) Next(pattern string, bounds Bounds, now time.Time) (time.Time, error) {
	for day := 0; day < 2; day++ {
		sun, err := s.SunTimes(now.AddDate(0, 0, day)).Clamp(bounds)
		if err != nil {
			return time.Time{}, err
		}
		at, err := sun.Resolve(pattern)
		if err != nil {
			return time.Time{}, err
		}
		if !at.Before(now) {
			return at, nil
		}
	}
	return time.Time{}, fmt.Errorf("no time matching %q after %s", pattern, now.Format(resource.TimeFormat))
}

// SunSchedule builds a one-off bridge schedule that runs command at the
// next time matching pattern. The bridge deletes it once it has run.
func (s *ScheduleService) SunSchedule(name, pattern string, bounds Bounds, now time.Time, command resource.Action) (resource.ScheduleCreator, error) {
	at, err := s.Next(pattern, bounds, now)
	if err != nil {
		return resource.ScheduleCreator{}, err
	}
	autoDelete := true
	s.logger.Info("Scheduling command", "name", name, "at", at.Format(resource.TimeFormat), "address", command.Address)
	return resource.ScheduleCreator{
		Name:        name,
		Description: pattern,
		Command:     command,
		LocalTime:   at.Format(resource.TimeFormat),
		AutoDelete:  &autoDelete,
	}, nil
}

// Clamp moves sunrise and sunset inside bounds.
func (s SunTimes) Clamp(b Bounds) (SunTimes, error) {
	var err error
	if s.Sunrise, err = s.clampTime(s.Sunrise, b.SunriseMin, b.SunriseMax); err != nil {
		return s, err
	}
	if s.Sunset, err = s.clampTime(s.Sunset, b.SunsetMin, b.SunsetMax); err != nil {
		return s, err
	}
	return s, nil
}

func (s SunTimes) clampTime(t time.Time, min, max string) (time.Time, error) {
	if min != "" {
		lower, err := timeFromConfigTimeString(min, s.baseDate)
		if err != nil {
			return t, err
		}
		if t.Before(lower) {
			t = lower
		}
	}
	if max != "" {
		upper, err := timeFromConfigTimeString(max, s.baseDate)
		if err != nil {
			return t, err
		}
		if t.After(upper) {
			t = upper
		}
	}
	return t, nil
}

// Resolve turns a pattern into a time on the day of s. Patterns are a clock
// time ("06:30"), "sunrise" or "sunset", optionally with an offset
// ("sunset-1h", "sunrise+30m").
func (s SunTimes) Resolve(pattern string) (time.Time, error) {
	switch {
	case strings.HasPrefix(pattern, "sunrise"):
		return timeFromAstronomicalPatternTime(pattern, "sunrise", s.Sunrise)
	case strings.HasPrefix(pattern, "sunset"):
		return timeFromAstronomicalPatternTime(pattern, "sunset", s.Sunset)
	}
	return timeFromConfigTimeString(pattern, s.baseDate)
}

// returns a Time object built from the supplied time string (e.g. "06:30") and a base date
func timeFromConfigTimeString(timeString string, baseDate time.Time) (time.Time, error) {
	timeHM := strings.Split(timeString, ":")
	if len(timeHM) != 2 {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", timeString)
	}
	hour, err := strconv.Atoi(timeHM[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("invalid hour in %q", timeString)
	}
	mins, err := strconv.Atoi(timeHM[1])
	if err != nil || mins < 0 || mins > 59 {
		return time.Time{}, fmt.Errorf("invalid minutes in %q", timeString)
	}
	return time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), hour, mins, 0, 0, baseDate.Location()), nil
}

// returns an adjusted eventTime e.g ("sunset-1h", "sunset", 2023-06-27 21:43:18) -> 2023-06-27 20:43:18
func timeFromAstronomicalPatternTime(patternTime string, event string, eventTime time.Time) (time.Time, error) {
	if patternTime == event {
		return eventTime, nil
	}
	offset, err := time.ParseDuration(patternTime[len(event):])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid offset in %q: %w", patternTime, err)
	}
	return eventTime.Add(offset), nil
}
