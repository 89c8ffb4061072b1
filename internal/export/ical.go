package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/emersion/go-ical"

	"github.com/arijitsen/examdesk/internal/alloc"
)

// Shift windows for calendar events. The exam body publishes exact
// reporting times separately; these are the standard sitting hours.
var shiftWindows = map[alloc.Shift][2]int{
	alloc.Morning: {9, 12},
	alloc.Evening: {14, 17},
	alloc.FullDay: {9, 17},
}

// WriteCalendar emits one iCalendar event per allocation so a person
// can load their duty roster into a calendar app.
func WriteCalendar(w io.Writer, examKey string, allocations []alloc.Allocation) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//examdesk//duty roster//EN")

	now := time.Now().UTC()

	for _, a := range allocations {
		window, ok := shiftWindows[a.Shift]
		if !ok {
			return fmt.Errorf("no calendar window for shift %q", a.Shift)
		}

		start := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), window[0], 0, 0, 0, time.Local)
		end := time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), window[1], 0, 0, 0, time.Local)

		summary := fmt.Sprintf("%s — %s (%s)", examKey, a.Venue, a.Shift.Label())
		if a.MockTest {
			summary += " [Mock Test]"
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("alloc-%d-%s-%s@examdesk", a.ID, a.DateKey(), a.Shift))
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, end)
		event.Props.SetText(ical.PropSummary, summary)
		event.Props.SetText(ical.PropLocation, a.Venue)
		event.Props.SetText(ical.PropDescription, fmt.Sprintf("Role: %s", a.Role.Label()))

		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}
