package planning

import (
	"fmt"
	"io"

	ical "github.com/emersion/go-ical"

	"github.com/heymishy/plan-pulse-compass-sub009/internal/model"
)

// WriteCalendar encodes a quarter's iterations as an iCalendar stream,
// one all-quarter event plus one event per iteration, so the plan can
// be subscribed to from any calendar client.
func WriteCalendar(w io.Writer, quarter model.Cycle, iterations []model.Cycle) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//planpulse//planning calendar//EN")

	cal.Children = append(cal.Children, cycleEvent(quarter).Component)
	for _, iteration := range iterations {
		cal.Children = append(cal.Children, cycleEvent(iteration).Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("encoding calendar: %w", err)
	}
	return nil
}

func cycleEvent(c model.Cycle) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, c.ID+"@planpulse")
	event.Props.SetText(ical.PropSummary, c.Name)
	event.Props.SetDateTime(ical.PropDateTimeStamp, c.StartDate.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, c.StartDate.UTC())
	// DTEND is exclusive; push it one day past the cycle's last day.
	event.Props.SetDateTime(ical.PropDateTimeEnd, c.EndDate.UTC().AddDate(0, 0, 1))
	return event
}
