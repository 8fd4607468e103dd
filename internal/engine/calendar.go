package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// stubVCalendar is the minimal valid iCalendar object used when no events are
// found; the encoder refuses a calendar without components.
const stubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:" + config.ICalVersion + "\r\nPRODID:" + config.ICalProdid + "\r\nEND:VCALENDAR\r\n"

// Calendar renders one all-day event per contact with a birthday, placed on
// that contact's next congratulation day. It returns the ICS bytes and the
// number of events.
func (p *Planner) Calendar(book Records) ([]byte, int, error) {
	start := time.Now()

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	today := p.Today()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(p.Clock.Now().UTC())

	for rec := range book.All() {
		bd, ok := rec.Birthday()
		if !ok {
			continue
		}
		day := CongratulationDay(bd.Date(), today)

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf("%s-%d", rec.UID(), day.Year()))
		event.Props.SetText(config.PropSummary, p.summary(rec.Name()))

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(day)
		event.Props.Set(dtStartProp)
		event.Props.Set(dtStampProp)

		cal.Children = append(cal.Children, event.Component)
	}

	count := len(cal.Children)
	if count == 0 {
		return []byte(stubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgCalendarDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count,
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return buf.Bytes(), count, nil
}

func (p *Planner) summary(name string) string {
	if p.FormatSummary != nil {
		return p.FormatSummary(name)
	}
	return fmt.Sprintf(config.FallbackSummary, name)
}
