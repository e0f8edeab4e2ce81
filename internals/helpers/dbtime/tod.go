// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"fmt"
	"strings"
	"time"
)

// Tod = jam di dalam hari (HH:mm:ss), tanpa tanggal & zona.
type Tod struct{ time.Time }

// From: bikin Tod dari time.Time (ambil HH:mm:ss menurut GMT+7)
func From(t time.Time) Tod {
	s := t.In(ServiceLocation)
	return Tod{
		Time: time.Date(0, 1, 1, s.Hour(), s.Minute(), s.Second(), 0, time.UTC),
	}
}

// Parse: bikin Tod dari string "HH:mm[:ss]"
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

// MustParse untuk konstanta jam yang sudah pasti valid.
func MustParse(s string) Tod {
	t, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("tod: %v", err))
	}
	return t
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return err
	}
	t.Time = time.Date(0, 1, 1, tt.Hour(), tt.Minute(), tt.Second(), 0, time.UTC)
	return nil
}

func (t Tod) String() string {
	return t.Format("15:04")
}

// Window = rentang jam [Start, End).
type Window struct {
	Start Tod
	End   Tod
}

func (w Window) Contains(at time.Time) bool {
	tod := From(at)
	return !tod.Before(w.Start.Time) && tod.Before(w.End.Time)
}

func (w Window) String() string {
	return w.Start.String() + " - " + w.End.String()
}
