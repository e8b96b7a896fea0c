package tz

import "time"

// BuenosAires is the America/Argentina/Buenos_Aires location (ART, UTC-3).
var BuenosAires *time.Location

func init() {
	var err error
	BuenosAires, err = time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		panic("tz: load America/Argentina/Buenos_Aires: " + err.Error())
	}
}
