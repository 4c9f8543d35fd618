package tz

import "time"

// Bishkek is the Asia/Bishkek location (KGT, UTC+6, no DST).
var Bishkek *time.Location

func init() {
	var err error
	Bishkek, err = time.LoadLocation("Asia/Bishkek")
	if err != nil {
		// Systems without tzdata still get the right offset.
		Bishkek = time.FixedZone("KGT", 6*60*60)
	}
}
