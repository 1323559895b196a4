package pginterval_test

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ice-blockchain/go-pginterval"
)

// ExampleDecode demonstrates decoding of an interval received in the binary
// protocol format.
func ExampleDecode() {
	buf := []byte{
		0x00, 0x00, 0x00, 0x00, 0xd6, 0x93, 0xa4, 0x00,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x01,
	}

	ival, err := pginterval.Decode(buf)
	if err != nil {
		fmt.Printf("Unable to decode: %s\n", err)
		return
	}
	fmt.Println(ival.Months, ival.Days, ival.Microseconds)
	fmt.Println(ival)
	// Output:
	// 1 2 3600000000
	// 1 mon 2 days 01:00:00
}

func ExampleParse() {
	for _, s := range []string{
		"1 year 2 mons 3 days 04:05:06.000007",
		"-1 days +02:03:00",
		"@ 1 day 2 hours ago",
		"P1Y2M3DT4H5M6.000007S",
	} {
		ival, err := pginterval.Parse(s)
		if err != nil {
			fmt.Printf("Unable to parse %q: %s\n", s, err)
			continue
		}
		fmt.Printf("%d %d %d\n", ival.Months, ival.Days, ival.Microseconds)
	}

	_, err := pginterval.Parse("not an interval")
	fmt.Println(err)
	// Output:
	// 14 3 14706000007
	// 0 -1 7380000000
	// 0 -1 -7200000000
	// 14 3 14706000007
	// pginterval: cannot parse "not an interval" at offset 0: invalid number ""
}

func ExampleInterval_Format() {
	ival := pginterval.New(-14, 3, -90*pginterval.MicrosecondsPerMinute)

	fmt.Println(ival.Format(pginterval.StylePostgres))
	fmt.Println(ival.Format(pginterval.StyleISO8601))
	// Output:
	// -1 years -2 mons +3 days -01:30:00
	// P-1Y-2M3DT-1H-30M
}

func ExampleInterval_Duration() {
	ival := pginterval.New(0, 1, 30*pginterval.MicrosecondsPerMinute)

	d, err := ival.Duration()
	fmt.Println(d, err)

	_, err = pginterval.New(1, 0, 0).Duration()
	fmt.Println(err)

	ival, err = pginterval.FromDuration(90 * time.Second)
	fmt.Println(ival, err)
	// Output:
	// 24h30m0s <nil>
	// pginterval: to time.Duration: months have no fixed duration
	// 00:01:30 <nil>
}

func ExampleInterval_MarshalJSON() {
	data, err := json.Marshal(map[string]pginterval.Interval{
		"timeout": pginterval.New(0, 0, 90*pginterval.MicrosecondsPerSecond),
	})
	fmt.Println(string(data), err)
	// Output:
	// {"timeout":"PT1M30S"} <nil>
}
