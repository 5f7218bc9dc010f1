package core

// Lightweight number formatting for embedded targets, avoiding fmt.

// itoa converts an integer to a string.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	digits := 0
	for temp := n; temp > 0; temp /= 10 {
		digits++
	}
	if negative {
		digits++
	}

	buf := make([]byte, digits)
	pos := digits - 1
	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}
	if negative {
		buf[0] = '-'
	}
	return string(buf)
}

// utoa converts an unsigned 64-bit integer to a string. Microsecond uptime
// outgrows a 32-bit int in a bit over an hour, so itoa cannot carry it.
func utoa(n uint64) string {
	if n == 0 {
		return "0"
	}

	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// ftoa formats a float with four decimal places. Good for the unit-range
// duty ratios and angles that show up in telemetry; not a general-purpose
// formatter.
func ftoa(f float32) string {
	negative := f < 0
	if negative {
		f = -f
	}

	scaled := int(f*10000 + 0.5)
	whole := scaled / 10000
	frac := scaled % 10000

	s := itoa(whole) + "."
	switch {
	case frac < 10:
		s += "000"
	case frac < 100:
		s += "00"
	case frac < 1000:
		s += "0"
	}
	s += itoa(frac)

	if negative {
		s = "-" + s
	}
	return s
}
