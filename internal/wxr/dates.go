package wxr

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	zeroDate  = "0000-00-00 00:00:00"
	epochDate = "1970-01-01 00:00:00"
)

var wpDateRe = regexp.MustCompile(`(\d{4})-(\d+)-(\d+) (\d+):(\d+):(\d+)`)

// rssDateLayouts are tried in order for <pubDate>.
var rssDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
}

// contentDate picks post_date_gmt, then post_date, then the epoch, and
// interprets the result as UTC. Out of range components roll over the way
// time.Date normalises them.
func contentDate(gmt, local string) time.Time {
	d := strings.TrimSpace(gmt)
	if d == "" || d == zeroDate {
		d = strings.TrimSpace(local)
		if d == "" || d == zeroDate {
			d = epochDate
		}
	}
	return parseWordPressDate(d)
}

func parseWordPressDate(s string) time.Time {
	m := wpDateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Unix(0, 0).UTC()
	}

	n := make([]int, 6)
	for i := range n {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return time.Unix(0, 0).UTC()
		}
		n[i] = v
	}
	return time.Date(n[0], time.Month(n[1]), n[2], n[3], n[4], n[5], 0, time.UTC)
}

// publishDate prefers the RSS pubDate unless it is the "-0001" placeholder
// WordPress writes for unpublished posts or cannot be parsed.
func publishDate(pubDate string, fallback time.Time) time.Time {
	if pubDate == "" || strings.Contains(pubDate, "-0001") {
		return fallback
	}
	if t, ok := parseRSSDate(pubDate); ok {
		return t
	}
	return fallback
}

func parseRSSDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range rssDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
