package wxr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestContentDate(t *testing.T) {
	tests := []struct {
		name  string
		gmt   string
		local string
		want  time.Time
	}{
		{"gmt wins", "2014-01-10 09:30:00", "2014-01-10 10:30:00", time.Date(2014, 1, 10, 9, 30, 0, 0, time.UTC)},
		{"zero gmt falls back", "0000-00-00 00:00:00", "2014-01-10 10:30:00", time.Date(2014, 1, 10, 10, 30, 0, 0, time.UTC)},
		{"empty gmt falls back", "", "2014-01-10 10:30:00", time.Date(2014, 1, 10, 10, 30, 0, 0, time.UTC)},
		{"nothing is the epoch", "", "", time.Unix(0, 0).UTC()},
		{"both zero is the epoch", "0000-00-00 00:00:00", "0000-00-00 00:00:00", time.Unix(0, 0).UTC()},
		{"garbage is the epoch", "yesterday", "", time.Unix(0, 0).UTC()},
		{"single digit components", "2014-1-2 3:4:5", "", time.Date(2014, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"day 32 rolls over", "2014-01-32 00:00:00", "", time.Date(2014, 2, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(contentDate(tt.gmt, tt.local)), "got %s", contentDate(tt.gmt, tt.local))
		})
	}
}

func TestPublishDate(t *testing.T) {
	fallback := time.Date(2013, 5, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pubDate string
		want    time.Time
	}{
		{"rfc1123z", "Fri, 10 Jan 2014 09:30:00 +0000", time.Date(2014, 1, 10, 9, 30, 0, 0, time.UTC)},
		{"offset", "Fri, 10 Jan 2014 11:30:00 +0200", time.Date(2014, 1, 10, 9, 30, 0, 0, time.UTC)},
		{"single digit day", "Thu, 2 Jan 2014 09:30:00 +0000", time.Date(2014, 1, 2, 9, 30, 0, 0, time.UTC)},
		{"unpublished placeholder", "Wed, 30 Nov -0001 00:00:00 +0000", fallback},
		{"empty", "", fallback},
		{"unparseable", "soon", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := publishDate(tt.pubDate, fallback)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}
