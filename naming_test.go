package gallery_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lanternfly/gallery"
)

func TestSanitizeFilename(t *testing.T) {
	tt := []struct {
		Name string
		In   string
		Want string
	}{
		{Name: "plain name kept", In: "cat.gif", Want: "cat.gif"},
		{Name: "spaces become underscores", In: "my photo.png", Want: "my_photo.png"},
		{Name: "whitespace runs collapse", In: "  spaced   name .jpg ", Want: "spaced_name_.jpg"},
		{Name: "directory components stripped", In: "uploads/2024/cat.gif", Want: "cat.gif"},
		{Name: "windows path stripped", In: `C:\Users\me\cat.gif`, Want: "cat.gif"},
		{Name: "traversal collapsed", In: "../../etc/passwd", Want: "passwd"},
		{Name: "embedded traversal removed", In: "a..b.png", Want: "ab.png"},
		{Name: "unsafe characters dropped", In: "we$ird%(chars).png", Want: "weirdchars.png"},
		{Name: "non-ascii dropped", In: "r\u00e9sum\u00e9.png", Want: "rsum.png"},
		{Name: "case and digits preserved", In: "IMG_2024-01.PNG", Want: "IMG_2024-01.PNG"},
		{Name: "leading dots trimmed", In: ".hidden.png", Want: "hidden.png"},
		{Name: "nothing safe left", In: "../..", Want: ""},
	}

	for _, tc := range tt {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Want, gallery.SanitizeFilename(tc.In))
		})
	}
}

func TestObjectKey(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	key := gallery.ObjectKey(at, "my photo.png")
	assert.Equal(t, "20240102T030405-my_photo.png", key)
}

func TestObjectKey_ConvertsToUTC(t *testing.T) {
	// 05:04:05+02:00 is 03:04:05Z
	loc := time.FixedZone("EET", 2*60*60)
	at := time.Date(2024, 1, 2, 5, 4, 5, 0, loc)

	key := gallery.ObjectKey(at, "cat.gif")
	assert.Equal(t, "20240102T030405-cat.gif", key)
}

func TestObjectKey_SecondResolution(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	// Sub-second differences collapse to the same key, so a second upload
	// of the same name within the second replaces the first.
	a := gallery.ObjectKey(at, "cat.gif")
	b := gallery.ObjectKey(at.Add(900*time.Millisecond), "cat.gif")
	assert.Equal(t, a, b)

	c := gallery.ObjectKey(at.Add(time.Second), "cat.gif")
	assert.NotEqual(t, a, c)
}
