package repository

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999999Z07:00"

	DefaultPageNum = 10
	PageMaxNum     = 100
)

// DecodeCursor decodes a cursor made by EncodeCursor into the position it marks.
func DecodeCursor(encoded string) (time.Time, int64, error) {
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, 0, err
	}

	ts, idStr, ok := strings.Cut(string(byt), "|")
	if !ok {
		return time.Time{}, 0, fmt.Errorf("malformed cursor %q", encoded)
	}
	t, err := time.Parse(timeFormat, ts)
	if err != nil {
		return time.Time{}, 0, err
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return time.Time{}, 0, err
	}
	return t, id, nil
}

// EncodeCursor marks the position of the row (createdAt, id) in a newest-first listing.
func EncodeCursor(createdAt time.Time, id int64) string {
	raw := createdAt.Format(timeFormat) + "|" + strconv.FormatInt(id, 10)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// PageVerify clamps num into (0, PageMaxNum].
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = DefaultPageNum
	}
	if *num > PageMaxNum {
		*num = PageMaxNum
	}
}
