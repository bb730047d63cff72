package fuzzydate_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fuzzydate"
)

func TestFormatterFunc(t *testing.T) {
	prose := fuzzydate.FormatterFunc(func(d fuzzydate.Date) string {
		y, hasYear := d.Year()
		if !hasYear {
			return "sometime"
		}
		m, hasMonth := d.Month()
		if !hasMonth {
			return fmt.Sprintf("%d", y)
		}
		if day, hasDay := d.Day(); hasDay {
			return fmt.Sprintf("%s %d, %d", time.Month(m), day, y)
		}
		return fmt.Sprintf("%s %d", time.Month(m), y)
	})

	var formatter fuzzydate.Formatter = prose

	assert.Equal(t, "sometime", formatter.Format(fuzzydate.Unknown()))
	assert.Equal(t, "2019", formatter.Format(fuzzydate.MustParse("2019")))
	assert.Equal(t, "March 2019", formatter.Format(fuzzydate.MustParse("2019/03")))
	assert.Equal(t, "March 21, 2019", formatter.Format(fuzzydate.MustParse("2019/03/21")))
}
