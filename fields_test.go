package fuzzydate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fuzzydate"
	"github.com/dmitrymomot/fuzzydate/pkg/validator"
)

func TestFields(t *testing.T) {
	t.Run("every component lands in its own field", func(t *testing.T) {
		f := fuzzydate.MustParse("2019/03/21").Fields()

		require.NotNil(t, f.Year)
		require.NotNil(t, f.Month)
		require.NotNil(t, f.Day)
		assert.Equal(t, 2019, *f.Year)
		assert.Equal(t, 3, *f.Month)
		assert.Equal(t, 21, *f.Day)
	})

	t.Run("the month field carries the month, never the day", func(t *testing.T) {
		f := fuzzydate.MustParse("2020/03").Fields()

		require.NotNil(t, f.Month)
		assert.Equal(t, 3, *f.Month)
		assert.Nil(t, f.Day)
	})

	t.Run("absent components stay nil", func(t *testing.T) {
		f := fuzzydate.Unknown().Fields()
		assert.Nil(t, f.Year)
		assert.Nil(t, f.Month)
		assert.Nil(t, f.Day)

		f = fuzzydate.MustParse("2019").Fields()
		require.NotNil(t, f.Year)
		assert.Nil(t, f.Month)
		assert.Nil(t, f.Day)
	})

	t.Run("the pointers are copies", func(t *testing.T) {
		d := fuzzydate.MustParse("2019")
		f := d.Fields()

		*f.Year = 9999

		y, _ := d.Year()
		assert.Equal(t, 2019, y, "mutating the fields must not reach the date")
	})
}

func TestFromFields(t *testing.T) {
	t.Run("round-trips every specificity", func(t *testing.T) {
		for _, text := range []string{"2019", "2019/03", "2019/03/21"} {
			d := fuzzydate.MustParse(text)

			rebuilt, err := fuzzydate.FromFields(d.Fields())
			require.NoError(t, err, "input %s", text)
			assert.True(t, d.Equal(rebuilt))
		}
	})

	t.Run("round-trips gap dates", func(t *testing.T) {
		d, err := fuzzydate.FromFields(fuzzydate.Fields{Day: intp(14)})
		require.NoError(t, err)

		rebuilt, err := fuzzydate.FromFields(d.Fields())
		require.NoError(t, err)

		day, ok := rebuilt.Day()
		require.True(t, ok)
		assert.Equal(t, 14, day)
		assert.False(t, rebuilt.HasYear())
		assert.False(t, rebuilt.HasMonth())
	})

	t.Run("empty fields build the unknown date", func(t *testing.T) {
		d, err := fuzzydate.FromFields(fuzzydate.Fields{})
		require.NoError(t, err)
		assert.True(t, d.IsUnknown())
	})

	t.Run("the ruleset validates the rebuilt date", func(t *testing.T) {
		_, err := fuzzydate.FromFields(fuzzydate.Fields{Year: intp(2020), Month: intp(13)})
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("a custom ruleset applies its own policy", func(t *testing.T) {
		rs := fuzzydate.NewRuleset(fuzzydate.WithDateRules(fuzzydate.PartsHierarchy))

		_, err := rs.FromFields(fuzzydate.Fields{Day: intp(14)})
		require.Error(t, err)

		_, err = fuzzydate.FromFields(fuzzydate.Fields{Day: intp(14)})
		assert.NoError(t, err, "the default ruleset keeps permitting gap dates")
	})
}

func TestRangeFields(t *testing.T) {
	t.Run("exposes both endpoints", func(t *testing.T) {
		r := fuzzydate.MustNewRange(fuzzydate.MustParse("2020/01/01"), fuzzydate.MustParse("2020/12"))
		f := r.Fields()

		require.NotNil(t, f.From.Day)
		assert.Equal(t, 1, *f.From.Day)
		require.NotNil(t, f.To.Month)
		assert.Equal(t, 12, *f.To.Month)
		assert.Nil(t, f.To.Day)
	})

	t.Run("round-trips through RangeFromFields", func(t *testing.T) {
		r := fuzzydate.MustNewRange(fuzzydate.MustParse("2019"), fuzzydate.MustParse("2020/06"))

		rebuilt, err := fuzzydate.RangeFromFields(r.Fields())
		require.NoError(t, err)
		assert.True(t, r.Equal(rebuilt))
	})

	t.Run("validates endpoints before assembly", func(t *testing.T) {
		_, err := fuzzydate.RangeFromFields(fuzzydate.RangeFields{
			From: fuzzydate.Fields{Year: intp(2020), Month: intp(13)},
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("month"))
	})

	t.Run("validates the assembled range", func(t *testing.T) {
		_, err := fuzzydate.RangeFromFields(fuzzydate.RangeFields{
			From: fields(2021, 1, 1),
			To:   fields(2020, 1, 1),
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.True(t, verrs.Has("to"))
	})
}
