package fuzzydate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fuzzydate"
	"github.com/dmitrymomot/fuzzydate/pkg/validator"
)

type yamlRecord struct {
	Name string         `yaml:"name"`
	Born fuzzydate.Date `yaml:"born"`
}

func TestDateYAML(t *testing.T) {
	t.Run("encodes as a canonical scalar", func(t *testing.T) {
		data, err := yaml.Marshal(yamlRecord{Name: "Ada", Born: fuzzydate.MustParse("1815/12/10")})
		require.NoError(t, err)
		assert.Equal(t, "name: Ada\nborn: 1815/12/10\n", string(data))
	})

	t.Run("the unknown date encodes as null", func(t *testing.T) {
		data, err := yaml.Marshal(yamlRecord{Name: "Ada"})
		require.NoError(t, err)
		assert.Equal(t, "name: Ada\nborn: null\n", string(data))
	})

	t.Run("decodes quoted and bare scalars alike", func(t *testing.T) {
		var rec yamlRecord
		require.NoError(t, yaml.Unmarshal([]byte("born: \"2019/03\"\n"), &rec))
		assert.Equal(t, "2019/03", rec.Born.String())

		require.NoError(t, yaml.Unmarshal([]byte("born: 2019\n"), &rec))
		assert.Equal(t, "2019", rec.Born.String(),
			"a bare year arrives as an int node and still parses")
	})

	t.Run("null decodes to the unknown date", func(t *testing.T) {
		var rec yamlRecord
		require.NoError(t, yaml.Unmarshal([]byte("born: null\n"), &rec))
		assert.True(t, rec.Born.IsUnknown())

		rec.Born = fuzzydate.MustParse("2019")
		require.NoError(t, yaml.Unmarshal([]byte("born: ~\n"), &rec))
		assert.True(t, rec.Born.IsUnknown())
	})

	t.Run("a missing key stays unknown", func(t *testing.T) {
		var rec yamlRecord
		require.NoError(t, yaml.Unmarshal([]byte("name: Ada\n"), &rec))
		assert.True(t, rec.Born.IsUnknown())
	})

	t.Run("rejects non-scalar nodes", func(t *testing.T) {
		var rec yamlRecord
		err := yaml.Unmarshal([]byte("born: [2019]\n"), &rec)
		require.Error(t, err)
		assert.ErrorIs(t, err, fuzzydate.ErrInvalidFormat)
	})

	t.Run("rejects invalid dates through the ruleset", func(t *testing.T) {
		var rec yamlRecord
		err := yaml.Unmarshal([]byte("born: 2019/13\n"), &rec)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("gap dates refuse the scalar form", func(t *testing.T) {
		d, err := fuzzydate.FromFields(fuzzydate.Fields{Month: intp(6)})
		require.NoError(t, err)

		_, err = yaml.Marshal(struct {
			When fuzzydate.Date `yaml:"when"`
		}{When: d})
		require.Error(t, err)
		assert.ErrorIs(t, err, fuzzydate.ErrNotCanonical)
	})

	t.Run("round-trips every specificity", func(t *testing.T) {
		for _, text := range []string{"2019", "2019/03", "2019/03/21"} {
			original := yamlRecord{Born: fuzzydate.MustParse(text)}

			data, err := yaml.Marshal(original)
			require.NoError(t, err)

			var decoded yamlRecord
			require.NoError(t, yaml.Unmarshal(data, &decoded))
			assert.True(t, original.Born.Equal(decoded.Born), "input %s", text)
		}
	})
}

func TestRangeYAML(t *testing.T) {
	type record struct {
		Active fuzzydate.Range `yaml:"active"`
	}

	t.Run("round-trips as a single scalar", func(t *testing.T) {
		original := record{
			Active: fuzzydate.MustNewRange(fuzzydate.MustParse("2019"), fuzzydate.MustParse("2020/06")),
		}

		data, err := yaml.Marshal(original)
		require.NoError(t, err)

		var decoded record
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.True(t, original.Active.Equal(decoded.Active))
	})

	t.Run("the unknown range encodes as null", func(t *testing.T) {
		data, err := yaml.Marshal(record{})
		require.NoError(t, err)
		assert.Equal(t, "active: null\n", string(data))

		var decoded record
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.True(t, decoded.Active.IsUnknown())
	})

	t.Run("an open end keeps its side empty", func(t *testing.T) {
		var decoded record
		require.NoError(t, yaml.Unmarshal([]byte("active: \"2020:\"\n"), &decoded))
		assert.Equal(t, "2020", decoded.Active.From().String())
		assert.True(t, decoded.Active.To().IsUnknown())
	})

	t.Run("rejects inverted endpoints", func(t *testing.T) {
		var decoded record
		err := yaml.Unmarshal([]byte("active: \"2021/01/01:2020/01/01\"\n"), &decoded)
		require.Error(t, err)
		assert.True(t, validator.IsValidationError(err))
	})
}
