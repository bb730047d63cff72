package fuzzydate

// Fields is the structured wire form of a Date. A nil pointer marks an
// absent component, which keeps absence distinct from a zero value across
// serialization boundaries.
type Fields struct {
	Year  *int `json:"year,omitempty" bson:"year,omitempty"`
	Month *int `json:"month,omitempty" bson:"month,omitempty"`
	Day   *int `json:"day,omitempty" bson:"day,omitempty"`
}

// RangeFields is the structured wire form of a Range.
type RangeFields struct {
	From Fields `json:"from" bson:"from"`
	To   Fields `json:"to" bson:"to"`
}

// Fields returns the structured form of the date. Each populated component
// is copied into its own field, so the month field always carries the month
// value.
func (d Date) Fields() Fields {
	var f Fields
	if y, ok := d.Year(); ok {
		f.Year = &y
	}
	if m, ok := d.Month(); ok {
		f.Month = &m
	}
	if dd, ok := d.Day(); ok {
		f.Day = &dd
	}
	return f
}

// FromFields rebuilds a date from its structured form, validated by rs.
func (rs *Ruleset) FromFields(f Fields) (Date, error) {
	var d Date
	if f.Year != nil {
		d.year = somePart(*f.Year)
	}
	if f.Month != nil {
		d.month = somePart(*f.Month)
	}
	if f.Day != nil {
		d.day = somePart(*f.Day)
	}
	return rs.validate(d)
}

// FromFields rebuilds a date using the default ruleset.
func FromFields(f Fields) (Date, error) {
	return Default().FromFields(f)
}

// Fields returns the structured form of the range.
func (r Range) Fields() RangeFields {
	return RangeFields{
		From: r.from.Fields(),
		To:   r.to.Fields(),
	}
}

// RangeFromFields rebuilds a range from its structured form. Both endpoints
// and the assembled range are validated by rs.
func (rs *Ruleset) RangeFromFields(f RangeFields) (Range, error) {
	from, err := rs.FromFields(f.From)
	if err != nil {
		return Range{}, err
	}
	to, err := rs.FromFields(f.To)
	if err != nil {
		return Range{}, err
	}
	return rs.NewRange(from, to)
}

// RangeFromFields rebuilds a range using the default ruleset.
func RangeFromFields(f RangeFields) (Range, error) {
	return Default().RangeFromFields(f)
}
