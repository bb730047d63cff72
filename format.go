package fuzzydate

// Formatter renders dates for display. Implementations live outside this
// package; the String method on Date is a diagnostic form only and makes no
// presentation promises.
type Formatter interface {
	Format(d Date) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(Date) string

// Format calls f with the given date.
func (f FormatterFunc) Format(d Date) string {
	return f(d)
}
