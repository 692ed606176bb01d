package parse

// MindfulSession is one matching Record element, attributes still raw.
// Start and End keep the export's textual form
// ("2024-01-01 08:00:00 +0000") until duration resolution.
type MindfulSession struct {
	App   string
	Start string
	End   string
}
