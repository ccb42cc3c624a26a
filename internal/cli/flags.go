package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	File    string `long:"file" description:"Path to the session export CSV" required:"true"`
	Map     string `long:"map" description:"Path to a YAML column mapping file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
}

// ReportCommand renders the Overview KPI report with comparison.
type ReportCommand struct {
	From       string   `long:"from" description:"Period start (YYYY-MM-DD), default: earliest date in export"`
	To         string   `long:"to" description:"Period end (YYYY-MM-DD), default: latest date in export"`
	Comparison string   `long:"comparison" description:"Comparison mode: trailing | same_period_last_month" default:"trailing"`
	Country    []string `long:"country" description:"Filter by country (repeatable)"`
	Device     []string `long:"device" description:"Filter by device (repeatable)"`

	globals *GlobalFlags
}

// InsightsCommand renders top users, new users, and the session series.
type InsightsCommand struct {
	From    string   `long:"from" description:"Period start (YYYY-MM-DD), default: earliest date in export"`
	To      string   `long:"to" description:"Period end (YYYY-MM-DD), default: latest date in export"`
	Country []string `long:"country" description:"Filter by country (repeatable)"`
	Device  []string `long:"device" description:"Filter by device (repeatable)"`

	globals *GlobalFlags
}

// ValidateCommand checks an export for mandatory and optional columns.
type ValidateCommand struct {
	globals *GlobalFlags
}
