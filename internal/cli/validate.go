package cli

import (
	"fmt"

	"clarityboard/internal/sessions"
	"clarityboard/internal/source"
)

// Execute runs the validate command: checks the export for mandatory
// columns and reports which optional columns would be synthesized.
func (cmd *ValidateCommand) Execute(args []string) error {
	mapping, err := source.LoadColumnMapping(cmd.globals.Map)
	if err != nil {
		return err
	}
	set, err := source.FromFile(cmd.globals.File, mapping)
	if err != nil {
		return err
	}

	for _, col := range []string{sessions.ColUserID, sessions.ColDate} {
		if !set.HasColumn(col) {
			return fmt.Errorf("export is missing the mandatory %q column", col)
		}
	}

	optional := []string{
		sessions.ColCountry, sessions.ColDevice, sessions.ColOS,
		sessions.ColReferrer, sessions.ColPageCount, sessions.ColClicks,
		sessions.ColDuration,
	}
	missing := 0
	for _, col := range optional {
		if !set.HasColumn(col) {
			printf("missing optional column %q: rows will use its default value\n", col)
			missing++
		}
	}

	dataset, err := sessions.Normalize(set, cliLogger(cmd.globals))
	if err != nil {
		return err
	}

	printf("ok: %d rows, %d usable sessions, %d optional columns missing\n",
		len(set.Rows), dataset.Len(), missing)
	return nil
}
