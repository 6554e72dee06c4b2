package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"clocking/models"
)

var csvHeader = []string{"Colaborador", "Data", "Demanda", "Projeto", "Fase", "Atividade", "Horas", "Observação"}

// ExportFilename names the consolidated export taken on day.
func ExportFilename(day models.Date) string {
	return fmt.Sprintf("consolidado_geee_%s.csv", day)
}

// WriteCSV writes one row per log. Commas in observations become
// semicolons so the free text never adds a column.
func WriteCSV(w io.Writer, logs []models.TimeLog) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for i := range logs {
		l := &logs[i]
		if err := writer.Write([]string{
			l.CollaboratorName,
			l.Date.String(),
			string(l.DemandType),
			l.ProjectName,
			string(l.Phase),
			l.ActivityType,
			strconv.FormatFloat(l.Hours, 'f', -1, 64),
			strings.ReplaceAll(l.Observation, ",", ";"),
		}); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
