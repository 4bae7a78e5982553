// Package period normaliza los rangos de fechas con los que trabaja
// toda la capa de agregación. Las fechas circulan como strings
// yyyy-MM-dd literales: nunca se convierten a time.Time para devolverlas
// al cliente, porque reinterpretarlas con zona horaria desplaza el día.
package period

import "time"

const dateLayout = "2006-01-02"

// Period es un rango de fechas calendario, inclusivo en ambos extremos.
type Period struct {
	Start string // yyyy-MM-dd
	End   string // yyyy-MM-dd
}

// Resolve devuelve el período solicitado. Si ambos extremos vienen
// informados se devuelven tal cual (sin parsear); si falta alguno, el
// período por defecto es el mes calendario en curso según la hora local
// del servidor.
func Resolve(startDate, endDate string) Period {
	if startDate != "" && endDate != "" {
		return Period{Start: startDate, End: endDate}
	}
	return MonthWindow(time.Now())
}

// Complete indica si el llamador informó los dos extremos.
// El reporte completo exige un rango explícito; el dashboard no.
func Complete(startDate, endDate string) bool {
	return startDate != "" && endDate != ""
}

// MonthWindow devuelve el primer y último día del mes calendario de t.
func MonthWindow(t time.Time) Period {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return Period{
		Start: first.Format(dateLayout),
		End:   last.Format(dateLayout),
	}
}

// MonthsBack devuelve el mes calendario n meses antes del actual
// (n = 0 es el mes en curso) junto con su etiqueta MM/yyyy.
// Se ancla al día 1 antes de restar para evitar el desborde de
// AddDate en fines de mes (31 de marzo − 1 mes = 3 de marzo).
func MonthsBack(now time.Time, n int) (Period, string) {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	target := anchor.AddDate(0, -n, 0)
	return MonthWindow(target), target.Format("01/2006")
}

// Days enumera cada día calendario del período en orden cronológico.
// Si los extremos no parsean como yyyy-MM-dd o el rango está invertido,
// devuelve nil: el desglose diario simplemente queda vacío.
func (p Period) Days() []string {
	start, err := time.Parse(dateLayout, p.Start)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dateLayout, p.End)
	if err != nil {
		return nil
	}
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dateLayout))
	}
	return days
}

// DisplayDate convierte yyyy-MM-dd a dd/MM/yyyy para presentación.
// Una fecha que no parsea se devuelve sin tocar.
func DisplayDate(date string) string {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("02/01/2006")
}
