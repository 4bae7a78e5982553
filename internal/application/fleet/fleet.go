// Package fleet contiene los casos de uso CRUD del registro operativo
// de la flota: vehículos, funcionarios, abastecimientos,
// mantenimientos, gastos generales, ingresos y salarios.
package fleet

import "time"

// validDate acepta solo fechas literales yyyy-MM-dd.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// validPeriod acepta solo períodos mensuales YYYY-MM.
func validPeriod(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}
