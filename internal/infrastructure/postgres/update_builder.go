package postgres

import (
	"fmt"
	"strings"
)

// UpdateBuilder acumula pares (columna, valor) y construye un UPDATE con
// placeholders posicionales $1..$n en orden de declaración, con el ID siempre
// como último parámetro. Mantiene la semántica "solo se tocan los campos
// presentes" de las actualizaciones parciales sin concatenar valores en el SQL.
type UpdateBuilder struct {
	table   string
	columns []string
	values  []any
}

// NewUpdateBuilder crea un builder para la tabla indicada.
func NewUpdateBuilder(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

// Set agrega una asignación columna = valor.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

// SetIfNotNil agrega la asignación solo si el puntero no es nil.
func (b *UpdateBuilder) SetIfNotNil(column string, value *string) *UpdateBuilder {
	if value != nil {
		b.Set(column, *value)
	}
	return b
}

// Empty indica si no se agregó ninguna asignación.
func (b *UpdateBuilder) Empty() bool {
	return len(b.columns) == 0
}

// Build renderiza el UPDATE y la lista de argumentos. El ID se agrega al final
// y ocupa el último placeholder. returning puede ser vacío.
func (b *UpdateBuilder) Build(id any, returning string) (string, []any) {
	clauses := make([]string, 0, len(b.columns))
	for i, col := range b.columns {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", col, i+1))
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d",
		b.table, strings.Join(clauses, ", "), len(b.columns)+1)
	if returning != "" {
		query += " RETURNING " + returning
	}
	args := append(append([]any{}, b.values...), id)
	return query, args
}
