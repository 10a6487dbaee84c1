package postgres

import "database/sql"

// Queryer é a superfície mínima de consulta usada pelos repositórios.
// *sql.DB a satisfaz diretamente, o que mantém os repositórios testáveis
// sem depender do tipo concreto da conexão.
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
