package domain

// Row is implemented by every persisted record through the generated
// column methods.
type Row interface {
	TableName() string
	Columns() []string
	ColumnValues() []interface{}
}
