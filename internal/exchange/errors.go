package exchange

import "fmt"

// DataSourceError wraps any failure talking to an upstream exchange:
// network errors, timeouts, auth and rate-limit rejections, bad payloads.
type DataSourceError struct {
	Exchange string
	Op       string
	Err      error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Exchange, e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// NewDataSourceError builds a DataSourceError for the given exchange and operation.
func NewDataSourceError(exchange, op string, err error) *DataSourceError {
	return &DataSourceError{Exchange: exchange, Op: op, Err: err}
}
