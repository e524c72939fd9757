package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTaskRecord scans a single task row
func ScanTaskRecord(scanner Scanner) (*TaskRecord, error) {
	record := &TaskRecord{}
	err := scanner.Scan(
		&record.Position,
		&record.Kind,
		&record.Done,
		&record.Description,
		&record.DueDate,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ScanTaskRecords scans every task row
func ScanTaskRecords(rows Rows) ([]*TaskRecord, error) {
	var records []*TaskRecord
	for rows.Next() {
		record, err := ScanTaskRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
