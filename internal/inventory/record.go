package inventory

import (
	"server-faker/pkg/schema"
)

// Record is one fabricated server entry. Every field is populated during
// generation; the schema's column list decides which ones reach the output.
type Record struct {
	ServerID     string
	ServerName   string
	Status       string
	IPv4         string
	Description  string
	Location     string
	OS           string
	IntervalTime int
	CPU          int
	RAM          int
	Disk         int
}

// Value returns the record's value for a schema column.
func (r Record) Value(col string) any {
	switch col {
	case schema.ColServerID:
		return r.ServerID
	case schema.ColServerName:
		return r.ServerName
	case schema.ColStatus:
		return r.Status
	case schema.ColIPv4:
		return r.IPv4
	case schema.ColDescription:
		return r.Description
	case schema.ColLocation:
		return r.Location
	case schema.ColOS:
		return r.OS
	case schema.ColIntervalTime:
		return r.IntervalTime
	case schema.ColCPU:
		return r.CPU
	case schema.ColRAM:
		return r.RAM
	case schema.ColDisk:
		return r.Disk
	default:
		return ""
	}
}

// Rows projects records onto the schema's column order, one row per record.
func Rows(records []Record, sc *schema.Schema) [][]any {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(sc.Columns))
		for j, col := range sc.Columns {
			row[j] = rec.Value(col)
		}
		rows[i] = row
	}
	return rows
}
