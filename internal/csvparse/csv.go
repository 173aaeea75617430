// Package csvparse maps TaxBit export lines to and from the record model.
// Decoding is strict: bad timestamps, bad decimals, unknown transaction-type
// labels and wrong field counts are decode errors, never silently defaulted.
package csvparse

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rocjay1/taxbit-ledger/internal/models"
)

// Header is the canonical TaxBit export header, in the fixed column order
// shared by decoding and encoding.
var Header = []string{
	"Date and Time",
	"Transaction Type",
	"Sent Quantity",
	"Sent Currency",
	"Sending Source",
	"Received Quantity",
	"Received Currency",
	"Receiving Destination",
	"Fee",
	"Fee Currency",
	"Exchange Transaction ID",
	"Blockchain Transaction Hash",
}

// DecodeError reports which field of a line could not be mapped to a record
// and why, so a human can correct the source export.
type DecodeError struct {
	Field string // export column name, empty for structural problems
	Value string // offending cell text
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeFields maps one row of export cells, in Header order, to a record.
func DecodeFields(fields []string) (*models.Record, error) {
	if len(fields) != len(Header) {
		return nil, &DecodeError{
			Err: fmt.Errorf("expected %d fields, got %d", len(Header), len(fields)),
		}
	}

	rec := models.New()

	t, err := models.ParseTimeMs(fields[0])
	if err != nil {
		return nil, &DecodeError{Field: Header[0], Value: fields[0], Err: err}
	}
	rec.Time = t

	txType, err := models.ParseTxType(fields[1])
	if err != nil {
		return nil, &DecodeError{Field: Header[1], Value: fields[1], Err: err}
	}
	rec.Type = txType

	if rec.SentQuantity, err = parseQuantity(fields[2]); err != nil {
		return nil, &DecodeError{Field: Header[2], Value: fields[2], Err: err}
	}
	rec.SentCurrency = fields[3]
	rec.SendingSource = fields[4]

	if rec.ReceivedQuantity, err = parseQuantity(fields[5]); err != nil {
		return nil, &DecodeError{Field: Header[5], Value: fields[5], Err: err}
	}
	rec.ReceivedCurrency = fields[6]
	rec.ReceivingDestination = fields[7]

	if rec.FeeQuantity, err = parseQuantity(fields[8]); err != nil {
		return nil, &DecodeError{Field: Header[8], Value: fields[8], Err: err}
	}
	rec.FeeCurrency = fields[9]

	rec.ExchangeTransactionID = fields[10]
	rec.BlockchainTransactionHash = fields[11]

	return &rec, nil
}

// DecodeLine decodes a single comma-separated export line (no header).
func DecodeLine(line string) (*models.Record, error) {
	reader := csv.NewReader(strings.NewReader(line))
	fields, err := reader.Read()
	if err != nil {
		return nil, &DecodeError{Value: line, Err: err}
	}
	return DecodeFields(fields)
}

// EncodeFields renders a record back to export cells, in Header order. It
// uses the exact export labels, and quantities render with the scale they
// were parsed with, so re-encoding is lossless.
func EncodeFields(rec *models.Record) []string {
	return []string{
		rec.Time.String(),
		rec.Type.Label(),
		quantityText(rec.SentQuantity),
		rec.SentCurrency,
		rec.SendingSource,
		quantityText(rec.ReceivedQuantity),
		rec.ReceivedCurrency,
		rec.ReceivingDestination,
		quantityText(rec.FeeQuantity),
		rec.FeeCurrency,
		rec.ExchangeTransactionID,
		rec.BlockchainTransactionHash,
	}
}

// parseQuantity parses an exact decimal cell. An empty cell means the
// quantity is absent, which is distinct from zero.
func parseQuantity(cell string) (*models.Quantity, error) {
	if cell == "" {
		return nil, nil
	}
	q, err := models.ParseQuantity(cell)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func quantityText(q *models.Quantity) string {
	if q == nil {
		return ""
	}
	return q.String()
}

// ReadRecords reads a full export: the header row followed by record rows.
// The first undecodable row aborts the read with its row number; decode
// failures are deterministic, so skipping rows would only hide bad data.
func ReadRecords(r io.Reader) ([]models.Record, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) != len(Header) {
		return nil, fmt.Errorf("header has %d columns, expected %d", len(header), len(Header))
	}
	for i, name := range header {
		if strings.TrimSpace(name) != Header[i] {
			return nil, fmt.Errorf("header column %d is %q, expected %q", i+1, name, Header[i])
		}
	}

	var records []models.Record
	for row := 2; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		rec, err := DecodeFields(fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		records = append(records, *rec)
	}
	return records, nil
}

// WriteRecords writes the header and all records in export form.
func WriteRecords(w io.Writer, records []models.Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := range records {
		if err := writer.Write(EncodeFields(&records[i])); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// FileSource loads TaxBit export files from the local filesystem.
type FileSource struct{}

// NewFileSource creates a new file-backed record source.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Records reads and decodes the export at path.
func (s *FileSource) Records(ctx context.Context, path string) ([]models.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export file %s: %w", path, err)
	}
	defer file.Close()

	records, err := ReadRecords(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}
