// Package models defines the canonical TaxBit export record: one line of a
// cryptocurrency-exchange transaction export, with exact-decimal quantities,
// a millisecond UTC timestamp and a closed transaction-type enumeration.
package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// timeEncodeLayout is the Z-suffixed UTC form records render and marshal
// with. The literal Z is safe because TimeMs is always converted with UTC().
const timeEncodeLayout = "2006-01-02T15:04:05.000Z"

// timeDecodeLayouts are the accepted input forms. Layouts without a zone are
// interpreted as UTC.
var timeDecodeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// TimeMs is a timestamp in milliseconds since the Unix epoch, UTC.
// Zero is the default/unset sentinel.
type TimeMs int64

// ParseTimeMs converts a UTC date-time string to epoch milliseconds.
func ParseTimeMs(s string) (TimeMs, error) {
	for _, layout := range timeDecodeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return TimeMs(ts.UnixMilli()), nil
		}
	}
	return 0, fmt.Errorf("invalid date-time: %q", s)
}

// String renders the timestamp as a Z-suffixed UTC string.
func (t TimeMs) String() string {
	return time.UnixMilli(int64(t)).UTC().Format(timeEncodeLayout)
}

// MarshalJSON encodes the Z-suffixed UTC string.
func (t TimeMs) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a UTC date-time string.
func (t *TimeMs) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date and time: %w", err)
	}
	parsed, err := ParseTimeMs(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Record represents one TaxBit export transaction line.
//
// Quantities are exact base-10 decimals; nil means the cell was absent,
// which is distinct from zero. Text fields hold the empty string when not
// applicable. The JSON tags carry the exact export column names and are a
// compatibility surface for the structured interchange form.
//
// A Record is a plain value: it holds no resources and is safe for
// concurrent reads, but provides no synchronization against concurrent
// mutation.
type Record struct {
	Time                      TimeMs    `json:"Date and Time"`
	Type                      TxType    `json:"Transaction Type"`
	SentQuantity              *Quantity `json:"Sent Quantity"`
	SentCurrency              string    `json:"Sent Currency"`
	SendingSource             string    `json:"Sending Source"`
	ReceivedQuantity          *Quantity `json:"Received Quantity"`
	ReceivedCurrency          string    `json:"Received Currency"`
	ReceivingDestination      string    `json:"Receiving Destination"`
	FeeQuantity               *Quantity `json:"Fee"`
	FeeCurrency               string    `json:"Fee Currency"`
	ExchangeTransactionID     string    `json:"Exchange Transaction ID"`
	BlockchainTransactionHash string    `json:"Blockchain Transaction Hash"`
}

// New returns the default record: time 0, TxTypeUnknown, absent quantities
// and empty text fields. This is a legal "not yet known" value, not an
// error state.
func New() Record {
	return Record{}
}

// Asset returns the currency this transaction is economically about: the
// sent currency for outbound kinds (Expense, TransferOut, GiftSent, Sale)
// and the received currency for inbound kinds (Buy, TransferIn, Income,
// GiftReceived, Trade).
//
// Calling Asset on a TxTypeUnknown record is a caller bug: records must be
// classified first. It panics rather than returning a degraded value.
func (r *Record) Asset() string {
	switch r.Type {
	case TxTypeExpense, TxTypeTransferOut, TxTypeGiftSent, TxTypeSale:
		return r.SentCurrency
	case TxTypeBuy, TxTypeTransferIn, TxTypeIncome, TxTypeGiftReceived, TxTypeTrade:
		return r.ReceivedCurrency
	default:
		panic(fmt.Sprintf("Asset called on unclassified record (type %s)", r.Type))
	}
}

// String renders the record for logs and diagnostics: comma-joined fields
// in export column order, with the compact type name. Persisted output goes
// through the csvparse encoder instead, which uses the exact export labels.
func (r *Record) String() string {
	fields := []string{
		r.Time.String(),
		r.Type.String(),
		quantityOrEmpty(r.SentQuantity),
		r.SentCurrency,
		r.SendingSource,
		quantityOrEmpty(r.ReceivedQuantity),
		r.ReceivedCurrency,
		r.ReceivingDestination,
		quantityOrEmpty(r.FeeQuantity),
		r.FeeCurrency,
		r.ExchangeTransactionID,
		r.BlockchainTransactionHash,
	}
	return strings.Join(fields, ",")
}

func quantityOrEmpty(q *Quantity) string {
	if q == nil {
		return ""
	}
	return q.String()
}
