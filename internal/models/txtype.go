package models

import (
	"encoding/json"
	"fmt"
)

// TxType classifies a TaxBit transaction record.
//
// The numeric rank below is a compatibility contract: it is the tie-break
// order used when sorting records that agree on time, exchange ID and
// blockchain hash, and it must not be rearranged. TxTypeUnknown is the zero
// value and stands for "not yet classified"; it is never a meaningful
// transaction and is invalid for asset resolution.
type TxType int

const (
	TxTypeUnknown TxType = iota
	TxTypeIncome
	TxTypeTransferIn
	TxTypeGiftReceived
	TxTypeBuy
	TxTypeTrade
	TxTypeSale
	TxTypeExpense
	TxTypeTransferOut
	TxTypeGiftSent
)

// txTypeNames are the compact diagnostic names used by Record.String.
var txTypeNames = map[TxType]string{
	TxTypeUnknown:      "Unknown",
	TxTypeIncome:       "Income",
	TxTypeTransferIn:   "TransferIn",
	TxTypeGiftReceived: "GiftReceived",
	TxTypeBuy:          "Buy",
	TxTypeTrade:        "Trade",
	TxTypeSale:         "Sale",
	TxTypeExpense:      "Expense",
	TxTypeTransferOut:  "TransferOut",
	TxTypeGiftSent:     "GiftSent",
}

// txTypeLabels are the exact labels used in TaxBit exports. The two-word
// spellings (including "Gift Send") are part of the interchange surface.
var txTypeLabels = map[TxType]string{
	TxTypeUnknown:      "Unknown",
	TxTypeIncome:       "Income",
	TxTypeTransferIn:   "Transfer In",
	TxTypeGiftReceived: "Gift Received",
	TxTypeBuy:          "Buy",
	TxTypeTrade:        "Trade",
	TxTypeSale:         "Sale",
	TxTypeExpense:      "Expense",
	TxTypeTransferOut:  "Transfer Out",
	TxTypeGiftSent:     "Gift Send",
}

var txTypesByLabel = func() map[string]TxType {
	m := make(map[string]TxType, len(txTypeLabels))
	for t, label := range txTypeLabels {
		m[label] = t
	}
	return m
}()

// String returns the compact diagnostic name, e.g. "TransferIn".
func (t TxType) String() string {
	if name, ok := txTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TxType(%d)", int(t))
}

// Label returns the exact export label, e.g. "Transfer In".
func (t TxType) Label() string {
	if label, ok := txTypeLabels[t]; ok {
		return label
	}
	return fmt.Sprintf("TxType(%d)", int(t))
}

// ParseTxType maps an export label to its TxType. Matching is exact and
// case-sensitive; an unrecognized label is an error, never TxTypeUnknown.
func ParseTxType(label string) (TxType, error) {
	t, ok := txTypesByLabel[label]
	if !ok {
		return TxTypeUnknown, fmt.Errorf("unknown transaction type label: %q", label)
	}
	return t, nil
}

// MarshalJSON encodes the export label.
func (t TxType) MarshalJSON() ([]byte, error) {
	label, ok := txTypeLabels[t]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid transaction type %d", int(t))
	}
	return json.Marshal(label)
}

// UnmarshalJSON decodes an export label, with the same strictness as
// ParseTxType.
func (t *TxType) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return fmt.Errorf("transaction type: %w", err)
	}
	parsed, err := ParseTxType(label)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
