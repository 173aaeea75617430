package models

import (
	"cmp"
	"strings"
)

// recordOrder is the tie-break priority list: comparison proceeds through
// these field comparators in order and stops at the first non-equal result.
// The sequence is fixed; it is what makes sorting large exports
// reproducible across runs and platforms, so treat it as a contract.
var recordOrder = []func(a, b *Record) int{
	func(a, b *Record) int { return cmp.Compare(a.Time, b.Time) },
	func(a, b *Record) int { return strings.Compare(a.ExchangeTransactionID, b.ExchangeTransactionID) },
	func(a, b *Record) int {
		return strings.Compare(a.BlockchainTransactionHash, b.BlockchainTransactionHash)
	},
	func(a, b *Record) int { return cmp.Compare(a.Type, b.Type) },
	func(a, b *Record) int { return strings.Compare(a.ReceivedCurrency, b.ReceivedCurrency) },
	func(a, b *Record) int { return strings.Compare(a.SentCurrency, b.SentCurrency) },
	func(a, b *Record) int { return strings.Compare(a.FeeCurrency, b.FeeCurrency) },
	func(a, b *Record) int { return strings.Compare(a.ReceivingDestination, b.ReceivingDestination) },
	func(a, b *Record) int { return strings.Compare(a.SendingSource, b.SendingSource) },
	func(a, b *Record) int { return compareQuantity(a.ReceivedQuantity, b.ReceivedQuantity) },
	func(a, b *Record) int { return compareQuantity(a.SentQuantity, b.SentQuantity) },
	func(a, b *Record) int { return compareQuantity(a.FeeQuantity, b.FeeQuantity) },
}

// compareQuantity orders optional decimals: absent sorts before present,
// two present values compare by mathematical value.
func compareQuantity(a, b *Quantity) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Cmp(*b)
	}
}

// Compare returns -1, 0 or 1 ordering r against other over the fixed field
// priority list. It is a strict total order: for any two records exactly
// one of less, equal and greater holds.
func (r *Record) Compare(other *Record) int {
	for _, compare := range recordOrder {
		if c := compare(r, other); c != 0 {
			return c
		}
	}
	return 0
}

// Less reports whether r sorts strictly before other.
func (r *Record) Less(other *Record) bool {
	return r.Compare(other) < 0
}

// Equal reports structural equality: every field pairwise equal, with
// optional quantities equal when both absent or both carry the same value.
func (r *Record) Equal(other *Record) bool {
	return r.Compare(other) == 0
}
