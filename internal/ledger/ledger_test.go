package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocjay1/taxbit-ledger/internal/ledger"
	mock_ledger "github.com/rocjay1/taxbit-ledger/internal/ledger/mocks"
	"github.com/rocjay1/taxbit-ledger/internal/models"
)

func qty(t *testing.T, s string) *models.Quantity {
	t.Helper()
	q, err := models.ParseQuantity(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return &q
}

func rec(timeMs int64, txType models.TxType, exchangeID string) models.Record {
	r := models.New()
	r.Time = models.TimeMs(timeMs)
	r.Type = txType
	r.ExchangeTransactionID = exchangeID
	return r
}

func TestLedger_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := []models.Record{rec(2, models.TxTypeBuy, "tx2")}
	second := []models.Record{rec(1, models.TxTypeSale, "tx1")}

	source := mock_ledger.NewMockRecordSource(ctrl)
	source.EXPECT().Records(gomock.Any(), "a.csv").Return(first, nil)
	source.EXPECT().Records(gomock.Any(), "b.csv").Return(second, nil)

	l := ledger.New(source)
	err := l.Load(context.Background(), "a.csv", "b.csv")
	require.NoError(t, err)

	require.Equal(t, 2, l.Len())
	assert.Equal(t, "tx2", l.Records()[0].ExchangeTransactionID)
	assert.Equal(t, "tx1", l.Records()[1].ExchangeTransactionID)
}

func TestLedger_Load_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_ledger.NewMockRecordSource(ctrl)
	source.EXPECT().Records(gomock.Any(), "a.csv").Return(nil, errors.New("boom"))

	l := ledger.New(source)
	err := l.Load(context.Background(), "a.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, 0, l.Len())
}

func TestLedger_Sort_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Same timestamp throughout: ordering falls to the tie-break fields.
	records := []models.Record{
		rec(1000, models.TxTypeBuy, "tx3"),
		rec(1000, models.TxTypeBuy, "tx1"),
		rec(2000, models.TxTypeSale, "tx0"),
		rec(1000, models.TxTypeBuy, "tx2"),
	}

	source := mock_ledger.NewMockRecordSource(ctrl)
	source.EXPECT().Records(gomock.Any(), "a.csv").Return(records, nil)

	l := ledger.New(source)
	require.NoError(t, l.Load(context.Background(), "a.csv"))

	l.Sort()
	got := l.Records()
	wantIDs := []string{"tx1", "tx2", "tx3", "tx0"}
	for i, want := range wantIDs {
		assert.Equal(t, want, got[i].ExchangeTransactionID, "position %d", i)
	}

	// Re-sorting a sorted ledger must not move anything.
	before := append([]models.Record(nil), got...)
	l.Sort()
	for i := range before {
		assert.True(t, before[i].Equal(&l.Records()[i]), "position %d moved on re-sort", i)
	}
}

func TestLedger_Sort_QuantityTieBreak(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withFee := rec(1000, models.TxTypeBuy, "tx1")
	withFee.FeeQuantity = qty(t, "1")
	zeroFee := rec(1000, models.TxTypeBuy, "tx1")
	zeroFee.FeeQuantity = qty(t, "0")
	noFee := rec(1000, models.TxTypeBuy, "tx1")

	source := mock_ledger.NewMockRecordSource(ctrl)
	source.EXPECT().Records(gomock.Any(), "a.csv").
		Return([]models.Record{withFee, zeroFee, noFee}, nil)

	l := ledger.New(source)
	require.NoError(t, l.Load(context.Background(), "a.csv"))
	l.Sort()

	got := l.Records()
	assert.Nil(t, got[0].FeeQuantity)
	require.NotNil(t, got[1].FeeQuantity)
	assert.True(t, got[1].FeeQuantity.IsZero())
	require.NotNil(t, got[2].FeeQuantity)
	assert.Equal(t, "1", got[2].FeeQuantity.String())
}

func TestLedger_Assets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	buy := rec(1, models.TxTypeBuy, "tx1")
	buy.ReceivedCurrency = "BTC"
	sale := rec(2, models.TxTypeSale, "tx2")
	sale.SentCurrency = "ETH"
	income := rec(3, models.TxTypeIncome, "tx3")
	income.ReceivedCurrency = "BTC"

	source := mock_ledger.NewMockRecordSource(ctrl)
	source.EXPECT().Records(gomock.Any(), "a.csv").
		Return([]models.Record{buy, sale, income}, nil)

	l := ledger.New(source)
	require.NoError(t, l.Load(context.Background(), "a.csv"))

	assets, err := l.Assets()
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC", "ETH"}, assets)
}

func TestLedger_Assets_Unclassified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_ledger.NewMockRecordSource(ctrl)
	source.EXPECT().Records(gomock.Any(), "a.csv").
		Return([]models.Record{rec(1, models.TxTypeUnknown, "tx1")}, nil)

	l := ledger.New(source)
	require.NoError(t, l.Load(context.Background(), "a.csv"))

	_, err := l.Assets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unclassified")
}
