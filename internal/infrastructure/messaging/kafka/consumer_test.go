package kafka

import (
	"context"
	"errors"
	"testing"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	app "ccw_query/internal/application/order"
	"ccw_query/pkg/logger"
)

type MockLookupHandler struct {
	mock.Mock
}

func (m *MockLookupHandler) PublishOrder(ctx context.Context, salesOrder string, opts app.LookupOptions) (int, error) {
	args := m.Called(ctx, salesOrder, opts)
	return args.Int(0), args.Error(1)
}

// sliceReader serves queued messages, then fails with errDrained.
type sliceReader struct {
	msgs   []kafkago.Message
	closed bool
}

var errDrained = errors.New("drained")

func (r *sliceReader) ReadMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		return kafkago.Message{}, errDrained
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *sliceReader) Close() error {
	r.closed = true
	return nil
}

func TestDecodeLookup(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    LookupRequest
		wantErr bool
	}{
		{name: "plain number", value: " 81234567\n", want: LookupRequest{SalesOrder: "81234567"}},
		{name: "json", value: `{"sales_order": "81234567", "collect_sublevels": true}`, want: LookupRequest{SalesOrder: "81234567", CollectSublevels: true}},
		{name: "empty", value: "  ", wantErr: true},
		{name: "json without order", value: `{"skip_serials": true}`, wantErr: true},
		{name: "broken json", value: `{"sales_order":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeLookup([]byte(tt.value))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupRequest_Options(t *testing.T) {
	assert.Equal(t, app.DefaultLookup, LookupRequest{SalesOrder: "1"}.Options())
	assert.Equal(t, app.LookupOptions{TopLevelOnly: false, AddSerials: false},
		LookupRequest{CollectSublevels: true, SkipSerials: true}.Options())
}

func TestLookupConsumer_Start(t *testing.T) {
	reader := &sliceReader{msgs: []kafkago.Message{
		{Offset: 1, Value: []byte("81234567")},
		{Offset: 2, Value: []byte("")},
		{Offset: 3, Value: []byte(`{"sales_order": "999", "collect_sublevels": true}`)},
	}}
	handler := new(MockLookupHandler)
	handler.On("PublishOrder", mock.Anything, "81234567", app.DefaultLookup).Return(3, nil).Once()
	handler.On("PublishOrder", mock.Anything, "999", app.LookupOptions{AddSerials: true}).
		Return(0, errors.New("order query failed")).Once()

	c := newLookupConsumer(reader, handler, logger.NewNop())
	err := c.Start(context.Background())

	assert.ErrorIs(t, err, errDrained)
	handler.AssertExpectations(t)

	c.Close()
	assert.True(t, reader.closed)
}

func TestLookupConsumer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newLookupConsumer(&sliceReader{}, new(MockLookupHandler), nil)
	assert.NoError(t, c.Start(ctx))
}
