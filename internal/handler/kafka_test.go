package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/microcart/internal/entities"
	mocks "github.com/SergeyBogomolovv/microcart/internal/handler/mocks"
	"github.com/SergeyBogomolovv/microcart/pkg/utils"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fakeReader struct {
	messages  []kafka.Message
	committed []kafka.Message
	commitErr error
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if r.commitErr != nil {
		return r.commitErr
	}
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	written  []kafka.Message
	writeErr error
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.written = append(w.written, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

const validMessage = `{
	"userId": "user123",
	"items": [{"productId": "p1", "quantity": 2, "price": 10}],
	"shippingInfo": {"address": "1 Main St", "city": "Springfield", "state": "IL", "zipCode": "62701", "country": "US"}
}`

func newTestKafkaHandler(reader *fakeReader, dlq *fakeWriter, creator OrderCreator) *kafkaHandler {
	return &kafkaHandler{
		reader:   reader,
		dlq:      dlq,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: utils.NewValidator(),
		creator:  creator,
	}
}

func TestKafkaHandler_Consume(t *testing.T) {
	testCases := []struct {
		name         string
		value        string
		mockBehavior func(c *mocks.MockOrderCreator)
		writeErr     error
		wantResult   string
		wantDLQ      int
		wantCommits  int
	}{
		{
			name:  "order created",
			value: validMessage,
			mockBehavior: func(c *mocks.MockOrderCreator) {
				c.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(in entities.CreateOrder) bool {
						return in.UserID == "user123" && len(in.Items) == 1 && in.ShippingInfo != nil
					})).
					Return(entities.Order{ID: "id"}, nil).Once()
			},
			wantResult:  intakeCreated,
			wantDLQ:     0,
			wantCommits: 1,
		},
		{
			name:         "malformed message goes to dlq",
			value:        `{"userId":`,
			mockBehavior: func(c *mocks.MockOrderCreator) {},
			wantResult:   intakeFailed,
			wantDLQ:      1,
			wantCommits:  1,
		},
		{
			name:         "invalid order goes to dlq",
			value:        `{"userId":"user123","items":[]}`,
			mockBehavior: func(c *mocks.MockOrderCreator) {},
			wantResult:   intakeFailed,
			wantDLQ:      1,
			wantCommits:  1,
		},
		{
			name:  "create failure goes to dlq",
			value: validMessage,
			mockBehavior: func(c *mocks.MockOrderCreator) {
				c.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantResult:  intakeFailed,
			wantDLQ:     1,
			wantCommits: 1,
		},
		{
			name:         "dlq failure leaves message uncommitted",
			value:        `{"userId":`,
			mockBehavior: func(c *mocks.MockOrderCreator) {},
			writeErr:     errors.New("broker down"),
			wantResult:   intakeFailed,
			wantDLQ:      0,
			wantCommits:  0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockOrderCreator(t)
			tc.mockBehavior(creator)

			reader := &fakeReader{messages: []kafka.Message{{Topic: "orders", Value: []byte(tc.value)}}}
			dlq := &fakeWriter{writeErr: tc.writeErr}

			results := intakeMessages.WithLabelValues(tc.wantResult)
			before := testutil.ToFloat64(results)

			h := newTestKafkaHandler(reader, dlq, creator)
			h.Consume(context.Background())

			assert.Equal(t, before+1, testutil.ToFloat64(results))
			assert.Zero(t, testutil.ToFloat64(intakeInProgress))

			assert.Len(t, dlq.written, tc.wantDLQ)
			assert.Len(t, reader.committed, tc.wantCommits)
			for _, m := range dlq.written {
				assert.Equal(t, "orders-dlq", m.Topic)
				assert.Equal(t, tc.value, string(m.Value))
			}
		})
	}
}
