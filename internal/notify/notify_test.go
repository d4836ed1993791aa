package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/Skotchmaster/vape_shop/internal/catalog"
	"github.com/Skotchmaster/vape_shop/internal/checkout"
	"github.com/Skotchmaster/vape_shop/internal/models"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

var (
	_ checkout.Notifier = LogNotifier{}
	_ checkout.Notifier = (*KafkaNotifier)(nil)
	_ checkout.Notifier = (*MailNotifier)(nil)
	_ checkout.Notifier = Multi{}
	_ catalog.Observer  = (*KafkaNotifier)(nil)
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (s *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, m...)
	return nil
}

type notifierFunc func(context.Context, checkout.Record) error

func (f notifierFunc) Notify(ctx context.Context, r checkout.Record) error { return f(ctx, r) }

func record() checkout.Record {
	return checkout.Record{
		ID: "order-1",
		Customer: checkout.Form{
			FullName: "Иван Иванов", Email: "ivan@example.ru", Phone: "1",
			Address: "a", City: "c", ZipCode: "z",
		},
		Items:         []checkout.Item{{ID: "p1", Name: "JUUL Starter Kit", Price: 1490, Quantity: 2, Total: 2980}},
		Subtotal:      2980,
		Shipping:      300,
		Total:         3280,
		PaymentMethod: checkout.PaymentSBP,
		PlacedAt:      time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.IntoContext(context.Background(), logging.NewWithWriter(&buf, "info"))

	require.NoError(t, LogNotifier{}.Notify(ctx, record()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "order_placed", entry["msg"])
	assert.Equal(t, "order-1", entry["order_id"])
	assert.EqualValues(t, 3280, entry["total"])
	assert.Contains(t, entry["summary"], "Итого: 3280 руб.")
}

func TestKafkaNotifier_Order(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	k := &KafkaNotifier{W: w}

	require.NoError(t, k.Notify(context.Background(), record()))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, TopicOrders, msg.Topic)
	assert.Equal(t, "order-1", string(msg.Key))

	var event map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, "order_created", event["type"])
	assert.Equal(t, "order-1", event["orderID"])
	assert.EqualValues(t, 3280, event["total"])
	assert.Equal(t, "sbp", event["paymentMethod"])

	require.NoError(t, k.Close())
	assert.True(t, w.closed)
}

func TestKafkaNotifier_OrderError(t *testing.T) {
	t.Parallel()

	k := &KafkaNotifier{W: &fakeWriter{err: errors.New("broker down")}}
	err := k.Notify(context.Background(), record())
	require.Error(t, err)
	assert.Contains(t, err.Error(), TopicOrders)
}

func TestKafkaNotifier_ProductEvents(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	k := &KafkaNotifier{W: w}
	ctx := context.Background()
	p := models.Product{ID: "p1", Name: "MINIFIT Pod Kit", Price: 990, Category: models.CategoryPodSystems}

	k.ProductSaved(ctx, p, true)
	k.ProductSaved(ctx, p, false)
	k.ProductDeleted(ctx, "p1")

	require.Len(t, w.msgs, 3)
	var types []string
	for _, m := range w.msgs {
		assert.Equal(t, TopicProducts, m.Topic)
		assert.Equal(t, "p1", string(m.Key))

		var event map[string]any
		require.NoError(t, json.Unmarshal(m.Value, &event))
		types = append(types, event["type"].(string))
	}
	assert.Equal(t, []string{"product_created", "product_updated", "product_deleted"}, types)
}

func TestKafkaNotifier_ProductEventErrorIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.IntoContext(context.Background(), logging.NewWithWriter(&buf, "info"))

	k := &KafkaNotifier{W: &fakeWriter{err: errors.New("broker down")}}
	k.ProductDeleted(ctx, "p1")

	assert.Contains(t, buf.String(), "product_event_error")
	assert.Contains(t, buf.String(), `"level":"`+slog.LevelError.String()+`"`)
}

func TestMailNotifier(t *testing.T) {
	t.Parallel()

	s := &fakeSender{}
	m := &MailNotifier{Sender: s, From: "shop@example.ru", To: "Brothersteam480@gmail.com"}

	require.NoError(t, m.Notify(context.Background(), record()))
	require.Len(t, s.sent, 1)

	msg := s.sent[0]
	assert.Equal(t, []string{"Brothersteam480@gmail.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"shop@example.ru"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"Новый заказ от Иван Иванов"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"ivan@example.ru"}, msg.GetHeader("Reply-To"))
}

func TestMailNotifier_SendError(t *testing.T) {
	t.Parallel()

	m := &MailNotifier{Sender: &fakeSender{err: errors.New("auth failed")}, From: "a@b.c", To: "d@e.f"}
	err := m.Notify(context.Background(), record())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "order-1"))
}

func TestMulti(t *testing.T) {
	t.Parallel()

	var calls []string
	first := errors.New("first")
	m := Multi{
		notifierFunc(func(context.Context, checkout.Record) error { calls = append(calls, "a"); return nil }),
		nil,
		notifierFunc(func(context.Context, checkout.Record) error { calls = append(calls, "b"); return first }),
		notifierFunc(func(context.Context, checkout.Record) error { calls = append(calls, "c"); return errors.New("second") }),
	}

	err := m.Notify(context.Background(), record())
	require.ErrorIs(t, err, first)
	assert.Equal(t, []string{"a", "b", "c"}, calls)

	assert.NoError(t, Multi{}.Notify(context.Background(), record()))
}
