package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vinyloveschody/storefront-api/internal/email"
	"github.com/vinyloveschody/storefront-api/internal/models"
)

// fakeSender records outbound messages and can fail the n-th send.
type fakeSender struct {
	sent    []email.Message
	failOn  int // 1-based index of the send that should fail; 0 = never
	failErr error
}

func (f *fakeSender) Send(ctx context.Context, msg email.Message) error {
	if f.failOn > 0 && len(f.sent)+1 == f.failOn {
		return f.failErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func validInput() Input {
	return Input{
		FirstName: "Jana",
		LastName:  "Nováková",
		Email:     "jana.novakova@example.cz",
		Phone:     "+420777123456",
		Street:    "Dlouhá 12",
		City:      "Praha",
		Zip:       "11000",
		Products: []ProductLine{
			{ProductSlug: "vinylova-podlaha-dub-prirodni", Quantity: 2, Price: 1000},
		},
		CartItems: []models.CartItem{
			{
				ID:          "vinylova-podlaha-dub-prirodni",
				ProductSlug: "vinylova-podlaha-dub-prirodni",
				Title:       "Vinylová podlaha Dub přírodní",
				Link:        "/podlahy/vinylova-podlaha-dub-prirodni",
				Quantity:    2,
				PriceNet:    1000,
				PriceGross:  1210,
				Currency:    "CZK",
			},
		},
	}
}

func newTestPipeline(sender email.Sender) (*Pipeline, *MemoryOrderStore) {
	orders := NewMemoryOrderStore()
	p := NewPipeline(orders, sender, "obchod@vinyloveschody.cz", "info@vinyloveschody.cz", zap.NewNop())
	return p, orders
}

func TestSubmitHappyPath(t *testing.T) {
	sender := &fakeSender{}
	p, orders := newTestPipeline(sender)

	res := p.Submit(context.Background(), validInput())

	require.True(t, res.Success)
	require.NotEmpty(t, res.OrderRef)

	// Exactly two emails: owner first, customer second.
	require.Len(t, sender.sent, 2)
	assert.Equal(t, "info@vinyloveschody.cz", sender.sent[0].To)
	assert.Equal(t, "jana.novakova@example.cz", sender.sent[1].To)
	assert.Contains(t, sender.sent[0].HTML, "Vinylová podlaha Dub přírodní")
	assert.Contains(t, sender.sent[0].HTML, "2000 CZK")

	recorded := orders.Orders()
	require.Len(t, recorded, 1)
	assert.Equal(t, int64(2000), recorded[0].Total)
	assert.Equal(t, models.OrderEmailCompleted, recorded[0].EmailState)
}

func TestSubmitRejectsMalformedEmail(t *testing.T) {
	sender := &fakeSender{}
	p, orders := newTestPipeline(sender)

	in := validInput()
	in.Email = "not-an-email"

	res := p.Submit(context.Background(), in)

	require.False(t, res.Success)
	assert.Contains(t, res.Details, "email")
	assert.Empty(t, sender.sent, "no email may be sent on validation failure")
	assert.Empty(t, orders.Orders(), "no order may be recorded on validation failure")
}

func TestSubmitRejectsEmptyProductList(t *testing.T) {
	sender := &fakeSender{}
	p, _ := newTestPipeline(sender)

	in := validInput()
	in.Products = nil

	res := p.Submit(context.Background(), in)

	require.False(t, res.Success)
	assert.Contains(t, res.Details, "products")
	assert.Empty(t, sender.sent)
}

func TestSubmitOwnerSendFailureAbortsBeforeCustomer(t *testing.T) {
	sender := &fakeSender{failOn: 1, failErr: errors.New("provider down")}
	p, orders := newTestPipeline(sender)

	res := p.Submit(context.Background(), validInput())

	require.False(t, res.Success)
	assert.Empty(t, sender.sent, "customer confirmation must not be attempted")

	recorded := orders.Orders()
	require.Len(t, recorded, 1)
	assert.Equal(t, models.OrderEmailPending, recorded[0].EmailState)
}

func TestSubmitCustomerSendFailureLeavesOwnerNotified(t *testing.T) {
	sender := &fakeSender{failOn: 2, failErr: errors.New("provider down")}
	p, orders := newTestPipeline(sender)

	res := p.Submit(context.Background(), validInput())

	require.False(t, res.Success)
	require.Len(t, sender.sent, 1, "owner notification went out")

	recorded := orders.Orders()
	require.Len(t, recorded, 1)
	assert.Equal(t, models.OrderEmailOwnerNotified, recorded[0].EmailState)
}

func TestSubmitEnrichesLinesFromCartItems(t *testing.T) {
	sender := &fakeSender{}
	p, _ := newTestPipeline(sender)

	in := validInput()
	in.Products = append(in.Products, ProductLine{
		ProductSlug: "vinylova-podlaha-dub-prirodni", Quantity: 1, Price: 0,
	})
	in.CartItems = append(in.CartItems, models.CartItem{
		ID:          "vinylova-podlaha-dub-prirodni-sample",
		ProductSlug: "vinylova-podlaha-dub-prirodni",
		Title:       "Vinylová podlaha Dub přírodní",
		Quantity:    1,
		IsSample:    true,
	})

	res := p.Submit(context.Background(), in)

	require.True(t, res.Success)
	assert.Contains(t, sender.sent[0].HTML, "(vzorek)")
}
