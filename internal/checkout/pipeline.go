package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vinyloveschody/storefront-api/internal/email"
	"github.com/vinyloveschody/storefront-api/internal/forms"
	"github.com/vinyloveschody/storefront-api/internal/models"
)

// ProductLine is one client-supplied {product, quantity, price} triple
// mirrored from the cart at submission time. The server treats these as
// client data: they are validated for shape, not re-verified against the
// catalog.
type ProductLine struct {
	ProductSlug string `json:"product_slug" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Price       int64  `json:"price" validate:"gte=0"`
}

// Input is a checkout submission: customer data plus the cart snapshot.
// CartItems carry the display-rich lines and are used only to make the
// emails nicer; prices and quantities always come from Products.
type Input struct {
	FirstName   string `json:"firstName" validate:"required,min=2"`
	LastName    string `json:"lastName" validate:"required,min=2"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=9"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	Zip         string `json:"zip" validate:"required,min=5"`
	Note        string `json:"note"`
	Realization bool   `json:"realization"`
	ProjectDesc string `json:"projectDesc"`

	Products  []ProductLine     `json:"products" validate:"required,min=1,dive"`
	CartItems []models.CartItem `json:"cartItems"`
}

// Result is the structured outcome of a submission. Details carries
// per-field validation messages keyed by json field name.
type Result struct {
	Success  bool              `json:"success"`
	Error    string            `json:"error,omitempty"`
	Details  map[string]string `json:"details,omitempty"`
	OrderRef string            `json:"orderRef,omitempty"`
}

// Pipeline validates a checkout submission, records it as an order and
// dispatches the two notification emails: business owner first, then the
// customer confirmation. The sends are sequential and not transactional;
// the order row's email state records how far dispatch got.
type Pipeline struct {
	orders   OrderStore
	sender   email.Sender
	from     string
	owner    string
	log      *zap.Logger
	validate *validator.Validate
}

func NewPipeline(orders OrderStore, sender email.Sender, from, owner string, log *zap.Logger) *Pipeline {
	return &Pipeline{
		orders:   orders,
		sender:   sender,
		from:     from,
		owner:    owner,
		log:      log,
		validate: forms.NewValidator(),
	}
}

// Submit runs the whole pipeline for one submission.
func (p *Pipeline) Submit(ctx context.Context, in Input) Result {
	// 1. Server-side validation; nothing is sent on failure.
	if err := p.validate.Struct(in); err != nil {
		return Result{
			Success: false,
			Error:   "Zkontrolujte prosím zadané údaje",
			Details: forms.FieldErrors(err),
		}
	}

	// 2. Total over the validated product list.
	var total int64
	for _, line := range in.Products {
		total += line.Price * int64(line.Quantity)
	}

	// 3. Record the order before any email goes out.
	order := models.Order{
		Reference:   newOrderReference(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		Street:      in.Street,
		City:        in.City,
		Zip:         in.Zip,
		Note:        in.Note,
		Realization: in.Realization,
		ProjectDesc: in.ProjectDesc,
		Total:       total,
		Currency:    "CZK",
		EmailState:  models.OrderEmailPending,
		CreatedAt:   time.Now(),
	}
	lines := make([]models.OrderLine, 0, len(in.Products))
	for _, l := range in.Products {
		lines = append(lines, models.OrderLine{
			ProductSlug: l.ProductSlug,
			Quantity:    l.Quantity,
			Price:       l.Price,
		})
	}
	if err := p.orders.Create(ctx, &order, lines); err != nil {
		p.log.Error("failed to store order", zap.Error(err))
		return Result{Success: false, Error: "Objednávku se nepodařilo uložit, zkuste to prosím později"}
	}

	data := p.emailData(order, in)

	// 4. Owner notification goes first. A failure here aborts before the
	// customer confirmation is attempted.
	subject, body, err := email.RenderOwnerOrderEmail(data)
	if err != nil {
		p.log.Error("failed to render owner email", zap.Error(err))
		return Result{Success: false, Error: "Objednávku se nepodařilo odeslat, zkuste to prosím později"}
	}
	if err := p.sender.Send(ctx, email.Message{
		From: p.from, To: p.owner, Subject: subject, HTML: body,
	}); err != nil {
		p.log.Error("failed to send owner notification",
			zap.String("order", order.Reference), zap.Error(err))
		return Result{Success: false, Error: "Objednávku se nepodařilo odeslat, zkuste to prosím později"}
	}
	if err := p.orders.SetEmailState(ctx, order.Reference, models.OrderEmailOwnerNotified); err != nil {
		p.log.Error("failed to record email state",
			zap.String("order", order.Reference), zap.Error(err))
	}

	// 5. Customer confirmation. If this fails the order stays in
	// 'owner_notified' so the partial send is visible.
	subject, body, err = email.RenderCustomerConfirmation(data)
	if err != nil {
		p.log.Error("failed to render customer email", zap.Error(err))
		return Result{Success: false, Error: "Potvrzení objednávky se nepodařilo odeslat"}
	}
	if err := p.sender.Send(ctx, email.Message{
		From: p.from, To: in.Email, Subject: subject, HTML: body,
	}); err != nil {
		p.log.Error("failed to send customer confirmation",
			zap.String("order", order.Reference), zap.Error(err))
		return Result{Success: false, Error: "Potvrzení objednávky se nepodařilo odeslat"}
	}
	if err := p.orders.SetEmailState(ctx, order.Reference, models.OrderEmailCompleted); err != nil {
		p.log.Error("failed to record email state",
			zap.String("order", order.Reference), zap.Error(err))
	}

	return Result{Success: true, OrderRef: order.Reference}
}

// emailData merges the validated order lines with the cosmetic cart items
// so the emails show titles and links where available. Lines without a
// matching cart item fall back to the product slug.
func (p *Pipeline) emailData(order models.Order, in Input) email.OrderEmailData {
	bySlug := make(map[string][]models.CartItem)
	for _, it := range in.CartItems {
		bySlug[it.ProductSlug] = append(bySlug[it.ProductSlug], it)
	}

	lines := make([]email.OrderEmailLine, 0, len(in.Products))
	for _, l := range in.Products {
		line := email.OrderEmailLine{
			Title:     l.ProductSlug,
			Quantity:  l.Quantity,
			Price:     l.Price,
			LineTotal: l.Price * int64(l.Quantity),
		}
		if candidates := bySlug[l.ProductSlug]; len(candidates) > 0 {
			match := candidates[0]
			for _, c := range candidates {
				if c.PriceNet == l.Price || c.PriceGross == l.Price {
					match = c
					break
				}
			}
			line.Title = match.Title
			line.Link = match.Link
			line.IsSample = match.IsSample
		}
		lines = append(lines, line)
	}

	return email.OrderEmailData{
		Reference:    order.Reference,
		CustomerName: strings.TrimSpace(order.FirstName + " " + order.LastName),
		Email:        order.Email,
		Phone:        order.Phone,
		Street:       order.Street,
		City:         order.City,
		Zip:          order.Zip,
		Note:         order.Note,
		Realization:  order.Realization,
		ProjectDesc:  order.ProjectDesc,
		Lines:        lines,
		Total:        order.Total,
		Currency:     order.Currency,
	}
}

// newOrderReference mints a short human-readable order reference.
func newOrderReference() string {
	return "OBJ-" + strings.ToUpper(uuid.NewString()[:8])
}
